package easyterm

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// CommandLineOptions reads the process command line and returns the
// options after filling in default values.
//
// The defaults map defines all expected option keys; the type of each
// default value is enforced on the corresponding command line argument.
// The boolean keys "h" (help) and "print_opt" (dump the resolved options)
// are added when absent, as is the synonym help -> h.
//
// Invalid command line input, and an invalid defaults map, terminate the
// process through the Exit collaborator after a single red error line:
// these are operator-facing conditions and carry no Go diagnostics. Any
// other error is a bug and panics. When -h is given the help text is
// displayed and the process exits successfully.
func CommandLineOptions(defaults Options, cfg *Config) Options {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	c = c.withDefaults()
	opt, err := parseArgs(defaults, os.Args[1:], c)
	if err != nil {
		var cerr *CommandLineError
		if !errors.As(err, &cerr) {
			panic(err)
		}
		failf(c.Warnings, cerr.Error())
		c.Exit(1)
		return nil
	}
	help := truthy(opt["h"])
	if help {
		Write(c.Output, c.Help)
		if topic, ok := opt["h"].(string); ok {
			if msg, ok := c.AdvancedHelp[topic]; ok {
				Write(c.Output, msg)
			}
		}
	}
	if truthy(opt["print_opt"]) {
		Write(c.Output, opt.String())
	}
	if help {
		c.Exit(0)
	}
	return opt
}

// Parse parses args (without the program name) against defaults and
// returns the resolved options. It is the non-terminating core of
// CommandLineOptions: invalid input yields a *CommandLineError instead of
// exiting, and no help or print_opt post-processing is performed.
func Parse(defaults Options, args []string, cfg *Config) (Options, error) {
	var c Config
	if cfg != nil {
		c = *cfg
	}
	return parseArgs(defaults, args, c.withDefaults())
}

// parser holds the state of one parse. The argument slice is a working
// copy: positional normalization inserts markers into it, and the
// caller's slice must never see that.
type parser struct {
	cfg      Config
	defaults Options
	synonyms map[string]string
	args     []string
	markers  []int
	opt      Options
}

func parseArgs(defaults Options, args []string, cfg Config) (Options, error) {
	p := &parser{
		cfg:  cfg,
		args: append(make([]string, 0, len(args)), args...),
		opt:  make(Options),
	}
	if err := p.validateSchema(defaults); err != nil {
		return nil, err
	}
	p.markers = locateMarkers(p.args)
	if err := p.normalizePositionals(); err != nil {
		return nil, err
	}
	if err := p.extract(); err != nil {
		return nil, err
	}
	p.fill()
	return p.opt, nil
}

func (p *parser) warnf(format string, a ...any) {
	warnf(p.cfg.Warnings, format, a...)
}

// validateSchema checks the defaults map and the configuration referring
// to it, before any token is read. It works on copies: the caller's
// defaults and synonym maps are not modified.
func (p *parser) validateSchema(defaults Options) error {
	d := make(Options, len(defaults)+2)
	for key, v := range defaults {
		d[key] = v
	}
	for _, builtin := range []string{"h", "print_opt"} {
		if _, ok := d[builtin]; !ok {
			d[builtin] = false
		}
	}
	for key, v := range d {
		// a list default may be given as []any for literal convenience,
		// but must hold strings only
		if l, ok := v.([]any); ok {
			conv := make([]string, len(l))
			for i, e := range l {
				s, ok := e.(string)
				if !ok {
					return errorf("list options must contain string values only; got %T in -%s", e, key)
				}
				conv[i] = s
			}
			d[key] = conv
			continue
		}
		if kindOf(v) == kindInvalid || v == nil {
			return errorf("only bool, int, float, str and list default values are accepted; got %T for -%s", v, key)
		}
	}
	var missing []string
	for _, pk := range p.cfg.PositionalKeys {
		if _, ok := d[pk]; !ok {
			missing = append(missing, "-"+pk)
		}
	}
	if len(missing) > 0 {
		return errorf("positional keys absent from the defaults map: %s", strings.Join(missing, " "))
	}
	syn := make(map[string]string, len(p.cfg.Synonyms)+1)
	for alias, canonical := range p.cfg.Synonyms {
		syn[alias] = canonical
	}
	syn["help"] = "h"
	p.defaults = d
	p.synonyms = syn
	return nil
}

// normalizePositionals assigns tokens given without an explicit key to
// the configured positional keys. Such tokens may appear entirely before
// the first marker or entirely after the last option and its value, never
// both. Each assigned token gets a marker inserted in front of it in the
// working copy, and the markers are located again.
func (p *parser) normalizePositionals() error {
	const (
		regionNone = iota
		regionBefore
		regionAfter
	)
	region := regionNone
	from, to := 0, 0
	if len(p.args) > 0 && (len(p.markers) == 0 || p.markers[0] != 0) {
		region = regionBefore
		to = len(p.args)
		if len(p.markers) > 0 {
			to = p.markers[0]
		}
	}
	if len(p.args) > 0 && len(p.markers) > 0 {
		lastKi := p.markers[len(p.markers)-1]
		lastKind := kindOf(p.defaults[optionKey(p.args[lastKi])])
		// a trailing list option consumes the rest of the sequence itself
		if lastKi < len(p.args)-2 && lastKind != kindList {
			if region == regionBefore {
				return errorf("positional arguments can be given before OR after other options, not both")
			}
			region = regionAfter
			// a boolean's value slot is one token wide only when an
			// explicit 0 or 1 follows it
			if lastKind == kindBool && p.args[lastKi+1] != "0" && p.args[lastKi+1] != "1" {
				from = lastKi + 1
			} else {
				from = lastKi + 2
			}
			to = len(p.args)
		}
	}
	if region == regionNone {
		return nil
	}

	type insertion struct {
		index int
		key   string
	}
	var inserts []insertion
	for i, n := 0, to-from; i < n; i++ {
		if i >= len(p.cfg.PositionalKeys) {
			extra := strings.Join(p.args[from+i:to], " ")
			if !p.cfg.TolerateExtra {
				return errorf("extra argument not accepted: %s", extra)
			}
			p.warnf("ignoring extra argument: %s", extra)
			break
		}
		key := p.cfg.PositionalKeys[i]
		inserts = append(inserts, insertion{index: from + i, key: key})
		// a list key consumes everything that follows
		if kindOf(p.defaults[key]) == kindList {
			break
		}
	}
	for j := len(inserts) - 1; j >= 0; j-- {
		p.args = slices.Insert(p.args, inserts[j].index, "-"+inserts[j].key)
	}
	p.markers = locateMarkers(p.args)
	return nil
}

// extract walks the markers in order and assigns a value of the expected
// type to each option. A later assignment to the same key overwrites an
// earlier one.
func (p *parser) extract() error {
	prev := "" // canonical key of the previous marker
	for ni, i := range p.markers {
		// tokens between the previous option's value and this marker are
		// extra, unless the previous option was a list and consumed them
		if ni > 0 && p.markers[ni-1]+1 < i-1 && kindOf(p.defaults[prev]) != kindList {
			extra := strings.Join(p.args[p.markers[ni-1]+2:i], " ")
			if !p.cfg.TolerateExtra {
				return errorf("extra argument not accepted: %s", extra)
			}
			p.warnf("ignoring extra argument: %s", extra)
		}
		key := optionKey(p.args[i])
		if canonical, ok := p.synonyms[key]; ok {
			key = canonical
		}
		expected := kindNone
		if v, ok := p.defaults[key]; ok {
			expected = kindOf(v)
		} else {
			tolerated := p.cfg.TolerateExtra
			if !tolerated && len(p.cfg.ToleratedRegexp) > 0 {
				var err error
				tolerated, err = matchAny(key, p.cfg.ToleratedRegexp)
				if err != nil {
					return fmt.Errorf("tolerated regexp: %w", err)
				}
			}
			if !tolerated {
				return errorf("unexpected command line option: -%s", key)
			}
			if !p.cfg.QuietExtra {
				p.warnf("accepting unexpected command line option: -%s", key)
			}
		}
		next := len(p.args)
		if ni+1 < len(p.markers) {
			next = p.markers[ni+1]
		}
		value, err := p.extractValue(expected, key, i, next)
		if err != nil {
			return err
		}
		p.opt[key] = value
		prev = key
	}
	return nil
}

// extractValue produces the value for the option whose marker sits at
// index i, with next the index of the following marker or the end of the
// working copy. For tolerated unknown keys expected is kindNone: they
// become true without an argument and a string with one.
func (p *parser) extractValue(expected kind, key string, i, next int) (any, error) {
	if expected == kindList {
		return append(make([]string, 0, next-i-1), p.args[i+1:next]...), nil
	}
	if next == i+1 {
		// option given without an argument
		if expected == kindBool || expected == kindNone {
			return true, nil
		}
		return nil, errorf("%s value expected for option -%s but no argument provided", expected, key)
	}
	raw := p.args[i+1]
	switch expected {
	case kindNone:
		return raw, nil
	case kindBool:
		switch raw {
		case "1":
			return true, nil
		case "0":
			return false, nil
		}
		return nil, errorf("boolean options take the values 0, 1 or none; received: -%s %s", key, raw)
	}
	return cast(expected, key, raw)
}

// fill adds an independent copy of the default value for every key not
// given on the command line.
func (p *parser) fill() {
	for key, v := range p.defaults {
		if _, ok := p.opt[key]; !ok {
			p.opt[key] = copyValue(v)
		}
	}
}
