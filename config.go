package easyterm

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// Config carries everything about a parse besides the defaults map and the
// argument list. The zero value is usable: no positional keys, no
// synonyms, no tolerance, colored output to the standard streams.
type Config struct {
	// Help is displayed when any of -h, -help or --help is given, after
	// which the process exits successfully.
	Help string

	// AdvancedHelp maps topics to specialized help texts. A topic given as
	// argument to -h (e.g. "-h map") selects the text displayed after
	// Help. This requires the defaults map to declare "h" with a string
	// default.
	AdvancedHelp map[string]string

	// PositionalKeys are assigned, in order, to arguments given without an
	// explicit option key. Each must be a key of the defaults map.
	PositionalKeys []string

	// Synonyms maps alias keys to canonical keys, e.g. {"p": "param"}
	// makes -p equivalent to -param. The builtin {"help": "h"} is always
	// added.
	Synonyms map[string]string

	// TolerateExtra accepts option keys absent from the defaults map, and
	// drops excess positional arguments, instead of failing.
	TolerateExtra bool

	// ToleratedRegexp lists regular expressions selecting which unexpected
	// option keys to tolerate. Matching is unanchored and case sensitive.
	ToleratedRegexp []string

	// QuietExtra suppresses the warnings normally printed when unexpected
	// input is tolerated.
	QuietExtra bool

	// Output receives help texts and option dumps. Defaults to the
	// standard output, with terminal color support.
	Output io.Writer

	// Warnings receives tolerated-input warnings and fatal error lines.
	// Defaults to the standard error, with terminal color support.
	Warnings io.Writer

	// Exit terminates the process after help display or on a fatal error.
	// Defaults to os.Exit. Replaceable for tests.
	Exit func(code int)
}

// withDefaults fills in the zero-value collaborators. The receiver is a
// copy, so caller-owned Config values are never modified.
func (c Config) withDefaults() Config {
	if c.Output == nil {
		c.Output = color.Output
	}
	if c.Warnings == nil {
		c.Warnings = color.Error
	}
	if c.Exit == nil {
		c.Exit = os.Exit
	}
	return c
}
