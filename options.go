package easyterm

import (
	"fmt"
	"sort"
	"strings"
)

// Options holds command line options as a mapping from option key to value.
// Values have one of five types: bool, int, float64, string or []string.
// The type of each value in a defaults map determines the type enforced on
// the corresponding command line argument.
//
// An Options returned by Parse or CommandLineOptions contains every key of
// the defaults map it was parsed against, plus any tolerated unexpected
// keys.
type Options map[string]any

// Get returns the value for key, or nil if the key is absent. Indexing the
// map directly behaves the same way; Get exists so that callers reading
// through an interface do not need the map type.
func (o Options) Get(key string) any {
	if v, ok := o[key]; ok {
		return v
	}
	return nil
}

// Bool returns the value for key as a bool, or false if the key is absent
// or its value has another type.
func (o Options) Bool(key string) bool {
	v, _ := o[key].(bool)
	return v
}

// Int returns the value for key as an int, or 0 if the key is absent or
// its value has another type.
func (o Options) Int(key string) int {
	v, _ := o[key].(int)
	return v
}

// Float returns the value for key as a float64, or 0 if the key is absent
// or its value has another type.
func (o Options) Float(key string) float64 {
	v, _ := o[key].(float64)
	return v
}

// Str returns the value for key as a string, or "" if the key is absent or
// its value has another type.
func (o Options) Str(key string) string {
	v, _ := o[key].(string)
	return v
}

// List returns the value for key as a string slice, or nil if the key is
// absent or its value has another type.
func (o Options) List(key string) []string {
	v, _ := o[key].([]string)
	return v
}

// String renders the options one per line, sorted by key, with aligned
// keys and type names. The format is meant for humans, not for parsing.
func (o Options) String() string {
	keys := make([]string, 0, len(o))
	max := 0
	for k := range o {
		keys = append(keys, k)
		if len(k) > max {
			max = len(k)
		}
	}
	sort.Strings(keys)
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%-*s : %-5s = %v", max, k, kindOf(o[k]), o[k])
	}
	return strings.Join(lines, "\n")
}

// kind identifies one of the value types accepted in a defaults map.
type kind int

const (
	kindInvalid kind = iota
	kindNone         // tolerated unexpected key, type inferred from usage
	kindBool
	kindInt
	kindFloat
	kindString
	kindList
)

// kindOf maps a value to its kind. Values of any other type, which cannot
// appear in a valid defaults map, yield kindInvalid. A nil value yields
// kindNone.
func kindOf(v any) kind {
	switch v.(type) {
	case nil:
		return kindNone
	case bool:
		return kindBool
	case int:
		return kindInt
	case float64:
		return kindFloat
	case string:
		return kindString
	case []string:
		return kindList
	}
	return kindInvalid
}

func (k kind) String() string {
	switch k {
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindString:
		return "str"
	case kindList:
		return "list"
	case kindNone:
		return "none"
	}
	return "invalid"
}

// truthy reports whether a value counts as set: true, a non-zero number, a
// non-empty string or a non-empty list.
func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	case []string:
		return len(x) > 0
	}
	return false
}

// copyValue returns an independent copy of a defaults value. Only list
// values need copying; scalars are immutable.
func copyValue(v any) any {
	if l, ok := v.([]string); ok {
		return append(make([]string, 0, len(l)), l...)
	}
	return v
}
