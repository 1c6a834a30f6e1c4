/*
Package easyterm reads command line options for small scripts with a flat
set of named and positional options.

A single call describes everything through a map of default values, whose
types double as the types enforced on the command line:

	opt := easyterm.CommandLineOptions(easyterm.Options{
		"i": "", "o": "", "param": 3,
	}, &easyterm.Config{
		Help:           "Usage: prog [-i input] [-o output] [-param n]",
		PositionalKeys: []string{"i", "o"},
		Synonyms:       map[string]string{"p": "param"},
	})

With this definition all of these command lines are equivalent:

	prog -i in -o out -param 10
	prog in out -p 10
	prog -p 10 in out

and produce {"i": "in", "o": "out", "param": 10} plus the builtin keys
"h" and "print_opt", which default to false. Note that -param 10 was cast
to int because the default 3 is an int.

Boolean options take an optional literal 0 or 1 argument: "-flag" and
"-flag 1" both yield true, "-flag 0" yields false, anything else is an
error. An option with a list default consumes every token up to the next
option:

	prog -files a b c -x 1

with defaults {"files": []string{}, "x": false} yields
files == ["a", "b", "c"] and x == true.

Invalid input is reported to the operator as a single colored line and
the process exits non-zero; -h (or -help, --help) displays the help text
and exits successfully. Programs that want neither behavior use Parse,
which returns a *CommandLineError instead.
*/
package easyterm
