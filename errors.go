package easyterm

import "fmt"

// CommandLineError indicates invalid command line input or an invalid
// defaults map. CommandLineOptions reports it to the operator as a single
// line, without any Go diagnostics, and terminates the process. Any other
// error escaping the parser is a bug and keeps ordinary panic diagnostics.
type CommandLineError struct {
	msg string
}

func (e *CommandLineError) Error() string {
	return e.msg
}

// errorf builds a *CommandLineError like fmt.Errorf.
func errorf(format string, a ...any) *CommandLineError {
	return &CommandLineError{msg: fmt.Sprintf(format, a...)}
}
