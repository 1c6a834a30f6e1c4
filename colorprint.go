package easyterm

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Write prints s followed by a newline. Optional attributes select a color
// or style, e.g. Write(w, "done", color.FgGreen). Color output is degraded
// to plain text automatically when w is not a terminal, following the
// rules of the color package.
func Write(w io.Writer, s string, attrs ...color.Attribute) {
	if len(attrs) == 0 {
		fmt.Fprintln(w, s)
		return
	}
	color.New(attrs...).Fprintln(w, s)
}

// warnf prints a yellow single-line warning. It is the diagnostic sink for
// tolerated-but-unexpected input.
func warnf(w io.Writer, format string, a ...any) {
	Write(w, "WARNING: "+fmt.Sprintf(format, a...), color.FgYellow)
}

// failf prints a red single-line error message. The caller terminates the
// process afterwards.
func failf(w io.Writer, msg string) {
	Write(w, "ERROR: "+msg, color.FgRed)
}
