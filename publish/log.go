package publish

import (
	"fmt"
	"io"
	"os"
)

// Logger is the append-only line sink the pipeline reports through: one
// line per message, in the order produced. The zero value (and a nil
// Logger) writes to stdout.
type Logger struct {
	W io.Writer
}

// Linef writes one formatted line.
func (l *Logger) Linef(format string, args ...any) {
	var w io.Writer = os.Stdout
	if l != nil && l.W != nil {
		w = l.W
	}
	fmt.Fprintf(w, format+"\n", args...)
}
