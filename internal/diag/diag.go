package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	warnPrefix  = color.New(color.FgYellow)
	errorPrefix = color.New(color.FgRed)
)

// Reporter writes one-line WARN/ERROR diagnostics to a stream (stderr in the
// CLI). A nil Reporter discards everything.
type Reporter struct {
	w io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Warnf reports a recoverable skip, one line, prefixed "WARN:".
func (r *Reporter) Warnf(format string, args ...any) {
	r.emit(warnPrefix.Sprint("WARN:"), fmt.Sprintf(format, args...))
}

// Errorf reports a per-file failure, one line, prefixed "ERROR:".
func (r *Reporter) Errorf(format string, args ...any) {
	r.emit(errorPrefix.Sprint("ERROR:"), fmt.Sprintf(format, args...))
}

func (r *Reporter) emit(prefix, msg string) {
	if r == nil || r.w == nil {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", prefix, sanitizeMessage(msg))
}

// sanitizeMessage collapses whitespace so multi-line causes stay one
// diagnostic per line.
func sanitizeMessage(msg string) string {
	s := strings.Join(strings.Fields(msg), " ")
	if s == "" {
		return "error"
	}
	return s
}
