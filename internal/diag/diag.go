// Package diag defines the diagnostics sink the picking engine reports
// through. The engine never fails loudly: unsupported shapes and unreliable
// computation paths turn into a sink message plus a degraded result, so the
// host's event loop is never interrupted.
package diag

import "fmt"

// Sink receives diagnostic messages. Implementations must not block; the
// engine calls the sink from the host's event-delivery thread.
type Sink func(format string, args ...any)

// Discard drops all diagnostics. It is the default sink.
func Discard(string, ...any) {}

// Recorder collects formatted diagnostics so tests can assert on them.
type Recorder struct {
	Messages []string
}

// Sink returns a Sink that appends to the recorder.
func (r *Recorder) Sink() Sink {
	return func(format string, args ...any) {
		r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
	}
}
