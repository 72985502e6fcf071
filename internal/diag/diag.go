// Package diag provides the build-time diagnostics channel threaded
// through slicer, merger and tri: a small message log plus per-phase
// timers, grounded on arl/go-detour's detour.BuildContext
// (buildcontext.go). Every §7 "logged warning" row in the spec is
// surfaced through a Log rather than printed directly, matching the
// teacher's house style of passing a build context by pointer instead of
// reaching for a package-level logger.
package diag

import (
	"fmt"
	"time"
)

const maxMessages = 1000

type category int

const (
	progress category = iota
	warning
	errorCat
)

// Log accumulates warning/error messages and phase timings for
// one slice/merge/triangulate invocation. The zero value is ready to use.
type Log struct {
	messages []string
	starts   map[string]time.Time
	elapsed  map[string]time.Duration
}

// Warningf records a non-fatal warning (spec §7's "Logged warning" rows:
// dropped walks, skipped holes, exhausted triangulation candidates).
func (l *Log) Warningf(format string, args ...interface{}) {
	l.record(warning, format, args...)
}

// Errorf records an error-level message. Slicer2D has no fatal internal
// errors (spec §7: "no error is fatal to the host"), so this is used only
// for conditions a caller should investigate, never to abort a call.
func (l *Log) Errorf(format string, args ...interface{}) {
	l.record(errorCat, format, args...)
}

func (l *Log) record(cat category, format string, args ...interface{}) {
	if len(l.messages) >= maxMessages {
		return
	}
	prefix := "WARN "
	if cat == errorCat {
		prefix = "ERR "
	}
	l.messages = append(l.messages, prefix+fmt.Sprintf(format, args...))
}

// Messages returns every recorded message, in recording order.
func (l *Log) Messages() []string { return l.messages }

// StartTimer begins (or resumes accumulating into) the named phase timer.
func (l *Log) StartTimer(label string) {
	if l.starts == nil {
		l.starts = make(map[string]time.Time)
		l.elapsed = make(map[string]time.Duration)
	}
	l.starts[label] = time.Now()
}

// StopTimer accumulates the elapsed time since the matching StartTimer
// call into the named phase's total.
func (l *Log) StopTimer(label string) {
	start, ok := l.starts[label]
	if !ok {
		return
	}
	l.elapsed[label] += time.Since(start)
}

// Elapsed returns the accumulated duration for the named phase.
func (l *Log) Elapsed(label string) time.Duration { return l.elapsed[label] }

// Dump returns every recorded message as one string, one message per
// line, for CLI/test consumption. It prints nothing itself.
func (l *Log) Dump() string {
	out := ""
	for _, m := range l.messages {
		out += m + "\n"
	}
	return out
}
