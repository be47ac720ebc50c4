// Package timing measures the setup, computation and finalization phases of a
// run. A Timer is created by the caller and passed explicitly; the simulation
// packages never see it. A nil *Timer is valid and records nothing.
package timing

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Phase identifies one measured section of a run.
type Phase int

const (
	Setup Phase = iota
	Computation
	Finalization
	numPhases
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Computation:
		return "computation"
	case Finalization:
		return "finalization"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Timer records a start timestamp and elapsed duration per phase.
type Timer struct {
	now     func() time.Time
	started [numPhases]time.Time
	elapsed [numPhases]time.Duration
}

func New() *Timer {
	return &Timer{now: time.Now}
}

func (t *Timer) Start(p Phase) {
	if t == nil || p < 0 || p >= numPhases {
		return
	}
	t.started[p] = t.now()
}

// Stop records the time since the matching Start. Stopping a phase that was
// never started records nothing.
func (t *Timer) Stop(p Phase) {
	if t == nil || p < 0 || p >= numPhases || t.started[p].IsZero() {
		return
	}
	t.elapsed[p] = t.now().Sub(t.started[p])
}

func (t *Timer) Duration(p Phase) time.Duration {
	if t == nil || p < 0 || p >= numPhases {
		return 0
	}
	return t.elapsed[p]
}

// Report writes one line "setup;computation;finalization" with each duration
// as HH:MM:SS.mmm.
func (t *Timer) Report(w io.Writer) error {
	if t == nil {
		return nil
	}
	fields := make([]string, numPhases)
	for p := Setup; p < numPhases; p++ {
		fields[p] = formatDuration(t.elapsed[p])
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, ";"))
	return err
}

func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}
