package gol

import "strings"

// Observer is called on the coordinating goroutine after each generation's
// buffer swap, with the number of generations completed so far. It must not
// retain b past the call.
type Observer func(completed int, b *Board)

// Engine advances a board a fixed number of generations. Implementations must
// produce bit-identical boards for the same input.
type Engine interface {
	Advance(b *Board, generations int, observe Observer)
}

// Mode selects an execution strategy.
type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
)

// ParseMode accepts "sequential" and "parallel", plus the short forms "seq"
// and "omp".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential", "seq":
		return ModeSequential, nil
	case "parallel", "omp":
		return ModeParallel, nil
	}
	return "", &ConfigError{Field: "mode", Value: s, Reason: "expected sequential or parallel"}
}

// NewEngine routes to the sequential or parallel engine. threads is only
// checked in parallel mode.
func NewEngine(mode Mode, threads int) (Engine, error) {
	switch mode {
	case ModeSequential, "":
		return Sequential{}, nil
	case ModeParallel:
		e, err := NewParallel(threads)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, &ConfigError{Field: "mode", Value: string(mode), Reason: "expected sequential or parallel"}
}
