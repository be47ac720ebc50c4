package gol

// Parallel splits every generation across Threads worker goroutines, each
// owning a contiguous band of rows. The board is swapped on the calling
// goroutine once all workers have finished the generation. NewParallel is the
// supported constructor; Advance panics with a *ConfigError if Threads is not
// positive.
type Parallel struct {
	Threads int
}

// NewParallel rejects non-positive thread counts.
func NewParallel(threads int) (*Parallel, error) {
	if threads <= 0 {
		return nil, &ConfigError{Field: "threads", Value: threads, Reason: "must be at least 1"}
	}
	return &Parallel{Threads: threads}, nil
}

func (e *Parallel) Advance(b *Board, generations int, observe Observer) {
	if generations <= 0 {
		return
	}
	if e.Threads <= 0 {
		panic(&ConfigError{Field: "threads", Value: e.Threads, Reason: "must be at least 1"})
	}
	pool := newWorkerPool(b.Width, b.Height, splitRows(b.Height, e.Threads))
	defer pool.close()

	for turn := 1; turn <= generations; turn++ {
		pool.step(b.cells, b.next)
		b.swap()
		if observe != nil {
			observe(turn, b)
		}
	}
}
