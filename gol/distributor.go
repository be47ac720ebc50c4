package gol

import (
	"sync"
	"time"

	"uk.ac.bris.cs/golengine/util"
)

const tickInterval = 2 * time.Second

// snapshot is what the ticker reports; the observer updates it between generations.
type snapshot struct {
	mu    sync.Mutex
	turns int
	alive int
}

func (s *snapshot) set(turns, alive int) {
	s.mu.Lock()
	s.turns, s.alive = turns, alive
	s.mu.Unlock()
}

func (s *snapshot) get() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turns, s.alive
}

// Run validates p, selects an engine and advances b by p.Turns generations.
// If events is nil the engine runs unobserved; otherwise flipped cells, turn
// completions and periodic alive counts are sent on it and it is closed when
// the run ends. Nothing is computed when p is invalid.
func Run(p Params, b *Board, events chan<- Event) error {
	if err := p.Validate(); err != nil {
		if events != nil {
			close(events)
		}
		return err
	}
	engine, err := NewEngine(p.Mode, p.Threads)
	if err != nil {
		if events != nil {
			close(events)
		}
		return err
	}

	if events == nil {
		engine.Advance(b, p.Turns, nil)
		return nil
	}
	distributor(p, b, engine, events)
	return nil
}

// distributor runs the engine one observed generation at a time and reports
// progress on events.
func distributor(p Params, b *Board, engine Engine, events chan<- Event) {
	defer close(events)

	snap := &snapshot{alive: b.AliveCount()}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				turns, alive := snap.get()
				events <- AliveCellsCount{CompletedTurns: turns, CellsCount: alive}
			}
		}
	}()

	// The first CellFlipped batch brings viewers from an empty window to the
	// initial board.
	for _, cell := range b.AliveCells() {
		events <- CellFlipped{CompletedTurns: 0, Cell: cell}
	}
	events <- StateChange{CompletedTurns: 0, NewState: Executing}

	prev := b.Cells()
	engine.Advance(b, p.Turns, func(turn int, b *Board) {
		alive := 0
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				i := b.index(x, y)
				alive += int(b.cells[i])
				if b.cells[i] != prev[i] {
					events <- CellFlipped{CompletedTurns: turn, Cell: util.Cell{X: x, Y: y}}
				}
			}
		}
		copy(prev, b.cells)
		snap.set(turn, alive)
		events <- TurnComplete{CompletedTurns: turn}
	})

	close(done)
	wg.Wait()

	events <- FinalTurnComplete{CompletedTurns: p.Turns, Alive: b.AliveCells()}
	events <- StateChange{CompletedTurns: p.Turns, NewState: Quitting}
}
