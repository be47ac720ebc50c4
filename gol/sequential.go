package gol

// Sequential advances the whole board on the calling goroutine.
type Sequential struct{}

func (Sequential) Advance(b *Board, generations int, observe Observer) {
	for turn := 1; turn <= generations; turn++ {
		advanceRows(b.cells, b.next, b.Width, b.Height, 0, b.Height)
		b.swap()
		if observe != nil {
			observe(turn, b)
		}
	}
}
