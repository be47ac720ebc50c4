package gol

// rule is the B3/S23 transition in branch-reduced form: a cell lives next
// generation iff it has exactly 3 live neighbours, or it is alive with exactly 2.
func rule(self byte, count int) byte {
	if count == 3 || (self == Alive && count == 2) {
		return Alive
	}
	return Dead
}

// countNeighbours sums the 8 toroidal neighbours of (x, y).
func countNeighbours(cells []byte, width, height, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + height) % height
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + width) % width
			count += int(cells[ny*width+nx])
		}
	}
	return count
}

func nextState(cells []byte, width, height, x, y int) byte {
	return rule(cells[y*width+x], countNeighbours(cells, width, height, x, y))
}

// NextState returns the state cell (x, y) of b will have in the next generation.
// Coordinates must lie on the board.
func NextState(b *Board, x, y int) byte {
	return nextState(b.cells, b.Width, b.Height, x, y)
}

// advanceRows writes next for rows [startY, endY) reading only cur.
func advanceRows(cur, next []byte, width, height, startY, endY int) {
	for y := startY; y < endY; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			next[row+x] = nextState(cur, width, height, x, y)
		}
	}
}
