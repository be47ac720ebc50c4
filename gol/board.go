package gol

import (
	"fmt"
	"strings"

	"uk.ac.bris.cs/golengine/util"
)

// Cell states. A board never holds any other value.
const (
	Dead  byte = 0
	Alive byte = 1
)

// Board is a fixed-size toroidal grid stored row-major, index = y*Width + x.
// It owns both halves of the double buffer; engines read cells and write next,
// then swap the two.
type Board struct {
	Width, Height int
	cells         []byte
	next          []byte
}

// MaxCells bounds width*height so both buffers stay addressable.
const MaxCells = 1 << 30

// NewBoard returns an all-dead board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Value: width, Reason: "must be positive"}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "height", Value: height, Reason: "must be positive"}
	}
	if width > MaxCells/height {
		return nil, &ConfigError{Field: "size", Value: fmt.Sprintf("%dx%d", width, height),
			Reason: fmt.Sprintf("more than %d cells", MaxCells)}
	}
	return &Board{
		Width:  width,
		Height: height,
		cells:  make([]byte, width*height),
		next:   make([]byte, width*height),
	}, nil
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

// Cell returns the state of (x, y).
func (b *Board) Cell(x, y int) byte {
	return b.cells[b.index(x, y)]
}

// SetCell is meant for loaders and tests; engines never call it.
func (b *Board) SetCell(x, y int, alive bool) {
	if alive {
		b.cells[b.index(x, y)] = Alive
	} else {
		b.cells[b.index(x, y)] = Dead
	}
}

// Cells returns a copy of the current generation.
func (b *Board) Cells() []byte {
	out := make([]byte, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *Board) swap() {
	b.cells, b.next = b.next, b.cells
}

// Clone returns an independent copy of b.
func (b *Board) Clone() *Board {
	c := &Board{
		Width:  b.Width,
		Height: b.Height,
		cells:  make([]byte, len(b.cells)),
		next:   make([]byte, len(b.next)),
	}
	copy(c.cells, b.cells)
	return c
}

// Equal reports whether both boards have the same size and current cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Width != other.Width || b.Height != other.Height {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

func (b *Board) AliveCount() int {
	count := 0
	for _, v := range b.cells {
		count += int(v)
	}
	return count
}

// AliveCells lists live cells in row-major order.
func (b *Board) AliveCells() []util.Cell {
	alive := make([]util.Cell, 0)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.cells[b.index(x, y)] == Alive {
				alive = append(alive, util.Cell{X: x, Y: y})
			}
		}
	}
	return alive
}

// String renders the board with 'x' for live and '.' for dead cells,
// one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.Width + 1) * b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.cells[b.index(x, y)] == Alive {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
