package util

import "fmt"

// Cell is used as the return type for the testing framework.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// In reports whether c appears in cells.
func (c Cell) In(cells []Cell) bool {
	for _, other := range cells {
		if other == c {
			return true
		}
	}
	return false
}
