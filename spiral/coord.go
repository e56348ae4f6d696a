// Package spiral walks the integer grid in an outward square spiral and
// computes the neighbor-sum sequence laid along it.
package spiral

import "fmt"

// Coord is a point on the integer grid. Y grows downward, so the walk's
// first turn ("up") decreases Y.
type Coord struct {
	X, Y int64
}

// Add returns the componentwise sum c + d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Dist returns the Manhattan distance from c to the origin.
func (c Coord) Dist() int64 {
	return abs(c.X) + abs(c.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
