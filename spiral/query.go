package spiral

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by errors caused by a query's arguments.
var ErrInvalidInput = errors.New("spiral: invalid input")

// DefaultMaxSteps is a step cap for FirstAbove far beyond what any int64
// threshold needs (the sequence overflows within a few hundred cells).
const DefaultMaxSteps = 5_000_000

// Distance returns the Manhattan distance from the origin to the k-th cell
// of the spiral, where the origin is cell 1.
func Distance(k int64) (int64, error) {
	if k < 1 {
		return 0, fmt.Errorf("%w: spiral index %d is not positive", ErrInvalidInput, k)
	}
	var w Walker
	var c Coord
	for w.Steps() < k {
		c = w.Next()
	}
	return c.Dist(), nil
}

// FirstAbove returns the first cell of the neighbor-sum sequence whose value
// is strictly greater than t. If maxSteps > 0, FirstAbove gives up after
// writing that many cells. If trace is non-nil, it is called with every
// cell written along the way.
func FirstAbove(t, maxSteps int64, trace func(Cell)) (Cell, error) {
	s := NewSums()
	s.Trace = trace
	for s.Scan() {
		c := s.Cell()
		if c.Val > t {
			return c, nil
		}
		if maxSteps > 0 && c.Step >= maxSteps {
			return Cell{}, fmt.Errorf("%w: no value above %d within %d steps", ErrInvalidInput, t, maxSteps)
		}
	}
	return Cell{}, s.Err()
}
