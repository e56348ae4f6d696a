package spiral

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is reported when a neighbor sum no longer fits in an int64.
var ErrOverflow = errors.New("spiral: neighbor sum overflows int64")

// A Cell is one written entry of the neighbor-sum sequence.
type Cell struct {
	Step int64 // 1-based position in the walk
	Pos  Coord
	Val  int64
}

var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0},
	{1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// Sums generates the neighbor-sum sequence: the origin holds 1 and every
// later cell of the spiral holds the sum of the values already written in
// its eight surrounding cells.
//
// Its methods follow bufio.Scanner: call Scan to write the next cell and
// Cell to read it. Scan returns false only if the next sum would overflow;
// Err then returns ErrOverflow.
//
// A Sums is not safe for concurrent use.
type Sums struct {
	// Trace, if non-nil, is called with each cell after it is written.
	Trace func(Cell)

	w     Walker
	cache map[Coord]int64
	cell  Cell
	err   error
}

// NewSums returns a Sums positioned before the origin.
func NewSums() *Sums {
	return &Sums{cache: make(map[Coord]int64, 1024)}
}

// Scan computes and records the value of the next cell of the walk.
func (s *Sums) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.cache == nil {
		s.cache = make(map[Coord]int64, 1024)
	}
	pos := s.w.Next()
	var val int64
	if s.w.Steps() == 1 {
		val = 1
	} else {
		var err error
		val, err = s.neighborSum(pos)
		if err != nil {
			s.err = err
			return false
		}
	}
	// pos has never been visited, so neighborSum could not have read it.
	s.cache[pos] = val
	s.cell = Cell{Step: s.w.Steps(), Pos: pos, Val: val}
	if s.Trace != nil {
		s.Trace(s.cell)
	}
	return true
}

func (s *Sums) neighborSum(p Coord) (int64, error) {
	var sum int64
	for _, off := range neighborOffsets {
		v := s.cache[p.Add(off)]
		if v > math.MaxInt64-sum {
			return 0, fmt.Errorf("%w (at %s, step %d)", ErrOverflow, p, s.w.Steps())
		}
		sum += v
	}
	return sum, nil
}

// Cell returns the most recent cell written by Scan.
func (s *Sums) Cell() Cell { return s.cell }

// Err returns the error that stopped Scan, if any.
func (s *Sums) Err() error { return s.err }

// Value returns the value written at c, if c has been visited.
func (s *Sums) Value(c Coord) (int64, bool) {
	v, ok := s.cache[c]
	return v, ok
}

// Len returns the number of cells written so far.
func (s *Sums) Len() int { return len(s.cache) }
