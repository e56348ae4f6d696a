package spiral

import "iter"

// Dir is the walker's heading.
type Dir uint8

const (
	Right Dir = iota
	Up
	Left
	Down
)

var dirNames = [...]string{
	Right: "right",
	Up:    "up",
	Left:  "left",
	Down:  "down",
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "Dir(?)"
}

// moves gives, per heading, the unit step and the condition (checked
// against the position after the step) for turning to the next heading.
var moves = [...]struct {
	step Coord
	turn func(p Coord) bool
}{
	Right: {Coord{1, 0}, func(p Coord) bool { return p.X > p.Y }},
	Up:    {Coord{0, -1}, func(p Coord) bool { return p.Y == -p.X }},
	Left:  {Coord{-1, 0}, func(p Coord) bool { return p.X == p.Y }},
	Down:  {Coord{0, 1}, func(p Coord) bool { return p.Y == -p.X }},
}

type position struct {
	pos Coord
	dir Dir
}

func (p position) next() position {
	m := moves[p.dir]
	p.pos = p.pos.Add(m.step)
	if m.turn(p.pos) {
		p.dir = (p.dir + 1) % Dir(len(moves))
	}
	return p
}

// A Walker yields the cells of the spiral, starting at the origin, one per
// call to Next. The zero Walker is ready to use and has not yet yielded
// anything. A Walker never ends and cannot be rewound.
type Walker struct {
	started bool
	cur     position
	steps   int64
}

// Next advances w and returns its new position. The first call returns the
// origin.
func (w *Walker) Next() Coord {
	if w.started {
		w.cur = w.cur.next()
	} else {
		w.started = true
		w.cur = position{dir: Right}
	}
	w.steps++
	return w.cur.pos
}

// Dir reports the heading w will step in on the next call to Next.
func (w *Walker) Dir() Dir { return w.cur.dir }

// Steps reports how many coordinates w has yielded.
func (w *Walker) Steps() int64 { return w.steps }

// Coords returns the unbounded spiral sequence. Each iteration starts from
// the origin with its own Walker.
func Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		var w Walker
		for yield(w.Next()) {
		}
	}
}
