package snake

// Outcome is the result of advancing the snake by one cell.
type Outcome int

const (
	Continue Outcome = iota
	Collided
)

func (o Outcome) String() string {
	if o == Collided {
		return "collided"
	}
	return "continue"
}

const (
	// InitialLength is the target length after a reset.
	InitialLength = 3
	// PointsPerFood is added to the score for every food eaten.
	PointsPerFood = 10
)

// Snake is the player's body on a wrapping grid.
// The head is always segments[0]; the slice never grows past targetLength.
type Snake struct {
	grid         Grid
	segments     []Cell
	heading      Direction
	targetLength int
	score        int
}

// NewSnake creates a snake in its reset state on the given grid.
func NewSnake(grid Grid) *Snake {
	s := &Snake{grid: grid}
	s.Reset()
	return s
}

// Reset puts a single segment in the center, heading right, with no score.
// The body fills out to InitialLength over the following ticks.
func (s *Snake) Reset() {
	s.segments = []Cell{s.grid.Center()}
	s.heading = DirRight
	s.targetLength = InitialLength
	s.score = 0
}

// Steer applies the turns pressed during one tick in order. Each is checked
// against the heading of the last move, so the body never folds onto the neck
// however many keys arrive. Returns whether the heading changed.
func (s *Snake) Steer(turns []Direction) bool {
	moved := s.heading
	for _, d := range turns {
		if d != moved.Opposite() {
			s.heading = d
		}
	}
	return s.heading != moved
}

// Advance moves the head one cell along the heading, wrapping at the edges.
//
// The new head is checked against segments[2:]: the current head and the neck
// can never be hit. On collision nothing is mutated so the final position can
// be inspected.
func (s *Snake) Advance() Outcome {
	next := s.grid.Wrap(s.Head().Step(s.heading))

	if len(s.segments) > 2 {
		for _, seg := range s.segments[2:] {
			if seg == next {
				return Collided
			}
		}
	}

	s.segments = append(s.segments, Cell{})
	copy(s.segments[1:], s.segments)
	s.segments[0] = next

	if len(s.segments) > s.targetLength {
		s.segments = s.segments[:s.targetLength]
	}
	return Continue
}

// Grow lengthens the target by one and scores the food.
// The body catches up on the next Advance.
func (s *Snake) Grow() {
	s.targetLength++
	s.score += PointsPerFood
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.segments[0]
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Len returns the number of segments currently on the board.
func (s *Snake) Len() int {
	return len(s.segments)
}

// TargetLength returns the length the body is growing towards.
func (s *Snake) TargetLength() int {
	return s.targetLength
}

// Score returns the points collected since the last reset.
func (s *Snake) Score() int {
	return s.score
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Cell {
	out := make([]Cell, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.segments {
		if seg == c {
			return true
		}
	}
	return false
}
