package rules

import "errors"

// ErrOccupied is returned when the snake would be laid over a cell that isn't
// empty.
var ErrOccupied = errors.New("rules: position is occupied")

// Outcome is the result of advancing the snake one tick.
type Outcome int

// Possible tick outcomes.
const (
	Moved Outcome = iota
	Ate
	Collided
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	}
	return "unknown"
}

// Snake is the player. Body[0] is the head.
type Snake struct {
	body    []Position
	heading Direction
}

// NewSnake lays a straight snake of the given length on the grid, head at
// start, with the rest of the body trailing behind opposite to dir. Every
// segment must land on an empty cell, the grid is left untouched otherwise.
func NewSnake(g *Grid, start Position, length int, dir Direction) (*Snake, error) {
	s := &Snake{
		body:    make([]Position, length),
		heading: dir,
	}
	s.body[0] = start
	back := dir.Opposite()
	for i := 1; i < length; i++ {
		s.body[i] = s.body[i-1].Add(back)
	}

	for _, p := range s.body {
		c, err := g.At(p)
		if err != nil {
			return nil, err
		}
		if c != Empty {
			return nil, ErrOccupied
		}
	}
	for _, p := range s.body {
		if err := g.Put(p, SnakeBody); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Tail returns the last body segment.
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Body returns a copy of the segment positions, head first.
func (s *Snake) Body() []Position {
	body := make([]Position, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the direction the head moves on the next tick.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetDesiredDirection changes the heading. Reversing straight back into the
// neck is ignored.
func (s *Snake) SetDesiredDirection(d Direction) {
	if s.heading.IsOpposite(d) {
		return
	}
	s.heading = d
}

// Advance moves the snake one step along its heading. Collisions are detected
// before anything is written, so on Collided the grid and the body are left as
// they were.
func (s *Snake) Advance(g *Grid) (Outcome, error) {
	prev := s.Body()
	head := prev[0].Add(s.heading)

	cell, err := g.At(head)
	if err != nil {
		return Collided, err
	}

	var outcome Outcome
	switch cell {
	case Wall, SnakeBody:
		return Collided, nil
	case Food:
		outcome = Ate
		s.body = append(s.body, Position{})
	default:
		outcome = Moved
		if err := g.Put(prev[len(prev)-1], Empty); err != nil {
			return outcome, err
		}
	}

	s.body[0] = head
	for i := 1; i < len(s.body); i++ {
		s.body[i] = prev[i-1]
	}
	for _, p := range s.body {
		if err := g.Put(p, SnakeBody); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}
