package rules

import "fmt"

// Position is a cell coordinate. The playable interior is 1-based.
type Position struct {
	X int
	Y int
}

// Add returns p moved one step in d.
func (p Position) Add(d Direction) Position {
	v := d.Vector()
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is a heading the snake can move in.
type Direction int

// Directions, ordered so that the opposite of d is (d+2)%4.
const (
	Right Direction = iota
	Up
	Left
	Down
)

var unitVectors = [...]Position{
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Down:  {X: 0, Y: 1},
}

var directionNames = [...]string{
	Right: "right",
	Up:    "up",
	Left:  "left",
	Down:  "down",
}

// Directions lists every valid heading.
var Directions = []Direction{Right, Up, Left, Down}

// Vector returns the unit step for d.
func (d Direction) Vector() Position {
	return unitVectors[d]
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// IsOpposite reports whether d and other point in exactly opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	if d < Right || d > Down {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}
