package rules

const (
	// DeathCauseWallCollision is when the snake runs into the border wall
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)

// DeathCause reports why the snake's next move along its current heading is
// fatal. It returns an empty string if the move is safe.
func DeathCause(g *Grid, s *Snake) string {
	c, err := g.At(s.Head().Add(s.Heading()))
	if err != nil {
		return DeathCauseWallCollision
	}
	switch c {
	case Wall:
		return DeathCauseWallCollision
	case SnakeBody:
		return DeathCauseSnakeSelfCollision
	}
	return ""
}
