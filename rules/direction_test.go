package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, Left, Right.Opposite())
	require.Equal(t, Down, Up.Opposite())
	require.Equal(t, Right, Left.Opposite())
	require.Equal(t, Up, Down.Opposite())
}

func TestDirectionVectorsCancel(t *testing.T) {
	for _, d := range Directions {
		p := Position{X: 5, Y: 5}.Add(d).Add(d.Opposite())
		require.Equal(t, Position{X: 5, Y: 5}, p, d.String())
	}
}

func TestDirectionUpDecreasesY(t *testing.T) {
	require.Equal(t, Position{X: 3, Y: 2}, Position{X: 3, Y: 3}.Add(Up))
	require.Equal(t, Position{X: 4, Y: 3}, Position{X: 3, Y: 3}.Add(Right))
}

func TestDirectionString(t *testing.T) {
	require.Equal(t, "up", Up.String())
	require.Equal(t, "direction(7)", Direction(7).String())
}
