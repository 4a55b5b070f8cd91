package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func fillExcept(t *testing.T, g *Grid, free Position) {
	for y := 1; y <= g.Height(); y++ {
		for x := 1; x <= g.Width(); x++ {
			if x == free.X && y == free.Y {
				continue
			}
			require.NoError(t, g.Set(x, y, SnakeBody))
		}
	}
}

func TestSpawnFindsOnlyFreeCell(t *testing.T) {
	g := NewGrid(4, 4)
	free := Position{X: 3, Y: 2}
	fillExcept(t, g, free)

	f := NewFoodSpawner(rand.New(rand.NewSource(1)))
	count, err := f.Spawn(g)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, free, f.Last())

	c, err := g.At(free)
	require.NoError(t, err)
	require.Equal(t, Food, c)
}

func TestSpawnBoardFull(t *testing.T) {
	g := NewGrid(2, 2)
	fillExcept(t, g, Position{})

	f := NewFoodSpawner(rand.New(rand.NewSource(1)))
	count, err := f.Spawn(g)
	require.Equal(t, ErrBoardFull, err)
	require.Equal(t, 0, count)
}

func TestSpawnNeverOnOccupiedCell(t *testing.T) {
	g := NewGrid(10, 10)
	for y := 1; y <= 10; y++ {
		for x := 1; x <= 5; x++ {
			require.NoError(t, g.Set(x, y, SnakeBody))
		}
	}

	f := NewFoodSpawner(rand.New(rand.NewSource(7)))
	for i := 1; i <= 20; i++ {
		count, err := f.Spawn(g)
		require.NoError(t, err)
		require.Equal(t, i, count)
		require.True(t, f.Last().X > 5, f.Last().String())
	}
	require.Equal(t, 20, g.Count(Food))
	require.Equal(t, 50, g.Count(SnakeBody))
}

func TestSpawnIsReproducible(t *testing.T) {
	spawn := func() []Position {
		g := NewGrid(10, 10)
		_, err := NewSnake(g, Position{X: 5, Y: 5}, 4, Right)
		require.NoError(t, err)

		f := NewFoodSpawner(rand.New(rand.NewSource(42)))
		var out []Position
		for i := 0; i < 5; i++ {
			_, err := f.Spawn(g)
			require.NoError(t, err)
			out = append(out, f.Last())
		}
		return out
	}

	require.Equal(t, spawn(), spawn())
}
