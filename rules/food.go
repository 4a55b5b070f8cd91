package rules

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when there is no empty cell left to place food on.
var ErrBoardFull = errors.New("rules: no unoccupied cell left for food")

// FoodSpawner places food on random empty cells.
type FoodSpawner struct {
	rand  *rand.Rand
	count int
	last  Position
}

// NewFoodSpawner returns a spawner drawing positions from r.
func NewFoodSpawner(r *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rand: r}
}

// Spawn picks uniformly random interior cells until it finds an empty one and
// puts food there. It returns the number of food items spawned so far.
func (f *FoodSpawner) Spawn(g *Grid) (int, error) {
	if g.Count(Empty) == 0 {
		return f.count, ErrBoardFull
	}

	for {
		p := Position{
			X: f.rand.Intn(g.Width()) + 1,
			Y: f.rand.Intn(g.Height()) + 1,
		}
		cell, err := g.At(p)
		if err != nil {
			return f.count, err
		}
		if cell != Empty {
			continue
		}

		if err := g.Put(p, Food); err != nil {
			return f.count, err
		}
		f.last = p
		f.count++
		return f.count, nil
	}
}

// Count is the number of food items spawned so far.
func (f *FoodSpawner) Count() int {
	return f.count
}

// Last is where the most recent food item was placed.
func (f *FoodSpawner) Last() Position {
	return f.last
}
