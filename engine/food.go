package engine

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// FoodSpawner picks a food cell not covered by body
// ok is false only when every cell is occupied
type FoodSpawner interface {
	Spawn(grid core.Grid, body []core.Point) (p core.Point, ok bool)
}

// FoodFunc adapts a function to FoodSpawner
type FoodFunc func(grid core.Grid, body []core.Point) (core.Point, bool)

func (f FoodFunc) Spawn(grid core.Grid, body []core.Point) (core.Point, bool) {
	return f(grid, body)
}

// RandomFood places food uniformly over free cells
// Not safe for concurrent use; the Controller calls it under its lock
type RandomFood struct {
	rng *rand.Rand
}

// NewRandomFood creates a spawner with a deterministic PCG source
func NewRandomFood(seed uint64) *RandomFood {
	return &RandomFood{rng: rand.New(rand.NewSource(seed))}
}

// Spawn samples random cells and resamples on overlap
// After FoodSampleAttempts misses it draws directly from the free cell list
func (f *RandomFood) Spawn(grid core.Grid, body []core.Point) (core.Point, bool) {
	if grid.Cells() == 0 {
		return core.Point{}, false
	}

	occupied := make(map[core.Point]struct{}, len(body))
	for _, p := range body {
		occupied[p] = struct{}{}
	}

	if len(occupied) < grid.Cells() {
		for i := 0; i < parameter.FoodSampleAttempts; i++ {
			p := core.Point{X: f.rng.Intn(grid.Width), Y: f.rng.Intn(grid.Height)}
			if _, taken := occupied[p]; !taken {
				return p, true
			}
		}
	}

	free := make([]core.Point, 0, grid.Cells()-len(occupied))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
