package snake

import "fmt"

// Rand is the subset of *rand.Rand used for food placement.
type Rand interface {
	Intn(n int) int
}

// Sampler picks a free cell uniformly at random.
// It returns false when every cell on the grid is occupied.
type Sampler interface {
	Sample(g Grid, occupied map[Cell]struct{}, rng Rand) (Cell, bool)
}

// Sampler names accepted in configuration.
const (
	SamplerRejection = "rejection"
	SamplerFreeList  = "freelist"
)

// NewSampler returns the sampler registered under name.
func NewSampler(name string) (Sampler, error) {
	switch name {
	case SamplerRejection, "":
		return RejectionSampler{}, nil
	case SamplerFreeList:
		return FreeListSampler{}, nil
	default:
		return nil, fmt.Errorf("snake: unknown food sampler %q", name)
	}
}

// RejectionSampler draws random cells until one is free.
// Expected draws grow as the board fills up; a full board is detected up front.
type RejectionSampler struct{}

// Sample implements Sampler.
func (RejectionSampler) Sample(g Grid, occupied map[Cell]struct{}, rng Rand) (Cell, bool) {
	if len(occupied) >= g.Area() {
		return Cell{}, false
	}
	for {
		c := Cell{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}
}

// FreeListSampler enumerates the free cells and picks one of them.
// It costs one pass over the grid regardless of how full it is.
type FreeListSampler struct{}

// Sample implements Sampler.
func (FreeListSampler) Sample(g Grid, occupied map[Cell]struct{}, rng Rand) (Cell, bool) {
	free := make([]Cell, 0, max(0, g.Area()-len(occupied)))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}

// Food is the single item on the board.
type Food struct {
	grid    Grid
	sampler Sampler
	rng     Rand
	pos     Cell
	placed  bool
}

// NewFood creates food that is not yet on the board; call Relocate to place it.
func NewFood(grid Grid, sampler Sampler, rng Rand) *Food {
	return &Food{grid: grid, sampler: sampler, rng: rng}
}

// Relocate moves the food to a random cell not in occupied.
// If no cell is free the food is removed from the board and false is returned.
func (f *Food) Relocate(occupied []Cell) bool {
	set := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		set[c] = struct{}{}
	}

	f.pos, f.placed = f.sampler.Sample(f.grid, set, f.rng)
	return f.placed
}

// Position returns the food cell and whether food is on the board.
func (f *Food) Position() (Cell, bool) {
	return f.pos, f.placed
}

// At reports whether the food sits on c.
func (f *Food) At(c Cell) bool {
	return f.placed && f.pos == c
}
