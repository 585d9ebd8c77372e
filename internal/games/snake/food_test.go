package snake

import (
	"math/rand"
	"testing"
)

func samplers() map[string]Sampler {
	return map[string]Sampler{
		SamplerRejection: RejectionSampler{},
		SamplerFreeList:  FreeListSampler{},
	}
}

// occupyAllBut returns every cell of g except the listed ones.
func occupyAllBut(g Grid, keep ...Cell) []Cell {
	var out []Cell
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			free := false
			for _, k := range keep {
				if k == c {
					free = true
				}
			}
			if !free {
				out = append(out, c)
			}
		}
	}
	return out
}

func TestFoodNeverOnSnake(t *testing.T) {
	grid := NewGrid(6, 6)
	occupied := occupyAllBut(grid, Cell{0, 0}, Cell{2, 3}, Cell{5, 5}, Cell{1, 4}, Cell{3, 1}, Cell{4, 2})

	for name, sampler := range samplers() {
		t.Run(name, func(t *testing.T) {
			f := NewFood(grid, sampler, rand.New(rand.NewSource(7)))
			for i := 0; i < 200; i++ {
				if !f.Relocate(occupied) {
					t.Fatal("Relocate failed with free cells available")
				}
				pos, ok := f.Position()
				if !ok || !grid.Contains(pos) {
					t.Fatalf("food out of bounds at %v", pos)
				}
				for _, c := range occupied {
					if c == pos {
						t.Fatalf("food placed on occupied cell %v", pos)
					}
				}
			}
		})
	}
}

func TestFoodSingleFreeCell(t *testing.T) {
	grid := NewGrid(5, 4)
	occupied := occupyAllBut(grid, Cell{3, 2})

	for name, sampler := range samplers() {
		t.Run(name, func(t *testing.T) {
			f := NewFood(grid, sampler, rand.New(rand.NewSource(1)))
			if !f.Relocate(occupied) {
				t.Fatal("Relocate should find the last free cell")
			}
			if !f.At(Cell{3, 2}) {
				pos, _ := f.Position()
				t.Errorf("food at %v, expected {3 2}", pos)
			}
		})
	}
}

func TestFoodFullBoard(t *testing.T) {
	grid := NewGrid(4, 4)
	occupied := occupyAllBut(grid)

	for name, sampler := range samplers() {
		t.Run(name, func(t *testing.T) {
			f := NewFood(grid, sampler, rand.New(rand.NewSource(1)))
			if f.Relocate(occupied) {
				t.Fatal("Relocate should fail on a full board")
			}
			if _, ok := f.Position(); ok {
				t.Error("food should be off the board")
			}
			if f.At(Cell{0, 0}) {
				t.Error("At must be false when no food is placed")
			}
		})
	}
}

func TestFreeListUniform(t *testing.T) {
	grid := NewGrid(3, 3)
	free := []Cell{{0, 0}, {1, 1}, {2, 2}, {2, 0}}
	occupied := occupyAllBut(grid, free...)

	f := NewFood(grid, FreeListSampler{}, rand.New(rand.NewSource(42)))
	counts := make(map[Cell]int)
	const draws = 4000
	for i := 0; i < draws; i++ {
		f.Relocate(occupied)
		pos, _ := f.Position()
		counts[pos]++
	}

	for _, c := range free {
		if counts[c] < 800 || counts[c] > 1200 {
			t.Errorf("cell %v drawn %d times out of %d, expected about %d", c, counts[c], draws, draws/len(free))
		}
	}
}

func TestNewSampler(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{SamplerRejection, false},
		{SamplerFreeList, false},
		{"shuffle", true},
	}

	for _, tc := range tests {
		_, err := NewSampler(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("NewSampler(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
		}
	}
}
