package snake

// Snapshot captures the observable game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        Phase
	Score        int
	Best         int
	Length       int
	TargetLength int
	HeadX        int
	HeadY        int
	Heading      Direction
	HasFood      bool
	FoodX        int
	FoodY        int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	food, hasFood := g.food.Position()

	return Snapshot{
		Tick:         g.tick,
		Phase:        g.phase,
		Score:        g.snake.score,
		Best:         g.best,
		Length:       len(g.snake.segments),
		TargetLength: g.snake.targetLength,
		HeadX:        head.X,
		HeadY:        head.Y,
		Heading:      g.snake.heading,
		HasFood:      hasFood,
		FoodX:        food.X,
		FoodY:        food.Y,
	}
}
