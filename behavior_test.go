package tankworld

import "testing"

func baseBehaviorContext(rng *RNG) *BehaviorContext {
	cfg := DefaultConfig()
	f := NewFishWithConfig(1, testGenome(), Vector2{X: 50, Y: 50}, cfg, 1.0)
	return &BehaviorContext{
		Self:      f,
		Pos:       f.Pos,
		LifeStage: f.LifeStage,
		RNG:       rng,
		Params:    f.Genome.Parameters,
		Memory:    &f.Memory,
	}
}

func TestExecuteBehaviorCriticalEnergyOverridesTowardFood(t *testing.T) {
	rng := NewRNG(1)
	ctx := baseBehaviorContext(rng)
	ctx.CriticalEnergy = true
	ctx.VisibleFood = []VisibleFood{
		{ID: 2, Pos: Vector2{X: 150, Y: 50}, EnergyValue: 5},
	}

	dir := ExecuteBehavior(ctx)
	want := Vector2{X: 1, Y: 0}
	if dir != want {
		t.Fatalf("expected critical-energy override to steer directly toward the only food, got %+v", dir)
	}
}

func TestExecuteBehaviorDispatchesToRegisteredAlgorithm(t *testing.T) {
	rng := NewRNG(2)
	ctx := baseBehaviorContext(rng)
	ctx.Self.Genome.AlgorithmID = AlgoRandomWalk
	ctx.Params = ParamVector{"jitter": 0.5}

	// Must not panic and must return a vector of length <= 1 (a unit
	// direction or the zero vector), per the Algorithm contract.
	dir := ExecuteBehavior(ctx)
	if dir.Length() > 1.0001 {
		t.Fatalf("expected a unit-length-or-zero direction vector, got length %v", dir.Length())
	}
}

func TestSeekNearestFoodPicksClosestByAscendingIDOnTie(t *testing.T) {
	ctx := baseBehaviorContext(NewRNG(3))
	ctx.Pos = Vector2{X: 0, Y: 0}
	ctx.VisibleFood = []VisibleFood{
		{ID: 5, Pos: Vector2{X: 10, Y: 0}},
		{ID: 2, Pos: Vector2{X: 0, Y: 10}},
	}

	dir, ok := seekNearestFood(ctx)
	if !ok {
		t.Fatal("expected a direction when food is visible")
	}
	if dir != (Vector2{X: 0, Y: 1}) {
		t.Fatalf("expected direction toward the lower-ID tied-distance food, got %+v", dir)
	}
}

func TestAllRegisteredAlgorithmsRunWithoutPanicking(t *testing.T) {
	for id := AlgorithmID(0); id < algoCount; id++ {
		fn, ok := algorithmRegistry[id]
		if !ok {
			t.Fatalf("algorithm id %v has no registered implementation", id)
		}
		ctx := baseBehaviorContext(NewRNG(uint64(id) + 1))
		ctx.Self.Genome.AlgorithmID = id
		ctx.VisibleFood = []VisibleFood{{ID: 9, Pos: Vector2{X: 60, Y: 50}, EnergyValue: 5}}
		ctx.VisibleFish = []VisibleFish{{ID: 10, Pos: Vector2{X: 40, Y: 50}, Kinship: 0}}
		ctx.VisiblePredators = []VisiblePredator{{ID: 11, Pos: Vector2{X: 55, Y: 55}}}

		_ = fn(ctx)
	}
}
