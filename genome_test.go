package tankworld

import "testing"

func TestRandomGenomeWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	rng := NewRNG(123)
	for i := 0; i < 50; i++ {
		g := RandomGenome(rng, cfg)
		if err := g.CheckBounds(cfg); err != nil {
			t.Fatalf("genome %d out of bounds: %v", i, err)
		}
	}
}

func TestRandomGenomeDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := RandomGenome(NewRNG(5), cfg)
	b := RandomGenome(NewRNG(5), cfg)
	if genomeDigest(a) != genomeDigest(b) {
		t.Fatal("same seed produced different genomes")
	}
}

func TestCheckBoundsRejectsOutOfRangeTrait(t *testing.T) {
	cfg := DefaultConfig()
	g := RandomGenome(NewRNG(1), cfg)
	g.Speed = cfg.PhysicalBounds["speed"].Max + 10
	if err := g.CheckBounds(cfg); err == nil {
		t.Fatal("expected an error for an out-of-bounds trait")
	}
}

func TestAlgorithmRegistryCoversAllIDs(t *testing.T) {
	for id := AlgoComposable; id < algoCount; id++ {
		if _, ok := algorithmRegistry[id]; !ok {
			t.Fatalf("algorithm %v has no registered implementation", id)
		}
	}
}

func TestAlgorithmRegistryMeetsSpecMinimum(t *testing.T) {
	if algoCount < 50 {
		t.Fatalf("expected at least 50 registered algorithm ids, got %d", algoCount)
	}
	legacyCount := int(algoCount) - 1 // exclude AlgoComposable
	if legacyCount < 48 {
		t.Fatalf("expected at least 48 legacy algorithm variants, got %d", legacyCount)
	}
}

func TestPokerStrategyRegistryCoversAllIDs(t *testing.T) {
	for id := TightPassive; id < pokerStrategyCount; id++ {
		if _, ok := strategyRegistry[id]; !ok {
			t.Fatalf("poker strategy %v has no registered implementation", id)
		}
	}
}
