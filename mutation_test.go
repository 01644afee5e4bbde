package tankworld

import "testing"

func TestFromParentsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	p1 := RandomGenome(NewRNG(1), cfg)
	p2 := RandomGenome(NewRNG(2), cfg)

	childA := FromParents(p1, p2, NewRNG(55), cfg, 0.2)
	childB := FromParents(p1, p2, NewRNG(55), cfg, 0.2)

	if genomeDigest(childA) != genomeDigest(childB) {
		t.Fatal("same inputs produced different children")
	}
}

func TestFromParentsWithinBounds(t *testing.T) {
	cfg := DefaultConfig()
	rng := NewRNG(7)
	for i := 0; i < 30; i++ {
		p1 := RandomGenome(rng, cfg)
		p2 := RandomGenome(rng, cfg)
		child := FromParents(p1, p2, rng, cfg, rng.Uniform(0, 1))
		if err := child.CheckBounds(cfg); err != nil {
			t.Fatalf("child %d out of bounds: %v", i, err)
		}
	}
}

func TestFromParentsStressIncreasesMutationMagnitude(t *testing.T) {
	cfg := DefaultConfig()
	p1 := RandomGenome(NewRNG(10), cfg)
	p2 := RandomGenome(NewRNG(11), cfg)

	var lowStressDelta, highStressDelta float64
	trials := 200
	for i := 0; i < trials; i++ {
		rngLow := NewRNG(uint64(1000 + i))
		rngHigh := NewRNG(uint64(1000 + i))
		childLow := FromParents(p1, p2, rngLow, cfg, 0.0)
		childHigh := FromParents(p1, p2, rngHigh, cfg, 1.0)
		parentAvgSpeed := (p1.Speed + p2.Speed) / 2
		lowStressDelta += absf(childLow.Speed - parentAvgSpeed)
		highStressDelta += absf(childHigh.Speed - parentAvgSpeed)
	}

	if highStressDelta <= lowStressDelta {
		t.Fatalf("expected higher population stress to produce larger average mutation magnitude: low=%v high=%v",
			lowStressDelta, highStressDelta)
	}
}

func TestClip01(t *testing.T) {
	if clip01(-1) != 0 {
		t.Fatal("clip01(-1) should be 0")
	}
	if clip01(2) != 1 {
		t.Fatal("clip01(2) should be 1")
	}
	if clip01(0.5) != 0.5 {
		t.Fatal("clip01(0.5) should be unchanged")
	}
}
