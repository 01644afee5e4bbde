package tankworld

import "testing"

func TestPlantTickProducesAtConfiguredInterval(t *testing.T) {
	p := NewPlant(1, Vector2{}, PlantGenome{GrowthRate: 1.0, EnergyYield: 10})

	produced := 0
	for i := 0; i < 10; i++ {
		if p.Tick(10) {
			produced++
		}
	}
	if produced != 1 {
		t.Fatalf("expected exactly 1 production over 10 ticks at interval 10, got %d", produced)
	}
}

func TestPlantTickScalesWithGrowthRate(t *testing.T) {
	fast := NewPlant(1, Vector2{}, PlantGenome{GrowthRate: 2.0, EnergyYield: 10})
	slow := NewPlant(2, Vector2{}, PlantGenome{GrowthRate: 0.5, EnergyYield: 10})

	fastCount, slowCount := 0, 0
	for i := 0; i < 20; i++ {
		if fast.Tick(10) {
			fastCount++
		}
		if slow.Tick(10) {
			slowCount++
		}
	}
	if fastCount <= slowCount {
		t.Fatalf("expected a higher growth rate to produce more often, fast=%d slow=%d", fastCount, slowCount)
	}
}

func TestSeedlingGenomeStaysWithinBounds(t *testing.T) {
	p := NewPlant(1, Vector2{}, PlantGenome{GrowthRate: 1.0, EnergyYield: 10, BranchFactor: 0.5})
	rng := NewRNG(7)

	for i := 0; i < 50; i++ {
		g := p.SeedlingGenome(rng, 0.3)
		if g.GrowthRate < 0.2 || g.GrowthRate > 3.0 {
			t.Fatalf("GrowthRate out of bounds: %v", g.GrowthRate)
		}
		if g.EnergyYield < 1 || g.EnergyYield > 50 {
			t.Fatalf("EnergyYield out of bounds: %v", g.EnergyYield)
		}
		if g.BranchFactor < 0 || g.BranchFactor > 1 {
			t.Fatalf("BranchFactor out of bounds: %v", g.BranchFactor)
		}
	}
}
