package tankworld

import "testing"

func testGenome() *Genome {
	cfg := DefaultConfig()
	return RandomGenome(NewRNG(1), cfg)
}

func TestNewFishWithConfigClampsStartingEnergy(t *testing.T) {
	cfg := DefaultConfig()
	genome := testGenome()
	f := NewFishWithConfig(1, genome, Vector2{}, cfg, 1.5)

	if f.Energy != f.MaxEnergy(cfg) {
		t.Fatalf("expected starting energy fraction > 1 to clamp to MaxEnergy, got %v want %v", f.Energy, f.MaxEnergy(cfg))
	}
	if !f.Alive {
		t.Fatal("expected a newly constructed fish to be alive")
	}
	if f.LifeStage != Baby {
		t.Fatalf("expected a newly constructed fish to start as Baby, got %v", f.LifeStage)
	}
}

func TestAddEnergyClampsToMaxEnergy(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFishWithConfig(1, testGenome(), Vector2{}, cfg, 0.5)

	f.AddEnergy(f.MaxEnergy(cfg)*10, cfg)
	if f.Energy != f.MaxEnergy(cfg) {
		t.Fatalf("expected Energy clamped at MaxEnergy, got %v", f.Energy)
	}

	f.AddEnergy(-f.MaxEnergy(cfg)*10, cfg)
	if f.Energy != 0 {
		t.Fatalf("expected Energy clamped at 0, got %v", f.Energy)
	}
}

func TestUpdateLifeStageTracksAge(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFishWithConfig(1, testGenome(), Vector2{}, cfg, 1.0)

	f.Age = cfg.LifeStage.AdultAge
	f.UpdateLifeStage(cfg)
	if f.LifeStage != Adult {
		t.Fatalf("expected Adult life stage at AdultAge, got %v", f.LifeStage)
	}
	if !f.IsAdult() {
		t.Fatal("expected IsAdult() true for an Adult fish")
	}
}

func TestEnergyRatioIsBoundedToUnitInterval(t *testing.T) {
	cfg := DefaultConfig()
	f := NewFishWithConfig(1, testGenome(), Vector2{}, cfg, 1.0)

	if r := f.EnergyRatio(cfg); r < 0 || r > 1 {
		t.Fatalf("expected EnergyRatio in [0,1], got %v", r)
	}
}
