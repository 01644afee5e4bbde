package tankworld

import "testing"

func pairForMating(cfg *Config, idA, idB EntityID, posA, posB Vector2) (*Fish, *Fish) {
	genome := RandomGenome(NewRNG(uint64(idA)), cfg)
	// Full energy must reach Reproduction.EnergyThreshold, so use the default max_energy gene.
	genome.MaxEnergy = cfg.PhysicalBounds["max_energy"].Default
	a := NewFishWithConfig(idA, genome, posA, cfg, 1.0)
	a.Age = cfg.LifeStage.AdultAge
	a.UpdateLifeStage(cfg)

	b := NewFishWithConfig(idB, genome.Clone(), posB, cfg, 1.0)
	b.Age = cfg.LifeStage.AdultAge
	b.UpdateLifeStage(cfg)

	return a, b
}

func TestSpawnOffspringTransfersEnergyFromMother(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSimState(cfg, 1)
	a, b := pairForMating(cfg, s.AllocateID(), s.AllocateID(), Vector2{X: 50, Y: 50}, Vector2{X: 60, Y: 50})
	s.Fish[a.ID] = a
	s.Fish[b.ID] = b

	motherEnergyBefore := a.Energy
	fatherEnergyBefore := b.Energy

	phaseEnvironmentRebuild(s)
	runReproductionPhase(s)

	if len(s.Fish) != 3 {
		t.Fatalf("expected parents plus one newborn, got %d fish", len(s.Fish))
	}

	var child *Fish
	for id, f := range s.Fish {
		if id != a.ID && id != b.ID {
			child = f
		}
	}
	if child == nil {
		t.Fatal("expected a newborn fish")
	}

	transfer := cfg.Energy.MatingTransfer
	if child.Energy != transfer {
		t.Fatalf("expected newborn to start with exactly MatingTransfer=%v energy, got %v", transfer, child.Energy)
	}
	if child.Pos != a.Pos {
		t.Fatalf("expected newborn to appear at the mother's (lower-EntityID parent's) position %+v, got %+v", a.Pos, child.Pos)
	}

	wantMother := motherEnergyBefore - (cfg.Energy.MatingCost + transfer)
	if a.Energy != wantMother {
		t.Fatalf("expected mother energy %v after paying mating_cost+transfer, got %v", wantMother, a.Energy)
	}
	wantFather := fatherEnergyBefore - cfg.Energy.MatingCost
	if b.Energy != wantFather {
		t.Fatalf("expected father energy %v after paying mating_cost alone, got %v", wantFather, b.Energy)
	}
}

func TestSpawnOffspringLedgerStaysConserved(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSimState(cfg, 2)
	a, b := pairForMating(cfg, s.AllocateID(), s.AllocateID(), Vector2{X: 10, Y: 10}, Vector2{X: 15, Y: 10})
	s.Fish[a.ID] = a
	s.Fish[b.ID] = b
	s.Tracker.Ledger.RecordInflow(a.Energy + b.Energy)

	phaseEnvironmentRebuild(s)
	runReproductionPhase(s)

	if !s.Tracker.VerifyConservation(s, 1e-9) {
		t.Fatalf("expected ledger balance to match total fish energy after reproduction, balance=%v actual=%v",
			s.Tracker.Ledger.Balance(), s.Tracker.currentTotalEnergy(s))
	}
}
