package tankworld

// corpseEnergyFraction is the share of a dead fish's max energy that
// converts into corpse food for scavengers.
const corpseEnergyFraction = 0.2

// runLifecyclePhase is the LIFECYCLE phase: detect deaths by starvation or
// old age (predation deaths are detected in the COLLISION phase, since they
// depend on crab proximity) and convert the dead into corpse food.
func runLifecyclePhase(s *SimState) {
	for _, id := range sortedFishIDs(s) {
		f := s.Fish[id]
		cause, dead := DeathCause(CauseUnknown), false

		switch {
		case f.Energy <= 0:
			cause, dead = CauseStarvation, true
		case f.Age >= s.Config.LifeStage.MaxAge:
			cause, dead = CauseOldAge, true
		}

		if !dead {
			continue
		}
		killFish(s, f, cause)
	}
}

func killFish(s *SimState, f *Fish, cause DeathCause) {
	f.Alive = false
	s.Tracker.RecordDeath(s, f, cause)
	s.Env.Remove(f.ID)
	s.Tracker.Ledger.RecordOutflow(f.Energy)
	spawnCorpse(s, f)
	delete(s.Fish, f.ID)
}

func spawnCorpse(s *SimState, f *Fish) {
	value := f.MaxEnergy(s.Config) * corpseEnergyFraction
	if value <= 0 {
		return
	}
	id := s.AllocateID()
	s.Food[id] = NewFood(id, f.Pos, value, FoodCorpse)
	s.Tracker.Ledger.RecordInflow(value)
}
