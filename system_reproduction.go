package tankworld

// runReproductionPhase is the REPRODUCTION phase: pair up nearby eligible
// adults, breed their genomes, and spawn offspring — unless the population
// has already reached the configured cap, in which case reproduction is
// refused outright for the rest of this frame (CapacityReached).
func runReproductionPhase(s *SimState) {
	if len(s.Fish) >= s.Config.Population.MaxPopulation {
		s.Tracker.RecordCapacityReached(s)
		return
	}

	paired := make(map[EntityID]bool, len(s.Fish))

	for _, id := range sortedFishIDs(s) {
		if len(s.Fish) >= s.Config.Population.MaxPopulation {
			s.Tracker.RecordCapacityReached(s)
			return
		}
		if paired[id] {
			continue
		}
		f := s.Fish[id]
		if !eligibleForMating(f, s.Config) {
			continue
		}

		neighborIDs := s.Env.Neighbors(f.Pos, s.Config.Reproduction.MatingRadius, KindFish)
		var mate *Fish
		for _, nid := range neighborIDs {
			if nid == id || paired[nid] {
				continue
			}
			cand, ok := s.Fish[nid]
			if !ok || !eligibleForMating(cand, s.Config) {
				continue
			}
			mate = cand
			break
		}
		if mate == nil {
			continue
		}

		paired[id] = true
		paired[mate.ID] = true
		spawnOffspring(s, f, mate)
	}
}

func eligibleForMating(f *Fish, cfg *Config) bool {
	return f.Alive && f.IsAdult() && f.MatingCooldown == 0 && f.Energy >= cfg.Reproduction.EnergyThreshold
}

// spawnOffspring breeds a and b's genomes and mints a newborn. One parent is
// designated the mother — the lower-EntityID parent, consistent with this
// codebase's ascending-EntityID tie-break convention elsewhere — and pays
// mating_cost plus the energy transferred to the newborn; the other parent
// pays mating_cost alone. The newborn starts with exactly the transferred
// energy and appears at the mother's position, per spec.md's reproduction
// scenario.
func spawnOffspring(s *SimState, a, b *Fish) {
	populationStress := clamp(1-float64(len(s.Fish))/float64(s.Config.Population.MaxPopulation), 0, 1)
	childRNG := s.RNG.Child(PhaseReproduction, s.Frame).ChildSalt(mixSeed(uint64(a.ID), uint64(b.ID)))
	childGenome := FromParents(a.Genome, b.Genome, childRNG, s.Config, populationStress)

	mother, father := a, b
	if father.ID < mother.ID {
		mother, father = father, mother
	}

	transfer := s.Config.Energy.MatingTransfer
	id := s.AllocateID()
	child := NewFishWithEnergy(id, childGenome, mother.Pos, s.Config, transfer)
	child.Generation = maxUint32(a.Generation, b.Generation) + 1
	child.ParentIDs = &[2]EntityID{a.ID, b.ID}
	s.Fish[id] = child

	mother.AddEnergy(-(s.Config.Energy.MatingCost + transfer), s.Config)
	father.AddEnergy(-s.Config.Energy.MatingCost, s.Config)
	s.Tracker.Ledger.RecordOutflow(2*s.Config.Energy.MatingCost + transfer)
	a.MatingCooldown = s.Config.Reproduction.Cooldown
	b.MatingCooldown = s.Config.Reproduction.Cooldown
	a.OffspringCount++
	b.OffspringCount++

	s.Tracker.RecordBirth(s, child)
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
