package tankworld

const (
	baseVisionRange = 80.0
	baseSpeed       = 2.0
	crabHuntRadius  = 60.0
)

// runBehaviorPhase is the ENTITY_ACT phase for fish: build each living
// fish's read-only view of the world, run its algorithm, apply the
// resulting movement, and pay its per-tick metabolism. Fish are visited in
// ascending EntityID order and each draws from its own RNG child stream, so
// the outcome never depends on map iteration order.
func runBehaviorPhase(s *SimState) {
	for _, id := range sortedFishIDs(s) {
		f := s.Fish[id]
		childRNG := s.RNG.Child(PhaseEntityAct, s.Frame).ChildSalt(uint64(id))

		visionRange := baseVisionRange * f.Genome.VisionRange
		ctx := buildBehaviorContext(s, f, visionRange, childRNG)
		dir := ExecuteBehavior(ctx)

		speed := baseSpeed * f.Genome.Speed
		f.Vel = dir.Scale(speed)
		f.Pos = f.Pos.Add(f.Vel).Clamp(s.Config.Arena.Width, s.Config.Arena.Height)

		metabolism := s.Config.Energy.BaseMetabolism * f.Genome.MetabolismRate
		if s.TimeOfDay < 0.25 || s.TimeOfDay > 0.75 {
			metabolism *= 1 + s.Config.Time.NightPenalty
		}
		before := f.Energy
		f.AddEnergy(-metabolism, s.Config)
		s.Tracker.Ledger.RecordOutflow(before - f.Energy)

		f.Age++
		f.UpdateLifeStage(s.Config)
		f.FramesSurvived++
		if f.MatingCooldown > 0 {
			f.MatingCooldown--
		}
		if f.PokerCooldown > 0 {
			f.PokerCooldown--
		}
	}
}

func buildBehaviorContext(s *SimState, f *Fish, visionRange float64, rng *RNG) *BehaviorContext {
	neighborIDs := s.Env.Neighbors(f.Pos, visionRange, KindFood, KindFish, KindCrab)

	var food []VisibleFood
	var fish []VisibleFish
	var predators []VisiblePredator

	for _, nid := range neighborIDs {
		pos, ok := s.Env.PositionOf(nid)
		if !ok {
			continue
		}
		if item, ok := s.Food[nid]; ok {
			food = append(food, VisibleFood{ID: nid, Pos: pos, EnergyValue: item.EnergyValue})
			continue
		}
		if other, ok := s.Fish[nid]; ok && nid != f.ID {
			fish = append(fish, VisibleFish{
				ID:      nid,
				Pos:     pos,
				Vel:     other.Vel,
				Kinship: kinshipOf(f, other),
			})
			continue
		}
		if _, ok := s.Crabs[nid]; ok {
			predators = append(predators, VisiblePredator{ID: nid, Pos: pos})
		}
	}

	criticalEnergy := paramOr(f.Genome.Parameters, "critical_energy", 0.15)
	ratio := f.EnergyRatio(s.Config)

	return &BehaviorContext{
		Self:             f,
		Pos:              f.Pos,
		Vel:              f.Vel,
		EnergyRatio:      ratio,
		LifeStage:        f.LifeStage,
		CriticalEnergy:   ratio < criticalEnergy,
		VisibleFood:      food,
		VisibleFish:      fish,
		VisiblePredators: predators,
		TimeOfDay:        s.TimeOfDay,
		RNG:              rng,
		Params:           f.Genome.Parameters,
		Memory:           &f.Memory,
	}
}

// kinshipOf reports 1.0 if a and b share a recorded parent, 0.0 otherwise.
// Fish with no recorded parentage (the founding generation) are never kin.
func kinshipOf(a, b *Fish) float64 {
	if a.ParentIDs == nil || b.ParentIDs == nil {
		return 0
	}
	for _, p := range a.ParentIDs {
		if p == 0 {
			continue
		}
		for _, q := range b.ParentIDs {
			if p == q {
				return 1
			}
		}
	}
	return 0
}

// runCrabPhase moves every crab: chase the nearest visible fish within
// crabHuntRadius, or patrol its territory otherwise.
func runCrabPhase(s *SimState) {
	for _, id := range sortedCrabIDs(s) {
		c := s.Crabs[id]
		if c.HuntCooldown > 0 {
			c.HuntCooldown--
		}
		if preyID, ok := s.Env.Nearest(c.Pos, KindFish); ok {
			if preyPos, ok := s.Env.PositionOf(preyID); ok && c.Pos.DistanceTo(preyPos) < crabHuntRadius {
				c.Chase(preyPos, s.Config.Arena.Width, s.Config.Arena.Height)
				continue
			}
		}
		c.Patrol(s.Config.Arena.Width, s.Config.Arena.Height)
	}
}
