package tankworld

const (
	eatRadius       = 5.0
	crabCatchRadius = 4.0
	crabHuntCooldown = 25
)

// runCollisionPhase is the COLLISION phase: fish eat the nearest reachable
// food, and crabs catch the nearest reachable fish (predation). Fish-fish
// proximity for poker pairing is handled separately by the INTERACTION
// phase, since that is a negotiated encounter rather than a collision.
//
// Both queries read the spatial index built at the start of this frame's
// ENVIRONMENT phase, so they do not see movement that happened later in
// this same frame's ENTITY_ACT phase; that one-frame lag is a deliberate,
// documented simplification (see DESIGN.md) rather than a bug.
func runCollisionPhase(s *SimState) {
	for _, id := range sortedFishIDs(s) {
		f := s.Fish[id]
		foodID, ok := s.Env.Nearest(f.Pos, KindFood)
		if !ok {
			continue
		}
		foodPos, ok := s.Env.PositionOf(foodID)
		if !ok || f.Pos.DistanceTo(foodPos) > eatRadius {
			continue
		}
		food, exists := s.Food[foodID]
		if !exists {
			s.Env.Remove(foodID)
			continue
		}
		before := f.Energy
		f.AddEnergy(food.EnergyValue, s.Config)
		// Whatever the MaxEnergy clamp discards is destroyed, not transferred.
		s.Tracker.Ledger.RecordOutflow(food.EnergyValue - (f.Energy - before))
		f.FoodEaten++
		delete(s.Food, foodID)
		s.Env.Remove(foodID)
	}

	for _, id := range sortedCrabIDs(s) {
		c := s.Crabs[id]
		if c.HuntCooldown > 0 {
			continue
		}
		preyID, ok := s.Env.Nearest(c.Pos, KindFish)
		if !ok {
			continue
		}
		prey, exists := s.Fish[preyID]
		if !exists || !prey.Alive {
			continue
		}
		preyPos, ok := s.Env.PositionOf(preyID)
		if !ok || c.Pos.DistanceTo(preyPos) >= crabCatchRadius {
			continue
		}
		killFish(s, prey, CausePredation)
		c.HuntCooldown = crabHuntCooldown
	}
}
