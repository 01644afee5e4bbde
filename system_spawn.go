package tankworld

// plantProductionInterval is the base number of ticks between a plant's
// food drops, scaled down by its own GrowthRate trait.
const plantProductionInterval = 40

// runSpawnPhase is the SPAWN phase: plants drop food on their own growth
// cadence and, separately, the world seeds free-floating auto-food on a
// fixed cadence so a population is never entirely dependent on plants.
func runSpawnPhase(s *SimState) {
	for _, id := range sortedPlantIDs(s) {
		p := s.Plants[id]
		if p.Tick(plantProductionInterval) {
			spawnPlantFood(s, p)
		}
	}

	every := s.Config.Population.AutoFoodEvery
	if every > 0 && s.Frame%uint64(every) == 0 {
		spawnAutoFood(s)
	}
}

func spawnPlantFood(s *SimState, p *Plant) {
	rng := s.RNG.Child(PhaseSpawn, s.Frame).ChildSalt(uint64(p.ID))
	jitter := Vector2{X: rng.Uniform(-6, 6), Y: rng.Uniform(-6, 6)}
	pos := p.Pos.Add(jitter).Clamp(s.Config.Arena.Width, s.Config.Arena.Height)

	id := s.AllocateID()
	value := s.Config.Energy.FoodEnergy * p.Genome.EnergyYield
	s.Food[id] = NewFood(id, pos, value, FoodPlant)
	s.Tracker.Ledger.RecordInflow(value)
}

func spawnAutoFood(s *SimState) {
	rng := s.RNG.Child(PhaseSpawn, s.Frame).ChildSalt(0xA0F0)
	pos := Vector2{
		X: rng.Uniform(0, s.Config.Arena.Width),
		Y: rng.Uniform(0, s.Config.Arena.Height),
	}
	id := s.AllocateID()
	s.Food[id] = NewFood(id, pos, s.Config.Population.AutoFoodEnergy, FoodAuto)
	s.Tracker.Ledger.RecordInflow(s.Config.Population.AutoFoodEnergy)
}
