package main

import (
	tankworld "github.com/mbolaris/tankworld"
)

// seedPopulation queues a starting population of random fish, plants, and
// crabs scattered across the arena. All of it is queued via World's
// command API, so none of it bypasses the normal FRAME_START drain.
func seedPopulation(w *tankworld.World, cfg *tankworld.Config, seed uint64, fishCount, plantCount, crabCount int) {
	rng := tankworld.NewRNG(seed ^ 0xF1524)

	for i := 0; i < fishCount; i++ {
		genome := tankworld.RandomGenome(rng, cfg)
		pos := tankworld.Vector2{
			X: rng.Uniform(0, cfg.Arena.Width),
			Y: rng.Uniform(0, cfg.Arena.Height),
		}
		w.InjectFish(genome, pos)
	}

	for i := 0; i < plantCount; i++ {
		pos := tankworld.Vector2{
			X: rng.Uniform(0, cfg.Arena.Width),
			Y: rng.Uniform(0, cfg.Arena.Height),
		}
		genome := tankworld.PlantGenome{
			GrowthRate:   rng.Uniform(0.6, 1.4),
			EnergyYield:  rng.Uniform(0.8, 1.3),
			BranchFactor: rng.Uniform(0.3, 1.0),
		}
		w.InjectPlant(pos, genome)
	}

	for i := 0; i < crabCount; i++ {
		pos := tankworld.Vector2{
			X: rng.Uniform(0, cfg.Arena.Width),
			Y: rng.Uniform(0, cfg.Arena.Height),
		}
		w.InjectCrab(pos, rng.Uniform(30, 80))
	}
}
