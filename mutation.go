package tankworld

// FromParents builds a child genome from two parents following spec.md
// §4.3's five-step recipe. populationStress, clamped to [0, 1], scales
// mutation rate/strength by up to the configured StressMaxMultiple;
// spawnOffspring passes a value that is highest when the population is far
// below carrying capacity. No per-generation decay is applied to it.
func FromParents(p1, p2 *Genome, rng *RNG, cfg *Config, populationStress float64) *Genome {
	requireRNG(rng, "FromParents")

	stress := populationStress
	if stress < 0 {
		stress = 0
	}
	if stress > 1 {
		stress = 1
	}
	stressMultiplier := 1 + stress*(cfg.Mutation.StressMaxMultiple-1)
	mutationRate := cfg.Mutation.Rate * stressMultiplier
	mutationStrength := cfg.Mutation.Strength * stressMultiplier

	child := &Genome{}

	// Step 1: physical traits, linked pair (speed, metabolism) co-varies on
	// a single linkage factor; the rest follow the configured TraitMode.
	linkage := rng.Float64()
	child.Speed = combineTrait(cfg, rng, "speed", p1.Speed, p2.Speed, linkage)
	child.MetabolismRate = combineTrait(cfg, rng, "metabolism_rate", p1.MetabolismRate, p2.MetabolismRate, linkage)
	child.Size = combineTrait(cfg, rng, "size", p1.Size, p2.Size, rng.Float64())
	child.VisionRange = combineTrait(cfg, rng, "vision_range", p1.VisionRange, p2.VisionRange, rng.Float64())
	child.MaxEnergy = combineTrait(cfg, rng, "max_energy", p1.MaxEnergy, p2.MaxEnergy, rng.Float64())
	child.Fertility = combineTrait(cfg, rng, "fertility", p1.Fertility, p2.Fertility, rng.Float64())

	mutateTrait(rng, cfg, "speed", &child.Speed, mutationRate, mutationStrength)
	mutateTrait(rng, cfg, "metabolism_rate", &child.MetabolismRate, mutationRate, mutationStrength)
	mutateTrait(rng, cfg, "size", &child.Size, mutationRate, mutationStrength)
	mutateTrait(rng, cfg, "vision_range", &child.VisionRange, mutationRate, mutationStrength)
	mutateTrait(rng, cfg, "max_energy", &child.MaxEnergy, mutationRate, mutationStrength)
	mutateTrait(rng, cfg, "fertility", &child.Fertility, mutationRate, mutationStrength)

	// Step 2 + 3: behavioral algorithm inheritance, switch, and parameters.
	child.AlgorithmID, child.Parameters = inheritAlgorithm(
		rng, cfg, p1.AlgorithmID, p1.Parameters, p2.AlgorithmID, p2.Parameters,
		algorithmParamSchema, mutationRate, mutationStrength, randomAlgorithmID,
	)

	child.Aggression = clip01(blendWithMutation(rng, p1.Aggression, p2.Aggression, mutationRate, mutationStrength))
	child.SocialTendency = clip01(blendWithMutation(rng, p1.SocialTendency, p2.SocialTendency, mutationRate, mutationStrength))

	// Visual trait: simple averaging, mutation does not touch it (spec.md
	// §3 says it is opaque to core logic).
	child.ColorHue = clip01((p1.ColorHue + p2.ColorHue) / 2)

	// Step 4: poker strategy, identical 50/50 + switch-probability recipe.
	pokerStrat, pokerParams := inheritPokerStrategy(rng, cfg, p1.PokerStrategy, p1.PokerParameters, p2.PokerStrategy, p2.PokerParameters, mutationRate, mutationStrength)
	child.PokerStrategy = pokerStrat
	child.PokerParameters = pokerParams

	return child
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// combineTrait applies the configured TraitMode to one scalar physical
// trait, using linkage as the shared draw for linked traits.
func combineTrait(cfg *Config, rng *RNG, name string, a, b, linkage float64) float64 {
	requireRNG(rng, "combineTrait")
	bounds := cfg.PhysicalBounds[name]
	var v float64
	switch cfg.Mutation.TraitMode {
	case Recombination:
		if linkage < 0.5 {
			v = a
		} else {
			v = b
		}
	case DominantRecessive:
		// Higher-magnitude-from-default trait dominates.
		da := absf(a - bounds.Default)
		db := absf(b - bounds.Default)
		if da >= db {
			v = a
		} else {
			v = b
		}
	default: // Averaging
		v = (a + b) / 2
	}
	return clamp(v, bounds.Min, bounds.Max)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// mutateTrait mutates *value in place with probability mutationRate by
// N(0, mutationStrength*(max-min)), clipped to bounds.
func mutateTrait(rng *RNG, cfg *Config, name string, value *float64, mutationRate, mutationStrength float64) {
	requireRNG(rng, "mutateTrait")
	if !rng.Bool(mutationRate) {
		return
	}
	b := cfg.PhysicalBounds[name]
	delta := rng.NormFloat64() * mutationStrength * (b.Max - b.Min)
	*value = clamp(*value+delta, b.Min, b.Max)
}

func blendWithMutation(rng *RNG, a, b, mutationRate, mutationStrength float64) float64 {
	requireRNG(rng, "blendWithMutation")
	v := (a + b) / 2
	if rng.Bool(mutationRate) {
		v += rng.NormFloat64() * mutationStrength
	}
	return v
}

// inheritAlgorithm implements spec.md §4.3 steps 2-3 for the movement
// algorithm (inheritPokerStrategy repeats the same recipe for the poker
// strategy): 50/50 inheritance, algorithm-switch probability, and parameter
// blend-or-inherit followed by per-parameter mutation.
func inheritAlgorithm(
	rng *RNG, cfg *Config,
	id1 AlgorithmID, params1 ParamVector,
	id2 AlgorithmID, params2 ParamVector,
	schemas map[AlgorithmID]map[string]GeneBounds,
	mutationRate, mutationStrength float64,
	randomID func(*RNG) AlgorithmID,
) (AlgorithmID, ParamVector) {
	requireRNG(rng, "inheritAlgorithm")

	switchProb := cfg.Mutation.AlgorithmSwitch
	if switchProb > cfg.Mutation.MaxRate {
		switchProb = cfg.Mutation.MaxRate
	}

	chosen := id1
	chosenParams := params1
	other := id2
	otherParams := params2
	if rng.Bool(0.5) {
		chosen, chosenParams = id2, params2
		other, otherParams = id1, params1
	}

	if rng.Bool(switchProb) {
		chosen = randomID(rng)
		chosenParams = defaultParams(schemas[chosen])
	}

	var merged ParamVector
	if chosen == other {
		merged = blendParams(chosenParams, otherParams)
	} else {
		merged = chosenParams.clone()
	}

	schema := schemas[chosen]
	for name, b := range schema {
		v, ok := merged[name]
		if !ok {
			v = b.Default
			merged[name] = v
		}
		if rng.Bool(mutationRate) {
			delta := rng.NormFloat64() * mutationStrength * (b.Max - b.Min)
			merged[name] = clamp(v+delta, b.Min, b.Max)
		}
	}
	return chosen, merged
}

func blendParams(a, b ParamVector) ParamVector {
	out := make(ParamVector, len(a))
	for name, va := range a {
		if vb, ok := b[name]; ok {
			out[name] = (va + vb) / 2
		} else {
			out[name] = va
		}
	}
	return out
}

func inheritPokerStrategy(rng *RNG, cfg *Config, s1 PokerStrategyID, p1 ParamVector, s2 PokerStrategyID, p2 ParamVector, mutationRate, mutationStrength float64) (PokerStrategyID, ParamVector) {
	requireRNG(rng, "inheritPokerStrategy")

	switchProb := cfg.Mutation.AlgorithmSwitch
	if switchProb > cfg.Mutation.MaxRate {
		switchProb = cfg.Mutation.MaxRate
	}

	chosen, chosenParams := s1, p1
	other, otherParams := s2, p2
	if rng.Bool(0.5) {
		chosen, chosenParams = s2, p2
		other, otherParams = s1, p1
	}

	if rng.Bool(switchProb) {
		chosen = randomPokerStrategyID(rng)
		chosenParams = defaultParams(pokerStrategyParamSchema[chosen])
	}

	var merged ParamVector
	if chosen == other {
		merged = blendParams(chosenParams, otherParams)
	} else {
		merged = chosenParams.clone()
	}

	schema := pokerStrategyParamSchema[chosen]
	for name, b := range schema {
		v, ok := merged[name]
		if !ok {
			v = b.Default
			merged[name] = v
		}
		if rng.Bool(mutationRate) {
			delta := rng.NormFloat64() * mutationStrength * (b.Max - b.Min)
			merged[name] = clamp(v+delta, b.Min, b.Max)
		}
	}
	return chosen, merged
}
