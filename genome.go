package tankworld

// AlgorithmID identifies one registered movement/decision strategy. The
// zero value, AlgoComposable, is the recommended single driver described in
// spec.md §4.4; the rest are the legacy monolithic algorithms kept behind
// the same Algorithm interface.
type AlgorithmID int

const (
	AlgoComposable AlgorithmID = iota

	// Food-seeking category (8 variants).
	AlgoFoodSeekDirect
	AlgoFoodSeekSpiral
	AlgoFoodSeekScent
	AlgoFoodSeekCautious
	AlgoFoodSeekGreedy
	AlgoFoodSeekPatient
	AlgoFoodSeekSwarm
	AlgoFoodSeekMemoryBiased

	// Predator-avoidance category (8 variants).
	AlgoAvoidFlee
	AlgoAvoidFreeze
	AlgoAvoidZigzag
	AlgoAvoidSprint
	AlgoAvoidShelter
	AlgoAvoidCreep
	AlgoAvoidDive
	AlgoAvoidDecoy

	// Schooling category (8 variants).
	AlgoSchoolCohesion
	AlgoSchoolAlignment
	AlgoSchoolSeparation
	AlgoSchoolFlank
	AlgoSchoolFollow
	AlgoSchoolCenterSeek
	AlgoSchoolLeader
	AlgoSchoolMirror

	// Energy-management category (8 variants).
	AlgoEnergyConserve
	AlgoEnergyBurstForage
	AlgoEnergyHoard
	AlgoEnergyMiser
	AlgoEnergyBalanced
	AlgoEnergyOpportunist
	AlgoEnergySprintRecover
	AlgoEnergyScavenger

	// Territory category (8 variants).
	AlgoTerritoryPatrol
	AlgoTerritoryDefend
	AlgoTerritoryMark
	AlgoTerritoryExpand
	AlgoTerritoryGuard
	AlgoTerritoryRetreat
	AlgoTerritoryShare
	AlgoTerritoryAmbush

	// Poker-interaction category (8 variants).
	AlgoPokerSeekOpponent
	AlgoPokerAvoidOpponent
	AlgoPokerIsolate
	AlgoPokerWait
	AlgoPokerHustle
	AlgoPokerShy
	AlgoPokerRoamer
	AlgoPokerBluffApproach

	AlgoRandomWalk

	// algoCount is a sentinel equal to the number of registered algorithms,
	// used to pick a uniformly random algorithm id from the registry.
	algoCount
)

// PokerStrategyID identifies one of the nine pluggable poker strategies of
// spec.md §3.
type PokerStrategyID int

const (
	TightPassive PokerStrategyID = iota
	LoosePassive
	TightAggressive
	LooseAggressive
	Balanced
	Maniac
	GTOExpert
	AlwaysFold
	RandomStrategy

	pokerStrategyCount
)

func (p PokerStrategyID) String() string {
	switch p {
	case TightPassive:
		return "tight_passive"
	case LoosePassive:
		return "loose_passive"
	case TightAggressive:
		return "tight_aggressive"
	case LooseAggressive:
		return "loose_aggressive"
	case Balanced:
		return "balanced"
	case Maniac:
		return "maniac"
	case GTOExpert:
		return "gto_expert"
	case AlwaysFold:
		return "always_fold"
	case RandomStrategy:
		return "random"
	default:
		return "unknown_strategy"
	}
}

// ParamVector is a named set of bounded, continuous parameters driving one
// algorithm's or poker strategy's behavior.
type ParamVector map[string]float64

func (p ParamVector) clone() ParamVector {
	out := make(ParamVector, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Genome is the immutable, heritable trait bundle of spec.md §3. A new
// instance is built on every reproduction; nothing about an existing
// genome is ever mutated in place.
type Genome struct {
	// Physical traits, each a bounded multiplier in [0.3, 2.5].
	Speed          float64
	Size           float64
	VisionRange    float64
	MetabolismRate float64
	MaxEnergy      float64
	Fertility      float64

	// Behavioral traits.
	AlgorithmID    AlgorithmID
	Parameters     ParamVector
	Aggression     float64 // [0, 1]
	SocialTendency float64 // [0, 1]

	// Visual trait, opaque to core logic.
	ColorHue float64 // [0, 1]

	// Poker traits.
	PokerStrategy   PokerStrategyID
	PokerParameters ParamVector
}

// Clone returns a deep copy of the genome.
func (g *Genome) Clone() *Genome {
	clone := *g
	clone.Parameters = g.Parameters.clone()
	clone.PokerParameters = g.PokerParameters.clone()
	return &clone
}

// algorithmParamSchema declares (name, min, max, default) for every
// algorithm's parameters, per spec.md §4.4's static parameter schema
// requirement. Used both by mutation (to clip drift) and by the
// Composable driver (to read named thresholds).
var algorithmParamSchema = map[AlgorithmID]map[string]GeneBounds{
	AlgoComposable: {
		"threat_sensitivity":  {Min: 0, Max: 1, Default: 0.5},
		"food_drive":          {Min: 0, Max: 1, Default: 0.5},
		"social_affinity":     {Min: 0, Max: 1, Default: 0.3},
		"exploration_bias":    {Min: 0, Max: 1, Default: 0.3},
		"poker_eagerness":     {Min: 0, Max: 1, Default: 0.2},
		"critical_energy":     {Min: 0, Max: 0.5, Default: 0.15},
	},
	AlgoFoodSeekDirect:      {"gain": {Min: 0.1, Max: 2, Default: 1}},
	AlgoFoodSeekSpiral:      {"spiral_rate": {Min: 0.1, Max: 2, Default: 0.5}},
	AlgoFoodSeekScent:       {"memory_weight": {Min: 0, Max: 1, Default: 0.5}},
	AlgoFoodSeekCautious:    {"threat_margin": {Min: 1, Max: 60, Default: 20}},
	AlgoFoodSeekGreedy:      {"value_bias": {Min: 0, Max: 2, Default: 1}},
	AlgoFoodSeekPatient:     {"hunger_threshold": {Min: 0, Max: 1, Default: 0.5}},
	AlgoFoodSeekSwarm:       {"kin_radius": {Min: 1, Max: 60, Default: 15}},
	AlgoFoodSeekMemoryBiased: {"memory_weight": {Min: 0, Max: 1, Default: 0.6}},

	AlgoAvoidFlee:    {"flee_gain": {Min: 0.1, Max: 3, Default: 1.5}},
	AlgoAvoidFreeze:  {"freeze_radius": {Min: 1, Max: 50, Default: 10}},
	AlgoAvoidZigzag:  {"zigzag_rate": {Min: 0.1, Max: 3, Default: 1}},
	AlgoAvoidSprint:  {"sprint_gain": {Min: 0.1, Max: 4, Default: 2}},
	AlgoAvoidShelter: {"kin_radius": {Min: 1, Max: 60, Default: 20}},
	AlgoAvoidCreep:   {"creep_radius": {Min: 1, Max: 50, Default: 12}},
	AlgoAvoidDive:    {"dive_gain": {Min: 0.1, Max: 3, Default: 1.2}},
	AlgoAvoidDecoy:   {"decoy_jitter": {Min: 0, Max: 2, Default: 0.8}},

	AlgoSchoolCohesion:   {"cohesion_gain": {Min: 0, Max: 2, Default: 0.8}},
	AlgoSchoolAlignment:  {"alignment_gain": {Min: 0, Max: 2, Default: 0.8}},
	AlgoSchoolSeparation: {"separation_gain": {Min: 0, Max: 2, Default: 0.8}},
	AlgoSchoolFlank:      {"flank_offset": {Min: 1, Max: 30, Default: 8}},
	AlgoSchoolFollow:     {"follow_gain": {Min: 0, Max: 2, Default: 1}},
	AlgoSchoolCenterSeek: {"center_gain": {Min: 0, Max: 2, Default: 0.6}},
	AlgoSchoolLeader:     {"lead_gain": {Min: 0, Max: 2, Default: 0.6}},
	AlgoSchoolMirror:     {"mirror_gain": {Min: 0, Max: 2, Default: 0.9}},

	AlgoEnergyConserve:      {"rest_threshold": {Min: 0, Max: 1, Default: 0.6}},
	AlgoEnergyBurstForage:   {"burst_threshold": {Min: 0, Max: 1, Default: 0.3}},
	AlgoEnergyHoard:         {"gain": {Min: 0.1, Max: 3, Default: 1.5}},
	AlgoEnergyMiser:         {"rest_threshold": {Min: 0, Max: 1, Default: 0.85}},
	AlgoEnergyBalanced:      {"balance_point": {Min: 0, Max: 1, Default: 0.5}},
	AlgoEnergyOpportunist:   {"opportunist_radius": {Min: 1, Max: 40, Default: 10}},
	AlgoEnergySprintRecover: {"low_threshold": {Min: 0, Max: 1, Default: 0.3}, "high_threshold": {Min: 0, Max: 1, Default: 0.7}},
	AlgoEnergyScavenger:     {"gain": {Min: 0.1, Max: 2, Default: 0.5}},

	AlgoTerritoryPatrol:  {"patrol_radius": {Min: 1, Max: 100, Default: 30}},
	AlgoTerritoryDefend:  {"defend_radius": {Min: 1, Max: 100, Default: 15}},
	AlgoTerritoryMark:    {"mark_radius": {Min: 1, Max: 60, Default: 12}},
	AlgoTerritoryExpand:  {"expand_radius": {Min: 1, Max: 150, Default: 45}},
	AlgoTerritoryGuard:   {"guard_radius": {Min: 1, Max: 100, Default: 10}},
	AlgoTerritoryRetreat: {"retreat_radius": {Min: 1, Max: 100, Default: 15}},
	AlgoTerritoryShare:   {"patrol_radius": {Min: 1, Max: 100, Default: 30}},
	AlgoTerritoryAmbush:  {"ambush_radius": {Min: 1, Max: 60, Default: 18}},

	AlgoPokerSeekOpponent:   {"seek_gain": {Min: 0, Max: 2, Default: 0.5}},
	AlgoPokerAvoidOpponent:  {"avoid_gain": {Min: 0, Max: 2, Default: 0.5}},
	AlgoPokerIsolate:        {"isolate_gain": {Min: 0, Max: 2, Default: 0.6}},
	AlgoPokerWait:           {"wait_radius": {Min: 1, Max: 60, Default: 20}},
	AlgoPokerHustle:         {"hustle_gain": {Min: 0, Max: 3, Default: 1.2}},
	AlgoPokerShy:            {"shy_gain": {Min: 0, Max: 2, Default: 0.9}},
	AlgoPokerRoamer:         {"roam_bias": {Min: 0, Max: 1, Default: 0.4}},
	AlgoPokerBluffApproach:  {"bluff_gain": {Min: 0, Max: 2, Default: 0.7}},

	AlgoRandomWalk: {"jitter": {Min: 0, Max: 1, Default: 0.3}},
}

// pokerStrategyParamSchema declares parameters for each poker strategy.
var pokerStrategyParamSchema = map[PokerStrategyID]map[string]GeneBounds{
	TightPassive:    {"vpip": {Min: 0, Max: 0.3, Default: 0.12}, "aggression_factor": {Min: 0, Max: 1, Default: 0.2}},
	LoosePassive:    {"vpip": {Min: 0.3, Max: 0.8, Default: 0.5}, "aggression_factor": {Min: 0, Max: 1, Default: 0.2}},
	TightAggressive: {"vpip": {Min: 0, Max: 0.3, Default: 0.15}, "aggression_factor": {Min: 0.5, Max: 1, Default: 0.8}},
	LooseAggressive: {"vpip": {Min: 0.3, Max: 0.9, Default: 0.6}, "aggression_factor": {Min: 0.5, Max: 1, Default: 0.85}},
	Balanced:        {"vpip": {Min: 0.2, Max: 0.4, Default: 0.28}, "aggression_factor": {Min: 0.3, Max: 0.7, Default: 0.5}},
	Maniac:          {"vpip": {Min: 0.6, Max: 1, Default: 0.9}, "aggression_factor": {Min: 0.7, Max: 1, Default: 0.95}},
	GTOExpert:       {"three_bet_pct": {Min: 0, Max: 0.2, Default: 0.05}, "bluff_freq": {Min: 0, Max: 0.5, Default: 0.25}},
	AlwaysFold:      {},
	RandomStrategy:  {},
}

func defaultParams(schema map[string]GeneBounds) ParamVector {
	p := make(ParamVector, len(schema))
	for name, b := range schema {
		p[name] = b.Default
	}
	return p
}

func randomParams(rng *RNG, schema map[string]GeneBounds) ParamVector {
	requireRNG(rng, "randomParams")
	p := make(ParamVector, len(schema))
	for name, b := range schema {
		p[name] = rng.Uniform(b.Min, b.Max)
	}
	return p
}

// randomAlgorithmID returns a uniformly random algorithm id from the
// registry.
func randomAlgorithmID(rng *RNG) AlgorithmID {
	requireRNG(rng, "randomAlgorithmID")
	return AlgorithmID(rng.Intn(int(algoCount)))
}

func randomPokerStrategyID(rng *RNG) PokerStrategyID {
	requireRNG(rng, "randomPokerStrategyID")
	return PokerStrategyID(rng.Intn(int(pokerStrategyCount)))
}

// RandomGenome draws a new genome uniformly within every declared bound.
func RandomGenome(rng *RNG, cfg *Config) *Genome {
	requireRNG(rng, "RandomGenome")
	b := cfg.PhysicalBounds
	algo := randomAlgorithmID(rng)
	strat := randomPokerStrategyID(rng)
	return &Genome{
		Speed:           rng.Uniform(b["speed"].Min, b["speed"].Max),
		Size:            rng.Uniform(b["size"].Min, b["size"].Max),
		VisionRange:     rng.Uniform(b["vision_range"].Min, b["vision_range"].Max),
		MetabolismRate:  rng.Uniform(b["metabolism_rate"].Min, b["metabolism_rate"].Max),
		MaxEnergy:       rng.Uniform(b["max_energy"].Min, b["max_energy"].Max),
		Fertility:       rng.Uniform(b["fertility"].Min, b["fertility"].Max),
		AlgorithmID:     algo,
		Parameters:      randomParams(rng, algorithmParamSchema[algo]),
		Aggression:      rng.Float64(),
		SocialTendency:  rng.Float64(),
		ColorHue:        rng.Float64(),
		PokerStrategy:   strat,
		PokerParameters: randomParams(rng, pokerStrategyParamSchema[strat]),
	}
}

// CheckBounds validates every gene lies within its declared [min, max],
// the hard invariant of spec.md §4.3. Returns a ProgrammingError describing
// the first violation found, or nil.
func (g *Genome) CheckBounds(cfg *Config) error {
	checks := []struct {
		name  string
		value float64
	}{
		{"speed", g.Speed}, {"size", g.Size}, {"vision_range", g.VisionRange},
		{"metabolism_rate", g.MetabolismRate}, {"max_energy", g.MaxEnergy},
		{"fertility", g.Fertility},
	}
	for _, c := range checks {
		b, ok := cfg.PhysicalBounds[c.name]
		if !ok {
			continue
		}
		if c.value < b.Min || c.value > b.Max {
			return newProgrammingError("Genome.CheckBounds", "trait %s=%f outside [%f, %f]", c.name, c.value, b.Min, b.Max)
		}
	}
	if schema, ok := algorithmParamSchema[g.AlgorithmID]; ok {
		for name, b := range schema {
			v, present := g.Parameters[name]
			if !present {
				continue
			}
			if v < b.Min || v > b.Max {
				return newProgrammingError("Genome.CheckBounds", "algorithm param %s=%f outside [%f, %f]", name, v, b.Min, b.Max)
			}
		}
	}
	if schema, ok := pokerStrategyParamSchema[g.PokerStrategy]; ok {
		for name, b := range schema {
			v, present := g.PokerParameters[name]
			if !present {
				continue
			}
			if v < b.Min || v > b.Max {
				return newProgrammingError("Genome.CheckBounds", "poker param %s=%f outside [%f, %f]", name, v, b.Min, b.Max)
			}
		}
	}
	return nil
}
