package tankworld

// Mutation trait-inheritance modes for physical traits, per spec.md §4.3
// step 1. The single Config.Mutation.TraitMode applies to every trait.
type TraitMode int

const (
	Averaging TraitMode = iota
	Recombination
	DominantRecessive
)

// Candidate values for mutation_config.max_rate. spec.md §9 notes the
// source corpus disagrees on the figure; all three are exposed as named
// constants and Config.Mutation.MaxRate defaults to the most
// conservative, matching the 0.08 p_switch figure spec.md §4.3 states
// directly for algorithm/strategy inheritance.
const (
	MaxRateConservative = 0.08
	MaxRateModerate      = 0.25
	MaxRateAggressive    = 0.35
)

// ArenaConfig holds the bounded 2D arena's dimensions.
type ArenaConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// TimeConfig governs the day/night clock (spec.md §4.6 TIME_UPDATE phase).
type TimeConfig struct {
	TicksPerDay  int     `json:"ticks_per_day" yaml:"ticks_per_day"`
	NightPenalty float64 `json:"night_penalty" yaml:"night_penalty"`
}

// EnergyConfig holds every energy-related tunable named in spec.md §4.1.
type EnergyConfig struct {
	BaseMetabolism    float64 `json:"base_metabolism" yaml:"base_metabolism"`
	FoodEnergy        float64 `json:"food_energy" yaml:"food_energy"`
	MatingCost        float64 `json:"mating_cost" yaml:"mating_cost"`
	MatingTransfer    float64 `json:"mating_transfer" yaml:"mating_transfer"`
	PokerBaseStake    float64 `json:"poker_base_stake" yaml:"poker_base_stake"`
	PokerHouseCut     float64 `json:"poker_house_cut" yaml:"poker_house_cut"`
	DefaultMaxEnergy  float64 `json:"default_max_energy" yaml:"default_max_energy"`
}

// LifeStageConfig holds the age thresholds that derive a fish's life_stage.
type LifeStageConfig struct {
	JuvenileAge int `json:"juvenile_age" yaml:"juvenile_age"`
	AdultAge    int `json:"adult_age" yaml:"adult_age"`
	ElderAge    int `json:"elder_age" yaml:"elder_age"`
	MaxAge      int `json:"max_age" yaml:"max_age"`
}

// ReproductionConfig holds reproduction thresholds and cooldowns.
type ReproductionConfig struct {
	EnergyThreshold float64 `json:"energy_threshold" yaml:"energy_threshold"`
	MatingRadius    float64 `json:"mating_radius" yaml:"mating_radius"`
	Cooldown        int     `json:"cooldown" yaml:"cooldown"`
}

// MutationConfig controls mutation rate/strength and the epigenetic
// population-stress modifier of spec.md §4.3 step 5.
type MutationConfig struct {
	Rate              float64   `json:"rate" yaml:"rate"`
	Strength          float64   `json:"strength" yaml:"strength"`
	MaxRate           float64   `json:"max_rate" yaml:"max_rate"`
	AlgorithmSwitch   float64   `json:"algorithm_switch" yaml:"algorithm_switch"`
	TraitMode         TraitMode `json:"trait_mode" yaml:"trait_mode"`
	StressMaxMultiple float64   `json:"stress_max_multiple" yaml:"stress_max_multiple"`
}

// PopulationConfig governs carrying capacity and auto-food cadence.
type PopulationConfig struct {
	MaxPopulation  int     `json:"max_population" yaml:"max_population"`
	AutoFoodEvery  int     `json:"auto_food_every_ticks" yaml:"auto_food_every_ticks"`
	AutoFoodEnergy float64 `json:"auto_food_energy" yaml:"auto_food_energy"`
}

// GeneBounds declares the (min, max, default) a bounded gene or behavior
// parameter must respect, per spec.md §3/§4.4.
type GeneBounds struct {
	Min     float64
	Max     float64
	Default float64
}

// Config is the immutable, deeply nested configuration struct spec.md §4.1
// requires: a closed set of option keys, no dynamic named parameters.
type Config struct {
	Arena         ArenaConfig        `json:"arena" yaml:"arena"`
	Time          TimeConfig         `json:"time" yaml:"time"`
	Energy        EnergyConfig       `json:"energy" yaml:"energy"`
	LifeStage     LifeStageConfig    `json:"life_stage" yaml:"life_stage"`
	Reproduction  ReproductionConfig `json:"reproduction" yaml:"reproduction"`
	Mutation      MutationConfig     `json:"mutation" yaml:"mutation"`
	Population    PopulationConfig   `json:"population" yaml:"population"`
	PhysicalBounds map[string]GeneBounds `json:"physical_bounds" yaml:"physical_bounds"`
	TickRate      int                `json:"tick_rate" yaml:"tick_rate"`
}

// DefaultConfig returns the canonical configuration used across the test
// suite's literal-seed scenarios (spec.md §8).
func DefaultConfig() *Config {
	return &Config{
		Arena: ArenaConfig{Width: 800, Height: 600},
		Time: TimeConfig{
			TicksPerDay:  200,
			NightPenalty: 0.2,
		},
		Energy: EnergyConfig{
			BaseMetabolism:   0.05,
			FoodEnergy:       15.0,
			MatingCost:       30.0,
			MatingTransfer:   20.0,
			PokerBaseStake:   10.0,
			PokerHouseCut:    0.10,
			DefaultMaxEnergy: 100.0,
		},
		LifeStage: LifeStageConfig{
			JuvenileAge: 100,
			AdultAge:    500,
			ElderAge:    2000,
			MaxAge:      6000,
		},
		Reproduction: ReproductionConfig{
			EnergyThreshold: 60.0,
			MatingRadius:    20.0,
			Cooldown:        120,
		},
		Mutation: MutationConfig{
			Rate:              0.1,
			Strength:          0.15,
			MaxRate:           MaxRateConservative,
			AlgorithmSwitch:   0.08,
			TraitMode:         Averaging,
			StressMaxMultiple: 2.0,
		},
		Population: PopulationConfig{
			MaxPopulation:  500,
			AutoFoodEvery:  10,
			AutoFoodEnergy: 10.0,
		},
		PhysicalBounds: map[string]GeneBounds{
			"speed":          {Min: 0.3, Max: 2.5, Default: 1.0},
			"size":           {Min: 0.3, Max: 2.5, Default: 1.0},
			"vision_range":   {Min: 0.3, Max: 2.5, Default: 1.0},
			"metabolism_rate": {Min: 0.3, Max: 2.5, Default: 1.0},
			"max_energy":     {Min: 0.3, Max: 2.5, Default: 1.0},
			"fertility":      {Min: 0.3, Max: 2.5, Default: 1.0},
		},
		TickRate: 30,
	}
}

// WithOverrides returns a deep copy of config with mutate applied to the
// copy, never touching the receiver. Mirrors the teacher's
// ApplySpeedMultiplier copy-then-mutate idiom, generalized to an arbitrary
// mutator so tests and benchmarks can override any field without mutating
// the canonical configuration.
func (c *Config) WithOverrides(mutate func(*Config)) *Config {
	clone := *c
	clone.PhysicalBounds = make(map[string]GeneBounds, len(c.PhysicalBounds))
	for k, v := range c.PhysicalBounds {
		clone.PhysicalBounds[k] = v
	}
	if mutate != nil {
		mutate(&clone)
	}
	return &clone
}

// Validate ensures all configuration values are within reasonable bounds.
// Configuration errors must fail here, before any tick runs.
func (c *Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return newConfigError("arena", "arena dimensions must be positive")
	}
	if c.TickRate <= 0 {
		return newConfigError("tick_rate", "tick rate must be positive")
	}
	if c.Time.TicksPerDay <= 0 {
		return newConfigError("time.ticks_per_day", "ticks per day must be positive")
	}
	if c.LifeStage.JuvenileAge <= 0 || c.LifeStage.AdultAge <= c.LifeStage.JuvenileAge ||
		c.LifeStage.ElderAge <= c.LifeStage.AdultAge || c.LifeStage.MaxAge <= c.LifeStage.ElderAge {
		return newConfigError("life_stage", "life stage thresholds must be strictly increasing")
	}
	if c.Energy.DefaultMaxEnergy <= 0 {
		return newConfigError("energy.default_max_energy", "max energy must be positive")
	}
	if c.Energy.PokerHouseCut < 0 || c.Energy.PokerHouseCut >= 1 {
		return newConfigError("energy.poker_house_cut", "house cut must be in [0, 1)")
	}
	if c.Population.MaxPopulation <= 0 {
		return newConfigError("population.max_population", "max population must be positive")
	}
	if c.Mutation.Rate < 0 || c.Mutation.Rate > 1 {
		return newConfigError("mutation.rate", "mutation rate must be in [0, 1]")
	}
	for name, b := range c.PhysicalBounds {
		if b.Min >= b.Max {
			return newConfigError("physical_bounds."+name, "min must be less than max")
		}
		if b.Default < b.Min || b.Default > b.Max {
			return newConfigError("physical_bounds."+name, "default out of [min, max]")
		}
	}
	return nil
}
