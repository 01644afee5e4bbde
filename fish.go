package tankworld

// Fish is the core autonomous agent: it owns position, velocity, energy,
// age, genome, lifecycle cooldowns, short-term memory, and fitness
// accumulators, per spec.md §3.
type Fish struct {
	ID         EntityID
	Generation uint32
	ParentIDs  *[2]EntityID // nil for an initial, ungenerated fish

	Pos Vector2
	Vel Vector2

	Energy    float64
	Age       int
	LifeStage LifeStage
	Alive     bool

	Genome *Genome

	MatingCooldown   int
	PokerCooldown    int
	PredatorLastSeen int // ticks since a predator was last sensed, -1 if never

	Memory FishMemory

	// Fitness accumulators, mutable across the fish's lifetime.
	FoodEaten       int
	FramesSurvived  int
	OffspringCount  int
}

// NewFishWithConfig constructs a fish whose starting energy and absolute
// max-energy are derived from cfg.Energy.DefaultMaxEnergy scaled by the
// genome's MaxEnergy multiplier.
func NewFishWithConfig(id EntityID, genome *Genome, pos Vector2, cfg *Config, startEnergyFraction float64) *Fish {
	maxEnergy := cfg.Energy.DefaultMaxEnergy * genome.MaxEnergy
	return &Fish{
		ID:               id,
		Generation:       0,
		Pos:              pos,
		Energy:           clamp(maxEnergy*startEnergyFraction, 0, maxEnergy),
		LifeStage:        Baby,
		Alive:            true,
		Genome:           genome,
		PredatorLastSeen: -1,
	}
}

// NewFishWithEnergy constructs a fish starting at an exact absolute energy
// value (clamped to its max-energy), rather than a fraction of it. Used by
// reproduction, where the newborn's starting energy is the fixed amount
// transferred out of its mother, not a function of its own genome.
func NewFishWithEnergy(id EntityID, genome *Genome, pos Vector2, cfg *Config, startEnergy float64) *Fish {
	maxEnergy := cfg.Energy.DefaultMaxEnergy * genome.MaxEnergy
	return &Fish{
		ID:               id,
		Generation:       0,
		Pos:              pos,
		Energy:           clamp(startEnergy, 0, maxEnergy),
		LifeStage:        Baby,
		Alive:            true,
		Genome:           genome,
		PredatorLastSeen: -1,
	}
}

// MaxEnergy returns this fish's absolute maximum energy.
func (f *Fish) MaxEnergy(cfg *Config) float64 {
	return cfg.Energy.DefaultMaxEnergy * f.Genome.MaxEnergy
}

// EnergyRatio returns Energy / MaxEnergy, used by behaviors and the
// critical-energy override of spec.md §4.4.
func (f *Fish) EnergyRatio(cfg *Config) float64 {
	max := f.MaxEnergy(cfg)
	if max <= 0 {
		return 0
	}
	return clamp(f.Energy/max, 0, 1)
}

// AddEnergy adds delta energy, clamped to [0, MaxEnergy] — the energy-bounds
// invariant of spec.md §3. Any part of delta the clamp discards is lost.
func (f *Fish) AddEnergy(delta float64, cfg *Config) {
	f.Energy = clamp(f.Energy+delta, 0, f.MaxEnergy(cfg))
}

// UpdateLifeStage recomputes LifeStage from Age against cfg's thresholds.
func (f *Fish) UpdateLifeStage(cfg *Config) {
	f.LifeStage = lifeStageFor(f.Age, cfg)
}

// IsAdult reports whether the fish has reached the Adult life stage (adults
// and elders are both eligible to reproduce).
func (f *Fish) IsAdult() bool {
	return f.LifeStage == Adult || f.LifeStage == Elder
}

// Snapshot produces the read-only EntitySnapshot for this fish.
func (f *Fish) Snapshot(cfg *Config) EntitySnapshot {
	return EntitySnapshot{
		ID:           f.ID,
		Kind:         KindFish,
		Pos:          f.Pos,
		Vel:          f.Vel,
		Age:          f.Age,
		Energy:       f.Energy,
		EnergyRatio:  f.EnergyRatio(cfg),
		GenomeDigest: genomeDigest(f.Genome),
		LifeStage:    f.LifeStage,
		VisualHue:    f.Genome.ColorHue,
	}
}
