package tankworld

// LifeStage is derived from a fish's age against the configured thresholds.
type LifeStage int

const (
	Baby LifeStage = iota
	Juvenile
	Adult
	Elder
)

func (s LifeStage) String() string {
	switch s {
	case Baby:
		return "baby"
	case Juvenile:
		return "juvenile"
	case Adult:
		return "adult"
	case Elder:
		return "elder"
	default:
		return "unknown_stage"
	}
}

func lifeStageFor(age int, cfg *Config) LifeStage {
	switch {
	case age >= cfg.LifeStage.ElderAge:
		return Elder
	case age >= cfg.LifeStage.AdultAge:
		return Adult
	case age >= cfg.LifeStage.JuvenileAge:
		return Juvenile
	default:
		return Baby
	}
}

// DeathCause records why an entity left the active set.
type DeathCause int

const (
	CauseUnknown DeathCause = iota
	CauseStarvation
	CauseOldAge
	CausePredation
	CausePokerLoss
)

func (c DeathCause) String() string {
	switch c {
	case CauseStarvation:
		return "starvation"
	case CauseOldAge:
		return "old_age"
	case CausePredation:
		return "predation"
	case CausePokerLoss:
		return "poker_loss"
	default:
		return "unknown"
	}
}

// MemoryKind tags what a FishMemory entry records.
type MemoryKind int

const (
	MemoryFood MemoryKind = iota
	MemoryDanger
)

// MemoryEntry is one bounded short-term memory record.
type MemoryEntry struct {
	Tick uint64
	Kind MemoryKind
	Pos  Vector2
}

// fishMemoryCapacity bounds the FIFO of recent food/danger locations a fish
// remembers, per spec.md §3.
const fishMemoryCapacity = 8

// FishMemory is a bounded FIFO of recent food/danger sightings, generalized
// from the teacher's DietaryMemory/EnvironmentalMemory bounded-history
// pattern (evosim entity.go) into a single fixed-capacity ring buffer.
type FishMemory struct {
	entries []MemoryEntry
}

// Remember appends a memory entry, evicting the oldest if at capacity.
func (m *FishMemory) Remember(entry MemoryEntry) {
	if len(m.entries) >= fishMemoryCapacity {
		m.entries = m.entries[1:]
	}
	m.entries = append(m.entries, entry)
}

// Recent returns the most recent entries of the given kind, oldest first.
func (m *FishMemory) Recent(kind MemoryKind) []MemoryEntry {
	var out []MemoryEntry
	for _, e := range m.entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// EntitySnapshot is the read-only per-entity view exported in a
// WorldSnapshot, per spec.md §6.
type EntitySnapshot struct {
	ID           EntityID
	Kind         EntityKind
	Pos          Vector2
	Vel          Vector2
	Age          int
	Energy       float64
	EnergyRatio  float64
	GenomeDigest uint64
	LifeStage    LifeStage
	Team         string
	VisualHue    float64
}

// genomeDigest produces a cheap, stable fingerprint of a genome for the
// snapshot stream, avoiding shipping the full genome to every observer on
// every tick.
func genomeDigest(g *Genome) uint64 {
	bits := func(f float64) uint64 { return uint64(f * 1e6) }
	h := mixSeed(
		bits(g.Speed), bits(g.Size), bits(g.VisionRange),
		bits(g.MetabolismRate), bits(g.MaxEnergy), bits(g.Fertility),
		uint64(g.AlgorithmID), uint64(g.PokerStrategy),
		bits(g.Aggression), bits(g.SocialTendency),
	)
	return h
}
