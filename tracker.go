package tankworld

import "sort"

// EventKind identifies the kind of notable occurrence recorded in the
// ecosystem event log, mirrored loosely on a central event bus pattern:
// every kind carries a Tick, an EntityID where one applies, and a free-form
// Metadata bag for kind-specific detail.
type EventKind int

const (
	EventBirth EventKind = iota
	EventDeath
	EventPokerOutcome
	EventCapacityReached
	EventExtinction
)

func (k EventKind) String() string {
	switch k {
	case EventBirth:
		return "birth"
	case EventDeath:
		return "death"
	case EventPokerOutcome:
		return "poker_outcome"
	case EventCapacityReached:
		return "capacity_reached"
	case EventExtinction:
		return "extinction"
	default:
		return "unknown_event"
	}
}

// Event is one entry in the ring-buffered ecosystem event log.
type Event struct {
	Frame    uint64
	Kind     EventKind
	EntityID EntityID
	Metadata map[string]any
}

// eventLogCapacity is the ring buffer's fixed size; the oldest event is
// evicted once the log is full.
const eventLogCapacity = 2000

// EventLog is a fixed-capacity ring buffer of Events, newest-overwrites-
// oldest once full.
type EventLog struct {
	buf   []Event
	next  int
	count int
}

// NewEventLog builds an empty ring buffer of the given capacity.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = eventLogCapacity
	}
	return &EventLog{buf: make([]Event, capacity)}
}

// Append records an event, evicting the oldest if the buffer is full.
func (l *EventLog) Append(e Event) {
	l.buf[l.next] = e
	l.next = (l.next + 1) % len(l.buf)
	if l.count < len(l.buf) {
		l.count++
	}
}

// All returns every retained event in chronological order.
func (l *EventLog) All() []Event {
	out := make([]Event, 0, l.count)
	if l.count < len(l.buf) {
		return append(out, l.buf[:l.count]...)
	}
	out = append(out, l.buf[l.next:]...)
	out = append(out, l.buf[:l.next]...)
	return out
}

// DeathCauses tallies how many fish have died of each cause, cumulative
// over the life of the simulation.
type DeathCauses struct {
	Starvation int
	OldAge     int
	Predation  int
	PokerLoss  int
	Unknown    int
}

func (d *DeathCauses) record(cause DeathCause) {
	switch cause {
	case CauseStarvation:
		d.Starvation++
	case CauseOldAge:
		d.OldAge++
	case CausePredation:
		d.Predation++
	case CausePokerLoss:
		d.PokerLoss++
	default:
		d.Unknown++
	}
}

// Total returns the sum of every recorded cause.
func (d DeathCauses) Total() int {
	return d.Starvation + d.OldAge + d.Predation + d.PokerLoss + d.Unknown
}

// AlgorithmStats accumulates performance data for one behavior algorithm
// across every fish that has ever carried it, for the evolutionary-success
// reports of spec.md §7.
type AlgorithmStats struct {
	AlgorithmID    AlgorithmID
	LivingCount    int
	EverBornCount  int
	TotalOffspring int
	TotalLifespan  int
	TotalDeaths    int
	Deaths         DeathCauses

	// Extinction bookkeeping: this algorithm's own zero-population window,
	// tracked independently of every other algorithm (spec.md §4.7/§8).
	zeroPopSinceFrame  uint64
	zeroPopActive      bool
	extinctionRecorded bool
}

// GenerationStats accumulates counts for one generation number.
type GenerationStats struct {
	Generation    uint32
	Born          int
	Died          int
	TotalLifespan int
}

// AvgLifespan returns the mean number of frames survived by members of this
// generation who have died so far, or 0 if none have.
func (g GenerationStats) AvgLifespan() float64 {
	if g.Died == 0 {
		return 0
	}
	return float64(g.TotalLifespan) / float64(g.Died)
}

// LineageRecord is the ancestry of one fish, retained after death so
// lineage queries keep working for extinct branches.
type LineageRecord struct {
	ID         EntityID
	ParentIDs  *[2]EntityID
	Generation uint32
	BornFrame  uint64
	DiedFrame  uint64 // 0 while alive
	DeathCause DeathCause
}

// EnergyLedger tracks every energy-creating and energy-destroying event —
// transfers between existing entities (eating, poker) move energy without
// touching the ledger, except for any part a fish's MaxEnergy clamp
// discards. Only true injections (new food, corpse food, a newborn's
// starting energy) and true destructions (metabolism actually burned, mating
// cost, the poker house cut, clamped-away gains, the remaining energy of a
// fish removed from the world) are recorded, so ledger.Balance() must equal
// the current total energy of all fish and food at any frame boundary — the
// closed-window conservation invariant of spec.md §7.
type EnergyLedger struct {
	Inflow  float64
	Outflow float64
}

func (l *EnergyLedger) RecordInflow(amount float64) {
	if amount > 0 {
		l.Inflow += amount
	}
}

func (l *EnergyLedger) RecordOutflow(amount float64) {
	if amount > 0 {
		l.Outflow += amount
	}
}

// Balance returns net energy injected minus destroyed since the ledger was
// created.
func (l EnergyLedger) Balance() float64 {
	return l.Inflow - l.Outflow
}

// Tracker is the ecosystem/statistics subsystem: it observes every frame
// and every notable event without ever influencing simulation outcomes.
type Tracker struct {
	Events *EventLog
	Algo   map[AlgorithmID]*AlgorithmStats
	Gen    map[uint32]*GenerationStats
	Deaths DeathCauses
	Ledger EnergyLedger
	Lineage map[EntityID]*LineageRecord

	framesPerExtinction uint64
}

// NewTracker builds an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		Events:              NewEventLog(eventLogCapacity),
		Algo:                make(map[AlgorithmID]*AlgorithmStats),
		Gen:                 make(map[uint32]*GenerationStats),
		Lineage:             make(map[EntityID]*LineageRecord),
		framesPerExtinction: 1000,
	}
}

func (t *Tracker) algoStats(id AlgorithmID) *AlgorithmStats {
	s, ok := t.Algo[id]
	if !ok {
		s = &AlgorithmStats{AlgorithmID: id}
		t.Algo[id] = s
	}
	return s
}

func (t *Tracker) genStats(gen uint32) *GenerationStats {
	s, ok := t.Gen[gen]
	if !ok {
		s = &GenerationStats{Generation: gen}
		t.Gen[gen] = s
	}
	return s
}

// RecordBirth registers a newborn fish: its lineage, generation stats, and
// algorithm stats, plus the energy it started with as a ledger inflow.
func (t *Tracker) RecordBirth(s *SimState, child *Fish) {
	t.Lineage[child.ID] = &LineageRecord{
		ID:         child.ID,
		ParentIDs:  child.ParentIDs,
		Generation: child.Generation,
		BornFrame:  s.Frame,
	}
	gs := t.genStats(child.Generation)
	gs.Born++

	as := t.algoStats(child.Genome.AlgorithmID)
	as.LivingCount++
	as.EverBornCount++
	if child.ParentIDs != nil {
		for _, pid := range child.ParentIDs {
			if ps, ok := t.Algo[s.parentAlgorithmOf(pid)]; ok && pid != 0 {
				ps.TotalOffspring++
			}
		}
	}

	t.Ledger.RecordInflow(child.Energy)
	t.Events.Append(Event{Frame: s.Frame, Kind: EventBirth, EntityID: child.ID, Metadata: map[string]any{
		"generation": child.Generation,
	}})
}

// parentAlgorithmOf looks up a parent's current algorithm id if still
// alive; lineage-based offspring attribution is best-effort once a parent
// has died, since its genome is not retained past death.
func (s *SimState) parentAlgorithmOf(id EntityID) AlgorithmID {
	if f, ok := s.Fish[id]; ok {
		return f.Genome.AlgorithmID
	}
	return AlgoComposable
}

// RecordDeath registers a fish's death: lineage close-out, death-cause
// tallies, and algorithm/generation stats. It does not touch the energy
// ledger; killFish records the dead fish's remaining energy as an outflow
// and its corpse food as an inflow.
func (t *Tracker) RecordDeath(s *SimState, f *Fish, cause DeathCause) {
	t.Deaths.record(cause)

	if rec, ok := t.Lineage[f.ID]; ok {
		rec.DiedFrame = s.Frame
		rec.DeathCause = cause
	}

	gs := t.genStats(f.Generation)
	gs.Died++
	gs.TotalLifespan += f.FramesSurvived

	as := t.algoStats(f.Genome.AlgorithmID)
	if as.LivingCount > 0 {
		as.LivingCount--
	}
	as.TotalDeaths++
	as.TotalLifespan += f.FramesSurvived
	as.Deaths.record(cause)

	t.Events.Append(Event{Frame: s.Frame, Kind: EventDeath, EntityID: f.ID, Metadata: map[string]any{
		"cause": cause.String(),
		"age":   f.Age,
	}})
}

// RecordPokerOutcome logs a settled hand and its house cut as a ledger
// outflow (the rake is destroyed, not transferred to any entity).
func (t *Tracker) RecordPokerOutcome(s *SimState, outcome PokerOutcome) {
	t.Ledger.RecordOutflow(outcome.HouseCut)
	t.Events.Append(Event{Frame: s.Frame, Kind: EventPokerOutcome, EntityID: outcome.WinnerID, Metadata: map[string]any{
		"seat_a":   outcome.SeatAID,
		"seat_b":   outcome.SeatBID,
		"split":    outcome.Split,
		"showdown": outcome.Showdown,
		"transfer": outcome.PotTransferToWinner,
	}})
}

// RecordCapacityReached logs that reproduction was refused this frame
// because the population cap was hit.
func (t *Tracker) RecordCapacityReached(s *SimState) {
	t.Events.Append(Event{Frame: s.Frame, Kind: EventCapacityReached, Metadata: map[string]any{
		"population": len(s.Fish),
	}})
}

// RecordFrame runs at FRAME_END: it tracks each algorithm's own
// zero-population window independently, per spec.md §4.7/§8 ("an
// algorithm's current_population has been 0 for > 1000 frames"). An
// algorithm going extinct while others thrive must still fire its own
// one-shot event; a global population check would miss it entirely. Each
// algorithm's extinction is recorded at most once per continuous
// zero-population stretch of framesPerExtinction frames or more; counters
// already accumulated are frozen, not reset, once it fires.
func (t *Tracker) RecordFrame(s *SimState) {
	ids := make([]AlgorithmID, 0, len(t.Algo))
	for id := range t.Algo {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		as := t.Algo[id]
		if as.LivingCount > 0 {
			as.zeroPopActive = false
			as.extinctionRecorded = false
			continue
		}

		if !as.zeroPopActive {
			as.zeroPopActive = true
			as.zeroPopSinceFrame = s.Frame
			continue
		}
		if as.extinctionRecorded {
			continue
		}
		if s.Frame-as.zeroPopSinceFrame >= t.framesPerExtinction {
			as.extinctionRecorded = true
			t.Events.Append(Event{Frame: s.Frame, Kind: EventExtinction, Metadata: map[string]any{
				"algorithm_id": id,
				"since_frame":  as.zeroPopSinceFrame,
			}})
		}
	}
}

func (t *Tracker) currentTotalEnergy(s *SimState) float64 {
	total := 0.0
	for _, f := range s.Fish {
		total += f.Energy
	}
	for _, food := range s.Food {
		total += food.EnergyValue
	}
	return total
}

// VerifyConservation reports whether the ledger's tracked balance accounts
// for the full system energy, within the given epsilon. A Tracker always
// starts out paired with an empty SimState, so the baseline is always zero:
// every unit of energy that will ever exist enters through a RecordInflow
// call and leaves through a RecordOutflow call, making the ledger balance
// and the live total directly comparable at any frame boundary. This is the
// closed-window conservation check of spec.md §7/§8.
func (t *Tracker) VerifyConservation(s *SimState, epsilon float64) bool {
	expected := t.Ledger.Balance()
	actual := t.currentTotalEnergy(s)
	diff := expected - actual
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
