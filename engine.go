package tankworld

import "sort"

// SimState is the entire mutable state of one simulation instance. Nothing
// about a tick is allowed to depend on anything outside this struct plus
// its own Config and RNG, per spec.md §5's determinism requirement.
type SimState struct {
	Frame     uint64
	Config    *Config
	Env       *Environment
	RNG       *RNG
	TimeOfDay float64

	Fish   map[EntityID]*Fish
	Plants map[EntityID]*Plant
	Food   map[EntityID]*Food
	Crabs  map[EntityID]*Crab

	Tracker *Tracker

	nextID  EntityID
	pending []pendingCommand
}

// pendingCommand is a World-level command, queued for FRAME_START per
// spec.md §6.
type pendingCommand struct {
	kind string
	fn   func(*SimState)
}

// NewSimState constructs an empty world ready to be populated and ticked.
func NewSimState(cfg *Config, seed uint64) *SimState {
	maxVision := cfg.PhysicalBounds["vision_range"].Max * 40
	return &SimState{
		Config:  cfg,
		Env:     NewEnvironment(cfg.Arena.Width, cfg.Arena.Height, maxVision),
		RNG:     NewRNG(seed),
		Fish:    make(map[EntityID]*Fish),
		Plants:  make(map[EntityID]*Plant),
		Food:    make(map[EntityID]*Food),
		Crabs:   make(map[EntityID]*Crab),
		Tracker: NewTracker(),
		nextID:  1,
	}
}

// AllocateID returns a fresh, monotonically increasing EntityID unique for
// the life of this SimState.
func (s *SimState) AllocateID() EntityID {
	id := s.nextID
	s.nextID++
	return id
}

func sortedFishIDs(s *SimState) []EntityID {
	ids := make([]EntityID, 0, len(s.Fish))
	for id, f := range s.Fish {
		if f.Alive {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedPlantIDs(s *SimState) []EntityID {
	ids := make([]EntityID, 0, len(s.Plants))
	for id := range s.Plants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedCrabIDs(s *SimState) []EntityID {
	ids := make([]EntityID, 0, len(s.Crabs))
	for id := range s.Crabs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Tick advances the simulation by exactly one frame, running the ten fixed
// phases of spec.md §5 in order. Phases are never reordered or skipped;
// within a phase, entities are always visited in ascending EntityID order.
func (s *SimState) Tick() {
	phaseFrameStart(s)
	phaseTimeUpdate(s)
	phaseEnvironmentRebuild(s)
	phaseEntityAct(s)
	phaseLifecycle(s)
	phaseSpawn(s)
	phaseCollision(s)
	phaseInteraction(s)
	phaseReproduction(s)
	phaseFrameEnd(s)
}

func phaseFrameStart(s *SimState) {
	pending := s.pending
	s.pending = nil
	for _, cmd := range pending {
		cmd.fn(s)
	}
}

func phaseTimeUpdate(s *SimState) {
	ticksPerDay := s.Config.Time.TicksPerDay
	if ticksPerDay <= 0 {
		ticksPerDay = 1
	}
	s.TimeOfDay = float64(s.Frame%uint64(ticksPerDay)) / float64(ticksPerDay)
	s.Frame++
}

func phaseEnvironmentRebuild(s *SimState) {
	s.Env.Reset()
	for _, id := range sortedFishIDs(s) {
		s.Env.Insert(id, KindFish, s.Fish[id].Pos)
	}
	for _, id := range sortedPlantIDs(s) {
		s.Env.Insert(id, KindPlant, s.Plants[id].Pos)
	}
	for id := range s.Food {
		s.Env.Insert(id, KindFood, s.Food[id].Pos)
	}
	for _, id := range sortedCrabIDs(s) {
		s.Env.Insert(id, KindCrab, s.Crabs[id].Pos)
	}
}

func phaseEntityAct(s *SimState) {
	runBehaviorPhase(s)
	runCrabPhase(s)
}

func phaseLifecycle(s *SimState) {
	runLifecyclePhase(s)
}

func phaseSpawn(s *SimState) {
	runSpawnPhase(s)
}

func phaseCollision(s *SimState) {
	runCollisionPhase(s)
}

func phaseInteraction(s *SimState) {
	runPokerPhase(s)
}

func phaseReproduction(s *SimState) {
	runReproductionPhase(s)
}

func phaseFrameEnd(s *SimState) {
	s.Tracker.RecordFrame(s)
}
