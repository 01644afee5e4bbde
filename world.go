package tankworld

import "golang.org/x/sync/errgroup"

// World is the public façade over a simulation instance: the only thing a
// host (CLI, TUI, websocket server) talks to, per spec.md §6. The Inject*
// commands are queued and drained at the next tick's FRAME_START phase, so
// a caller can never inject state mid-tick. Pause, Resume and Reset are not
// queued: they take effect at the moment they are called.
type World struct {
	state  *SimState
	paused bool
}

// New constructs an empty world from a config and master seed.
func New(cfg *Config, seed uint64) *World {
	return &World{state: NewSimState(cfg, seed)}
}

// Tick advances the world by one frame, unless paused.
func (w *World) Tick() {
	if w.paused {
		return
	}
	w.state.Tick()
}

// RunUntil ticks until the frame counter reaches the given target.
func (w *World) RunUntil(frame uint64) {
	for w.state.Frame < frame {
		w.Tick()
	}
}

// Pause stops Tick from advancing the simulation until Resume is called.
// Queued commands still drain normally on the next call that does advance.
func (w *World) Pause() { w.paused = true }

// Resume un-pauses the world.
func (w *World) Resume() { w.paused = false }

// Reset discards all state and starts a fresh simulation with a new
// config and seed.
func (w *World) Reset(cfg *Config, seed uint64) {
	w.state = NewSimState(cfg, seed)
}

// Frame reports the current frame counter.
func (w *World) Frame() uint64 { return w.state.Frame }

func (w *World) enqueue(kind string, fn func(*SimState)) {
	w.state.pending = append(w.state.pending, pendingCommand{kind: kind, fn: fn})
}

// InjectFood queues a free-floating food item to appear at the start of
// the next tick.
func (w *World) InjectFood(pos Vector2, energyValue float64) {
	w.enqueue("inject_food", func(s *SimState) {
		id := s.AllocateID()
		s.Food[id] = NewFood(id, pos, energyValue, FoodAuto)
		s.Tracker.Ledger.RecordInflow(energyValue)
	})
}

// InjectFish queues a new fish with the given genome to appear at the
// start of the next tick, full-energy and untethered to any lineage.
func (w *World) InjectFish(genome *Genome, pos Vector2) {
	w.enqueue("inject_fish", func(s *SimState) {
		id := s.AllocateID()
		f := NewFishWithConfig(id, genome, pos, s.Config, 1.0)
		s.Fish[id] = f
		s.Tracker.RecordBirth(s, f)
	})
}

// InjectPlant queues a new stationary plant to appear at the start of the
// next tick.
func (w *World) InjectPlant(pos Vector2, genome PlantGenome) {
	w.enqueue("inject_plant", func(s *SimState) {
		id := s.AllocateID()
		s.Plants[id] = NewPlant(id, pos, genome)
	})
}

// InjectCrab queues a new predator to appear at the start of the next
// tick, patrolling a circle of the given radius around its spawn point.
func (w *World) InjectCrab(pos Vector2, patrolRadius float64) {
	w.enqueue("inject_crab", func(s *SimState) {
		id := s.AllocateID()
		s.Crabs[id] = NewCrab(id, pos, patrolRadius)
	})
}

// WorldSnapshot is a read-only, engine-independent view of the world at
// one frame, suitable for rendering or serialization.
type WorldSnapshot struct {
	Frame      uint64
	TimeOfDay  float64
	Fish       []EntitySnapshot
	FoodCount  int
	PlantCount int
	CrabCount  int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() WorldSnapshot {
	s := w.state
	fish := make([]EntitySnapshot, 0, len(s.Fish))
	for _, id := range sortedFishIDs(s) {
		fish = append(fish, s.Fish[id].Snapshot(s.Config))
	}
	return WorldSnapshot{
		Frame:      s.Frame,
		TimeOfDay:  s.TimeOfDay,
		Fish:       fish,
		FoodCount:  len(s.Food),
		PlantCount: len(s.Plants),
		CrabCount:  len(s.Crabs),
	}
}

// StatsBundle is the exported statistics view of spec.md §7.
type StatsBundle struct {
	Frame        uint64
	Algorithms   []AlgorithmReportRow
	Diversity    float64
	SurvivalRate float64
	Deaths       DeathCauses
	Ledger       EnergyLedger
}

// ExportStats captures the tracker's current derived reports.
func (w *World) ExportStats() StatsBundle {
	t := w.state.Tracker
	return StatsBundle{
		Frame:        w.state.Frame,
		Algorithms:   t.AlgorithmReport(),
		Diversity:    t.DiversityIndex(),
		SurvivalRate: t.SurvivalRate(),
		Deaths:       t.Deaths,
		Ledger:       t.Ledger,
	}
}

// VerifyDeterminism runs two independent worlds from the same config and
// seed to the same frame, concurrently, and reports whether their
// snapshots are bit-for-bit identical — the determinism property of
// spec.md §5/§8. Running the two instances concurrently (via errgroup)
// is itself part of the property under test: goroutine scheduling order
// must have no influence on the result.
func VerifyDeterminism(cfg *Config, seed uint64, frame uint64) (bool, error) {
	var snapA, snapB WorldSnapshot

	g := new(errgroup.Group)
	g.Go(func() error {
		w := New(cfg, seed)
		w.RunUntil(frame)
		snapA = w.Snapshot()
		return nil
	})
	g.Go(func() error {
		w := New(cfg, seed)
		w.RunUntil(frame)
		snapB = w.Snapshot()
		return nil
	})
	if err := g.Wait(); err != nil {
		return false, err
	}
	return snapshotsEqual(snapA, snapB), nil
}

func snapshotsEqual(a, b WorldSnapshot) bool {
	if a.Frame != b.Frame || a.TimeOfDay != b.TimeOfDay || a.FoodCount != b.FoodCount ||
		a.PlantCount != b.PlantCount || a.CrabCount != b.CrabCount || len(a.Fish) != len(b.Fish) {
		return false
	}
	for i := range a.Fish {
		if a.Fish[i] != b.Fish[i] {
			return false
		}
	}
	return true
}
