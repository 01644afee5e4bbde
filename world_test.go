package tankworld

import "testing"

func TestWorldInjectFishAppearsNextTick(t *testing.T) {
	cfg := DefaultConfig()
	w := New(cfg, 1)
	genome := RandomGenome(NewRNG(2), cfg)
	w.InjectFish(genome, Vector2{X: 10, Y: 10})

	if len(w.Snapshot().Fish) != 0 {
		t.Fatal("fish should not appear before the next tick drains the command queue")
	}
	w.Tick()
	if len(w.Snapshot().Fish) != 1 {
		t.Fatalf("expected 1 fish after one tick, got %d", len(w.Snapshot().Fish))
	}
}

func TestWorldPauseStopsTicking(t *testing.T) {
	cfg := DefaultConfig()
	w := New(cfg, 1)
	w.Pause()
	w.Tick()
	w.Tick()
	if w.Frame() != 0 {
		t.Fatalf("expected frame to stay at 0 while paused, got %d", w.Frame())
	}
	w.Resume()
	w.Tick()
	if w.Frame() != 1 {
		t.Fatalf("expected frame 1 after resuming, got %d", w.Frame())
	}
}

func TestWorldRunUntil(t *testing.T) {
	cfg := DefaultConfig()
	w := New(cfg, 1)
	w.RunUntil(30)
	if w.Frame() != 30 {
		t.Fatalf("expected frame 30, got %d", w.Frame())
	}
}

func TestVerifyDeterminismHoldsAcrossConcurrentRuns(t *testing.T) {
	cfg := DefaultConfig()
	ok, err := VerifyDeterminism(cfg, 123, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected two independently-run worlds with the same seed to match exactly")
	}
}
