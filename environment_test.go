package tankworld

import "testing"

func TestEnvironmentNeighborsAscendingOrder(t *testing.T) {
	env := NewEnvironment(200, 200, 40)
	env.Insert(5, KindFish, Vector2{X: 10, Y: 10})
	env.Insert(2, KindFish, Vector2{X: 11, Y: 10})
	env.Insert(9, KindFish, Vector2{X: 9, Y: 10})

	got := env.Neighbors(Vector2{X: 10, Y: 10}, 50, KindFish)
	want := []EntityID{2, 5, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEnvironmentNearestTieBreaksByAscendingID(t *testing.T) {
	env := NewEnvironment(200, 200, 40)
	env.Insert(7, KindFish, Vector2{X: 10, Y: 20})
	env.Insert(3, KindFish, Vector2{X: 10, Y: 0})

	id, ok := env.Nearest(Vector2{X: 10, Y: 10}, KindFish)
	if !ok || id != 3 {
		t.Fatalf("Nearest = (%v, %v), want (3, true)", id, ok)
	}
}

func TestEnvironmentRemoveAndUpdate(t *testing.T) {
	env := NewEnvironment(200, 200, 40)
	env.Insert(1, KindFood, Vector2{X: 5, Y: 5})
	env.Remove(1)
	if _, ok := env.PositionOf(1); ok {
		t.Fatal("expected removed entity to be gone")
	}

	env.Insert(2, KindFood, Vector2{X: 5, Y: 5})
	env.Update(2, Vector2{X: 90, Y: 90})
	pos, ok := env.PositionOf(2)
	if !ok || pos != (Vector2{X: 90, Y: 90}) {
		t.Fatalf("PositionOf after Update = (%v, %v)", pos, ok)
	}
}

func TestEnvironmentResetClearsAll(t *testing.T) {
	env := NewEnvironment(200, 200, 40)
	env.Insert(1, KindFish, Vector2{X: 1, Y: 1})
	env.Reset()
	if _, ok := env.PositionOf(1); ok {
		t.Fatal("expected Reset to clear all entities")
	}
	if _, ok := env.Nearest(Vector2{}, KindFish); ok {
		t.Fatal("expected empty environment after Reset")
	}
}
