package tankworld

import "testing"

func TestNewCrabPatrolsAroundItsOwnCenter(t *testing.T) {
	c := NewCrab(1, Vector2{X: 100, Y: 100}, 30)
	start := c.Pos
	for i := 0; i < 20; i++ {
		c.Patrol(800, 600)
	}
	if c.Pos == start {
		t.Fatal("expected the crab to move while patrolling")
	}
	if dist := c.Pos.DistanceTo(Vector2{X: 100, Y: 100}); dist > 60 {
		t.Fatalf("expected the crab to stay near its patrol center, got distance %v", dist)
	}
}

func TestCrabChaseMovesTowardPrey(t *testing.T) {
	c := NewCrab(1, Vector2{X: 0, Y: 0}, 30)
	prey := Vector2{X: 100, Y: 0}

	before := c.Pos.DistanceTo(prey)
	c.Chase(prey, 800, 600)
	after := c.Pos.DistanceTo(prey)

	if after >= before {
		t.Fatalf("expected Chase to close the distance to prey, before=%v after=%v", before, after)
	}
}
