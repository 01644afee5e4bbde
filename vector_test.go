package tankworld

import "testing"

func TestVectorNormalizeZero(t *testing.T) {
	v := Vector2{}.Normalize()
	if v != (Vector2{}) {
		t.Fatalf("normalizing the zero vector should stay zero, got %v", v)
	}
}

func TestVectorNormalizeUnitLength(t *testing.T) {
	v := Vector2{X: 3, Y: 4}.Normalize()
	if got := v.Length(); got < 0.999 || got > 1.001 {
		t.Fatalf("normalized length = %v, want ~1", got)
	}
}

func TestVectorClamp(t *testing.T) {
	v := Vector2{X: -5, Y: 999}.Clamp(100, 100)
	if v.X != 0 || v.Y != 100 {
		t.Fatalf("Clamp = %v, want {0 100}", v)
	}
}

func TestVectorDistanceTo(t *testing.T) {
	a := Vector2{X: 0, Y: 0}
	b := Vector2{X: 3, Y: 4}
	if d := a.DistanceTo(b); d != 5 {
		t.Fatalf("DistanceTo = %v, want 5", d)
	}
}
