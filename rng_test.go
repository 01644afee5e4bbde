package tankworld

import "testing"

func TestRNGChildDeterministic(t *testing.T) {
	g1 := NewRNG(42)
	g2 := NewRNG(42)

	c1 := g1.Child(PhaseEntityAct, 7)
	c2 := g2.Child(PhaseEntityAct, 7)

	for i := 0; i < 10; i++ {
		a, b := c1.Float64(), c2.Float64()
		if a != b {
			t.Fatalf("child streams diverged at draw %d: %v != %v", i, a, b)
		}
	}
}

func TestRNGChildIndependentOfDrawOrder(t *testing.T) {
	// Deriving child B before reading from the master should not change
	// what child A produces, and vice versa.
	master1 := NewRNG(99)
	a1 := master1.Child(PhaseSpawn, 3)
	b1 := master1.Child(PhaseCollision, 3)
	_ = b1.Float64()
	firstDrawA1 := a1.Float64()

	master2 := NewRNG(99)
	b2 := master2.Child(PhaseCollision, 3)
	a2 := master2.Child(PhaseSpawn, 3)
	firstDrawA2 := a2.Float64()
	_ = b2

	if firstDrawA1 != firstDrawA2 {
		t.Fatalf("child stream depended on derivation order: %v != %v", firstDrawA1, firstDrawA2)
	}
}

func TestRNGChildSaltDiffers(t *testing.T) {
	g := NewRNG(7)
	a := g.Child(PhaseEntityAct, 1).ChildSalt(1)
	b := g.Child(PhaseEntityAct, 1).ChildSalt(2)
	if a.Float64() == b.Float64() {
		t.Fatalf("distinct salts produced identical first draws (not impossible, but vanishingly unlikely twice)")
	}
}

func TestRequireRNGPanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on nil RNG")
		}
	}()
	requireRNG(nil, "test")
}

func TestRNGIntnRejectsNonPositive(t *testing.T) {
	g := NewRNG(1)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for non-positive n")
		}
	}()
	g.Intn(0)
}

func TestRNGUniformDegenerateRange(t *testing.T) {
	g := NewRNG(1)
	if v := g.Uniform(5, 5); v != 5 {
		t.Fatalf("Uniform(5,5) = %v, want 5", v)
	}
	if v := g.Uniform(5, 3); v != 5 {
		t.Fatalf("Uniform with hi<lo should return lo, got %v", v)
	}
}
