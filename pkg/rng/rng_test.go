package rng

import "testing"

func TestDeterminism(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		va, vb := a.Rn2(100), b.Rn2(100)
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestRn2Bounds(t *testing.T) {
	r := New(7)

	for i := 0; i < 1000; i++ {
		v := r.Rn2(6)
		if v < 0 || v > 5 {
			t.Fatalf("Rn2(6) returned %d, want 0..5", v)
		}
	}

	if v := r.Rn2(0); v != 0 {
		t.Errorf("Rn2(0) = %d, want 0", v)
	}
	if v := r.Rn2(-3); v != 0 {
		t.Errorf("Rn2(-3) = %d, want 0", v)
	}
}

func TestRndBounds(t *testing.T) {
	r := New(7)

	for i := 0; i < 1000; i++ {
		v := r.Rnd(6)
		if v < 1 || v > 6 {
			t.Fatalf("Rnd(6) returned %d, want 1..6", v)
		}
	}

	if v := r.Rnd(0); v != 0 {
		t.Errorf("Rnd(0) = %d, want 0", v)
	}
}

func TestDice(t *testing.T) {
	r := New(1)

	for i := 0; i < 100; i++ {
		v := r.D(3, 6)
		if v < 3 || v > 18 {
			t.Fatalf("D(3,6) returned %d, want 3..18", v)
		}
	}
}

func TestSeedIsKept(t *testing.T) {
	r := New(12345)
	r.Rn2(10)
	if r.Seed() != 12345 {
		t.Errorf("Seed() = %d, want 12345", r.Seed())
	}
}

func TestPercentExtremes(t *testing.T) {
	r := New(3)

	for i := 0; i < 100; i++ {
		if r.Percent(0) {
			t.Fatal("Percent(0) returned true")
		}
		if !r.Percent(100) {
			t.Fatal("Percent(100) returned false")
		}
	}
}
