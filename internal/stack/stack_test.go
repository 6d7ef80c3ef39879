package stack

import "testing"

func TestNextIsStrictlyIncreasing(t *testing.T) {
	r := NewRegistry(0)
	prev := r.Max()
	for i := 0; i < 50; i++ {
		n := r.Next()
		if n <= prev {
			t.Fatalf("Next returned %d after %d; orders must strictly increase", n, prev)
		}
		prev = n
	}
}

func TestBaseline(t *testing.T) {
	r := NewRegistry(500)
	if r.Max() != 500 {
		t.Fatalf("expected max=500 before any assignment, got %d", r.Max())
	}
	if got := r.Next(); got != 501 {
		t.Fatalf("expected first order 501, got %d", got)
	}
}

func TestZeroBaselineFallsBackToDefault(t *testing.T) {
	r := NewRegistry(0)
	if got := r.Next(); got != DefaultBaseline+1 {
		t.Fatalf("expected %d, got %d", DefaultBaseline+1, got)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry(100)
	b := NewRegistry(100)
	a.Next()
	a.Next()
	if b.Max() != 100 {
		t.Fatalf("registry b observed a's increments: max=%d", b.Max())
	}
}
