package ids

import "testing"

func TestMonotonicStrictlyIncreasing(t *testing.T) {
	g := NewMonotonic(0)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := g.Next()
		if id <= prev {
			t.Fatalf("Next() = %d after %d, want strictly increasing", id, prev)
		}
		prev = id
	}
}

func TestMonotonicSeed(t *testing.T) {
	g := NewMonotonic(41)
	if got := g.Next(); got != 42 {
		t.Errorf("Next() = %d, want 42", got)
	}
}

func TestMonotonicNegativeSeedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewMonotonic(-1) did not panic")
		}
	}()
	NewMonotonic(-1)
}

func TestStableRenumber(t *testing.T) {
	g := NewStable(5)
	if got := g.Renumber(10); got != 6 {
		t.Errorf("Renumber(10) = %d, want 6", got)
	}
	if got := g.Renumber(10); got != 6 {
		t.Errorf("repeated Renumber(10) = %d, want 6", got)
	}
	if got := g.Renumber(0); got != 0 {
		t.Errorf("Renumber(0) = %d, want 0", got)
	}
	if got := g.Renumber(11); got != 7 {
		t.Errorf("Renumber(11) = %d, want 7", got)
	}
}

func TestStableDistinctInputsDistinctOutputs(t *testing.T) {
	g := NewStable(0)
	seen := map[int64]int64{}
	for id := int64(100); id > 0; id-- {
		to := g.Renumber(id)
		if from, dup := seen[to]; dup {
			t.Fatalf("Renumber(%d) = %d, already produced for %d", id, to, from)
		}
		seen[to] = id
	}
}

func TestStableHas(t *testing.T) {
	g := NewStable(0)
	if g.Has(3) {
		t.Error("Has(3) = true before Renumber")
	}
	g.Renumber(3)
	if !g.Has(3) {
		t.Error("Has(3) = false after Renumber")
	}
	if g.Has(0) {
		t.Error("Has(0) = true, sentinel is never recorded")
	}
}

func TestStableMemoize(t *testing.T) {
	g := NewStable(0)
	g.Memoize(50, 9)
	if got := g.Renumber(50); got != 9 {
		t.Errorf("Renumber(50) = %d after Memoize(50, 9), want 9", got)
	}
	// Fresh ids still come from the monotonic sequence.
	if got := g.Renumber(51); got != 1 {
		t.Errorf("Renumber(51) = %d, want 1", got)
	}
}

func TestStableNegativeIDPanics(t *testing.T) {
	g := NewStable(0)
	defer func() {
		if recover() == nil {
			t.Fatal("Renumber(-2) did not panic")
		}
	}()
	g.Renumber(-2)
}
