package solver

import "testing"

func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}

func TestFrontTallyFromTrivialRule(t *testing.T) {
	a := sc(1, "a", "b") // size-2 supercell
	r, _ := newRule(1, newCellSet(a), 2)
	ft, err := frontTallyFromTrivialRule(r)
	if err != nil {
		t.Fatalf("frontTallyFromTrivialRule failed: %v", err)
	}
	if len(ft.subtallies) != 1 {
		t.Fatalf("a determined rule has exactly one bucket, got %d", len(ft.subtallies))
	}
	st := ft.subtallies[1]
	if !almostEqual(st.total, 2) { // C(2,1) = 2
		t.Errorf("bucket total = %v, want 2", st.total)
	}
}

func TestFrontTallyFromTrivialRuleRejectsNonTrivial(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	if _, err := frontTallyFromTrivialRule(r); !IsInvalidArgument(err) {
		t.Errorf("expected Invalid argument for a non-trivial rule, got %v", err)
	}
}

func TestTallyFrontNormalizesToExpectedCounts(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	pr, err := permuteAndInterfere([]*Rule{r})
	if err != nil {
		t.Fatalf("permuteAndInterfere failed: %v", err)
	}
	ft, err := tallyFront(pr)
	if err != nil {
		t.Fatalf("tallyFront failed: %v", err)
	}
	collapsed := ft.collapse()
	if !almostEqual(collapsed[a], 0.5) || !almostEqual(collapsed[b], 0.5) {
		t.Errorf("collapse() = %v, want a=0.5, b=0.5", collapsed)
	}
}

func TestFrontTallyForOther(t *testing.T) {
	ft := frontTallyForOther(4, map[int]float64{1: 3, 2: 1})
	collapsed := ft.collapse()
	if len(collapsed) != 1 {
		t.Fatalf("expected exactly one synthetic supercell, got %d entries", len(collapsed))
	}
	for sc, expected := range collapsed {
		if !sc.isOther() {
			t.Error("expected the synthetic uncharted supercell")
		}
		want := (3.0*1 + 1.0*2) / 4.0
		if !almostEqual(expected, want) {
			t.Errorf("expected value = %v, want %v", expected, want)
		}
	}
}
