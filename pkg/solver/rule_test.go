package solver

import "testing"

func sc(id int, cells ...Cell) *Supercell {
	return &Supercell{id: id, cells: cells}
}

func TestNewRuleRejectsImpossibleCounts(t *testing.T) {
	a := sc(1, "a")
	if _, err := newRule(2, newCellSet(a), 1); !IsInconsistent(err) {
		t.Errorf("expected Inconsistent for num_mines > num_cells, got %v", err)
	}
	if _, err := newRule(-1, newCellSet(a), 1); !IsInconsistent(err) {
		t.Errorf("expected Inconsistent for negative num_mines, got %v", err)
	}
}

func TestRuleIsTrivial(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r1, _ := newRule(1, newCellSet(a), 1)
	if !r1.isTrivial() {
		t.Error("single-supercell rule should be trivial")
	}
	r2, _ := newRule(1, newCellSet(a, b), 2)
	if r2.isTrivial() {
		t.Error("two-supercell rule should not be trivial")
	}
}

func TestRuleIsSubruleOf(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	parent, _ := newRule(1, newCellSet(a, b), 2)
	child, _ := newRule(1, newCellSet(a), 1)
	if !child.isSubruleOf(parent) {
		t.Error("{a} should be a subrule of {a,b}")
	}
	if parent.isSubruleOf(child) {
		t.Error("{a,b} should not be a subrule of {a}")
	}
}

func TestRuleSubtract(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	parent, _ := newRule(1, newCellSet(a, b), 2)
	child, _ := newRule(1, newCellSet(a), 1)

	diff, err := parent.subtract(child)
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if diff.NumMines != 0 || diff.NumCells != 1 || !diff.Cells.equal(newCellSet(b)) {
		t.Errorf("subtract = {mines=%d, cells=%v, numCells=%d}, want {0, {b}, 1}", diff.NumMines, diff.Cells, diff.NumCells)
	}
}

func TestRuleSubtractInconsistent(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	parent, _ := newRule(0, newCellSet(a, b), 2)
	child, _ := newRule(1, newCellSet(a), 1)

	if _, err := parent.subtract(child); !IsInconsistent(err) {
		t.Errorf("expected Inconsistent when subtraction drives mines negative, got %v", err)
	}
}

func TestRuleDecomposeAllSafe(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(0, newCellSet(a, b), 2)
	out, err := r.decompose()
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("decompose of all-safe rule = %d rules, want 2", len(out))
	}
	for _, rr := range out {
		if rr.NumMines != 0 {
			t.Errorf("decomposed rule has NumMines=%d, want 0", rr.NumMines)
		}
	}
}

func TestRuleDecomposeAllMines(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b", "c")
	r, _ := newRule(3, newCellSet(a, b), 3)
	out, err := r.decompose()
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("decompose of all-mine rule = %d rules, want 2", len(out))
	}
	total := 0
	for _, rr := range out {
		if rr.NumMines != rr.NumCells {
			t.Errorf("decomposed rule should be fully mined: %+v", rr)
		}
		total += rr.NumMines
	}
	if total != 3 {
		t.Errorf("decomposed mine totals sum to %d, want 3", total)
	}
}

func TestRuleDecomposeNoOp(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	out, err := r.decompose()
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(out) != 1 || out[0] != r {
		t.Errorf("a mixed rule should decompose to itself unchanged, got %v", out)
	}
}

func TestRuleDecomposeZeroRule(t *testing.T) {
	a := sc(1, "a")
	parent, _ := newRule(1, newCellSet(a), 1)
	zero, err := parent.subtract(parent)
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	out, err := zero.decompose()
	if err != nil {
		t.Fatalf("decompose failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("a rule over no cells should decompose to nothing, got %v", out)
	}
}
