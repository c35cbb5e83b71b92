package solver

import "testing"

func TestPermutationSetFromRule(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	ps := permutationSetFromRule(r)
	if len(ps.permus) != 2 {
		t.Fatalf("a {1,{a,b}} rule has 2 permutations (mine=a xor mine=b), got %d", len(ps.permus))
	}
	if ps.constrained {
		t.Error("a freshly built permutation set should not be constrained")
	}
}

func TestPermutationSetRemove(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	ps := permutationSetFromRule(r)
	var toRemove permutation
	for _, p := range ps.permus {
		toRemove = p
		break
	}
	ps.remove(toRemove)
	if len(ps.permus) != 1 {
		t.Fatalf("after removing one permutation, expected 1 left, got %d", len(ps.permus))
	}
	if !ps.constrained {
		t.Error("removing a permutation should mark the set constrained")
	}
}

func TestPermutationSetToRule(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	ps := permutationSetFromRule(r)
	back, err := ps.toRule()
	if err != nil {
		t.Fatalf("toRule failed: %v", err)
	}
	if back.NumMines != 1 || !back.Cells.equal(newCellSet(a, b)) {
		t.Errorf("toRule() = %+v, want {NumMines: 1, Cells: {a,b}}", back)
	}
}

func TestPermutationSetDecomposeIndependentRule(t *testing.T) {
	// {1,{a,b}} and {1,{c,d}} combined as one rule over all four should
	// decompose back into the two independent halves once constrained.
	a, b, c, d := sc(1, "a"), sc(2, "b"), sc(3, "c"), sc(4, "d")
	r, _ := newRule(2, newCellSet(a, b, c, d), 4)
	ps := permutationSetFromRule(r)

	// Simulate cross-elimination narrowing this down to exactly the
	// combinations where each pair contributes exactly one mine.
	narrowed := make(map[string]permutation)
	for k, p := range ps.permus {
		if p.mapping[a]+p.mapping[b] == 1 && p.mapping[c]+p.mapping[d] == 1 {
			narrowed[k] = p
		}
	}
	ps.permus = narrowed
	ps.constrained = true

	decomp := ps.decompose()
	if len(decomp) != 2 {
		t.Fatalf("expected the independent rule to factor into 2 pieces, got %d", len(decomp))
	}
	for _, d := range decomp {
		if d.cells.numCells() != 2 {
			t.Errorf("each factor should cover 2 cells, got %d", d.cells.numCells())
		}
	}
}

func TestPermutationSetDecomposeUnconstrainedIsNoOp(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	r, _ := newRule(1, newCellSet(a, b), 2)
	ps := permutationSetFromRule(r)
	decomp := ps.decompose()
	if len(decomp) != 1 || decomp[0] != ps {
		t.Error("an unconstrained permutation set should skip decomposition")
	}
}
