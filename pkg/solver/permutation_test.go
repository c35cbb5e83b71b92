package solver

import "testing"

func TestPermuteMinesCount(t *testing.T) {
	a, b, c := sc(1, "a"), sc(2, "b"), sc(3, "c")
	perms := permuteMines(1, []*Supercell{a, b, c})
	if len(perms) != 3 {
		t.Fatalf("permuteMines(1, 3 singleton cells) = %d permutations, want 3", len(perms))
	}
	for _, p := range perms {
		if p.k() != 1 {
			t.Errorf("permutation %v has k=%d, want 1", p, p.k())
		}
	}
}

func TestPermuteMinesRespectsSupercellSize(t *testing.T) {
	a := sc(1, "a", "b") // size-2 supercell
	perms := permuteMines(2, []*Supercell{a})
	if len(perms) != 1 {
		t.Fatalf("permuteMines(2, {size-2 supercell}) = %d permutations, want 1", len(perms))
	}
	if perms[0].mapping[a] != 2 {
		t.Errorf("expected the full supercell assigned, got %d", perms[0].mapping[a])
	}
}

func TestPermuteMinesImpossibleCount(t *testing.T) {
	a := sc(1, "a")
	if perms := permuteMines(2, []*Supercell{a}); perms != nil {
		t.Errorf("permuteMines(2, {size-1 supercell}) should yield nothing, got %v", perms)
	}
}

func TestPermutationKeyIsOrderIndependent(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	p1 := newPermutation(map[*Supercell]int{a: 1, b: 0})
	p2 := newPermutation(map[*Supercell]int{b: 0, a: 1})
	if p1.key() != p2.key() {
		t.Errorf("key() should not depend on map construction order: %q != %q", p1.key(), p2.key())
	}
}

func TestPermutationCompatible(t *testing.T) {
	a, b := sc(1, "a"), sc(2, "b")
	p1 := newPermutation(map[*Supercell]int{a: 1, b: 0})
	p2 := newPermutation(map[*Supercell]int{a: 1})
	p3 := newPermutation(map[*Supercell]int{a: 0})
	if !p1.compatible(p2) {
		t.Error("p1 and p2 agree on their common supercell and should be compatible")
	}
	if p1.compatible(p3) {
		t.Error("p1 and p3 disagree on a and should not be compatible")
	}
}

func TestPermutationMultiplicity(t *testing.T) {
	a := sc(1, "a", "b", "c") // size 3
	p := newPermutation(map[*Supercell]int{a: 2})
	if m := p.multiplicity(); m != 3 {
		t.Errorf("multiplicity() = %v, want C(3,2) = 3", m)
	}
}
