package solver

import "testing"

func findSupercell(t *testing.T, supercells []*Supercell, cell Cell) *Supercell {
	t.Helper()
	for _, sc := range supercells {
		for _, c := range sc.cells {
			if c == cell {
				return sc
			}
		}
	}
	t.Fatalf("no supercell contains cell %v", cell)
	return nil
}

func TestCondenseGroupsIdenticalSignatures(t *testing.T) {
	rules := []RawRule{
		NewRawRule(1, []Cell{"a", "b"}),
	}
	condensed, supercells, err := condenseSupercells(rules)
	if err != nil {
		t.Fatalf("condenseSupercells failed: %v", err)
	}
	if len(supercells) != 1 {
		t.Fatalf("expected a and b to merge into one supercell, got %d supercells", len(supercells))
	}
	if supercells[0].Len() != 2 {
		t.Errorf("merged supercell has %d cells, want 2", supercells[0].Len())
	}
	if len(condensed) != 1 || len(condensed[0].Cells) != 1 {
		t.Errorf("condensed rule should reference exactly one supercell, got %+v", condensed[0])
	}
}

func TestCondenseKeepsDistinctSignaturesSeparate(t *testing.T) {
	rules := []RawRule{
		NewRawRule(1, []Cell{"a", "b"}),
		NewRawRule(1, []Cell{"b", "c"}),
	}
	condensed, supercells, err := condenseSupercells(rules)
	if err != nil {
		t.Fatalf("condenseSupercells failed: %v", err)
	}
	if len(supercells) != 3 {
		t.Fatalf("a, b, c each have distinct rule signatures and should stay separate, got %d supercells", len(supercells))
	}
	scA := findSupercell(t, supercells, "a")
	scB := findSupercell(t, supercells, "b")
	scC := findSupercell(t, supercells, "c")
	if scA == scB || scB == scC || scA == scC {
		t.Error("a, b, c should each be their own supercell")
	}
	if len(condensed[0].Cells) != 2 || len(condensed[1].Cells) != 2 {
		t.Errorf("each condensed rule should span two supercells, got %+v / %+v", condensed[0], condensed[1])
	}
}

func TestCondensePropagatesInconsistentRawRule(t *testing.T) {
	rules := []RawRule{
		NewRawRule(5, []Cell{"a", "b"}),
	}
	if _, _, err := condenseSupercells(rules); !IsInconsistent(err) {
		t.Errorf("expected Inconsistent for a rule with more mines than cells, got %v", err)
	}
}
