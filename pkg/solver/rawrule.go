package solver

// RawRule is the caller-facing axiom: exactly NumMines mines are contained
// within Cells. RawRule is only used during the condensation phase; it is
// immediately converted to a Rule (supercelled) and never seen again.
//
// Unlike Rule, the NumMines <= len(Cells) invariant is not enforced here --
// an inconsistent raw rule is only detected once it has been condensed.
type RawRule struct {
	NumMines int
	Cells    []Cell
}

// NewRawRule builds a RawRule from a mine count and a list of cells.
// Duplicate cells in the input are collapsed.
func NewRawRule(numMines int, cells []Cell) RawRule {
	seen := make(map[Cell]struct{}, len(cells))
	dedup := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		dedup = append(dedup, c)
	}
	return RawRule{NumMines: numMines, Cells: dedup}
}
