package solver

// Rule is the supercelled representation used throughout the pipeline:
// exactly NumMines mines are distributed among the base cells covered by
// Cells, a set of supercells. NumCells is the sum of the sizes of all
// supercells in Cells and is tracked independently so it can be validated
// even when Cells is later replaced wholesale (e.g. by subtract).
//
// Two rules are equal iff their NumMines and Cells are equal; since Cells
// is a set of interned *Supercell handles, that reduces to comparing
// CellSet.key().
type Rule struct {
	NumMines int
	Cells    CellSet
	NumCells int
}

// newRule constructs a Rule, enforcing 0 <= NumMines <= NumCells. Violating
// this invariant means the input rules (or a derived reduction) admit no
// satisfying assignment.
func newRule(numMines int, cells CellSet, numCells int) (*Rule, error) {
	if numMines < 0 || numMines > numCells {
		return nil, inconsistentf("rule with negative mines / more mines than cells (num_mines=%d, num_cells=%d)", numMines, numCells)
	}
	return &Rule{NumMines: numMines, Cells: cells, NumCells: numCells}, nil
}

// isTrivial reports whether this rule has only one supercell, i.e. exactly
// one permutation once its mine count is decided.
func (r *Rule) isTrivial() bool {
	return len(r.Cells) == 1
}

// isSubruleOf reports whether r's cells are a subset of parent's. Equal
// rules are subrules of each other.
func (r *Rule) isSubruleOf(parent *Rule) bool {
	return r.Cells.isSubsetOf(parent.Cells)
}

// decompose splits a rule that is completely empty (NumMines == 0) or
// completely full (NumMines == NumCells) into one singleton-supercell rule
// per supercell -- each one trivially all-safe or all-mine. A rule with no
// cells at all (the "zero rule" produced by subtracting a rule from an
// identical rule) decomposes to nothing. Any other rule decomposes to
// itself, unchanged.
func (r *Rule) decompose() ([]*Rule, error) {
	if r.NumMines != 0 && r.NumMines != r.NumCells {
		return []*Rule{r}, nil
	}
	out := make([]*Rule, 0, len(r.Cells))
	for _, sc := range r.Cells.slice() {
		size := sc.Len()
		mines := 0
		if r.NumMines > 0 {
			mines = size
		}
		rule, err := newRule(mines, newCellSet(sc), size)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

// subtract returns a new rule covering only the cells (and mines) of r that
// are not also in subrule, given that subrule is a subrule of r. Produces
// an Inconsistent error if the result would have fewer mines than 0 or more
// mines than cells (this is how impossible rulesets are detected during
// logical reduction).
func (r *Rule) subtract(sub *Rule) (*Rule, error) {
	return newRule(
		r.NumMines-sub.NumMines,
		r.Cells.subtract(sub.Cells),
		r.NumCells-sub.NumCells,
	)
}
