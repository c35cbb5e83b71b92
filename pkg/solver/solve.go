package solver

// Solve computes, for a Minesweeper position described by rules and a
// model of overall mine density, the probability that each referenced cell
// contains a mine. Cells not mentioned by any rule are aggregated into one
// entry under otherTag, giving the shared per-cell probability for an
// unreferenced cell -- omitted entirely if every cell is referenced. Only a
// discrete prevalence (fixed board size) yields an otherTag entry; with a
// probabilistic prevalence none is emitted.
//
// Solve runs the full pipeline described by this package: supercell
// condensation, logical reduction, cross-constraint permutation
// elimination, Cartesian re-decomposition, partition into independent
// fronts, exact enumeration of each front, and weighted combination across
// fronts. It returns an Inconsistent error (see IsInconsistent) if the
// rules, together with prevalence, admit no satisfying mine assignment.
func Solve(rules []RawRule, prevalence Prevalence, otherTag Cell) (map[Cell]float64, error) {
	condensed, allCells, err := condenseSupercells(rules)
	if err != nil {
		return nil, err
	}
	tracef("condensed %d raw rules into %d rules over %d supercells", len(rules), len(condensed), len(allCells))

	reduced, err := reduceRules(condensed)
	if err != nil {
		return nil, err
	}
	tracef("reduced to %d rules", len(reduced))

	var determined, active []*Rule
	for _, r := range reduced {
		if r.isTrivial() {
			determined = append(determined, r)
		} else {
			active = append(active, r)
		}
	}

	pr, err := permuteAndInterfere(active)
	if err != nil {
		return nil, err
	}

	var fronts []*permutedRuleset
	for _, f := range pr.splitFronts() {
		if isTrivialFront(f) {
			determined = append(determined, f.trivialRule())
		} else {
			fronts = append(fronts, f)
		}
	}
	tracef("split into %d non-trivial fronts, %d determined rules", len(fronts), len(determined))

	var stats []*frontTally
	for _, f := range fronts {
		ft, err := tallyFront(f)
		if err != nil {
			return nil, err
		}
		stats = append(stats, ft)
	}
	for _, r := range determined {
		ft, err := frontTallyFromTrivialRule(r)
		if err != nil {
			return nil, err
		}
		stats = append(stats, ft)
	}

	cellProbs, err := cellProbabilities(stats, prevalence, allCells)
	if err != nil {
		return nil, err
	}

	return expandCells(cellProbs, otherTag), nil
}

// isTrivialFront reports whether a front is trivial: exactly one rule,
// which itself spans exactly one supercell. A lone rule spanning several
// supercells (e.g. an isolated "1 mine among {a,b}" with no other rule
// touching a or b) forms a single-rule front that still needs full
// enumeration -- it is not determined.
func isTrivialFront(pr *permutedRuleset) bool {
	return pr.isTrivial() && pr.trivialRule().isTrivial()
}

// expandCells splits each supercell's expected mine count across its
// underlying cells (expected / supercell size) to produce the final
// per-cell probability map, folding the synthetic uncharted-region
// supercell (if any) into a single otherTag entry.
func expandCells(cellProbs map[*Supercell]float64, otherTag Cell) map[Cell]float64 {
	out := make(map[Cell]float64)
	for sc, expected := range cellProbs {
		if sc.isOther() {
			if sc.Len() > 0 {
				out[otherTag] = expected / float64(sc.Len())
			}
			continue
		}
		perCell := expected / float64(sc.Len())
		for _, c := range sc.Cells() {
			out[c] = perCell
		}
	}
	return out
}
