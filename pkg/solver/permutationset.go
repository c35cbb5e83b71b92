package solver

// permutationSet is the full (or constrained) set of permutations sharing
// one cell set and mine total. constrained records whether any permutation
// has been removed since construction; it is only accurate if the set was
// built with the complete set of possibilities to begin with, as
// permutationSetFromRule does. Sets derived by restrictedTo, subset and
// split start with constrained false whatever they contain.
type permutationSet struct {
	cells       CellSet
	k           int
	permus      map[string]permutation
	constrained bool
}

func permutationSetFromRule(r *Rule) *permutationSet {
	permus := make(map[string]permutation)
	for _, p := range permuteMines(r.NumMines, r.Cells.slice()) {
		permus[p.key()] = p
	}
	return &permutationSet{cells: r.Cells, k: r.NumMines, permus: permus}
}

// toRule reconstructs a Rule from a permutation set's cell set and total.
// This cannot recover which specific permutations survived elimination --
// only the permutation set itself retains that.
func (ps *permutationSet) toRule() (*Rule, error) {
	return newRule(ps.k, ps.cells, ps.cells.numCells())
}

func (ps *permutationSet) empty() bool {
	return len(ps.permus) == 0
}

func (ps *permutationSet) remove(p permutation) {
	delete(ps.permus, p.key())
	ps.constrained = true
}

// restrictedTo returns a new permutation set containing only the members of
// ps compatible with p.
func (ps *permutationSet) restrictedTo(p permutation) *permutationSet {
	out := make(map[string]permutation)
	for key, q := range ps.permus {
		if q.compatible(p) {
			out[key] = q
		}
	}
	return &permutationSet{cells: ps.cells, k: ps.k, permus: out}
}

// subset projects every permutation in ps onto cellSubset. All members of
// ps must agree on the resulting k (the original rule is well-formed, so
// this always holds for the full cell set it came from, but a caller-chosen
// cellSubset might not yield a single k -- see split, which checks this).
func (ps *permutationSet) subset(cellSubset CellSet) (*permutationSet, error) {
	out := make(map[string]permutation, len(ps.permus))
	kSeen := map[int]bool{}
	for _, p := range ps.permus {
		sub := p.subset(cellSubset)
		out[sub.key()] = sub
		kSeen[sub.k()] = true
	}
	if len(kSeen) > 1 {
		return nil, errNotADivisor
	}
	var k int
	for kk := range kSeen {
		k = kk
	}
	return &permutationSet{cells: cellSubset, k: k, permus: out}, nil
}

// errNotADivisor is an internal sentinel used only within split/decompose to
// signal "this candidate subset is not a valid Cartesian divisor" -- it
// never escapes the package.
var errNotADivisor = &divisorError{}

type divisorError struct{}

func (*divisorError) Error() string { return "not a cartesian divisor" }

// split attempts to factor ps as permutationSubset x permutationRemainder
// over cellSubset and its complement. It succeeds (returns no error) only
// if every permutation's projection onto cellSubset has the same k, and the
// set of remainder-projections is identical regardless of which
// cellSubset-projection produced it -- i.e. the full set really is the
// Cartesian product of the two projections.
func (ps *permutationSet) split(cellSubset CellSet) (*permutationSet, *permutationSet, error) {
	cellRemainder := ps.cells.subtract(cellSubset)

	permuSubset, err := ps.subset(cellSubset)
	if err != nil {
		return nil, nil, err
	}

	// group remainder-projections by which subset-projection produced them.
	remaindersBySubsetKey := make(map[string]map[string]permutation)
	for _, p := range ps.permus {
		subProj := p.subset(cellSubset)
		remProj := p.subset(cellRemainder)
		if remaindersBySubsetKey[subProj.key()] == nil {
			remaindersBySubsetKey[subProj.key()] = make(map[string]permutation)
		}
		remaindersBySubsetKey[subProj.key()][remProj.key()] = remProj
	}

	var canonical map[string]permutation
	for _, remSet := range remaindersBySubsetKey {
		if canonical == nil {
			canonical = remSet
			continue
		}
		if !samePermutationSet(canonical, remSet) {
			return nil, nil, errNotADivisor
		}
	}

	remainderK := ps.k - permuSubset.k
	permuRemainder := &permutationSet{cells: cellRemainder, k: remainderK, permus: canonical}
	return permuSubset, permuRemainder, nil
}

func samePermutationSet(a, b map[string]permutation) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}

// decompose returns the Cartesian factorization of ps, or []*permutationSet{ps}
// if ps does not factor. Unconstrained sets (the full set of possibilities
// for a rule) are, by construction, already irreducible Cartesian products
// of themselves, so decomposition is skipped for them as an optimization.
func (ps *permutationSet) decompose() []*permutationSet {
	if !ps.constrained {
		return []*permutationSet{ps}
	}
	return ps.decomposeFrom(1)
}

func (ps *permutationSet) decomposeFrom(kFloor int) []*permutationSet {
	cells := ps.cells.slice()
	n := len(cells)
	for size := kFloor; size <= n/2; size++ {
		for _, combo := range combinations(cells, size) {
			subset := newCellSet(combo...)
			permuSubset, permuRemainder, err := ps.split(subset)
			if err != nil {
				continue
			}
			divisors := []*permutationSet{permuSubset}
			divisors = append(divisors, permuRemainder.decomposeFrom(size)...)
			return divisors
		}
	}
	return []*permutationSet{ps}
}

// combinations returns every size-element subset of items, in ascending
// index order, without mutating items.
func combinations(items []*Supercell, size int) [][]*Supercell {
	var out [][]*Supercell
	n := len(items)
	if size > n {
		return out
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]*Supercell, size)
		for i, ix := range idx {
			combo[i] = items[ix]
		}
		out = append(out, combo)

		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
