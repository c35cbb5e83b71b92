package solver

// frontSubtally accumulates, for one specific total mine count k within a
// front, the running weight of configurations with that total plus a
// per-supercell running sum used to derive the conditional expected mine
// count given that total.
type frontSubtally struct {
	total float64
	tally map[*Supercell]float64
}

func newFrontSubtally() *frontSubtally {
	return &frontSubtally{tally: make(map[*Supercell]float64)}
}

// mkFrontSubtally builds a subtally whose tally values are already the
// finalized per-supercell conditional expectation (used for the
// single-permutation case of a determined rule, where there is nothing to
// average: the one possible configuration is both the min and the max).
func mkFrontSubtally(total float64, tally map[*Supercell]float64) *frontSubtally {
	return &frontSubtally{total: total, tally: tally}
}

func (st *frontSubtally) add(cfg mineConfig) {
	mult := cfg.multiplicity()
	st.total += mult
	for sc, n := range cfg.mapping {
		st.tally[sc] += float64(n) * mult
	}
}

// finalize converts the raw per-supercell sums into the conditional
// expected mine count given this bucket's total, i.e. divides by the
// bucket's accumulated weight.
func (st *frontSubtally) finalize() {
	for sc, v := range st.tally {
		st.tally[sc] = v / st.total
	}
}

// collapse adds this subtally's contribution (weight * conditional
// expectation) into dst, keyed by supercell.
func (st *frontSubtally) collapse(dst map[*Supercell]float64) {
	for sc, ratio := range st.tally {
		dst[sc] += st.total * ratio
	}
}

// frontTally maps each possible total mine count within one front (or the
// synthetic uncharted region) to its subtally.
type frontTally struct {
	subtallies map[int]*frontSubtally
}

func newFrontTally() *frontTally {
	return &frontTally{subtallies: make(map[int]*frontSubtally)}
}

// tallyFront drives the front enumerator over pr, bucketing every yielded
// configuration by its total mine count, then finalizes each bucket.
func tallyFront(pr *permutedRuleset) (*frontTally, error) {
	ft := newFrontTally()
	enumerateFront(pr, func(cfg mineConfig) {
		k := cfg.k()
		st, ok := ft.subtallies[k]
		if !ok {
			st = newFrontSubtally()
			ft.subtallies[k] = st
		}
		st.add(cfg)
	})
	if len(ft.subtallies) == 0 {
		return nil, inconsistentf("mine front has no possible configurations")
	}
	ft.finalize()
	return ft, nil
}

func (ft *frontTally) finalize() {
	for _, st := range ft.subtallies {
		st.finalize()
	}
}

func (ft *frontTally) minMines() int {
	first := true
	min := 0
	for k := range ft.subtallies {
		if first || k < min {
			min = k
			first = false
		}
	}
	return min
}

func (ft *frontTally) maxMines() int {
	first := true
	max := 0
	for k := range ft.subtallies {
		if first || k > max {
			max = k
			first = false
		}
	}
	return max
}

// isStatic reports whether this front has exactly one possible mine total,
// meaning it needs no reweighting against the global mine model.
func (ft *frontTally) isStatic() bool {
	return len(ft.subtallies) == 1
}

// normalize rescales bucket weights so they sum to 1 -- a probability
// distribution over this front's possible mine totals.
func (ft *frontTally) normalize() {
	total := 0.0
	for _, st := range ft.subtallies {
		total += st.total
	}
	for _, st := range ft.subtallies {
		st.total /= total
	}
}

// collapse normalizes and then sums each bucket's contribution per
// supercell, yielding this front's final (unconditional) expected mine
// count for every supercell it covers.
func (ft *frontTally) collapse() map[*Supercell]float64 {
	ft.normalize()
	out := make(map[*Supercell]float64)
	for _, st := range ft.subtallies {
		st.collapse(out)
	}
	return out
}

// frontTallyFromTrivialRule builds the one-bucket tally for a determined
// rule straight out of the reducer (one supercell, exactly num_mines mines,
// with certainty).
func frontTallyFromTrivialRule(r *Rule) (*frontTally, error) {
	if !r.isTrivial() {
		return nil, invalidArgumentf("cannot tally a non-trivial rule (num supercells=%d)", len(r.Cells))
	}
	var sc *Supercell
	for c := range r.Cells {
		sc = c
	}
	ft := newFrontTally()
	ft.subtallies[r.NumMines] = mkFrontSubtally(choose(r.NumCells, r.NumMines), map[*Supercell]float64{sc: float64(r.NumMines)})
	return ft, nil
}

// frontTallyForOther builds the synthetic tally for the uncharted region:
// one pseudo-supercell of size numUnchartedCells, with mineTotals mapping
// each possible total mine count among the uncharted cells to its weight.
func frontTallyForOther(numUnchartedCells int, mineTotals map[int]float64) *frontTally {
	metacell := newOtherSupercell(numUnchartedCells)
	ft := newFrontTally()
	for numMines, weight := range mineTotals {
		ft.subtallies[numMines] = mkFrontSubtally(weight, map[*Supercell]float64{metacell: float64(numMines)})
	}
	return ft
}
