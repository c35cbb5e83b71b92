package solver

import "math"

// Prevalence models global mine density: either a fixed board size with a
// fixed total mine count (discrete mode), or a uniform per-cell mine
// probability (non-discrete mode).
type Prevalence struct {
	discrete    bool
	totalCells  int
	totalMines  int
	probability float64
}

// DiscretePrevalence models a traditional board of fixed dimensions
// containing exactly totalMines mines among totalCells cells.
func DiscretePrevalence(totalCells, totalMines int) Prevalence {
	return Prevalence{discrete: true, totalCells: totalCells, totalMines: totalMines}
}

// ProbabilisticPrevalence models a board where every unreferenced cell is
// independently a mine with probability p. p must be in [0, 1].
func ProbabilisticPrevalence(p float64) (Prevalence, error) {
	if p < 0 || p > 1 {
		return Prevalence{}, invalidArgumentf("mine probability must be in [0,1], got %v", p)
	}
	return Prevalence{discrete: false, probability: p}, nil
}

// cellProbabilities implements the tally/weighter's cross-front
// combination step (component 4.8, "weighting across fronts"). It turns a
// set of independent front tallies -- plus any determined (trivial-rule)
// tallies -- into one expected-mine-count-per-supercell map, correctly
// combining the global mine model across fronts.
func cellProbabilities(stats []*frontTally, prevalence Prevalence, allCells []*Supercell) (map[*Supercell]float64, error) {
	if prevalence.discrete {
		numUncharted, err := checkCountConsistency(stats, prevalence, allCells)
		if err != nil {
			return nil, err
		}

		var dyn, static []*frontTally
		for _, st := range stats {
			if st.isStatic() {
				static = append(static, st)
			} else {
				dyn = append(dyn, st)
			}
		}
		numStaticMines := 0
		for _, st := range static {
			numStaticMines += st.maxMines()
		}
		atLargeMines := prevalence.totalMines - numStaticMines

		otherStat := combineFronts(dyn, numUncharted, atLargeMines)
		stats = append(append([]*frontTally{}, stats...), otherStat)
	} else {
		for _, st := range stats {
			if st.isStatic() {
				continue
			}
			k0 := st.minMines()
			for k, sub := range st.subtallies {
				sub.total *= nondiscreteRelativeLikelihood(prevalence.probability, k, k0)
			}
		}
	}

	out := make(map[*Supercell]float64)
	for _, st := range stats {
		for sc, p := range st.collapse() {
			out[sc] += p
		}
	}
	return out, nil
}

// checkCountConsistency verifies that the supplied total mine count is
// achievable given the minimum and maximum mines the charted fronts can
// hold plus however many uncharted cells remain, returning the number of
// uncharted cells on success.
func checkCountConsistency(stats []*frontTally, prevalence Prevalence, allCells []*Supercell) (int, error) {
	minPossible, maxPossible := possibleMineLimits(stats)
	charted := 0
	for _, sc := range allCells {
		charted += sc.Len()
	}
	numUncharted := prevalence.totalCells - charted

	if minPossible > prevalence.totalMines {
		return 0, inconsistentf("minimum possible number of mines (%d) is more than supplied mine count (%d)", minPossible, prevalence.totalMines)
	}
	if prevalence.totalMines > maxPossible+numUncharted {
		return 0, inconsistentf("maximum possible number of mines on board (%d) is less than supplied mine count (%d)", maxPossible+numUncharted, prevalence.totalMines)
	}
	return numUncharted, nil
}

func possibleMineLimits(stats []*frontTally) (min, max int) {
	for _, st := range stats {
		min += st.minMines()
		max += st.maxMines()
	}
	return min, max
}

// bucketChoice is one front's chosen mine total and the (still
// unnormalized) weight of that choice, used while building the Cartesian
// product of bucket choices across every dynamic front.
type bucketChoice struct {
	k      int
	weight float64
}

// combineFronts is the discrete-mode core of the weighter: it enumerates
// every combination of mine-total choices across the dynamic fronts,
// weighting each combination by how many ways the leftover (at-large)
// mines can be distributed among the uncharted cells, then folds the
// result back into each front's own bucket weights and produces the
// synthetic tally for the uncharted region itself.
func combineFronts(stats []*frontTally, numUnchartedCells, atLargeMines int) *frontTally {
	minPossible, _ := possibleMineLimits(stats)
	maxFreeMines := atLargeMines - minPossible
	if maxFreeMines < 0 {
		maxFreeMines = 0
	}
	if maxFreeMines > numUnchartedCells {
		maxFreeMines = numUnchartedCells
	}

	buckets := make([][]bucketChoice, len(stats))
	for i, st := range stats {
		buckets[i] = sortedBuckets(st)
	}

	grandTotals := make([]map[int]float64, len(stats))
	for i := range grandTotals {
		grandTotals[i] = make(map[int]float64)
	}
	unchartedTotal := make(map[int]float64)

	combo := make([]bucketChoice, len(stats))
	var walk func(i int)
	walk = func(i int) {
		if i == len(buckets) {
			sumK := 0
			weightProduct := 1.0
			for _, c := range combo {
				sumK += c.k
				weightProduct *= c.weight
			}
			numFreeMines := atLargeMines - sumK

			weight := 0.0
			if numFreeMines >= 0 && numFreeMines <= numUnchartedCells {
				freeFactor := discreteRelativeLikelihood(numUnchartedCells, numFreeMines, maxFreeMines)
				weight = freeFactor * weightProduct
			}

			for fi, c := range combo {
				grandTotals[fi][c.k] += weight
			}
			unchartedTotal[numFreeMines] += weight
			return
		}
		for _, b := range buckets[i] {
			combo[i] = b
			walk(i + 1)
		}
	}
	walk(0)

	for i, st := range stats {
		for k, sub := range st.subtallies {
			sub.total = grandTotals[i][k]
		}
	}

	return frontTallyForOther(numUnchartedCells, unchartedTotal)
}

func sortedBuckets(st *frontTally) []bucketChoice {
	out := make([]bucketChoice, 0, len(st.subtallies))
	for k, sub := range st.subtallies {
		out = append(out, bucketChoice{k: k, weight: sub.total})
	}
	// Deterministic order (ascending k) so accumulation order -- and
	// therefore floating-point rounding -- doesn't depend on map order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].k < out[j-1].k; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// nondiscreteRelativeLikelihood returns the binomial-probability ratio
// binom_prob(p,k,n) / binom_prob(p,k0,n) = (p/(1-p))^(k-k0). The binomial
// coefficient itself is already present via each configuration's
// multiplicity, so only the p^k*(1-p)^(n-k) factor needs rescaling here.
func nondiscreteRelativeLikelihood(p float64, k, k0 int) float64 {
	return math.Pow(p/(1-p), float64(k-k0))
}

// discreteRelativeLikelihood returns C(n,k) / C(n,k0).
func discreteRelativeLikelihood(n, k, k0 int) float64 {
	return factDiv(k0, k) * factDiv(n-k0, n-k)
}
