package solver

import (
	"container/heap"
	"math"
)

// reduceable is a directed edge in the rule graph: superrule can be reduced
// by subtracting subrule from it. metric() scores how attractive performing
// this reduction is; the reducer always performs the highest-scoring
// reduction available.
type reduceable struct {
	superrule, subrule *Rule
}

// metric favors reductions between bigger rules, with bigger overlap, whose
// post-reduction mine count sits near the extremes (0 or num_cells) -- such
// rules have few permutations and are cheap for later stages to handle.
func (rd reduceable) metric() (int, int, float64) {
	reducedCells := rd.superrule.NumCells - rd.subrule.NumCells
	reducedMines := rd.superrule.NumMines - rd.subrule.NumMines
	return rd.superrule.NumCells, rd.subrule.NumCells, math.Abs(float64(reducedMines) - 0.5*float64(reducedCells))
}

// less reports whether rd scores lower than other under the lexicographic
// metric (superrule.num_cells, subrule.num_cells, |reduced_mines - .5*reduced_cells|).
func (rd reduceable) less(other reduceable) bool {
	a1, a2, a3 := rd.metric()
	b1, b2, b3 := other.metric()
	if a1 != b1 {
		return a1 < b1
	}
	if a2 != b2 {
		return a2 < b2
	}
	return a3 < b3
}

// reduceableHeap is a max-heap (by metric) of candidate reductions, keyed so
// duplicates collapse -- the same (superrule, subrule) pair is never queued
// twice.
type reduceableHeap struct {
	items  []reduceable
	queued map[[2]*Rule]bool
}

func newReduceableHeap() *reduceableHeap {
	return &reduceableHeap{queued: make(map[[2]*Rule]bool)}
}

func (h *reduceableHeap) Len() int { return len(h.items) }
func (h *reduceableHeap) Less(i, j int) bool {
	// container/heap is a min-heap; invert to get max-heap-by-metric.
	return h.items[j].less(h.items[i])
}
func (h *reduceableHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *reduceableHeap) Push(x interface{}) {
	h.items = append(h.items, x.(reduceable))
}
func (h *reduceableHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}

func (h *reduceableHeap) add(rd reduceable) {
	key := [2]*Rule{rd.superrule, rd.subrule}
	if h.queued[key] {
		return
	}
	h.queued[key] = true
	heap.Push(h, rd)
}

// popBest removes and returns the highest-metric candidate reduction.
func (h *reduceableHeap) popBest() reduceable {
	rd := heap.Pop(h).(reduceable)
	delete(h.queued, [2]*Rule{rd.superrule, rd.subrule})
	return rd
}

// removeRule discards every queued candidate that mentions r, because r is
// no longer active. This rebuilds the heap; candidate_reductions is small
// relative to the overall ruleset in practice so this is acceptable, and it
// keeps the heap invariant trivially correct.
func (h *reduceableHeap) removeRule(r *Rule) {
	kept := h.items[:0]
	for _, rd := range h.items {
		if rd.superrule == r || rd.subrule == r {
			delete(h.queued, [2]*Rule{rd.superrule, rd.subrule})
			continue
		}
		kept = append(kept, rd)
	}
	h.items = kept
	heap.Init(h)
}

// ruleReducer performs the logical-deduction phase: it maintains the set of
// currently active rules and, whenever one rule's cells are a subset of
// another's, subtracts the smaller from the larger. This repeats until no
// reduction applies.
type ruleReducer struct {
	active     map[*Rule]struct{}
	index      *cellRulesMap
	candidates *reduceableHeap
}

func newRuleReducer() *ruleReducer {
	return &ruleReducer{
		active:     make(map[*Rule]struct{}),
		index:      newCellRulesMap(),
		candidates: newReduceableHeap(),
	}
}

func (rr *ruleReducer) addRules(rules []*Rule) error {
	for _, r := range rules {
		if err := rr.addRule(r); err != nil {
			return err
		}
	}
	return nil
}

// addRule decomposes r (in case it is all-empty or all-full) and adds each
// resulting base rule to the active set.
func (rr *ruleReducer) addRule(r *Rule) error {
	base, err := r.decompose()
	if err != nil {
		return err
	}
	for _, b := range base {
		rr.addBaseRule(b)
	}
	return nil
}

func (rr *ruleReducer) addBaseRule(r *Rule) {
	rr.active[r] = struct{}{}
	rr.index.addRule(r)
	rr.updateReduceables(r)
}

// updateReduceables checks every rule overlapping r for a subset
// relationship in either direction and queues the corresponding reduction.
// For two rules over the same cells only one direction (r reduced by ov) is
// queued; the subtraction then yields the zero rule, which decompose
// discards, or an Inconsistent error if the mine counts differ.
func (rr *ruleReducer) updateReduceables(r *Rule) {
	for ov := range rr.index.overlappingRules(r) {
		switch {
		case ov.isSubruleOf(r):
			rr.candidates.add(reduceable{superrule: r, subrule: ov})
		case r.isSubruleOf(ov):
			rr.candidates.add(reduceable{superrule: ov, subrule: r})
		}
	}
}

func (rr *ruleReducer) removeRule(r *Rule) {
	delete(rr.active, r)
	rr.index.removeRule(r)
	rr.candidates.removeRule(r)
}

// reduceAll repeatedly applies the best-scoring reduction until none remain,
// then returns the final set of active rules.
func (rr *ruleReducer) reduceAll() ([]*Rule, error) {
	for rr.candidates.Len() > 0 {
		rd := rr.candidates.popBest()
		if _, ok := rr.active[rd.superrule]; !ok {
			continue
		}
		if _, ok := rr.active[rd.subrule]; !ok {
			continue
		}
		reduced, err := rd.superrule.subtract(rd.subrule)
		if err != nil {
			return nil, err
		}
		rr.removeRule(rd.superrule)
		if err := rr.addRule(reduced); err != nil {
			return nil, err
		}
	}
	out := make([]*Rule, 0, len(rr.active))
	for r := range rr.active {
		out = append(out, r)
	}
	return out, nil
}

// reduceRules runs the reducer over a set of condensed rules to completion.
func reduceRules(rules []*Rule) ([]*Rule, error) {
	rr := newRuleReducer()
	if err := rr.addRules(rules); err != nil {
		return nil, err
	}
	return rr.reduceAll()
}
