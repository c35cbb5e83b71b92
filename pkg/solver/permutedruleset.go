package solver

// permutedRuleset pairs a set of rules with, for each rule, the set of
// permutations still possible for it once every overlapping rule's
// constraints have been taken into account.
type permutedRuleset struct {
	rules    []*Rule
	index    *cellRulesMap
	permuMap map[*Rule]*permutationSet
}

// newPermutedRuleset builds the initial (fully unconstrained) permutation
// set for every rule.
func newPermutedRuleset(rules []*Rule) *permutedRuleset {
	pr := &permutedRuleset{
		rules:    rules,
		index:    newCellRulesMap(),
		permuMap: make(map[*Rule]*permutationSet, len(rules)),
	}
	pr.index.addRules(rules)
	for _, r := range rules {
		pr.permuMap[r] = permutationSetFromRule(r)
	}
	return pr
}

// filter builds a view containing only ruleSubset, reusing the parent's
// already-computed permutation sets. Used to carve out one front.
func (pr *permutedRuleset) filter(ruleSubset []*Rule) *permutedRuleset {
	out := &permutedRuleset{
		rules:    ruleSubset,
		index:    newCellRulesMap(),
		permuMap: make(map[*Rule]*permutationSet, len(ruleSubset)),
	}
	out.index.addRules(ruleSubset)
	for _, r := range ruleSubset {
		out.permuMap[r] = pr.permuMap[r]
	}
	return out
}

func (pr *permutedRuleset) removeRule(r *Rule) {
	pr.index.removeRule(r)
	delete(pr.permuMap, r)
	for i, rr := range pr.rules {
		if rr == r {
			pr.rules = append(pr.rules[:i], pr.rules[i+1:]...)
			break
		}
	}
}

func (pr *permutedRuleset) addPermutationSet(ps *permutationSet) error {
	r, err := ps.toRule()
	if err != nil {
		return err
	}
	pr.rules = append(pr.rules, r)
	pr.index.addRule(r)
	pr.permuMap[r] = ps
	return nil
}

// crossEliminate implements the cross-eliminator (component 4.4). For every
// pair of overlapping rules (r, r_ov), it drops any permutation of r that
// has no compatible counterpart in r_ov's permutation set. Dropping a
// permutation can in turn invalidate permutations in rules overlapping r
// that were already processed, so eliminated rules re-queue their
// neighbors -- a cascading fixed-point computation that terminates because
// permutations are only ever removed, never added, from a finite pool.
func (pr *permutedRuleset) crossEliminate() error {
	queued := make(map[[2]*Rule]bool)
	var queue [][2]*Rule
	push := func(pair [2]*Rule) {
		if queued[pair] {
			return
		}
		queued[pair] = true
		queue = append(queue, pair)
	}
	for _, e := range pr.index.interferenceEdges() {
		push(e)
	}

	for len(queue) > 0 {
		n := len(queue) - 1
		pair := queue[n]
		queue = queue[:n]
		delete(queued, pair)
		r, rOv := pair[0], pair[1]

		rSet := pr.permuMap[r]
		ovSet := pr.permuMap[rOv]
		changed := false
		for _, p := range snapshotPermus(rSet) {
			if ovSet.restrictedTo(p).empty() {
				rSet.remove(p)
				changed = true
			}
		}

		if rSet.empty() {
			return inconsistentf("rule is constrained such that it has no valid mine permutations")
		}
		if changed {
			for other := range pr.index.overlappingRules(r) {
				push([2]*Rule{other, r})
			}
		}
	}
	return nil
}

func snapshotPermus(ps *permutationSet) []permutation {
	out := make([]permutation, 0, len(ps.permus))
	for _, p := range ps.permus {
		out = append(out, p)
	}
	return out
}

// rereduce implements the Cartesian re-decomposer (component 4.5). After
// cross-elimination, a rule's constrained permutation set may factor as a
// product of two independent sub-sets; this re-discovers that latent
// independence, which can split what was one dependency front into several.
// Superseded rules are removed and replacements added, keyed by cell-set so
// duplicate decompositions collapse into one rule.
func (pr *permutedRuleset) rereduce() error {
	var superseded []*Rule
	replacements := make(map[string]*permutationSet)
	for rule, ps := range pr.permuMap {
		decomp := ps.decompose()
		if len(decomp) > 1 {
			superseded = append(superseded, rule)
			for _, d := range decomp {
				replacements[d.cells.key()] = d
			}
		}
	}

	for _, r := range superseded {
		pr.removeRule(r)
	}
	for _, ps := range replacements {
		if err := pr.addPermutationSet(ps); err != nil {
			return err
		}
	}
	return nil
}

// splitFronts partitions the ruleset into combinatorially independent
// fronts (component 4.6): no rule in one front shares a supercell with any
// rule in another.
func (pr *permutedRuleset) splitFronts() []*permutedRuleset {
	var fronts []*permutedRuleset
	for _, component := range pr.index.partition() {
		fronts = append(fronts, pr.filter(component))
	}
	return fronts
}

func (pr *permutedRuleset) isTrivial() bool {
	return len(pr.rules) == 1
}

// trivialRule returns this ruleset's single rule; only valid when
// isTrivial() holds. A singleton front's one rule is not necessarily itself
// trivial (one supercell) -- an isolated rule spanning several supercells,
// with no other rule overlapping it, forms a singleton front too. Callers
// that need a determined front (not just a singleton one) must additionally
// check trivialRule().isTrivial().
func (pr *permutedRuleset) trivialRule() *Rule {
	return pr.rules[0]
}

// permuteAndInterfere runs cross-elimination followed by re-reduction over
// a reduced ruleset, producing the ruleset the front partitioner consumes.
func permuteAndInterfere(rules []*Rule) (*permutedRuleset, error) {
	pr := newPermutedRuleset(rules)
	if err := pr.crossEliminate(); err != nil {
		return nil, err
	}
	if err := pr.rereduce(); err != nil {
		return nil, err
	}
	return pr, nil
}
