package solver

// mineConfig is one fully-determined assignment of mine counts to every
// supercell in a front -- the combination of one permutation per rule in
// that front.
type mineConfig struct {
	mapping map[*Supercell]int
}

func (c mineConfig) k() int {
	total := 0
	for _, n := range c.mapping {
		total += n
	}
	return total
}

func (c mineConfig) multiplicity() float64 {
	factors := make([]float64, 0, len(c.mapping))
	for sc, n := range c.mapping {
		factors = append(factors, choose(sc.Len(), n))
	}
	return product(factors)
}

type compatKey struct {
	permuKey string
	rule     *Rule
}

// enumerationState is the front enumerator (component 4.7): a lazy,
// non-restartable walk of every globally consistent mine configuration
// within one front. It tracks which rules have had their permutation
// locked in (fixed) and which are still open (free, each with its
// currently-allowed permutation set), plus a precomputed index of which
// permutations remain compatible across rule boundaries so that fixing one
// rule can immediately propagate constraints -- including forcing a chain
// of other rules down to a single remaining choice.
type enumerationState struct {
	fixed       []permutation
	free        map[*Rule]map[string]permutation
	overlapping map[*Rule]map[*Rule]struct{}
	compatIndex map[compatKey]map[string]permutation
}

func newEnumerationState(pr *permutedRuleset) *enumerationState {
	free := make(map[*Rule]map[string]permutation, len(pr.rules))
	overlapping := make(map[*Rule]map[*Rule]struct{}, len(pr.rules))
	for _, r := range pr.rules {
		set := make(map[string]permutation, len(pr.permuMap[r].permus))
		for k, p := range pr.permuMap[r].permus {
			set[k] = p
		}
		free[r] = set
		overlapping[r] = pr.index.overlappingRules(r)
	}

	compatIndex := make(map[compatKey]map[string]permutation)
	for rule, ps := range pr.permuMap {
		for _, p := range ps.permus {
			for ov := range overlapping[rule] {
				compat := make(map[string]permutation)
				for k, q := range pr.permuMap[ov].permus {
					if q.compatible(p) {
						compat[k] = q
					}
				}
				compatIndex[compatKey{p.key(), ov}] = compat
			}
		}
	}

	return &enumerationState{
		free:        free,
		overlapping: overlapping,
		compatIndex: compatIndex,
	}
}

func (s *enumerationState) clone() *enumerationState {
	fixed := make([]permutation, len(s.fixed))
	copy(fixed, s.fixed)
	free := make(map[*Rule]map[string]permutation, len(s.free))
	for r, set := range s.free {
		clone := make(map[string]permutation, len(set))
		for k, p := range set {
			clone[k] = p
		}
		free[r] = clone
	}
	return &enumerationState{
		fixed:       fixed,
		free:        free,
		overlapping: s.overlapping,
		compatIndex: s.compatIndex,
	}
}

func (s *enumerationState) isComplete() bool {
	return len(s.free) == 0
}

// propagate fixes rule to permu, returning an error if doing so leaves any
// overlapping rule with zero allowed permutations. Fixing a rule down to a
// single remaining choice recursively propagates that choice too, which
// correctly handles cycles in the overlap graph (a rule is only examined
// while it is still in free).
func (s *enumerationState) propagate(rule *Rule, p permutation) error {
	s.fixed = append(s.fixed, p)
	delete(s.free, rule)

	for related := range s.overlapping[rule] {
		allowed, stillFree := s.free[related]
		if !stillFree {
			continue
		}
		compat := s.compatIndex[compatKey{p.key(), related}]
		narrowed := make(map[string]permutation)
		for k, q := range allowed {
			if _, ok := compat[k]; ok {
				narrowed[k] = q
			}
		}
		s.free[related] = narrowed

		switch len(narrowed) {
		case 0:
			return errDeadEnd
		case 1:
			var only permutation
			for _, q := range narrowed {
				only = q
			}
			if err := s.propagate(related, only); err != nil {
				return err
			}
		}
	}
	return nil
}

var errDeadEnd = &deadEndError{}

type deadEndError struct{}

func (*deadEndError) Error() string { return "branch eliminated: no compatible permutation remains" }

func (s *enumerationState) mineConfig() mineConfig {
	mapping := make(map[*Supercell]int)
	for _, p := range s.fixed {
		for sc, n := range p.mapping {
			mapping[sc] = n
		}
	}
	return mineConfig{mapping: mapping}
}

// enumerate recursively walks every branch of this state, yielding one
// mineConfig per fully-consistent leaf. Recursion depth is bounded by the
// number of rules in the front.
func (s *enumerationState) enumerate(yield func(mineConfig)) {
	if s.isComplete() {
		yield(s.mineConfig())
		return
	}

	var rule *Rule
	for r := range s.free {
		rule = r
		break
	}
	for _, p := range s.free[rule] {
		next := s.clone()
		if err := next.propagate(rule, p); err != nil {
			continue // dead end: this branch admits no consistent configuration
		}
		next.enumerate(yield)
	}
}

// enumerateFront walks every mutually-consistent permutation combination of
// one front, calling yield once per resulting configuration.
func enumerateFront(pr *permutedRuleset, yield func(mineConfig)) {
	newEnumerationState(pr).enumerate(yield)
}
