package solver

import (
	"fmt"
	"sort"
)

// permutation is a single assignment of mine counts to supercells: a
// mapping from supercell to an integer 0 <= count <= supercell.Len(). The
// total (k) is the sum of all counts. Every supercell in the permutation's
// cell set must have an entry, even a zero one, since the cell set is
// derived from the mapping's keys.
type permutation struct {
	mapping map[*Supercell]int
}

func newPermutation(mapping map[*Supercell]int) permutation {
	m := make(map[*Supercell]int, len(mapping))
	for k, v := range mapping {
		m[k] = v
	}
	return permutation{mapping: m}
}

// k returns the total number of mines this permutation assigns.
func (p permutation) k() int {
	total := 0
	for _, n := range p.mapping {
		total += n
	}
	return total
}

// cells returns the set of supercells this permutation assigns a count to.
func (p permutation) cells() CellSet {
	out := make(CellSet, len(p.mapping))
	for sc := range p.mapping {
		out.add(sc)
	}
	return out
}

// subset returns a permutation restricted to the given supercells. Every
// supercell in subcells must be present in p.
func (p permutation) subset(subcells CellSet) permutation {
	out := make(map[*Supercell]int, len(subcells))
	for sc := range subcells {
		out[sc] = p.mapping[sc]
	}
	return permutation{mapping: out}
}

// compatible reports whether p and other agree on every supercell they have
// in common.
func (p permutation) compatible(other permutation) bool {
	for sc, n := range p.mapping {
		if on, ok := other.mapping[sc]; ok && on != n {
			return false
		}
	}
	return true
}

// combine merges p and other into one permutation over the union of their
// cells. The two must be compatible; combine does not check this.
func (p permutation) combine(other permutation) permutation {
	out := make(map[*Supercell]int, len(p.mapping)+len(other.mapping))
	for sc, n := range p.mapping {
		out[sc] = n
	}
	for sc, n := range other.mapping {
		out[sc] = n
	}
	return permutation{mapping: out}
}

// multiplicity returns the number of concrete cell-level configurations
// this supercell-level permutation represents: the product, over every
// supercell, of C(supercell size, assigned count).
func (p permutation) multiplicity() float64 {
	factors := make([]float64, 0, len(p.mapping))
	for sc, n := range p.mapping {
		factors = append(factors, choose(sc.Len(), n))
	}
	return product(factors)
}

// key renders p canonically for use as a set/map key, independent of Go's
// (nondeterministic) map iteration order.
func (p permutation) key() string {
	scs := make([]*Supercell, 0, len(p.mapping))
	for sc := range p.mapping {
		scs = append(scs, sc)
	}
	sort.Slice(scs, func(i, j int) bool { return scs[i].id < scs[j].id })
	buf := make([]byte, 0, 8*len(scs))
	for _, sc := range scs {
		buf = append(buf, []byte(fmt.Sprintf("%d:%d|", sc.id, p.mapping[sc]))...)
	}
	return string(buf)
}

// permuteMines generates every permutation of exactly count mines among
// cells, a list of supercells with sizes s_1..s_n: every integer vector
// (k_1..k_n) with 0 <= k_i <= s_i and sum(k_i) = count. It recurses on the
// first supercell, descending through the candidate counts for that cell so
// that traversal order is deterministic.
func permuteMines(count int, cells []*Supercell) []permutation {
	return permuteMinesAcc(count, cells, map[*Supercell]int{})
}

func permuteMinesAcc(count int, cells []*Supercell, acc map[*Supercell]int) []permutation {
	if count == 0 {
		full := make(map[*Supercell]int, len(acc)+len(cells))
		for k, v := range acc {
			full[k] = v
		}
		for _, sc := range cells {
			full[sc] = 0
		}
		return []permutation{{mapping: full}}
	}

	remainingSize := 0
	for _, sc := range cells {
		remainingSize += sc.Len()
	}
	if remainingSize < count {
		return nil
	}
	if remainingSize == count {
		full := make(map[*Supercell]int, len(acc)+len(cells))
		for k, v := range acc {
			full[k] = v
		}
		for _, sc := range cells {
			full[sc] = sc.Len()
		}
		return []permutation{{mapping: full}}
	}

	head, rest := cells[0], cells[1:]
	maxHere := count
	if head.Len() < maxHere {
		maxHere = head.Len()
	}
	var out []permutation
	for n := maxHere; n >= 0; n-- {
		next := make(map[*Supercell]int, len(acc)+1)
		for k, v := range acc {
			next[k] = v
		}
		next[head] = n
		out = append(out, permuteMinesAcc(count-n, rest, next)...)
	}
	return out
}
