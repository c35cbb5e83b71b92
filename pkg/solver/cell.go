package solver

import (
	"fmt"
	"sort"
)

// Cell is an opaque, caller-supplied identifier for one board square.
// Any comparable value works (a string name, an integer, a coordinate
// struct) -- the solver never interprets it, only uses it as a map key and
// echoes it back in the result.
type Cell = interface{}

// cellKey renders a Cell into a string suitable for deterministic sorting.
// Cell identity for map/set purposes still uses the Cell value itself
// (via Go's native comparable-interface equality); this is only used to
// produce a stable iteration order so that float accumulation order (and
// therefore floating-point rounding) doesn't depend on map iteration.
func cellKey(c Cell) string {
	return fmt.Sprintf("%T:%v", c, c)
}

func sortCells(cells []Cell) []Cell {
	sorted := make([]Cell, len(cells))
	copy(sorted, cells)
	sort.Slice(sorted, func(i, j int) bool {
		return cellKey(sorted[i]) < cellKey(sorted[j])
	})
	return sorted
}

// Supercell is a set of cells that, across the entire input ruleset, only
// ever appear together -- every rule either contains all of them or none of
// them. The condenser discovers supercells once, at the start of the
// pipeline; every later stage treats a Supercell as an atomic, indivisible
// unit and refers to it by pointer identity (interned handle), never by
// value. A cell that never groups with any other ends up in a singleton
// Supercell of its own.
type Supercell struct {
	id    int
	cells []Cell

	// otherSize is nonzero only for the single synthetic supercell the
	// weighter builds to represent every uncharted cell (those not
	// mentioned by any rule). It has no real cells of its own.
	otherSize int
}

// Len returns the number of base cells this supercell represents.
func (s *Supercell) Len() int {
	if s.otherSize > 0 {
		return s.otherSize
	}
	return len(s.cells)
}

// isOther reports whether this is the synthetic uncharted-region supercell.
func (s *Supercell) isOther() bool {
	return s.otherSize > 0
}

// newOtherSupercell builds the synthetic supercell standing in for every
// uncharted cell, with no real cells of its own.
func newOtherSupercell(size int) *Supercell {
	return &Supercell{id: -1, otherSize: size}
}

// Cells returns the base cells of this supercell, in canonical order.
func (s *Supercell) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)
	return out
}

func (s *Supercell) String() string {
	return fmt.Sprintf("{%v}", sortCells(s.cells))
}

// CellSet is a set of supercells, represented as a map for O(1) membership
// and set algebra (union/intersect/subtract). Supercells are interned
// *Supercell pointers, so pointer equality is value equality here.
type CellSet map[*Supercell]struct{}

func newCellSet(cells ...*Supercell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

func (s CellSet) has(c *Supercell) bool {
	_, ok := s[c]
	return ok
}

func (s CellSet) add(c *Supercell) {
	s[c] = struct{}{}
}

// union returns a new set containing every supercell in either operand.
func (s CellSet) union(o CellSet) CellSet {
	out := s.clone()
	for c := range o {
		out[c] = struct{}{}
	}
	return out
}

// intersect returns a new set containing only supercells in both operands.
func (s CellSet) intersect(o CellSet) CellSet {
	out := make(CellSet)
	small, big := s, o
	if len(o) < len(s) {
		small, big = o, s
	}
	for c := range small {
		if big.has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// subtract returns a new set containing supercells in s but not in o.
func (s CellSet) subtract(o CellSet) CellSet {
	out := make(CellSet)
	for c := range s {
		if !o.has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// isSubsetOf reports whether every supercell in s is also in o.
func (s CellSet) isSubsetOf(o CellSet) bool {
	for c := range s {
		if !o.has(c) {
			return false
		}
	}
	return true
}

func (s CellSet) equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for c := range s {
		if !o.has(c) {
			return false
		}
	}
	return true
}

// slice returns the supercells in s ordered by id, for deterministic
// iteration regardless of map order.
func (s CellSet) slice() []*Supercell {
	out := make([]*Supercell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// key is a canonical string identifying this exact set of supercells,
// independent of map iteration order. Used to collapse duplicate rules
// that reference the same supercells (e.g. re-decompositions keyed by
// cell-set, per the solver's Cartesian re-decomposer).
func (s CellSet) key() string {
	ids := make([]int, 0, len(s))
	for c := range s {
		ids = append(ids, c.id)
	}
	sort.Ints(ids)
	return fmt.Sprint(ids)
}

func (s CellSet) numCells() int {
	n := 0
	for c := range s {
		n += c.Len()
	}
	return n
}
