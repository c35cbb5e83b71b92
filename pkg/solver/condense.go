package solver

import "sort"

// condenseSupercells implements the supercell condenser (component 4.1).
// It discovers, for each cell mentioned by any raw rule, the set of rules
// that cell appears in -- its rule signature. Cells sharing an identical
// signature only ever occur together and are grouped into one supercell.
// Every raw rule is then rewritten to reference the supercells it spans.
//
// Returns the condensed rules (one per input raw rule, in input order) and
// the complete set of supercells covering every referenced cell.
func condenseSupercells(rules []RawRule) ([]*Rule, []*Supercell, error) {
	// signature(cell) -> cells sharing that exact signature.
	// The signature is the set of rule indices a cell appears in; we use a
	// sorted slice of indices rendered as a string key since Go cannot hash
	// a slice directly.
	signatureOf := make(map[Cell]string)
	cellRules := make(map[Cell][]int)
	for i, rule := range rules {
		for _, c := range rule.Cells {
			cellRules[c] = append(cellRules[c], i)
		}
	}
	for c, idxs := range cellRules {
		sort.Ints(idxs)
		signatureOf[c] = sortedIntsKey(idxs)
	}

	// group cells sharing a signature into one supercell each.
	groups := make(map[string][]Cell)
	groupOrder := make([]string, 0)
	for c, sig := range signatureOf {
		if _, ok := groups[sig]; !ok {
			groupOrder = append(groupOrder, sig)
		}
		groups[sig] = append(groups[sig], c)
	}
	sort.Strings(groupOrder)

	supercells := make([]*Supercell, 0, len(groupOrder))
	cellToSupercell := make(map[Cell]*Supercell)
	nextID := 0
	for _, sig := range groupOrder {
		cells := sortCells(groups[sig])
		sc := &Supercell{id: nextID, cells: cells}
		nextID++
		supercells = append(supercells, sc)
		for _, c := range cells {
			cellToSupercell[c] = sc
		}
	}

	// rewrite each raw rule against the supercells it spans.
	out := make([]*Rule, 0, len(rules))
	for _, raw := range rules {
		spanned := make(CellSet)
		for _, c := range raw.Cells {
			spanned.add(cellToSupercell[c])
		}
		rule, err := newRule(raw.NumMines, spanned, len(raw.Cells))
		if err != nil {
			return nil, nil, err
		}
		out = append(out, rule)
	}
	return out, supercells, nil
}

func sortedIntsKey(idxs []int) string {
	b := make([]byte, 0, len(idxs)*4)
	for _, i := range idxs {
		b = append(b, byte(i), byte(i>>8), byte(i>>16), byte(i>>24), '|')
	}
	return string(b)
}
