// SPDX-License-Identifier: MIT
// Package: motif
//
// table.go — MotifCountTable: pair → Counts.
//
// Keys are unordered pairs stored with I < J; every lookup accepts either
// orientation. ModeEdges indexes rows through a map built from the edge list;
// ModeExhaustive stores the full upper triangle and computes the row index
// arithmetically.

package motif

// Pair is an unordered node pair normalised so that I < J.
type Pair struct {
	I, J int
}

// NewPair returns the normalised pair {i, j}.
func NewPair(i, j int) Pair {
	if i > j {
		i, j = j, i
	}

	return Pair{I: i, J: j}
}

// EdgeCounts holds, per category, the number of pairs that exhibit it.
type EdgeCounts [NumCategories]int

// Total returns the number of (pair, category) observations.
func (e EdgeCounts) Total() int {
	t := 0
	for _, v := range e {
		t += v
	}

	return t
}

// Table is the read-only result of Count.
type Table struct {
	n     int
	mode  Mode
	pairs []Pair
	rows  []Counts
	index map[Pair]int // ModeEdges only
}

// Nodes returns the node count of the counted graph.
func (t *Table) Nodes() int {
	return t.n
}

// Mode returns the mode the table was counted in.
func (t *Table) Mode() Mode {
	return t.mode
}

// Len returns the number of pairs with a row.
func (t *Table) Len() int {
	return len(t.pairs)
}

// Pair returns the k-th pair in table order (row-major, I < J).
func (t *Table) Pair(k int) Pair {
	return t.pairs[k]
}

// Row returns the counts of the k-th pair.
func (t *Table) Row(k int) Counts {
	return t.rows[k]
}

// IndexOf returns the row index of {i, j}, or false when the pair has no row.
// Complexity: O(1).
func (t *Table) IndexOf(i, j int) (int, bool) {
	if i == j || i < 0 || j < 0 || i >= t.n || j >= t.n {
		return 0, false
	}
	p := NewPair(i, j)
	if t.mode == ModeExhaustive {
		return exhaustiveIndex(t.n, p), true
	}
	k, ok := t.index[p]

	return k, ok
}

// Lookup returns the counts of {i, j}.
// Complexity: O(1).
func (t *Table) Lookup(i, j int) (Counts, bool) {
	k, ok := t.IndexOf(i, j)
	if !ok {
		return Counts{}, false
	}

	return t.rows[k], true
}

// Aggregate sums every row per category.
// Complexity: O(P).
func (t *Table) Aggregate() Counts {
	var agg Counts
	for _, r := range t.rows {
		for c, v := range r {
			agg[c] += v
		}
	}

	return agg
}

// EdgeCounts returns, per category, how many pairs have a non-zero count.
// This reads the same Classify output as the rows themselves, so numerators
// and denominators of the entropy estimate can never disagree.
// Complexity: O(P).
func (t *Table) EdgeCounts() EdgeCounts {
	var ec EdgeCounts
	for _, r := range t.rows {
		for c, v := range r {
			if v > 0 {
				ec[c]++
			}
		}
	}

	return ec
}

// DominantHistogram counts pairs by Dominant category; pairs with no motif
// are reported separately.
// Complexity: O(P).
func (t *Table) DominantHistogram() (hist [NumCategories]int, none int) {
	for _, r := range t.rows {
		c := Dominant(r)
		if c == None {
			none++
			continue
		}
		hist[c]++
	}

	return hist, none
}

// exhaustiveIndex maps the pair (i<j) to its position in the row-major
// upper triangle of an n×n matrix.
func exhaustiveIndex(n int, p Pair) int {
	return p.I*n - p.I*(p.I+1)/2 + (p.J - p.I - 1)
}
