// SPDX-License-Identifier: MIT
// Package: motif
//
// category.go — the motif taxonomy and its classification rule.
// Category indices are a contract with package entropy: Vector[c] and
// Counts[c] always refer to the same category.

package motif

import "fmt"

// Category is one class of the motif taxonomy.
type Category int

const (
	// Triangle: edge {i,j} closed by a third node adjacent to both.
	Triangle Category = iota
	// Wedge: edge {i,j} extended by a third node adjacent to exactly one endpoint.
	Wedge
	// Pendant: edge {i,j} where exactly one endpoint is a leaf (degree 1).
	Pendant
	// Dyad: edge {i,j} whose endpoints have no other neighbours.
	Dyad
	// OpenTriangle: non-adjacent pair {i,j} joined through a common neighbour.
	OpenTriangle

	// NumCategories is the size of every Counts / Vector.
	NumCategories = int(OpenTriangle) + 1

	// None marks a pair that exhibits no motif.
	None Category = -1
)

var categoryNames = [NumCategories]string{
	Triangle:     "triangle",
	Wedge:        "wedge",
	Pendant:      "pendant",
	Dyad:         "dyad",
	OpenTriangle: "open-triangle",
}

// Categories lists every category in index order.
func Categories() []Category {
	out := make([]Category, NumCategories)
	for c := range out {
		out[c] = Category(c)
	}

	return out
}

// String returns the stable lower-case name of c.
func (c Category) String() string {
	if c >= 0 && int(c) < NumCategories {
		return categoryNames[c]
	}
	if c == None {
		return "none"
	}

	return fmt.Sprintf("category(%d)", int(c))
}

// Counts holds one occurrence count per category.
type Counts [NumCategories]int

// Total returns the sum of all counts.
func (r Counts) Total() int {
	t := 0
	for _, v := range r {
		t += v
	}

	return t
}

// Has reports whether category c occurs at least once.
func (r Counts) Has(c Category) bool {
	return r[c] > 0
}

// IsZero reports whether no category occurs.
func (r Counts) IsZero() bool {
	return r == Counts{}
}

// Shape is the neighbourhood summary of a pair {I, J} that the decision table
// reads. Common = |N(i)∩N(j)|; Exclusive = third nodes adjacent to exactly
// one of i, j (i and j themselves excluded).
type Shape struct {
	Adjacent   bool
	Common     int
	Exclusive  int
	DegI, DegJ int
}

// Classify maps a Shape to its category counts (see the package decision table).
// It is the only place where categories are defined; every kernel and every
// downstream aggregation goes through it.
// Complexity: O(1).
func Classify(s Shape) Counts {
	var r Counts
	if !s.Adjacent {
		r[OpenTriangle] = s.Common

		return r
	}

	r[Triangle] = s.Common
	r[Wedge] = s.Exclusive
	switch {
	case s.DegI == 1 && s.DegJ == 1:
		r[Dyad] = 1
	case s.DegI == 1 || s.DegJ == 1:
		r[Pendant] = 1
	}

	return r
}

// Dominant reduces a row to a single category with precedence
// Triangle > Dyad > Pendant > Wedge > OpenTriangle; an all-zero row is None.
func Dominant(r Counts) Category {
	for _, c := range [...]Category{Triangle, Dyad, Pendant, Wedge, OpenTriangle} {
		if r[c] > 0 {
			return c
		}
	}

	return None
}
