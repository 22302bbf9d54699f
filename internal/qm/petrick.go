package qm

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Term is a product of implicant indices: a candidate cover.
type Term = mapset.Set[int]

// Solution is a set of prime implicants covering every minterm.
type Solution []Pattern

// ProductOfSums numbers the live rows from 1 and returns, for every live
// column, the clause of row numbers covering it. rows maps a row number n to
// the chart row rows[n-1].
func ProductOfSums(c *Chart) (rows []int, clauses [][]int) {
	rows = c.LiveRows()
	number := make(map[int]int, len(rows))
	for i, row := range rows {
		number[row] = i + 1
	}
	for _, col := range c.LiveColumns() {
		var clause []int
		for _, row := range c.ColumnRows(col).ToArray() {
			clause = append(clause, number[int(row)])
		}
		clauses = append(clauses, clause)
	}
	return rows, clauses
}

// ExpandToSumOfProducts distributes the product of clauses into a sum of
// products. Duplicate and absorbed terms are dropped after every clause so
// the intermediate sum stays as small as the algebra allows.
func ExpandToSumOfProducts(clauses [][]int) []Term {
	if len(clauses) == 0 {
		return nil
	}

	var terms []Term
	for _, idx := range clauses[0] {
		terms = appendUnique(terms, mapset.NewThreadUnsafeSet(idx))
	}
	for _, clause := range clauses[1:] {
		var next []Term
		for _, t := range terms {
			for _, idx := range clause {
				product := t.Clone()
				product.Add(idx)
				next = appendUnique(next, product)
			}
		}
		terms = Absorb(next)
	}
	return Absorb(terms)
}

func appendUnique(terms []Term, t Term) []Term {
	for _, existing := range terms {
		if existing.Equal(t) {
			return terms
		}
	}
	return append(terms, t)
}

// Absorb applies X + XY = X: every term that strictly contains another term
// is discarded. The order of the surviving terms is preserved.
func Absorb(terms []Term) []Term {
	var kept []Term
	for i, t := range terms {
		absorbed := false
		for j, other := range terms {
			if i != j && other.IsProperSubset(t) {
				absorbed = true
				break
			}
		}
		if !absorbed {
			kept = append(kept, t)
		}
	}
	return kept
}

// MinimalTerms returns every term of minimum size, each as sorted indices.
func MinimalTerms(terms []Term) [][]int {
	if len(terms) == 0 {
		return nil
	}
	least := terms[0].Cardinality()
	for _, t := range terms[1:] {
		if n := t.Cardinality(); n < least {
			least = n
		}
	}

	var minimal [][]int
	for _, t := range terms {
		if t.Cardinality() != least {
			continue
		}
		idx := t.ToSlice()
		sort.Ints(idx)
		minimal = append(minimal, idx)
	}
	return minimal
}

// Resolve completes the partial solution. An empty chart yields the partial
// solution alone; otherwise Petrick's method yields one solution per minimum
// cover of the remaining chart.
func Resolve(c *Chart, partial []Pattern) []Solution {
	if c.Empty() {
		return []Solution{clonePatterns(partial)}
	}

	rows, clauses := ProductOfSums(c)
	var solutions []Solution
	for _, cover := range MinimalTerms(ExpandToSumOfProducts(clauses)) {
		sol := clonePatterns(partial)
		for _, n := range cover {
			sol = append(sol, c.Implicant(rows[n-1]))
		}
		solutions = append(solutions, sol)
	}
	return solutions
}

func clonePatterns(ps []Pattern) Solution {
	out := make(Solution, len(ps), len(ps)+4)
	copy(out, ps)
	return out
}
