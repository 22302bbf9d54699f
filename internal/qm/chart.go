package qm

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
)

// Expand enumerates every minterm value the pattern covers. The base value
// fixes each X to 0; each X then doubles the candidate set by adding its
// positional weight, giving exactly 2^k values for k don't-cares.
func (p Pattern) Expand() []int {
	literals := len(p)
	base := 0
	for pos := 0; pos < literals; pos++ {
		if p[pos] == One {
			base += 1 << (literals - 1 - pos)
		}
	}
	values := make([]int, 1, 1<<p.DontCares())
	values[0] = base
	for pos := 0; pos < literals; pos++ {
		if p[pos] != DontCare {
			continue
		}
		weight := 1 << (literals - 1 - pos)
		for _, v := range values {
			values = append(values, v+weight)
		}
	}
	return values
}

// Covers reports whether minterm v is one of the pattern's expansions.
func (p Pattern) Covers(v int) bool {
	literals := len(p)
	if v>>literals != 0 {
		return false
	}
	for pos := 0; pos < literals; pos++ {
		bit := v >> (literals - 1 - pos) & 1
		switch p[pos] {
		case One:
			if bit != 1 {
				return false
			}
		case Zero:
			if bit != 0 {
				return false
			}
		}
	}
	return true
}

// Row pairs a prime implicant with the chart columns it covers.
type Row struct {
	Implicant Pattern
	cover     *roaring.Bitmap
}

// Chart is the prime implicant covering chart. Rows and columns are removed
// logically through the live index sets, so indices never shift.
type Chart struct {
	rows     []Row
	liveRows *roaring.Bitmap
	liveCols *roaring.Bitmap
	columns  []int
}

// BuildChart creates one row per prime implicant over the columns of set.
// Expanded values outside the set contribute no coverage.
func BuildChart(primes []Pattern, set *MintermSet) (*Chart, error) {
	c := &Chart{
		rows:     make([]Row, len(primes)),
		liveRows: roaring.New(),
		liveCols: roaring.New(),
		columns:  set.Values(),
	}
	c.liveCols.AddRange(0, uint64(set.Len()))

	covered := roaring.New()
	for i, p := range primes {
		cover := roaring.New()
		for _, v := range p.Expand() {
			if col, ok := set.IndexOf(v); ok {
				cover.Add(uint32(col))
			}
		}
		if cover.IsEmpty() {
			return nil, fmt.Errorf("%w: implicant %q covers no minterm", ErrUnreachableState, string(p))
		}
		covered.Or(cover)
		c.rows[i] = Row{Implicant: p, cover: cover}
		c.liveRows.Add(uint32(i))
	}
	if missing := roaring.AndNot(c.liveCols, covered); !missing.IsEmpty() {
		col := int(missing.Minimum())
		return nil, fmt.Errorf("%w: minterm %d is covered by no implicant", ErrUnreachableState, c.columns[col])
	}

	return c, nil
}

// Empty reports whether nothing remains to be covered.
func (c *Chart) Empty() bool {
	return c.liveRows.IsEmpty() || c.liveCols.IsEmpty()
}

// LiveRows returns the indices of the remaining rows in ascending order.
func (c *Chart) LiveRows() []int {
	return toInts(c.liveRows)
}

// LiveColumns returns the indices of the remaining columns in ascending order.
func (c *Chart) LiveColumns() []int {
	return toInts(c.liveCols)
}

func (c *Chart) Implicant(row int) Pattern {
	return c.rows[row].Implicant
}

// Minterm returns the minterm value of a column.
func (c *Chart) Minterm(col int) int {
	return c.columns[col]
}

// RowCover returns the live columns covered by row.
func (c *Chart) RowCover(row int) *roaring.Bitmap {
	return roaring.And(c.rows[row].cover, c.liveCols)
}

// ColumnRows returns the live rows covering col.
func (c *Chart) ColumnRows(col int) *roaring.Bitmap {
	rows := roaring.New()
	for _, r := range c.liveRows.ToArray() {
		if c.rows[r].cover.Contains(uint32(col)) {
			rows.Add(r)
		}
	}
	return rows
}

func (c *Chart) RemoveRows(rows ...int) {
	for _, r := range rows {
		c.liveRows.Remove(uint32(r))
	}
}

func (c *Chart) RemoveColumns(cols ...int) {
	for _, col := range cols {
		c.liveCols.Remove(uint32(col))
	}
}

func toInts(b *roaring.Bitmap) []int {
	arr := b.ToArray()
	out := make([]int, len(arr))
	for i, v := range arr {
		out[i] = int(v)
	}
	return out
}

// isSubset reports whether every element of a is in b.
func isSubset(a, b *roaring.Bitmap) bool {
	return a.AndCardinality(b) == a.GetCardinality()
}

// isProperSubset reports a ⊊ b.
func isProperSubset(a, b *roaring.Bitmap) bool {
	return a.GetCardinality() < b.GetCardinality() && isSubset(a, b)
}
