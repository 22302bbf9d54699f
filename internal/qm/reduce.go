package qm

import (
	"github.com/RoaringBitmap/roaring"
	"go.uber.org/zap"
)

// Reducer shrinks a chart in place and accumulates the essential prime
// implicants into a partial solution.
type Reducer struct {
	chart   *Chart
	partial []Pattern
	logger  *zap.Logger
}

func NewReducer(chart *Chart, logger *zap.Logger) *Reducer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reducer{chart: chart, logger: logger}
}

// Partial returns the essential implicants found so far, in discovery order.
func (r *Reducer) Partial() []Pattern {
	out := make([]Pattern, len(r.partial))
	copy(out, r.partial)
	return out
}

// Reduce applies essential extraction, column dominance and row dominance,
// in that order, until an iteration removes nothing or the chart is empty.
func (r *Reducer) Reduce() []Pattern {
	for iteration := 0; !r.chart.Empty(); iteration++ {
		essential := r.ExtractEssentials()
		columns := r.RemoveDominatingColumns()
		rows := r.RemoveDominatedRows()

		r.logger.Debug("reduction iteration",
			zap.Int("iteration", iteration),
			zap.Bool("essential", essential),
			zap.Bool("columns", columns),
			zap.Bool("rows", rows),
			zap.Int("liveRows", len(r.chart.LiveRows())),
			zap.Int("liveColumns", len(r.chart.LiveColumns())),
		)
		if !essential && !columns && !rows {
			break
		}
	}
	return r.Partial()
}

// ExtractEssentials moves every row that is the sole cover of some column
// into the partial solution, then drops those rows and every column they
// cover.
func (r *Reducer) ExtractEssentials() bool {
	c := r.chart
	if c.Empty() {
		return false
	}

	var essentials []int
	seen := make(map[int]bool)
	for _, col := range c.LiveColumns() {
		rows := c.ColumnRows(col)
		if rows.GetCardinality() != 1 {
			continue
		}
		row := int(rows.Minimum())
		if !seen[row] {
			seen[row] = true
			essentials = append(essentials, row)
		}
	}
	if len(essentials) == 0 {
		return false
	}

	covered := roaring.New()
	for _, row := range essentials {
		covered.Or(c.RowCover(row))
		r.partial = append(r.partial, c.Implicant(row))
		r.logger.Debug("essential implicant", zap.String("implicant", string(c.Implicant(row))))
	}
	c.RemoveRows(essentials...)
	c.RemoveColumns(toInts(covered)...)
	return true
}

// RemoveDominatingColumns drops every column whose covering rows are a
// strict superset of another column's, since covering the smaller column
// implies covering it. Of several identical columns only the first is kept.
func (r *Reducer) RemoveDominatingColumns() bool {
	c := r.chart
	if c.Empty() {
		return false
	}

	cols := c.LiveColumns()
	rowsOf := make([]*roaring.Bitmap, len(cols))
	for i, col := range cols {
		rowsOf[i] = c.ColumnRows(col)
	}

	removed := make([]bool, len(cols))
	for i := range cols {
		for j := range cols {
			if i != j && isProperSubset(rowsOf[j], rowsOf[i]) {
				removed[i] = true
				break
			}
		}
	}
	for i := range cols {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(cols); j++ {
			if !removed[j] && rowsOf[j].Equals(rowsOf[i]) {
				removed[j] = true
			}
		}
	}

	var drop []int
	for i, col := range cols {
		if removed[i] {
			drop = append(drop, col)
		}
	}
	if len(drop) == 0 {
		return false
	}
	c.RemoveColumns(drop...)
	r.logger.Debug("removed dominating columns", zap.Ints("columns", drop))
	return true
}

// RemoveDominatedRows drops every row whose live coverage is a strict subset
// of another row's. Rows with identical coverage are all kept so that
// equal-cost alternatives reach the resolver.
func (r *Reducer) RemoveDominatedRows() bool {
	c := r.chart
	if c.Empty() {
		return false
	}

	rows := c.LiveRows()
	covers := make([]*roaring.Bitmap, len(rows))
	for i, row := range rows {
		covers[i] = c.RowCover(row)
	}

	var drop []int
	for i, row := range rows {
		for j := range rows {
			if i != j && isProperSubset(covers[i], covers[j]) {
				drop = append(drop, row)
				break
			}
		}
	}
	if len(drop) == 0 {
		return false
	}
	c.RemoveRows(drop...)
	r.logger.Debug("removed dominated rows", zap.Ints("rows", drop))
	return true
}
