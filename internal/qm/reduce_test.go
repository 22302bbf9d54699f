package qm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChart(t *testing.T, values []int, primes []Pattern) *Chart {
	t.Helper()
	set, err := NewMintermSet(values)
	require.NoError(t, err)
	chart, err := BuildChart(primes, set)
	require.NoError(t, err)
	return chart
}

func TestExtractEssentials(t *testing.T) {
	chart := newTestChart(t,
		[]int{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15},
		[]Pattern{"X0X0", "XX10", "1XX0", "X1X1", "X11X", "11XX"},
	)
	r := NewReducer(chart, nil)

	require.True(t, r.ExtractEssentials())
	assert.Equal(t, []Pattern{"X0X0", "X1X1"}, r.Partial())
	assert.Equal(t, []int{1, 2, 4, 5}, chart.LiveRows())
	// Only minterms 6, 12 and 14 are left to cover.
	assert.Equal(t, []int{3, 7, 9}, chart.LiveColumns())

	assert.False(t, r.ExtractEssentials())
}

func TestRemoveDominatingColumns(t *testing.T) {
	chart := newTestChart(t,
		[]int{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15},
		[]Pattern{"X0X0", "XX10", "1XX0", "X1X1", "X11X", "11XX"},
	)
	r := NewReducer(chart, nil)
	require.True(t, r.ExtractEssentials())

	// Minterm 14 is covered by all four rows, a superset of minterm 6's rows.
	require.True(t, r.RemoveDominatingColumns())
	assert.Equal(t, []int{3, 7}, chart.LiveColumns())
	assert.False(t, r.RemoveDominatingColumns())
}

func TestRemoveDuplicateColumnsKeepsFirst(t *testing.T) {
	chart := newTestChart(t, []int{0, 1, 2, 3}, []Pattern{"0X", "1X", "XX"})
	r := NewReducer(chart, nil)

	// 0X covers columns 0,1; 1X covers 2,3; XX covers everything. Columns 0
	// and 1 share rows {0X, XX}, columns 2 and 3 share {1X, XX}.
	require.True(t, r.RemoveDominatingColumns())
	assert.Equal(t, []int{0, 2}, chart.LiveColumns())
}

func TestRemoveDominatedRows(t *testing.T) {
	chart := newTestChart(t, []int{0, 1, 2, 3}, []Pattern{"0X", "1X", "XX", "X1"})
	r := NewReducer(chart, nil)

	require.True(t, r.RemoveDominatedRows())
	assert.Equal(t, []int{2}, chart.LiveRows())
	assert.False(t, r.RemoveDominatedRows())
}

func TestRemoveDominatedRowsKeepsIdenticalRows(t *testing.T) {
	chart := newTestChart(t, []int{0, 1, 3, 7, 15}, []Pattern{"000X", "00X1", "0X11", "X111"})
	chart.RemoveColumns(0, 1, 3, 4)
	r := NewReducer(chart, nil)

	// 00X1 and 0X11 both cover just minterm 3; the others cover nothing.
	require.True(t, r.RemoveDominatedRows())
	assert.Equal(t, []int{1, 2}, chart.LiveRows())
	assert.False(t, r.RemoveDominatedRows())
}

func TestReduce(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		values   []int
		primes   []Pattern
		partial  []Pattern
		empty    bool
		liveRows []int
		liveCols []int
	}{
		{
			name:    "fully essential",
			values:  []int{0, 4, 5, 8, 12, 13, 15},
			primes:  []Pattern{"11X1", "XX00", "X10X"},
			partial: []Pattern{"XX00", "X10X", "11X1"},
			empty:   true,
		},
		{
			name:     "cyclic core stays",
			values:   []int{0, 1, 2, 5, 6, 7},
			primes:   []Pattern{"00X", "0X0", "X01", "X10", "1X1", "11X"},
			partial:  []Pattern{},
			liveRows: []int{0, 1, 2, 3, 4, 5},
			liveCols: []int{0, 1, 2, 3, 4, 5},
		},
		{
			name:     "essentials then tie",
			values:   []int{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15},
			primes:   []Pattern{"X0X0", "XX10", "1XX0", "X1X1", "X11X", "11XX"},
			partial:  []Pattern{"X0X0", "X1X1"},
			liveRows: []int{1, 2, 4, 5},
			liveCols: []int{3, 7},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			chart := newTestChart(t, tt.values, tt.primes)
			partial := NewReducer(chart, nil).Reduce()

			assert.Equal(t, tt.partial, partial)
			assert.Equal(t, tt.empty, chart.Empty())
			if !tt.empty {
				assert.Equal(t, tt.liveRows, chart.LiveRows())
				assert.Equal(t, tt.liveCols, chart.LiveColumns())
			}
		})
	}
}
