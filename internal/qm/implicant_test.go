package qm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternMerge(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b Pattern
		want Pattern
		ok   bool
	}{
		{a: "000", b: "001", want: "00X", ok: true},
		{a: "0X1", b: "1X1", want: "XX1", ok: true},
		{a: "000", b: "011", ok: false},
		{a: "0X0", b: "00X", ok: false},
		{a: "0X0", b: "1X1", ok: false},
		{a: "101", b: "101", ok: false},
		{a: "X0", b: "10", ok: false},
		{a: "10", b: "100", ok: false},
	}

	for _, tt := range tests {
		got, ok := tt.a.Merge(tt.b)
		assert.Equal(t, tt.ok, ok, "%s + %s", tt.a, tt.b)
		assert.Equal(t, tt.want, got, "%s + %s", tt.a, tt.b)
	}
}

func TestPatternCounts(t *testing.T) {
	p := Pattern("1X0X1")
	assert.Equal(t, 2, p.Ones())
	assert.Equal(t, 2, p.DontCares())
}

func TestGroup(t *testing.T) {
	g := NewGroup()
	assert.True(t, g.Add("01"))
	assert.True(t, g.Add("10"))
	assert.False(t, g.Add("01"))
	assert.Equal(t, 2, g.Len())

	g.MarkConsumed("10")
	g.MarkConsumed("11")
	assert.True(t, g.Consumed("10"))
	assert.False(t, g.Consumed("01"))
	assert.False(t, g.Contains("11"))
	assert.Equal(t, []Pattern{"01"}, g.Unconsumed())
}

func TestMergeRound(t *testing.T) {
	cur := Partition([]Pattern{"000", "001", "010", "101"}, 3)

	next, merges := MergeRound(cur, 3)
	assert.Equal(t, 3, merges)
	assert.Equal(t, []Pattern{"00X", "0X0"}, next[0].Patterns())
	assert.Equal(t, []Pattern{"X01"}, next[1].Patterns())

	// Sources stay in their group, flagged as consumed.
	assert.Equal(t, 4, cur.Size())
	for _, p := range []Pattern{"000", "001", "010", "101"} {
		assert.True(t, cur[p.Ones()].Consumed(p), "%s should be consumed", p)
	}
}

func TestMergeRoundCollapsesDuplicates(t *testing.T) {
	cur := Partition([]Pattern{"0X", "X0", "X1", "1X"}, 2)

	next, merges := MergeRound(cur, 2)
	assert.Equal(t, 2, merges)
	assert.Equal(t, []Pattern{"XX"}, next[0].Patterns())
	assert.Equal(t, 1, next.Size())
	for _, p := range []Pattern{"0X", "X0", "X1", "1X"} {
		assert.True(t, cur[p.Ones()].Consumed(p), "%s should be consumed", p)
	}
}

func TestGeneratePrimes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []int
		want   []Pattern
	}{
		{
			name:   "constant true over two variables",
			values: []int{0, 1, 2, 3},
			want:   []Pattern{"XX"},
		},
		{
			name:   "single minterm",
			values: []int{5},
			want:   []Pattern{"101"},
		},
		{
			name:   "degenerate",
			values: []int{0},
			want:   []Pattern{""},
		},
		{
			name:   "primes found in different rounds",
			values: []int{0, 4, 5, 8, 12, 13, 15},
			want:   []Pattern{"11X1", "XX00", "X10X"},
		},
		{
			name:   "eleven minterms",
			values: []int{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15},
			want:   []Pattern{"X0X0", "XX10", "1XX0", "X1X1", "X11X", "11XX"},
		},
		{
			name:   "cyclic",
			values: []int{0, 1, 2, 5, 6, 7},
			want:   []Pattern{"00X", "0X0", "X01", "X10", "1X1", "11X"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			set, err := NewMintermSet(tt.values)
			require.NoError(t, err)

			primes := GeneratePrimes(Partition(Encode(set), set.LiteralCount()), set.LiteralCount(), nil)
			assert.Equal(t, tt.want, primes)
		})
	}
}

// No two primes of equal don't-care depth can merge further.
func TestPrimesAreNotMergeable(t *testing.T) {
	for _, values := range [][]int{
		{0, 2, 5, 6, 7, 8, 10, 12, 13, 14, 15},
		{1, 3, 4, 6, 9, 11, 12, 14},
		{0, 1, 2, 5, 6, 7, 8, 9, 10, 14},
	} {
		set, err := NewMintermSet(values)
		require.NoError(t, err)
		primes := GeneratePrimes(Partition(Encode(set), set.LiteralCount()), set.LiteralCount(), nil)

		for i, a := range primes {
			for j, b := range primes {
				if i == j || a.DontCares() != b.DontCares() {
					continue
				}
				_, ok := a.Merge(b)
				assert.False(t, ok, "%s and %s merge", a, b)
			}
		}
	}
}
