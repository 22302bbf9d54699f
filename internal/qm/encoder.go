package qm

import (
	"fmt"
	"math/bits"
	"strings"
)

// MintermSet is the validated, immutable input function.
type MintermSet struct {
	values   []int
	index    map[int]int
	literals int
}

// NewMintermSet validates values and returns the set. values must be
// non-empty, non-negative, duplicate-free and sorted ascending.
func NewMintermSet(values []int) (*MintermSet, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: minterm set is empty", ErrInvalidInput)
	}

	set := &MintermSet{
		values: make([]int, len(values)),
		index:  make(map[int]int, len(values)),
	}
	for i, v := range values {
		if v < 0 {
			return nil, fmt.Errorf("%w: minterm %d is negative", ErrInvalidInput, v)
		}
		if _, dup := set.index[v]; dup {
			return nil, fmt.Errorf("%w: minterm %d appears more than once", ErrInvalidInput, v)
		}
		if i > 0 && v < values[i-1] {
			return nil, fmt.Errorf("%w: minterms are not sorted ascending (%d after %d)", ErrInvalidInput, v, values[i-1])
		}
		set.values[i] = v
		set.index[v] = i
	}
	// ceil(log2(max+1)) is the bit length of max.
	set.literals = bits.Len(uint(values[len(values)-1]))

	return set, nil
}

// Values returns a copy of the minterms in ascending order.
func (s *MintermSet) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

func (s *MintermSet) Len() int { return len(s.values) }

// LiteralCount is the number of Boolean variables of the function.
func (s *MintermSet) LiteralCount() int { return s.literals }

// IndexOf returns the column of minterm v in the chart.
func (s *MintermSet) IndexOf(v int) (int, bool) {
	i, ok := s.index[v]
	return i, ok
}

// EncodeMinterm renders v as a most-significant-bit-first pattern of the
// given width, zero padded on the left.
func EncodeMinterm(v, literals int) Pattern {
	var sb strings.Builder
	sb.Grow(literals)
	for pos := 0; pos < literals; pos++ {
		if v>>(literals-1-pos)&1 == 1 {
			sb.WriteByte(One)
		} else {
			sb.WriteByte(Zero)
		}
	}
	return Pattern(sb.String())
}

// Encode returns the binary pattern of every minterm, in input order.
func Encode(set *MintermSet) []Pattern {
	patterns := make([]Pattern, 0, set.Len())
	for _, v := range set.values {
		patterns = append(patterns, EncodeMinterm(v, set.literals))
	}
	return patterns
}

// Partition groups patterns by population count into literals+1 groups.
func Partition(patterns []Pattern, literals int) Round {
	round := NewRound(literals)
	for _, p := range patterns {
		round[p.Ones()].Add(p)
	}
	return round
}
