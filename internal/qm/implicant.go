package qm

import (
	"strings"

	"go.uber.org/zap"
)

// Pattern symbols.
const (
	Zero     byte = '0'
	One      byte = '1'
	DontCare byte = 'X'
)

// Pattern is a fixed-width implicant over {0, 1, X}, most significant
// variable first. A pattern without X is a single minterm.
type Pattern string

// Ones counts the '1' symbols. Don't-care positions are not counted.
func (p Pattern) Ones() int {
	return strings.Count(string(p), string(One))
}

// DontCares counts the X symbols.
func (p Pattern) DontCares() int {
	return strings.Count(string(p), string(DontCare))
}

// Merge combines p and q when they differ in exactly one position holding 0
// in one pattern and 1 in the other. The result carries X at that position.
func (p Pattern) Merge(q Pattern) (Pattern, bool) {
	if len(p) != len(q) {
		return "", false
	}
	pos := -1
	for i := 0; i < len(p); i++ {
		if p[i] == q[i] {
			continue
		}
		if pos >= 0 || p[i] == DontCare || q[i] == DontCare {
			return "", false
		}
		pos = i
	}
	if pos < 0 {
		return "", false
	}
	return p[:pos] + Pattern(DontCare) + p[pos+1:], true
}

// Group is an insertion-ordered set of patterns sharing one population count
// within a round, each with its own consumed flag.
type Group struct {
	patterns []Pattern
	consumed []bool
	index    map[Pattern]int
}

func NewGroup() *Group {
	return &Group{index: make(map[Pattern]int)}
}

// Add inserts p unless it is already present and reports whether it was new.
func (g *Group) Add(p Pattern) bool {
	if g.Contains(p) {
		return false
	}
	g.index[p] = len(g.patterns)
	g.patterns = append(g.patterns, p)
	g.consumed = append(g.consumed, false)
	return true
}

// MarkConsumed flags p as merged in this round. Unknown patterns are ignored.
func (g *Group) MarkConsumed(p Pattern) {
	if i, ok := g.index[p]; ok {
		g.consumed[i] = true
	}
}

func (g *Group) Consumed(p Pattern) bool {
	i, ok := g.index[p]
	return ok && g.consumed[i]
}

func (g *Group) Contains(p Pattern) bool {
	_, ok := g.index[p]
	return ok
}

// Patterns returns the patterns in insertion order.
func (g *Group) Patterns() []Pattern {
	out := make([]Pattern, len(g.patterns))
	copy(out, g.patterns)
	return out
}

func (g *Group) Len() int { return len(g.patterns) }

// Unconsumed returns the patterns never merged, in insertion order.
func (g *Group) Unconsumed() []Pattern {
	var out []Pattern
	for i, p := range g.patterns {
		if !g.consumed[i] {
			out = append(out, p)
		}
	}
	return out
}

// Round holds one group per population count, 0 through literals.
type Round []*Group

func NewRound(literals int) Round {
	round := make(Round, literals+1)
	for i := range round {
		round[i] = NewGroup()
	}
	return round
}

// Size is the number of patterns across every group of the round.
func (r Round) Size() int {
	n := 0
	for _, g := range r {
		n += g.Len()
	}
	return n
}

// MergeRound compares every pattern of each group with every pattern of the
// next group. Merged patterns form the next round; both sources of a merge
// are marked consumed in cur. The returned count is the number of successful
// merges, duplicates included.
func MergeRound(cur Round, literals int) (Round, int) {
	next := NewRound(literals)
	merges := 0
	for i := 0; i+1 < len(cur); i++ {
		lower, upper := cur[i], cur[i+1]
		for _, a := range lower.patterns {
			for _, b := range upper.patterns {
				m, ok := a.Merge(b)
				if !ok {
					continue
				}
				next[m.Ones()].Add(m)
				lower.MarkConsumed(a)
				upper.MarkConsumed(b)
				merges++
			}
		}
	}
	return next, merges
}

// GeneratePrimes runs merge rounds starting from first until a round yields
// no merge, and returns every never-consumed pattern in order of discovery.
func GeneratePrimes(first Round, literals int, logger *zap.Logger) []Pattern {
	if logger == nil {
		logger = zap.NewNop()
	}

	rounds := []Round{first}
	for {
		cur := rounds[len(rounds)-1]
		next, merges := MergeRound(cur, literals)
		logger.Debug("merge round",
			zap.Int("round", len(rounds)-1),
			zap.Int("patterns", cur.Size()),
			zap.Int("merges", merges),
		)
		if merges == 0 {
			break
		}
		rounds = append(rounds, next)
	}

	seen := make(map[Pattern]bool)
	var primes []Pattern
	for _, round := range rounds {
		for _, g := range round {
			for _, p := range g.Unconsumed() {
				if seen[p] {
					continue
				}
				seen[p] = true
				primes = append(primes, p)
			}
		}
	}
	return primes
}
