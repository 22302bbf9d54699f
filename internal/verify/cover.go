package verify

import (
	"errors"
	"fmt"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

var (
	ErrUncovered  = errors.New("minterm not covered")
	ErrRedundant  = errors.New("redundant implicant")
	ErrNotMinimum = errors.New("cover is not minimum")
	ErrNotEqual   = errors.New("expression differs from function")
)

// Coverage reports the first minterm of values that no implicant of sol
// covers.
func Coverage(values []int, sol qm.Solution) error {
	for _, v := range values {
		if !coveredBy(v, sol) {
			return fmt.Errorf("%w: %d", ErrUncovered, v)
		}
	}
	return nil
}

// Irredundant reports an implicant whose removal keeps every minterm covered.
func Irredundant(values []int, sol qm.Solution) error {
	for i, p := range sol {
		rest := make(qm.Solution, 0, len(sol)-1)
		rest = append(rest, sol[:i]...)
		rest = append(rest, sol[i+1:]...)
		if Coverage(values, rest) == nil {
			return fmt.Errorf("%w: %s", ErrRedundant, p)
		}
	}
	return nil
}

func coveredBy(v int, sol qm.Solution) bool {
	for _, p := range sol {
		if p.Covers(v) {
			return true
		}
	}
	return false
}
