package minimize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/gnoswap-labs/qmc/internal/qm"
)

// ParseMinterms reads decimal minterms separated by whitespace or commas
// and returns them sorted ascending. Duplicates and negative values are
// kept for the minimizer to reject.
func ParseMinterms(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", qm.ErrInvalidInput, f)
		}
		values = append(values, v)
	}
	sort.Ints(values)
	return values, nil
}

// Function is one named minterm list.
type Function struct {
	Name     string
	Line     int
	Minterms []int
}

// ParseFunction reads a line of the form "[name:] minterms".
func ParseFunction(line string) (Function, error) {
	var fn Function
	if name, rest, ok := strings.Cut(line, ":"); ok {
		fn.Name = strings.TrimSpace(name)
		line = rest
	}
	values, err := ParseMinterms(line)
	if err != nil {
		return fn, err
	}
	fn.Minterms = values
	return fn, nil
}
