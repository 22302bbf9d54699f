// Package qm minimizes a Boolean function, given as the list of its minterms,
// into every minimum sum-of-products cover.
//
// The pipeline is strictly sequential:
//
//	Encoder -> Implicant Generator -> Chart Builder -> Chart Reducer -> Cover Resolver
//
// The generator performs the Quine–McCluskey merge rounds until no adjacent
// implicants combine. The reducer shrinks the prime implicant chart with
// essential extraction, column dominance and row dominance, and any cyclic
// core left over is solved exactly with Petrick's method.
//
// All state is owned by a single Minimize call; the package keeps no mutable
// globals and may be used from multiple goroutines.
package qm
