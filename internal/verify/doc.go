// Package verify checks minimization results independently of the
// algorithm that produced them.
//
// Coverage and Irredundant test the solution sets directly. MinimumCoverSize
// encodes the covering problem for the gini SAT solver and searches for the
// least cardinality with a sorting network, and Equivalent compares BDDs of
// the input function and of the rendered sum of products.
package verify
