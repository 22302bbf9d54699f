// Package minimize is the public entry point of qmc. It loads the YAML
// configuration, parses minterm lists, and runs the minimizer over single
// functions or whole batches with a bounded worker pool.
package minimize
