// Package circuit implements the environment used to build rank-1 constraint
// systems over the BLS12-377 scalar field.
//
// A Circuit owns the witness value of every allocated Variable and the ordered
// list of emitted constraints. Client code allocates variables, composes them
// into linear combinations with the pure algebra of LinearCombination, and
// records multiplicative constraints with Enforce. Every operation propagates
// the three-level visibility classification (constant / public / private)
// through Mode.Combine, and operations whose operands are all constant fold to
// a constant without allocating a variable or emitting a constraint.
//
// A Circuit is not safe for concurrent use; one instance is built by one
// goroutine across its whole session.
package circuit
