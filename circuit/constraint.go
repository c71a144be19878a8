package circuit

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Constraint asserts A ⋅ B == C over the witness. Constraints are append-only
// and never mutated after creation; their position in the circuit's list is
// their constraint number.
type Constraint struct {
	A, B, C LinearCombination

	// Scope is the "/"-joined scope path that was active when the constraint
	// was emitted. Diagnostics only, no semantic weight.
	Scope string
}

// IsSatisfied reports whether A ⋅ B == C holds under w.
func (c *Constraint) IsSatisfied(w *Witness) bool {
	a := c.A.Evaluate(w)
	b := c.B.Evaluate(w)
	o := c.C.Evaluate(w)
	var ab fr.Element
	ab.Mul(&a, &b)
	return ab.Equal(&o)
}

// String formats a constraint as A ⋅ B == C.
func (c *Constraint) String() string {
	return "(" + c.A.String() + ") ⋅ (" + c.B.String() + ") == (" + c.C.String() + ")"
}
