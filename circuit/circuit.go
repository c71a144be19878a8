package circuit

import (
	"fmt"
	"math"

	"github.com/Zibelmann/snarkVM/debug"
	"github.com/Zibelmann/snarkVM/profile"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Phase selects one of the two macro-states of a circuit-building session,
// fixed at construction for the session's lifetime.
type Phase uint8

const (
	// Setup builds the circuit structure only: witness values may be
	// placeholders and constraints are recorded without being checked.
	Setup Phase = iota
	// Execution carries a real witness; every Enforce is checked eagerly.
	Execution
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Execution:
		return "execution"
	default:
		return "unknown"
	}
}

// Circuit is the mutable environment accumulating allocated variables, their
// witness values and the emitted constraints. It is built by a single
// goroutine and consumed read-only by a proving backend through ToR1CS.
type Circuit struct {
	phase Phase

	witness     Witness
	constraints []Constraint

	scopes []string

	// combinations already constrained to be boolean, keyed by their hash
	// (to not constrain them twice)
	mtBooleans map[[16]byte][]LinearCombination
}

// New returns an empty circuit environment for the given phase.
func New(phase Phase) *Circuit {
	return &Circuit{
		phase:      phase,
		mtBooleans: make(map[[16]byte][]LinearCombination),
	}
}

// Phase returns the macro-state the session was created in.
func (c *Circuit) Phase() Phase {
	return c.phase
}

// NewVariable allocates the next free index for the given mode, stores value
// in the witness table and returns the handle. In the Setup phase, value may
// be a placeholder (e.g. zero); this is legal and not an error.
func (c *Circuit) NewVariable(mode Mode, value fr.Element) (Variable, error) {
	var vec *[]fr.Element
	switch mode {
	case Constant:
		vec = &c.witness.Constants
	case Public:
		vec = &c.witness.Publics
	case Private:
		vec = &c.witness.Privates
	default:
		return Variable{}, fmt.Errorf("%w: cannot allocate a variable with mode %d", ErrModeViolation, mode)
	}
	if uint64(len(*vec)) > math.MaxUint32 {
		return Variable{}, fmt.Errorf("%w: too many %s variables", ErrIndexExhaustion, mode)
	}
	*vec = append(*vec, value)
	return Variable{Mode: mode, Index: uint32(len(*vec) - 1)}, nil
}

// Eval returns the native value of l under the circuit's witness.
func (c *Circuit) Eval(l LinearCombination) fr.Element {
	return l.Evaluate(&c.witness)
}

// Witness returns a deep copy of the current witness.
func (c *Circuit) Witness() Witness {
	return c.witness.Clone()
}

// Enforce records the constraint a ⋅ b == o at the end of the constraint
// list. In the Execution phase the constraint is checked immediately against
// the witness, so that a bug is caught at the exact constraint that
// introduced it; the returned error wraps ErrUnsatisfiedConstraint and is
// fatal to the session.
func (c *Circuit) Enforce(a, b, o LinearCombination) error {
	cons := Constraint{A: a, B: b, C: o, Scope: c.scopePath()}
	c.constraints = append(c.constraints, cons)
	profile.RecordConstraint(c.scopes)

	if c.phase == Execution && !cons.IsSatisfied(&c.witness) {
		return c.unsatisfiedError(len(c.constraints) - 1)
	}
	return nil
}

func (c *Circuit) unsatisfiedError(num int) error {
	cons := &c.constraints[num]
	scope := cons.Scope
	if scope == "" {
		scope = "(unscoped)"
	}
	if debug.Debug {
		return fmt.Errorf("%w #%d in scope %s: %s\n%s", ErrUnsatisfiedConstraint, num, scope, cons.String(), debug.Stack())
	}
	return fmt.Errorf("%w #%d in scope %s: %s", ErrUnsatisfiedConstraint, num, scope, cons.String())
}

// Check re-evaluates every stored constraint under the current witness and
// returns an error describing the first violated one, or nil.
func (c *Circuit) Check() error {
	for i := range c.constraints {
		if !c.constraints[i].IsSatisfied(&c.witness) {
			return c.unsatisfiedError(i)
		}
	}
	return nil
}

// IsSatisfied reports whether every stored constraint holds under the current
// witness, short-circuiting on the first failure.
func (c *Circuit) IsSatisfied() bool {
	return c.Check() == nil
}

// NumConstants returns the number of allocated constant variables.
func (c *Circuit) NumConstants() int { return len(c.witness.Constants) }

// NumPublic returns the number of allocated public variables.
func (c *Circuit) NumPublic() int { return len(c.witness.Publics) }

// NumPrivate returns the number of allocated private variables.
func (c *Circuit) NumPrivate() int { return len(c.witness.Privates) }

// NumConstraints returns the number of emitted constraints.
func (c *Circuit) NumConstraints() int { return len(c.constraints) }
