package circuit

import "errors"

var (
	// ErrUnsatisfiedConstraint is returned by Enforce (in Execution phase)
	// when the constraint being emitted does not hold under the current
	// witness. It is fatal to the circuit-building session.
	ErrUnsatisfiedConstraint = errors.New("unsatisfied constraint")

	// ErrModeViolation signals a logic bug in the calling gadget: the
	// requested operation cannot satisfy the mode-combination rule.
	ErrModeViolation = errors.New("mode violation")

	// ErrIndexExhaustion is returned when a per-mode variable counter would
	// overflow its representable range.
	ErrIndexExhaustion = errors.New("variable index space exhausted")
)
