package circuit

// Mode classifies the visibility of a circuit value.
//
// A Constant is baked into the circuit description and known to all parties at
// compile time. A Public value is supplied per execution and known to the
// verifier. A Private value is known only to the prover.
type Mode uint8

const (
	Constant Mode = iota
	Public
	Private
)

// Combine returns the visibility of a value computed from two operands:
// constant operands produce a constant, and any private operand makes the
// result private.
func Combine(a, b Mode) Mode {
	switch {
	case a == Constant && b == Constant:
		return Constant
	case a == Private || b == Private:
		return Private
	default:
		return Public
	}
}

func (m Mode) IsConstant() bool { return m == Constant }

func (m Mode) IsPublic() bool { return m == Public }

func (m Mode) IsPrivate() bool { return m == Private }

func (m Mode) String() string {
	switch m {
	case Constant:
		return "constant"
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}
