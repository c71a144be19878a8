package circuit

import (
	"strconv"
)

// Variable is a lightweight handle into the circuit's witness table.
//
// Constant, public and private variables live in separate index spaces, each
// contiguous from zero. A Variable never carries a value; the Circuit that
// allocated it is the exclusive owner of the associated witness entry.
type Variable struct {
	Mode  Mode
	Index uint32
}

// Compare orders variables by mode then index. It is the order in which
// linear combination terms are kept.
func (v Variable) Compare(o Variable) int {
	if v.Mode != o.Mode {
		return int(v.Mode) - int(o.Mode)
	}
	if v.Index != o.Index {
		if v.Index < o.Index {
			return -1
		}
		return 1
	}
	return 0
}

// String formats a variable as c0, p0 or s0 for constant, public and private
// (secret) variables.
func (v Variable) String() string {
	var prefix string
	switch v.Mode {
	case Constant:
		prefix = "c"
	case Public:
		prefix = "p"
	case Private:
		prefix = "s"
	default:
		prefix = "u"
	}
	return prefix + strconv.FormatUint(uint64(v.Index), 10)
}
