package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Witness stores the concrete field assignment of every allocated variable,
// one vector per visibility. The Circuit is the exclusive owner of its
// witness; linear combinations only reference entries by Variable identity.
type Witness struct {
	Constants []fr.Element
	Publics   []fr.Element
	Privates  []fr.Element
}

// Value returns the witness value of v. It panics if v was not allocated by
// the circuit owning this witness.
func (w *Witness) Value(v Variable) fr.Element {
	vec := w.vector(v.Mode)
	if int(v.Index) >= len(vec) {
		panic(fmt.Sprintf("witness: %s variable index %d out of range (%d allocated)", v.Mode, v.Index, len(vec)))
	}
	return vec[v.Index]
}

func (w *Witness) vector(m Mode) []fr.Element {
	switch m {
	case Constant:
		return w.Constants
	case Public:
		return w.Publics
	case Private:
		return w.Privates
	default:
		panic("witness: unknown mode")
	}
}

// Clone returns a deep copy of the witness.
func (w *Witness) Clone() Witness {
	clone := Witness{
		Constants: make([]fr.Element, len(w.Constants)),
		Publics:   make([]fr.Element, len(w.Publics)),
		Privates:  make([]fr.Element, len(w.Privates)),
	}
	copy(clone.Constants, w.Constants)
	copy(clone.Publics, w.Publics)
	copy(clone.Privates, w.Privates)
	return clone
}
