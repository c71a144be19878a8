package circuit

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Term represents coeff ⋅ variable in a linear combination.
type Term struct {
	Variable Variable
	Coeff    fr.Element
}

// HashCode returns a cheap, collision-friendly identifier of the term, used
// to key the boolean-marking cache.
func (t Term) HashCode() uint64 {
	return t.Coeff[0]*29 + uint64(t.Variable.Index)<<12 + uint64(t.Variable.Mode)
}
