package circuit

import (
	"encoding/binary"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/crypto/blake2b"
)

// LinearCombination is an affine combination of circuit variables with
// field-element coefficients plus a constant term.
//
// The term slice is canonical: sorted by variable, one term per variable,
// zero-coefficient terms pruned. All operations are pure; they return a new
// LinearCombination and never mutate their operands, never allocate a
// variable and never emit a constraint.
type LinearCombination struct {
	constant fr.Element
	terms    []Term
}

// NewConstant lifts a field element into a linear combination.
func NewConstant(c fr.Element) LinearCombination {
	return LinearCombination{constant: c}
}

// NewTerm returns the linear combination coeff ⋅ v.
func NewTerm(v Variable, coeff fr.Element) LinearCombination {
	if coeff.IsZero() {
		return LinearCombination{}
	}
	return LinearCombination{terms: []Term{{Variable: v, Coeff: coeff}}}
}

// FromVariable returns the linear combination 1 ⋅ v.
func FromVariable(v Variable) LinearCombination {
	var one fr.Element
	one.SetOne()
	return LinearCombination{terms: []Term{{Variable: v, Coeff: one}}}
}

// One returns the constant linear combination 1.
func One() LinearCombination {
	var one fr.Element
	one.SetOne()
	return NewConstant(one)
}

// Zero returns the zero linear combination.
func Zero() LinearCombination {
	return LinearCombination{}
}

// Mode returns the derived visibility of the combination: Constant iff every
// term variable is constant, otherwise Private if any term variable is
// private, else Public.
func (l LinearCombination) Mode() Mode {
	m := Constant
	for _, t := range l.terms {
		m = Combine(m, t.Variable.Mode)
	}
	return m
}

// Constant returns the constant part of the combination.
func (l LinearCombination) Constant() fr.Element {
	return l.constant
}

// NbTerms returns the number of (non-zero) terms.
func (l LinearCombination) NbTerms() int {
	return len(l.terms)
}

// Terms returns a copy of the canonical term slice.
func (l LinearCombination) Terms() []Term {
	res := make([]Term, len(l.terms))
	copy(res, l.terms)
	return res
}

// IsZero reports whether the combination is identically zero.
func (l LinearCombination) IsZero() bool {
	return len(l.terms) == 0 && l.constant.IsZero()
}

// Add returns l + o, merging terms that refer to the same variable and
// pruning the ones whose coefficient cancels.
func (l LinearCombination) Add(o LinearCombination) LinearCombination {
	var res LinearCombination
	res.constant.Add(&l.constant, &o.constant)
	res.terms = make([]Term, 0, len(l.terms)+len(o.terms))

	i, j := 0, 0
	for i < len(l.terms) && j < len(o.terms) {
		switch c := l.terms[i].Variable.Compare(o.terms[j].Variable); {
		case c < 0:
			res.terms = append(res.terms, l.terms[i])
			i++
		case c > 0:
			res.terms = append(res.terms, o.terms[j])
			j++
		default:
			var coeff fr.Element
			coeff.Add(&l.terms[i].Coeff, &o.terms[j].Coeff)
			if !coeff.IsZero() {
				res.terms = append(res.terms, Term{Variable: l.terms[i].Variable, Coeff: coeff})
			}
			i++
			j++
		}
	}
	res.terms = append(res.terms, l.terms[i:]...)
	res.terms = append(res.terms, o.terms[j:]...)
	return res
}

// Sub returns l - o.
func (l LinearCombination) Sub(o LinearCombination) LinearCombination {
	return l.Add(o.Neg())
}

// Neg returns -l.
func (l LinearCombination) Neg() LinearCombination {
	var res LinearCombination
	res.constant.Neg(&l.constant)
	res.terms = make([]Term, len(l.terms))
	for i, t := range l.terms {
		res.terms[i].Variable = t.Variable
		res.terms[i].Coeff.Neg(&t.Coeff)
	}
	return res
}

// MulConstant returns lambda ⋅ l, distributing the scalar over the constant
// and every coefficient. Unlike a general product, this is always legal and
// never requires a constraint.
func (l LinearCombination) MulConstant(lambda fr.Element) LinearCombination {
	if lambda.IsZero() {
		return LinearCombination{}
	}
	var res LinearCombination
	res.constant.Mul(&l.constant, &lambda)
	res.terms = make([]Term, len(l.terms))
	for i, t := range l.terms {
		res.terms[i].Variable = t.Variable
		res.terms[i].Coeff.Mul(&t.Coeff, &lambda)
	}
	return res
}

// Evaluate returns the native value of the combination under w: the constant
// plus the weighted sum of each term variable's witness value.
func (l LinearCombination) Evaluate(w *Witness) fr.Element {
	res := l.constant
	var tmp fr.Element
	for _, t := range l.terms {
		v := w.Value(t.Variable)
		tmp.Mul(&t.Coeff, &v)
		res.Add(&res, &tmp)
	}
	return res
}

// Equal reports whether both canonical forms are the same.
func (l LinearCombination) Equal(o LinearCombination) bool {
	if !l.constant.Equal(&o.constant) {
		return false
	}
	if len(l.terms) != len(o.terms) {
		return false
	}
	for i := range l.terms {
		if l.terms[i].Variable != o.terms[i].Variable {
			return false
		}
		if !l.terms[i].Coeff.Equal(&o.terms[i].Coeff) {
			return false
		}
	}
	return true
}

// HashCode returns a collision-resistant identifier of the linear
// combination, constructed from the hash codes of its terms.
func (l LinearCombination) HashCode() [16]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	var buf [8]byte
	for i := range l.terms {
		binary.LittleEndian.PutUint64(buf[:], l.terms[i].HashCode())
		h.Write(buf[:])
	}
	cst := l.constant.Bytes()
	h.Write(cst[:])
	crc := h.Sum(nil)
	return [16]byte(crc[:16])
}

// String formats the combination as coeff⋅variable terms joined by " + ",
// with the constant last.
func (l LinearCombination) String() string {
	if l.IsZero() {
		return "0"
	}
	var sbb strings.Builder
	for i, t := range l.terms {
		if i > 0 {
			sbb.WriteString(" + ")
		}
		if !t.Coeff.IsOne() {
			sbb.WriteString(t.Coeff.String())
			sbb.WriteString("⋅")
		}
		sbb.WriteString(t.Variable.String())
	}
	if !l.constant.IsZero() {
		if len(l.terms) > 0 {
			sbb.WriteString(" + ")
		}
		sbb.WriteString(l.constant.String())
	}
	return sbb.String()
}
