package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Matrices returns the (A, B, C) sparse matrices of the system, one row per
// constraint, over the columns [1 | constants | publics | privates]: column 0
// is a synthetic one wire carrying each row's constant term. The matrices
// are evaluated against FullWitness.
func (s *System) Matrices() (A, B, C [][]Term) {
	A = make([][]Term, len(s.Constraints))
	B = make([][]Term, len(s.Constraints))
	C = make([][]Term, len(s.Constraints))
	for i := range s.Constraints {
		A[i] = matrixRow(&s.Constraints[i].L)
		B[i] = matrixRow(&s.Constraints[i].R)
		C[i] = matrixRow(&s.Constraints[i].O)
	}
	return A, B, C
}

func matrixRow(l *LinearExpression) []Term {
	row := make([]Term, 0, len(l.Terms)+1)
	if !l.Constant.IsZero() {
		row = append(row, Term{Coeff: l.Constant, Column: 0})
	}
	for _, t := range l.Terms {
		row = append(row, Term{Coeff: t.Coeff, Column: t.Column + 1})
	}
	return row
}

// FullWitness returns z = [1 | constants | publics | privates], the vector
// the matrices are evaluated against.
func (s *System) FullWitness() []fr.Element {
	z := make([]fr.Element, 0, len(s.Witness)+1)
	var one fr.Element
	one.SetOne()
	z = append(z, one)
	return append(z, s.Witness...)
}
