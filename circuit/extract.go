package circuit

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/Zibelmann/snarkVM/logger"
	"github.com/Zibelmann/snarkVM/r1cs"
)

// ToR1CS extracts the logical content of the circuit — ordered constraints,
// flattened witness and per-mode variable counts — in the row/column form
// consumed by a proving backend. The circuit itself is left untouched.
func (c *Circuit) ToR1CS() *r1cs.System {
	s := r1cs.NewSystem(len(c.constraints))
	s.NbConstants = c.NumConstants()
	s.NbPublic = c.NumPublic()
	s.NbPrivate = c.NumPrivate()

	s.Witness = make([]fr.Element, 0, s.NbConstants+s.NbPublic+s.NbPrivate)
	s.Witness = append(s.Witness, c.witness.Constants...)
	s.Witness = append(s.Witness, c.witness.Publics...)
	s.Witness = append(s.Witness, c.witness.Privates...)

	s.Scopes = make([]string, 0, len(c.constraints))
	for i := range c.constraints {
		cons := &c.constraints[i]
		s.Constraints = append(s.Constraints, r1cs.R1C{
			L: c.flatten(cons.A),
			R: c.flatten(cons.B),
			O: c.flatten(cons.C),
		})
		s.Scopes = append(s.Scopes, cons.Scope)
	}

	log := logger.Logger()
	log.Info().
		Int("nbConstraints", s.NbConstraints()).
		Int("nbConstants", s.NbConstants).
		Int("nbPublic", s.NbPublic).
		Int("nbPrivate", s.NbPrivate).
		Msg("extracted constraint system")

	return s
}

// flatten maps (mode, index) variables onto the flat column layout
// [constants | publics | privates].
func (c *Circuit) flatten(l LinearCombination) r1cs.LinearExpression {
	res := r1cs.LinearExpression{Constant: l.constant}
	res.Terms = make([]r1cs.Term, 0, len(l.terms))
	for _, t := range l.terms {
		res.Terms = append(res.Terms, r1cs.Term{Coeff: t.Coeff, Column: c.column(t.Variable)})
	}
	return res
}

func (c *Circuit) column(v Variable) uint32 {
	switch v.Mode {
	case Constant:
		return v.Index
	case Public:
		return uint32(c.NumConstants()) + v.Index
	default:
		return uint32(c.NumConstants()+c.NumPublic()) + v.Index
	}
}
