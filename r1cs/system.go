// Package r1cs holds the extracted, backend-facing form of a finished
// circuit: ordered rank-1 constraint rows over a flattened witness vector.
//
// A System is a read-only snapshot produced by circuit.ToR1CS. Unlike the
// circuit environment, its satisfaction check is safe to run in parallel.
package r1cs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"golang.org/x/sync/errgroup"

	snarkvm "github.com/Zibelmann/snarkVM"
)

// Term is coeff ⋅ z[Column], with z the flattened witness vector laid out as
// [constants | publics | privates].
type Term struct {
	Coeff  fr.Element
	Column uint32
}

// LinearExpression is an affine row: Constant + Σ terms.
type LinearExpression struct {
	Constant fr.Element
	Terms    []Term
}

// Evaluate returns the value of the expression under z.
func (l *LinearExpression) Evaluate(z []fr.Element) fr.Element {
	res := l.Constant
	var tmp fr.Element
	for _, t := range l.Terms {
		tmp.Mul(&t.Coeff, &z[t.Column])
		res.Add(&res, &tmp)
	}
	return res
}

// R1C asserts L ⋅ R == O over the witness vector.
type R1C struct {
	L, R, O LinearExpression
}

// IsSatisfied reports whether L ⋅ R == O holds under z.
func (c *R1C) IsSatisfied(z []fr.Element) bool {
	l := c.L.Evaluate(z)
	r := c.R.Evaluate(z)
	o := c.O.Evaluate(z)
	var lr fr.Element
	lr.Mul(&l, &r)
	return lr.Equal(&o)
}

// System is the logical content handed to a proving backend: the ordered
// constraint list, the flattened witness and the per-mode variable counts.
type System struct {
	// serialization header
	Version     string
	ScalarField string

	NbConstants int
	NbPublic    int
	NbPrivate   int

	Constraints []R1C

	// Witness is the flattened assignment [constants | publics | privates].
	Witness []fr.Element

	// Scopes holds the scope path each constraint was emitted under.
	// Diagnostics only.
	Scopes []string
}

// NewSystem returns an empty system carrying the library version and scalar
// field headers.
func NewSystem(capacity int) *System {
	return &System{
		Version:     snarkvm.Version.String(),
		ScalarField: snarkvm.ScalarField().Text(16),
		Constraints: make([]R1C, 0, capacity),
	}
}

// NbConstraints returns the number of constraints in the system.
func (s *System) NbConstraints() int {
	return len(s.Constraints)
}

func (s *System) scope(i int) string {
	if i < len(s.Scopes) && s.Scopes[i] != "" {
		return s.Scopes[i]
	}
	return "(unscoped)"
}

// Check re-evaluates every constraint sequentially and returns an error
// describing the first violated one, or nil.
func (s *System) Check() error {
	for i := range s.Constraints {
		if !s.Constraints[i].IsSatisfied(s.Witness) {
			return fmt.Errorf("unsatisfied constraint #%d in scope %s", i, s.scope(i))
		}
	}
	return nil
}

var errUnsatisfied = errors.New("unsatisfied constraint")

// IsSatisfied re-evaluates every constraint under the extracted witness,
// in parallel, short-circuiting on the first violated one.
func (s *System) IsSatisfied() bool {
	n := runtime.NumCPU()
	chunkSize := (len(s.Constraints) + n - 1) / n
	if chunkSize == 0 {
		return true
	}

	g, ctx := errgroup.WithContext(context.Background())
	for start := 0; start < len(s.Constraints); start += chunkSize {
		start := start
		end := min(start+chunkSize, len(s.Constraints))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				if !s.Constraints[i].IsSatisfied(s.Witness) {
					return errUnsatisfied
				}
			}
			return nil
		})
	}
	return g.Wait() == nil
}

// CheckUnconstrainedWires checks that every public and private witness entry
// appears with a non-zero coefficient in at least one constraint. Constant
// entries are exempt; they are part of the circuit description.
func (s *System) CheckUnconstrainedWires() error {
	nbInputs := s.NbPublic + s.NbPrivate
	if nbInputs == 0 {
		return errors.New("invalid constraint system: no input defined")
	}

	constrained := bitset.New(uint(nbInputs))
	offset := uint32(s.NbConstants)
	mark := func(l *LinearExpression) {
		for _, t := range l.Terms {
			if t.Column >= offset && !t.Coeff.IsZero() {
				constrained.Set(uint(t.Column - offset))
			}
		}
	}
	for i := range s.Constraints {
		mark(&s.Constraints[i].L)
		mark(&s.Constraints[i].R)
		mark(&s.Constraints[i].O)
		if constrained.Count() == uint(nbInputs) {
			return nil
		}
	}
	if constrained.Count() == uint(nbInputs) {
		return nil
	}

	// something is amiss, build the error string
	var sbb strings.Builder
	sbb.WriteString(strconv.Itoa(nbInputs - int(constrained.Count())))
	sbb.WriteString(" unconstrained input(s):")
	sbb.WriteByte('\n')
	for i, ok := constrained.NextClear(0); ok && int(i) < nbInputs; i, ok = constrained.NextClear(i + 1) {
		if int(i) < s.NbPublic {
			sbb.WriteString("p" + strconv.Itoa(int(i)))
		} else {
			sbb.WriteString("s" + strconv.Itoa(int(i)-s.NbPublic))
		}
		sbb.WriteByte('\n')
	}
	return errors.New(sbb.String())
}
