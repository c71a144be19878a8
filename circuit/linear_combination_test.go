package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func lcTerm(m Mode, index uint32, coeff uint64) LinearCombination {
	var e fr.Element
	e.SetUint64(coeff)
	return NewTerm(Variable{Mode: m, Index: index}, e)
}

func TestCanonicalForm(t *testing.T) {
	assert := require.New(t)

	// repeated addition of the same variable merges into a single term
	l := lcTerm(Private, 0, 3)
	l = l.Add(lcTerm(Private, 0, 5))
	l = l.Add(lcTerm(Public, 2, 1))
	l = l.Add(lcTerm(Private, 0, 2))
	assert.Equal(2, l.NbTerms())

	var ten fr.Element
	ten.SetUint64(10)
	terms := l.Terms()
	assert.Equal(Variable{Mode: Public, Index: 2}, terms[0].Variable)
	assert.Equal(Variable{Mode: Private, Index: 0}, terms[1].Variable)
	assert.True(terms[1].Coeff.Equal(&ten))

	// cancelling coefficients prune the term entirely
	cancelled := l.Add(l.Neg())
	assert.True(cancelled.IsZero())
	assert.Equal(0, cancelled.NbTerms())

	// zero coefficients never enter
	assert.Equal(0, lcTerm(Private, 7, 0).NbTerms())
}

func TestLinearCombinationProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// a small witness the combinations below are evaluated against
	w := Witness{
		Constants: make([]fr.Element, 4),
		Publics:   make([]fr.Element, 4),
		Privates:  make([]fr.Element, 4),
	}
	for i := 0; i < 4; i++ {
		w.Constants[i].SetUint64(uint64(i + 1))
		w.Publics[i].SetUint64(uint64(10 * (i + 1)))
		w.Privates[i].SetUint64(uint64(100 * (i + 1)))
	}

	mkLC := func(c0, c1, c2, cst uint64) LinearCombination {
		l := lcTerm(Constant, 0, c0)
		l = l.Add(lcTerm(Public, 1, c1))
		l = l.Add(lcTerm(Private, 2, c2))
		var e fr.Element
		e.SetUint64(cst)
		return l.Add(NewConstant(e))
	}

	properties.Property("add is commutative", prop.ForAll(
		func(a0, a1, a2, ac, b0, b1, b2, bc uint64) bool {
			l, r := mkLC(a0, a1, a2, ac), mkLC(b0, b1, b2, bc)
			return l.Add(r).Equal(r.Add(l))
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("l + (-l) == 0", prop.ForAll(
		func(a0, a1, a2, ac uint64) bool {
			l := mkLC(a0, a1, a2, ac)
			return l.Add(l.Neg()).IsZero()
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("evaluation is additive", prop.ForAll(
		func(a0, a1, a2, ac, b0, b1, b2, bc uint64) bool {
			l, r := mkLC(a0, a1, a2, ac), mkLC(b0, b1, b2, bc)
			lv := l.Evaluate(&w)
			rv := r.Evaluate(&w)
			var want fr.Element
			want.Add(&lv, &rv)
			got := l.Add(r).Evaluate(&w)
			return got.Equal(&want)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("scaling distributes over evaluation", prop.ForAll(
		func(a0, a1, a2, ac, lambda uint64) bool {
			l := mkLC(a0, a1, a2, ac)
			var k fr.Element
			k.SetUint64(lambda)
			lv := l.Evaluate(&w)
			var want fr.Element
			want.Mul(&lv, &k)
			got := l.MulConstant(k).Evaluate(&w)
			return got.Equal(&want)
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.Property("canonical form has one term per variable", prop.ForAll(
		func(a0, a1, a2, ac uint64) bool {
			l := mkLC(a0, a1, a2, ac)
			doubled := l.Add(l)
			if doubled.NbTerms() > l.NbTerms() {
				return false
			}
			seen := make(map[Variable]struct{})
			for _, term := range doubled.Terms() {
				if term.Coeff.IsZero() {
					return false
				}
				if _, dup := seen[term.Variable]; dup {
					return false
				}
				seen[term.Variable] = struct{}{}
			}
			return true
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestHashCode(t *testing.T) {
	assert := require.New(t)
	l := lcTerm(Private, 0, 3).Add(lcTerm(Public, 1, 2))
	r := lcTerm(Public, 1, 2).Add(lcTerm(Private, 0, 3))
	assert.Equal(l.HashCode(), r.HashCode())
	assert.NotEqual(l.HashCode(), lcTerm(Private, 0, 4).HashCode())
}

func TestString(t *testing.T) {
	assert := require.New(t)
	assert.Equal("0", Zero().String())
	assert.Equal("1", One().String())
	l := lcTerm(Public, 0, 1).Add(lcTerm(Private, 3, 2)).Add(One())
	assert.Equal("p0 + 2⋅s3 + 1", l.String())
}
