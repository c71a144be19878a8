package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func evalUint64(t *testing.T, c *Circuit, l LinearCombination, want uint64) {
	t.Helper()
	var w fr.Element
	w.SetUint64(want)
	got := c.Eval(l)
	require.True(t, got.Equal(&w), "got %s, want %d", got.String(), want)
}

func TestBooleanTruthTables(t *testing.T) {
	for _, a := range []uint64{0, 1} {
		for _, b := range []uint64{0, 1} {
			c := New(Execution)
			x := allocLC(t, c, Private, a)
			y := allocLC(t, c, Private, b)

			and, err := c.And(x, y)
			require.NoError(t, err)
			evalUint64(t, c, and, a&b)

			or, err := c.Or(x, y)
			require.NoError(t, err)
			evalUint64(t, c, or, a|b)

			xor, err := c.Xor(x, y)
			require.NoError(t, err)
			evalUint64(t, c, xor, a^b)

			not, err := c.Not(x)
			require.NoError(t, err)
			evalUint64(t, c, not, 1-a)

			require.True(t, c.IsSatisfied())
		}
	}
}

func TestSelect(t *testing.T) {
	assert := require.New(t)
	c := New(Execution)
	cond := allocLC(t, c, Private, 1)
	x := allocLC(t, c, Private, 10)
	y := allocLC(t, c, Private, 20)

	res, err := c.Select(cond, x, y)
	assert.NoError(err)
	evalUint64(t, c, res, 10)
	assert.True(c.IsSatisfied())

	// constant selector folds: no extra constraint beyond the ones above
	nbConstraints := c.NumConstraints()
	res, err = c.Select(Zero(), x, y)
	assert.NoError(err)
	evalUint64(t, c, res, 20)
	res, err = c.Select(One(), x, y)
	assert.NoError(err)
	evalUint64(t, c, res, 10)
	assert.Equal(nbConstraints, c.NumConstraints())

	// non-boolean constant selector is a mode violation
	two := NewConstant(fr.NewElement(2))
	_, err = c.Select(two, x, y)
	assert.ErrorIs(err, ErrModeViolation)
}

func TestInverseAndDiv(t *testing.T) {
	assert := require.New(t)
	c := New(Execution)
	x := allocLC(t, c, Private, 5)

	inv, err := c.Inverse(x)
	assert.NoError(err)
	prod, err := c.Mul(x, inv)
	assert.NoError(err)
	evalUint64(t, c, prod, 1)

	a := allocLC(t, c, Private, 12)
	b := allocLC(t, c, Private, 4)
	q, err := c.Div(a, b)
	assert.NoError(err)
	evalUint64(t, c, q, 3)
	assert.True(c.IsSatisfied())

	// inverting a zero witness fails at the product constraint
	z := allocLC(t, c, Private, 0)
	_, err = c.Inverse(z)
	assert.ErrorIs(err, ErrUnsatisfiedConstraint)

	// inverting the zero constant is caught before any allocation
	_, err = c.Inverse(Zero())
	assert.ErrorIs(err, ErrUnsatisfiedConstraint)
}

func TestAssertIsBooleanDedup(t *testing.T) {
	assert := require.New(t)
	c := New(Execution)
	b := allocLC(t, c, Private, 1)

	assert.NoError(c.AssertIsBoolean(b))
	nbConstraints := c.NumConstraints()

	// the same combination is not constrained twice
	assert.NoError(c.AssertIsBoolean(b))
	assert.Equal(nbConstraints, c.NumConstraints())

	// a marked combination is not constrained at all
	m := allocLC(t, c, Private, 0)
	c.MarkBoolean(m)
	assert.NoError(c.AssertIsBoolean(m))
	assert.Equal(nbConstraints, c.NumConstraints())

	// a non-boolean witness fails the v ⋅ (1-v) == 0 constraint
	bad := allocLC(t, c, Private, 2)
	assert.ErrorIs(c.AssertIsBoolean(bad), ErrUnsatisfiedConstraint)
}

func TestAssertions(t *testing.T) {
	assert := require.New(t)
	c := New(Execution)
	x := allocLC(t, c, Private, 3)
	y := allocLC(t, c, Private, 3)
	z := allocLC(t, c, Private, 4)

	assert.NoError(c.AssertIsEqual(x, y))
	assert.ErrorIs(c.AssertIsEqual(x, z), ErrUnsatisfiedConstraint)

	assert.NoError(c.AssertIsDifferent(x, z))
	assert.ErrorIs(c.AssertIsDifferent(x, x), ErrUnsatisfiedConstraint)

	// constant comparisons fold and never emit a constraint
	c2 := New(Execution)
	assert.NoError(c2.AssertIsEqual(One(), One()))
	assert.NoError(c2.AssertIsDifferent(One(), Zero()))
	assert.ErrorIs(c2.AssertIsEqual(One(), Zero()), ErrUnsatisfiedConstraint)
	assert.Equal(0, c2.NumConstraints())
}

// Sub of a combination with itself reduces to zero and satisfies x - x == 0
// without allocating anything.
func TestSubSameNoAllocation(t *testing.T) {
	assert := require.New(t)
	c := New(Execution)
	x := allocLC(t, c, Private, 7)

	nbPrivate := c.NumPrivate()
	r := c.Sub(x, x)
	assert.True(r.IsZero())
	assert.NoError(c.AssertIsEqual(r, Zero()))
	assert.Equal(nbPrivate, c.NumPrivate())
	assert.True(c.IsSatisfied())
}
