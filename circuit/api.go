package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// ---------------------------------------------------------------------------
// Arithmetic
//
// Linear operations delegate to the pure LinearCombination algebra and never
// touch the constraint list. Non-linear operations fold when every operand is
// constant, scale when one side is constant, and only otherwise allocate a
// variable and emit a constraint.

// Add returns a + b + ...in.
func (c *Circuit) Add(a, b LinearCombination, in ...LinearCombination) LinearCombination {
	res := a.Add(b)
	for _, l := range in {
		res = res.Add(l)
	}
	return res
}

// Sub returns a - b - ...in.
func (c *Circuit) Sub(a, b LinearCombination, in ...LinearCombination) LinearCombination {
	res := a.Sub(b)
	for _, l := range in {
		res = res.Sub(l)
	}
	return res
}

// Neg returns -a.
func (c *Circuit) Neg(a LinearCombination) LinearCombination {
	return a.Neg()
}

// MulConstant returns lambda ⋅ a without emitting a constraint.
func (c *Circuit) MulConstant(a LinearCombination, lambda fr.Element) LinearCombination {
	return a.MulConstant(lambda)
}

// constantValue returns the compile-time value of l when its mode is
// Constant. Constant variables' witness values are fixed at creation, so a
// constant-mode combination is always evaluable, in both phases.
func (c *Circuit) constantValue(l LinearCombination) (fr.Element, bool) {
	if l.Mode() != Constant {
		var zero fr.Element
		return zero, false
	}
	return l.Evaluate(&c.witness), true
}

// Mul returns a ⋅ b.
//
// If both operands are constant the product is folded; if one is constant the
// other is scaled; otherwise the product variable is allocated at the
// combined mode and a ⋅ b == res is enforced.
func (c *Circuit) Mul(a, b LinearCombination) (LinearCombination, error) {
	ca, aConstant := c.constantValue(a)
	cb, bConstant := c.constantValue(b)

	if aConstant && bConstant {
		var p fr.Element
		p.Mul(&ca, &cb)
		return NewConstant(p), nil
	}
	if aConstant {
		return b.MulConstant(ca), nil
	}
	if bConstant {
		return a.MulConstant(cb), nil
	}

	va := a.Evaluate(&c.witness)
	vb := b.Evaluate(&c.witness)
	var p fr.Element
	p.Mul(&va, &vb)

	v, err := c.NewVariable(Combine(a.Mode(), b.Mode()), p)
	if err != nil {
		return LinearCombination{}, err
	}
	res := FromVariable(v)
	if err := c.Enforce(a, b, res); err != nil {
		return LinearCombination{}, err
	}
	return res, nil
}

// Inverse returns 1/a, enforcing a ⋅ res == 1.
func (c *Circuit) Inverse(a LinearCombination) (LinearCombination, error) {
	if ca, ok := c.constantValue(a); ok {
		if ca.IsZero() {
			return LinearCombination{}, fmt.Errorf("%w: inverse of the zero constant", ErrUnsatisfiedConstraint)
		}
		var inv fr.Element
		inv.Inverse(&ca)
		return NewConstant(inv), nil
	}

	va := a.Evaluate(&c.witness)
	var inv fr.Element
	// Inverse maps zero to zero; a zero witness then fails the product check
	// below in the Execution phase.
	inv.Inverse(&va)

	v, err := c.NewVariable(a.Mode(), inv)
	if err != nil {
		return LinearCombination{}, err
	}
	res := FromVariable(v)
	if err := c.Enforce(a, res, One()); err != nil {
		return LinearCombination{}, err
	}
	return res, nil
}

// Div returns a / b, enforcing b ⋅ res == a through Inverse and Mul.
func (c *Circuit) Div(a, b LinearCombination) (LinearCombination, error) {
	inv, err := c.Inverse(b)
	if err != nil {
		return LinearCombination{}, err
	}
	return c.Mul(a, inv)
}

// ---------------------------------------------------------------------------
// Boolean

// Select returns t if cond is 1, f if cond is 0. cond is constrained to be
// boolean.
func (c *Circuit) Select(cond, t, f LinearCombination) (LinearCombination, error) {
	if err := c.AssertIsBoolean(cond); err != nil {
		return LinearCombination{}, err
	}
	if cv, ok := c.constantValue(cond); ok {
		if cv.IsZero() {
			return f, nil
		}
		return t, nil
	}
	// res = f + cond ⋅ (t - f)
	d, err := c.Mul(cond, t.Sub(f))
	if err != nil {
		return LinearCombination{}, err
	}
	return f.Add(d), nil
}

// And returns a ∧ b. Both operands are constrained to be boolean.
func (c *Circuit) And(a, b LinearCombination) (LinearCombination, error) {
	if err := c.AssertIsBoolean(a); err != nil {
		return LinearCombination{}, err
	}
	if err := c.AssertIsBoolean(b); err != nil {
		return LinearCombination{}, err
	}
	return c.Mul(a, b)
}

// Or returns a ∨ b = a + b - a⋅b. Both operands are constrained to be
// boolean.
func (c *Circuit) Or(a, b LinearCombination) (LinearCombination, error) {
	ab, err := c.And(a, b)
	if err != nil {
		return LinearCombination{}, err
	}
	return a.Add(b).Sub(ab), nil
}

// Xor returns a ⊕ b = a + b - 2⋅a⋅b. Both operands are constrained to be
// boolean.
func (c *Circuit) Xor(a, b LinearCombination) (LinearCombination, error) {
	ab, err := c.And(a, b)
	if err != nil {
		return LinearCombination{}, err
	}
	var two fr.Element
	two.SetUint64(2)
	return a.Add(b).Sub(ab.MulConstant(two)), nil
}

// Not returns 1 - a. a is constrained to be boolean.
func (c *Circuit) Not(a LinearCombination) (LinearCombination, error) {
	if err := c.AssertIsBoolean(a); err != nil {
		return LinearCombination{}, err
	}
	return One().Sub(a), nil
}
