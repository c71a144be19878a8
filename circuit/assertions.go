package circuit

import (
	"fmt"
)

// AssertIsEqual enforces l == r, encoded as (l - r) ⋅ 1 == 0. When both sides
// are constant the equality is checked directly and no constraint is emitted.
func (c *Circuit) AssertIsEqual(l, r LinearCombination) error {
	d := l.Sub(r)
	if dv, ok := c.constantValue(d); ok {
		if !dv.IsZero() {
			return fmt.Errorf("%w: non-equal constants %s != %s", ErrUnsatisfiedConstraint, l.String(), r.String())
		}
		return nil
	}
	return c.Enforce(d, One(), Zero())
}

// AssertIsDifferent enforces l != r by proving l - r has an inverse.
func (c *Circuit) AssertIsDifferent(l, r LinearCombination) error {
	d := l.Sub(r)
	if dv, ok := c.constantValue(d); ok {
		if dv.IsZero() {
			return fmt.Errorf("%w: AssertIsDifferent(x, x) will never be satisfied", ErrUnsatisfiedConstraint)
		}
		return nil
	}
	_, err := c.Inverse(d)
	return err
}

// AssertIsBoolean enforces v ⋅ (1 - v) == 0, unless v was already constrained
// to be boolean in this circuit.
func (c *Circuit) AssertIsBoolean(v LinearCombination) error {
	if b, ok := c.constantValue(v); ok {
		if !(b.IsZero() || b.IsOne()) {
			return fmt.Errorf("%w: constant %s is not a boolean", ErrModeViolation, b.String())
		}
		return nil
	}

	if c.IsBoolean(v) {
		return nil // combination is already constrained
	}
	c.MarkBoolean(v)

	return c.Enforce(v, One().Sub(v), Zero())
}

// MarkBoolean sets (but does not constrain!) v to be boolean. This is useful
// when a combination is known to be boolean through a constraint that is not
// AssertIsBoolean.
func (c *Circuit) MarkBoolean(v LinearCombination) {
	key := v.HashCode()
	c.mtBooleans[key] = append(c.mtBooleans[key], v)
}

// IsBoolean returns true if v was previously marked as boolean. Use with
// care; the combination may not have been constrained to be boolean.
func (c *Circuit) IsBoolean(v LinearCombination) bool {
	for _, o := range c.mtBooleans[v.HashCode()] {
		if o.Equal(v) {
			return true
		}
	}
	return false
}
