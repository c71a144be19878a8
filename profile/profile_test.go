package profile_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/Zibelmann/snarkVM/circuit"
	"github.com/Zibelmann/snarkVM/profile"
)

func TestProfile(t *testing.T) {
	assert := require.New(t)

	p := profile.Start(profile.WithNoOutput())

	c := circuit.New(circuit.Execution)
	alloc := func(v uint64) circuit.LinearCombination {
		var e fr.Element
		e.SetUint64(v)
		vr, err := c.NewVariable(circuit.Private, e)
		assert.NoError(err)
		return circuit.FromVariable(vr)
	}

	x := alloc(3)
	y := alloc(4)
	assert.NoError(c.Scoped("mul", func() error {
		_, err := c.Mul(x, y)
		return err
	}))

	p.Stop()
	assert.Equal(1, p.NbConstraints())

	// sessions do not observe constraints emitted after Stop
	_, err := c.Mul(x, y)
	assert.NoError(err)
	assert.Equal(1, p.NbConstraints())
}

func TestOverlappingSessions(t *testing.T) {
	assert := require.New(t)

	p1 := profile.Start(profile.WithNoOutput())

	c := circuit.New(circuit.Execution)
	var one fr.Element
	one.SetOne()
	v, err := c.NewVariable(circuit.Private, one)
	assert.NoError(err)
	lv := circuit.FromVariable(v)

	assert.NoError(c.Enforce(lv, lv, lv))

	p2 := profile.Start(profile.WithNoOutput())
	assert.NoError(c.Enforce(lv, lv, lv))

	p1.Stop()
	p2.Stop()
	assert.Equal(2, p1.NbConstraints())
	assert.Equal(1, p2.NbConstraints())
}
