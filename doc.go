// Package snarkvm provides the arithmetic-circuit construction layer of a
// zero-knowledge proof stack: an environment to build rank-1 constraint
// systems (R1CS) over the BLS12-377 scalar field.
//
// The circuit package is the entry point: it allocates circuit variables,
// composes linear combinations and records multiplicative constraints while
// tracking a parallel native witness. The r1cs package holds the extracted,
// backend-facing form of a finished circuit.
package snarkvm

import (
	"math/big"

	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

var Version = semver.MustParse("0.1.0")

// ScalarField returns the modulus of the field the circuits are built over.
func ScalarField() *big.Int {
	return fr.Modulus()
}
