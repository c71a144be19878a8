package r1cs

import (
	"fmt"
	"io"
	"math/big"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	snarkvm "github.com/Zibelmann/snarkVM"
	"github.com/Zibelmann/snarkVM/logger"
)

// ToBytes serializes the system with a deterministic CBOR encoding.
func (s *System) ToBytes() ([]byte, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return enc.Marshal(s)
}

// FromBytes deserializes the system and validates its header.
func (s *System) FromBytes(data []byte) error {
	dm, err := cbor.DecOptions{
		MaxArrayElements: 268435456,
		MaxMapPairs:      268435456,
	}.DecMode()
	if err != nil {
		return err
	}
	if err := dm.Unmarshal(data, s); err != nil {
		return err
	}
	return s.CheckHeader()
}

// WriteTo implements io.WriterTo.
func (s *System) WriteTo(w io.Writer) (int64, error) {
	data, err := s.ToBytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadFrom implements io.ReaderFrom.
func (s *System) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), err
	}
	return int64(len(data)), s.FromBytes(data)
}

// CheckHeader parses the version and scalar-field headers
//
// This is meant to be used at the deserialization step, and will error for
// illegal values
func (s *System) CheckHeader() error {
	objectVersion, err := semver.Parse(s.Version)
	if err != nil {
		return fmt.Errorf("when parsing version: %w", err)
	}

	if snarkvm.Version.Compare(objectVersion) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", snarkvm.Version.String()).Str("object", objectVersion.String()).Msg("version (binary) mismatch with serialized system. there are no guarantees on compatibility")
	}

	scalarField := new(big.Int)
	if _, ok := scalarField.SetString(s.ScalarField, 16); !ok {
		return fmt.Errorf("when parsing serialized modulus: %s", s.ScalarField)
	}
	if scalarField.Cmp(snarkvm.ScalarField()) != 0 {
		return fmt.Errorf("unsupported scalar field %s", scalarField.Text(16))
	}
	return nil
}
