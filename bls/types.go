package bls

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SecretKey wraps a scalar s in Fr. The zero value is the implementation's
// private "uninitialised" state and is rejected by ValidateSecretKey.
type SecretKey struct {
	s fr.Element
}

// PublicKey wraps an affine point in G1 subset of E(Fp).
type PublicKey struct {
	p bls12381.G1Affine
}

// Signature wraps an affine point in G2 subset of E'(Fp2).
type Signature struct {
	p bls12381.G2Affine
}

// IsZero reports whether pk is the point at infinity, the neutral element of
// G1. An infinity PublicKey is the neutral element of aggregation (though
// AggregatePublicKeys rejects an empty list rather than returning it); it
// must never be accepted as a signer's key.
func (pk PublicKey) IsZero() bool {
	return pk.p.IsInfinity()
}

// IsZero reports whether sig is the point at infinity, the neutral element
// of G2.
func (sig Signature) IsZero() bool {
	return sig.p.IsInfinity()
}

// Equal reports whether pk and other encode the same G1 point.
func (pk PublicKey) Equal(other PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// Equal reports whether sig and other encode the same G2 point.
func (sig Signature) Equal(other Signature) bool {
	return sig.p.Equal(&other.p)
}
