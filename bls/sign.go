package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// DerivePublicKey computes the public key sk*G1 for a validated secret key.
// Callers that have not already validated sk should call ValidateSecretKey
// first; DerivePublicKey does not repeat that check.
func DerivePublicKey(sk SecretKey) PublicKey {
	var s big.Int
	sk.s.BigInt(&s)
	var pk PublicKey
	gen := g1Generator()
	pk.p.ScalarMultiplication(&gen, &s)
	return pk
}

// Sign produces a signature over msg under sk: H(msg)^s where H hashes onto
// G2 with the ciphersuite's domain separation tag.
func Sign(sk SecretKey, msg []byte) (Signature, Status) {
	if st := ValidateSecretKey(sk); st != Success {
		return Signature{}, st
	}
	q, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return Signature{}, InvalidEncoding
	}
	var s big.Int
	sk.s.BigInt(&s)
	var sig Signature
	sig.p.ScalarMultiplication(&q, &s)
	return sig, Success
}

// Verify checks sig against msg under pk using the core single-signature
// verification equation e(pk, H(msg)) == e(G1, sig). pk and sig are assumed
// to already have passed ValidatePublicKey / ValidateSignature; Verify
// additionally rejects a neutral pk or sig, neither of which is ever a
// legitimate signer or signature per spec.md §4.C.
func Verify(pk PublicKey, msg []byte, sig Signature) Status {
	if pk.p.IsInfinity() {
		return PointAtInfinity
	}
	if sig.p.IsInfinity() {
		return PointAtInfinity
	}
	q, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return InvalidEncoding
	}
	neg := negG1Generator()
	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{pk.p, neg},
		[]bls12381.G2Affine{q, sig.p},
	)
	if err != nil {
		return InvalidEncoding
	}
	if !ok {
		return VerificationFailure
	}
	return Success
}
