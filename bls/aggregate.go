package bls

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// AggregatePublicKeys sums pks in G1. Per spec.md §4.D, aggregating zero
// keys is rejected rather than silently returning the identity.
func AggregatePublicKeys(pks []PublicKey) (PublicKey, Status) {
	if len(pks) == 0 {
		return PublicKey{}, ZeroLengthAggregation
	}
	var acc bls12381.G1Jac
	acc.FromAffine(&pks[0].p)
	for _, pk := range pks[1:] {
		var p bls12381.G1Jac
		p.FromAffine(&pk.p)
		acc.AddAssign(&p)
	}
	var out PublicKey
	out.p.FromJacobian(&acc)
	return out, Success
}

// AggregateSignatures sums sigs in G2. Per spec.md §4.D, aggregating zero
// signatures is rejected rather than silently returning the identity.
func AggregateSignatures(sigs []Signature) (Signature, Status) {
	if len(sigs) == 0 {
		return Signature{}, ZeroLengthAggregation
	}
	var acc bls12381.G2Jac
	acc.FromAffine(&sigs[0].p)
	for _, sig := range sigs[1:] {
		var p bls12381.G2Jac
		p.FromAffine(&sig.p)
		acc.AddAssign(&p)
	}
	var out Signature
	out.p.FromJacobian(&acc)
	return out, Success
}
