package bls

import bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

// FastAggregateVerify checks aggSig against a single msg signed by every key
// in pks. The caller-supplied pks are first aggregated in G1; per
// spec.md §4.E an empty pks is rejected outright rather than treated as a
// vacuous pass, and any neutral pks[i] is rejected before aggregation hides
// it (AggregatePublicKeys would otherwise just sum the identity away).
func FastAggregateVerify(pks []PublicKey, msg []byte, aggSig Signature) Status {
	if len(pks) == 0 {
		return ZeroLengthAggregation
	}
	for _, pk := range pks {
		if pk.p.IsInfinity() {
			return PointAtInfinity
		}
	}
	aggPk, st := AggregatePublicKeys(pks)
	if st != Success {
		return st
	}
	return Verify(aggPk, msg, aggSig)
}

// AggregateVerify checks aggSig against len(pks) == len(msgs) (pk, msg)
// pairs, each of which may carry a distinct message, via a single
// multi-pairing check:
//
//	e(pk_0, H(msg_0)) * ... * e(pk_n, H(msg_n)) * e(-G1, aggSig) == 1
//
// Callers are responsible for rejecting duplicate messages signed by
// distinct keys out of band if that matters for their application (the
// classic rogue-message concern mirrors the rogue-key concern that
// proof-of-possession addresses, but is outside this ciphersuite's remit).
func AggregateVerify(pks []PublicKey, msgs [][]byte, aggSig Signature) Status {
	if len(pks) == 0 || len(msgs) == 0 {
		return ZeroLengthAggregation
	}
	if len(pks) != len(msgs) {
		return InconsistentLengthsOfInputs
	}
	for _, pk := range pks {
		if pk.p.IsInfinity() {
			return PointAtInfinity
		}
	}
	if aggSig.p.IsInfinity() {
		return PointAtInfinity
	}

	g1s := make([]bls12381.G1Affine, 0, len(pks)+1)
	g2s := make([]bls12381.G2Affine, 0, len(pks)+1)
	for i, pk := range pks {
		q, err := bls12381.HashToG2(msgs[i], dst)
		if err != nil {
			return InvalidEncoding
		}
		g1s = append(g1s, pk.p)
		g2s = append(g2s, q)
	}
	g1s = append(g1s, negG1Generator())
	g2s = append(g2s, aggSig.p)

	ok, err := bls12381.PairingCheck(g1s, g2s)
	if err != nil {
		return InvalidEncoding
	}
	if !ok {
		return VerificationFailure
	}
	return Success
}
