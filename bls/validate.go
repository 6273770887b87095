package bls

import "math/big"

// ValidateSecretKey checks that sk wraps a scalar 0 < s < r. Only the
// invalid branches are data-dependent; the success path does the same
// comparisons regardless of which invariant held.
func ValidateSecretKey(sk SecretKey) Status {
	var s big.Int
	sk.s.BigInt(&s)
	return validateSecretKeyScalar(&s)
}

func validateSecretKeyScalar(s *big.Int) Status {
	if s.Sign() == 0 {
		return ZeroSecretKey
	}
	if s.Cmp(curveOrder) >= 0 {
		return SecretKeyLargerThanCurveOrder
	}
	return Success
}

// ValidatePublicKey checks that pk is neither the point at infinity nor
// off-curve, and lies in the prime-order G1 subgroup.
func ValidatePublicKey(pk PublicKey) Status {
	if pk.p.IsInfinity() {
		return PointAtInfinity
	}
	if !pk.p.IsOnCurve() {
		return PointNotOnCurve
	}
	if !pk.p.IsInSubGroup() {
		return PointNotInSubgroup
	}
	return Success
}

// ValidateSignature checks that sig is neither the point at infinity nor
// off-curve, and lies in the prime-order G2 subgroup.
func ValidateSignature(sig Signature) Status {
	if sig.p.IsInfinity() {
		return PointAtInfinity
	}
	if !sig.p.IsOnCurve() {
		return PointNotOnCurve
	}
	if !sig.p.IsInSubGroup() {
		return PointNotInSubgroup
	}
	return Success
}
