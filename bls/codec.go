// Codec implements the compressed Zcash point encoding used by the PoP
// ciphersuite: fixed-width big-endian byte strings with three metadata bits
// packed into the most significant bits of byte 0 (compressed, infinity,
// sign-of-y). G1 and G2 share the bit layout but not the field, so the two
// paths are written out in full rather than behind a shared generic — see
// spec.md §9 ("Polymorphism over Fp/Fp2 ... duplication kept in sync by
// tests — avoid runtime virtual dispatch").
package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

const (
	compressedFlag = 0x80 // bit 7: C
	infinityFlag   = 0x40 // bit 6: I
	signFlag       = 0x20 // bit 5: S
	headerMask     = 0x1f // remaining 5 bits of byte 0 belong to the coordinate
)

// SecretKeySize, PublicKeySize and SignatureSize are the fixed wire widths
// of the three codec's compressed encodings.
const (
	SecretKeySize = 32
	PublicKeySize = 48
	SignatureSize = 96
)

// SerializeSecretKey writes sk's scalar as 32 big-endian bytes.
func SerializeSecretKey(sk SecretKey) [SecretKeySize]byte {
	var s big.Int
	sk.s.BigInt(&s)
	var out [SecretKeySize]byte
	s.FillBytes(out[:])
	return out
}

// DeserializeSecretKey parses 32 big-endian bytes and validates the result.
// On any failure the returned SecretKey is the zero value.
func DeserializeSecretKey(in [SecretKeySize]byte) (SecretKey, Status) {
	s := new(big.Int).SetBytes(in[:])
	if st := validateSecretKeyScalar(s); st != Success {
		return SecretKey{}, st
	}
	var sk SecretKey
	sk.s.SetBigInt(s)
	return sk, Success
}

// SerializePublicKeyCompressed encodes pk as a 48-byte compressed G1 point.
func SerializePublicKeyCompressed(pk PublicKey) [PublicKeySize]byte {
	var out [PublicKeySize]byte
	if pk.p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out
	}
	xBytes := pk.p.X.Bytes()
	out = xBytes
	out[0] |= compressedFlag
	if fpSignBit(pk.p.Y) {
		out[0] |= signFlag
	}
	return out
}

// DeserializePublicKeyCompressed parses a 48-byte compressed G1 point and,
// unless it decodes to the point at infinity or fails outright, verifies it
// lies in the prime-order subgroup.
func DeserializePublicKeyCompressed(in [PublicKeySize]byte) (PublicKey, Status) {
	pk, st := DeserializePublicKeyCompressedUnchecked(in)
	if st != Success {
		return pk, st
	}
	if !pk.p.IsInSubGroup() {
		return PublicKey{}, PointNotInSubgroup
	}
	return pk, Success
}

// DeserializePublicKeyCompressedUnchecked parses a 48-byte compressed G1
// point without a subgroup check, so that callers can amortise that check
// across a batch.
func DeserializePublicKeyCompressedUnchecked(in [PublicKeySize]byte) (PublicKey, Status) {
	b0 := in[0]
	if b0&compressedFlag == 0 {
		return PublicKey{}, InvalidEncoding
	}
	if b0&infinityFlag != 0 {
		if b0&^compressedFlag&^infinityFlag != 0 {
			return PublicKey{}, InvalidEncoding
		}
		for _, b := range in[1:] {
			if b != 0 {
				return PublicKey{}, InvalidEncoding
			}
		}
		var pk PublicKey
		pk.p.SetInfinity()
		return pk, PointAtInfinity
	}

	wantLargest := b0&signFlag != 0
	masked := in
	masked[0] &= headerMask
	t := new(big.Int).SetBytes(masked[:])
	if t.Cmp(fpModulus) >= 0 {
		return PublicKey{}, CoordinateGreaterOrEqualThanModulus
	}

	var x fp.Element
	x.SetBigInt(t)
	y, onCurve := trySetFromCoordXG1(x)
	if !onCurve {
		return PublicKey{}, PointNotOnCurve
	}
	if fpSignBit(y) != wantLargest {
		y.Neg(&y)
	}

	var pk PublicKey
	pk.p.X, pk.p.Y = x, y
	return pk, Success
}

// SerializeSignatureCompressed encodes sig as a 96-byte compressed G2 point.
// The Fp2 coordinate x = x.c1 || x.c0 packs the c1 limb (with the metadata
// bits) into the first 48 bytes and c0 into the second.
func SerializeSignatureCompressed(sig Signature) [SignatureSize]byte {
	var out [SignatureSize]byte
	if sig.p.IsInfinity() {
		out[0] = compressedFlag | infinityFlag
		return out
	}
	c1 := sig.p.X.A1.Bytes()
	c0 := sig.p.X.A0.Bytes()
	copy(out[0:PublicKeySize], c1[:])
	copy(out[PublicKeySize:SignatureSize], c0[:])
	out[0] |= compressedFlag
	if fp2SignBit(sig.p.Y) {
		out[0] |= signFlag
	}
	return out
}

// DeserializeSignatureCompressed parses a 96-byte compressed G2 point and,
// unless it decodes to the point at infinity or fails outright, verifies it
// lies in the prime-order subgroup.
func DeserializeSignatureCompressed(in [SignatureSize]byte) (Signature, Status) {
	sig, st := DeserializeSignatureCompressedUnchecked(in)
	if st != Success {
		return sig, st
	}
	if !sig.p.IsInSubGroup() {
		return Signature{}, PointNotInSubgroup
	}
	return sig, Success
}

// DeserializeSignatureCompressedUnchecked parses a 96-byte compressed G2
// point without a subgroup check.
func DeserializeSignatureCompressedUnchecked(in [SignatureSize]byte) (Signature, Status) {
	b0 := in[0]
	if b0&compressedFlag == 0 {
		return Signature{}, InvalidEncoding
	}
	if b0&infinityFlag != 0 {
		if b0&^compressedFlag&^infinityFlag != 0 {
			return Signature{}, InvalidEncoding
		}
		for _, b := range in[1:] {
			if b != 0 {
				return Signature{}, InvalidEncoding
			}
		}
		var sig Signature
		sig.p.SetInfinity()
		return sig, PointAtInfinity
	}

	wantLargest := b0&signFlag != 0

	var c1Buf [PublicKeySize]byte
	copy(c1Buf[:], in[0:PublicKeySize])
	c1Buf[0] &= headerMask
	t1 := new(big.Int).SetBytes(c1Buf[:])
	if t1.Cmp(fpModulus) >= 0 {
		return Signature{}, CoordinateGreaterOrEqualThanModulus
	}

	t0 := new(big.Int).SetBytes(in[PublicKeySize:SignatureSize])
	if t0.Cmp(fpModulus) >= 0 {
		return Signature{}, CoordinateGreaterOrEqualThanModulus
	}

	var x bls12381.E2
	x.A1.SetBigInt(t1)
	x.A0.SetBigInt(t0)

	y, onCurve := trySetFromCoordXG2(x)
	if !onCurve {
		return Signature{}, PointNotOnCurve
	}
	if fp2SignBit(y) != wantLargest {
		y.Neg(&y)
	}

	var sig Signature
	sig.p.X, sig.p.Y = x, y
	return sig, Success
}

// trySetFromCoordXG1 solves y^2 = x^3 + b1 over Fp.
func trySetFromCoordXG1(x fp.Element) (fp.Element, bool) {
	var x2, x3, rhs, y fp.Element
	x2.Square(&x)
	x3.Mul(&x2, &x)
	rhs.Add(&x3, &b1)
	if y.Sqrt(&rhs) == nil {
		return fp.Element{}, false
	}
	return y, true
}

// trySetFromCoordXG2 solves y^2 = x^3 + b2 over Fp2.
func trySetFromCoordXG2(x bls12381.E2) (bls12381.E2, bool) {
	var x2, x3, rhs, y bls12381.E2
	x2.Square(&x)
	x3.Mul(&x2, &x)
	rhs.Add(&x3, &b2)
	if y.Sqrt(&rhs) == nil {
		return bls12381.E2{}, false
	}
	return y, true
}

// fpSignBit reports whether y is the lexicographically largest root, i.e.
// y (as an integer) >= (p+1)/2.
func fpSignBit(y fp.Element) bool {
	var yb big.Int
	y.BigInt(&yb)
	return yb.Cmp(halfFpModulus) >= 0
}

// fp2SignBit applies the Fp2 sign rule from spec.md §4.B: examine c1 first;
// if it is zero, fall back to the Fp rule on c0.
func fp2SignBit(y bls12381.E2) bool {
	if y.A1.IsZero() {
		return fpSignBit(y.A0)
	}
	return fpSignBit(y.A1)
}
