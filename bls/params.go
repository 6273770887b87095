package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// dst is the ciphersuite's domain separation tag. The augmentation string is
// empty: this is the PoP variant, where callers are assumed to enforce
// proof-of-possession out of band (spec.md §9, §4.C).
var dst = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")

// curveOrder is r, the order of the G1/G2 prime-order subgroups and the
// modulus of the scalar field Fr.
var curveOrder, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// b1 is the G1 short-Weierstrass curve coefficient: y^2 = x^3 + b1.
var b1 = newFpFromUint64(4)

// b2 is the G2 twist curve coefficient: y^2 = x^3 + b2, with b2 = 4(1+u) in
// Fp2 = Fp[u]/(u^2+1).
var b2 = bls12381.E2{A0: newFpFromUint64(4), A1: newFpFromUint64(4)}

// fpModulus is p, the base field modulus.
var fpModulus = fp.Modulus()

// halfFpModulus is (p+1)/2: the sign-of-y threshold from spec.md §4.B.
var halfFpModulus = new(big.Int).Rsh(new(big.Int).Add(fpModulus, big.NewInt(1)), 1)

func newFpFromUint64(v uint64) fp.Element {
	var e fp.Element
	e.SetUint64(v)
	return e
}

func g1Generator() bls12381.G1Affine {
	_, _, g1, _ := bls12381.Generators()
	return g1
}

func g2Generator() bls12381.G2Affine {
	_, _, _, g2 := bls12381.Generators()
	return g2
}

func negG1Generator() bls12381.G1Affine {
	g := g1Generator()
	var neg bls12381.G1Affine
	neg.Neg(&g)
	return neg
}
