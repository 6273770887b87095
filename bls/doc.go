// Package bls implements the BLS signature scheme over BLS12-381 for the
// Ethereum consensus Proof-of-Possession ciphersuite
// BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_, as specified in
// draft-irtf-cfrg-bls-signature-05. Public keys live in G1, signatures in G2.
//
// The package does not implement finite-field, curve or pairing arithmetic
// itself; it builds validation, the compressed point codec, signing,
// verification and aggregation on top of github.com/consensys/gnark-crypto.
package bls
