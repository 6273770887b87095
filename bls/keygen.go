package bls

import "fmt"

// GenerateSecretKey draws a uniformly random secret key from a secure
// source. This is plain CSPRNG key generation, not the deterministic
// EIP-2333 hierarchical derivation (out of scope per spec.md's Non-goals);
// it exists so callers — and cmd/blscli's keygen subcommand — have a way
// to produce a fresh key without reaching for that scheme.
func GenerateSecretKey() (SecretKey, error) {
	var sk SecretKey
	if _, err := sk.s.SetRandom(); err != nil {
		return SecretKey{}, fmt.Errorf("generating random scalar: %w", err)
	}
	return sk, nil
}
