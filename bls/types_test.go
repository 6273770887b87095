package bls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyIsZero(t *testing.T) {
	var pk PublicKey
	pk.p.SetInfinity()
	require.True(t, pk.IsZero())
	require.False(t, DerivePublicKey(skFromUint64(1)).IsZero())
}

func TestSignatureIsZero(t *testing.T) {
	var sig Signature
	sig.p.SetInfinity()
	require.True(t, sig.IsZero())

	real, st := Sign(skFromUint64(1), []byte("m"))
	require.Equal(t, Success, st)
	require.False(t, real.IsZero())
}

func TestPublicKeyEqual(t *testing.T) {
	a := DerivePublicKey(skFromUint64(77))
	b := DerivePublicKey(skFromUint64(77))
	c := DerivePublicKey(skFromUint64(78))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
