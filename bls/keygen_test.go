package bls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSecretKeyIsValid(t *testing.T) {
	sk, err := GenerateSecretKey()
	require.NoError(t, err)
	require.Equal(t, Success, ValidateSecretKey(sk))
}

func TestGenerateSecretKeyNotConstant(t *testing.T) {
	a, err := GenerateSecretKey()
	require.NoError(t, err)
	b, err := GenerateSecretKey()
	require.NoError(t, err)
	require.False(t, a.s.Equal(&b.s))
}
