package main

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kysee/bls12381-pop/bls"
)

func silentLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestRunKeygenAndDerivePubkey(t *testing.T) {
	require.NoError(t, run("keygen", nil, silentLogger()))

	sk, err := bls.GenerateSecretKey()
	require.NoError(t, err)
	skEnc := bls.SerializeSecretKey(sk)
	require.NoError(t, run("derive-pubkey", []string{hexutil.Encode(skEnc[:])}, silentLogger()))
}

func TestRunSignVerifyRoundTrip(t *testing.T) {
	sk, err := bls.GenerateSecretKey()
	require.NoError(t, err)
	skEnc := bls.SerializeSecretKey(sk)
	skHex := hexutil.Encode(skEnc[:])

	pk := bls.DerivePublicKey(sk)
	pkEnc := bls.SerializePublicKeyCompressed(pk)
	pkHex := hexutil.Encode(pkEnc[:])

	msgHex := hexutil.Encode([]byte("cli round trip"))

	logger := silentLogger()
	require.NoError(t, run("sign", []string{skHex, msgHex}, logger))
	require.NoError(t, run("verify", []string{pkHex, msgHex, mustSignHex(t, sk, []byte("cli round trip"))}, logger))
}

func TestRunBatchVerifyRejectsWrongArgCount(t *testing.T) {
	err := run("batch-verify", []string{"0x00"}, silentLogger())
	require.Error(t, err)
}

func TestRunUnknownCommand(t *testing.T) {
	err := run("not-a-command", nil, silentLogger())
	require.Error(t, err)
}

func mustSignHex(t *testing.T, sk bls.SecretKey, msg []byte) string {
	t.Helper()
	sig, st := bls.Sign(sk, msg)
	require.Equal(t, bls.Success, st)
	enc := bls.SerializeSignatureCompressed(sig)
	return hexutil.Encode(enc[:])
}
