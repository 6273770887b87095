package bls

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyJSONRoundTrip(t *testing.T) {
	pk := DerivePublicKey(skFromUint64(55))
	b, err := json.Marshal(pk)
	require.NoError(t, err)
	require.Contains(t, string(b), "\"0x")

	var got PublicKey
	require.NoError(t, json.Unmarshal(b, &got))
	require.True(t, pk.Equal(got))
}

func TestPublicKeyJSONAcceptsBase64(t *testing.T) {
	pk := DerivePublicKey(skFromUint64(56))
	enc := SerializePublicKeyCompressed(pk)
	b64 := `"` + base64.StdEncoding.EncodeToString(enc[:]) + `"`

	var got PublicKey
	require.NoError(t, json.Unmarshal([]byte(b64), &got))
	require.True(t, pk.Equal(got))
}

func TestSignatureJSONRoundTrip(t *testing.T) {
	sig, st := Sign(skFromUint64(57), []byte("json"))
	require.Equal(t, Success, st)

	b, err := json.Marshal(sig)
	require.NoError(t, err)

	var got Signature
	require.NoError(t, json.Unmarshal(b, &got))
	require.True(t, sig.Equal(got))
}

func TestPublicKeyJSONRejectsWrongLength(t *testing.T) {
	var got PublicKey
	err := json.Unmarshal([]byte(`"0xdead"`), &got)
	require.Error(t, err)
}
