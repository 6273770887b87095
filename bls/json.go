package bls

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// MarshalJSON encodes pk as a "0x"-prefixed hex string of its compressed
// encoding.
func (pk PublicKey) MarshalJSON() ([]byte, error) {
	enc := SerializePublicKeyCompressed(pk)
	return quoteHex(enc[:]), nil
}

// UnmarshalJSON decodes pk from either a "0x"-prefixed hex string or a
// base64 string, accepting whichever encoding the caller's JSON used, then
// runs the same subgroup-checked decode as DeserializePublicKeyCompressed.
func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	b, err := unquoteHexOrBase64(data)
	if err != nil {
		return err
	}
	if len(b) != PublicKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(b))
	}
	var arr [PublicKeySize]byte
	copy(arr[:], b)
	got, st := DeserializePublicKeyCompressed(arr)
	if st != Success {
		return st.AsError()
	}
	*pk = got
	return nil
}

// MarshalJSON encodes sig as a "0x"-prefixed hex string of its compressed
// encoding.
func (sig Signature) MarshalJSON() ([]byte, error) {
	enc := SerializeSignatureCompressed(sig)
	return quoteHex(enc[:]), nil
}

// UnmarshalJSON decodes sig from either a "0x"-prefixed hex string or a
// base64 string.
func (sig *Signature) UnmarshalJSON(data []byte) error {
	b, err := unquoteHexOrBase64(data)
	if err != nil {
		return err
	}
	if len(b) != SignatureSize {
		return fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(b))
	}
	var arr [SignatureSize]byte
	copy(arr[:], b)
	got, st := DeserializeSignatureCompressed(arr)
	if st != Success {
		return st.AsError()
	}
	*sig = got
	return nil
}

func quoteHex(b []byte) []byte {
	s := "0x" + hex.EncodeToString(b)
	out := make([]byte, len(s)+2)
	out[0] = '"'
	copy(out[1:], s)
	out[len(out)-1] = '"'
	return out
}

func unquoteHexOrBase64(data []byte) ([]byte, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return nil, fmt.Errorf("invalid quoted string: %s", data)
	}
	val := string(data[1 : len(data)-1])
	if isHexString(val) {
		return hex.DecodeString(strings.TrimPrefix(val, "0x"))
	}
	return base64.StdEncoding.DecodeString(val)
}

func isHexString(s string) bool {
	v := strings.TrimPrefix(s, "0x")
	if len(v)%2 != 0 {
		return false
	}
	for _, b := range []byte(v) {
		if !(b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F') {
			return false
		}
	}
	return true
}
