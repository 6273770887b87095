// Command blscli is a thin command-line harness over the bls package: it
// decodes 0x-prefixed hex arguments, calls straight into the ciphersuite's
// exported operations, and prints 0x-prefixed hex results. It exists for
// manual exercise and scripting, not as a production signer.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"

	"github.com/kysee/bls12381-pop/bls"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	cfg := NewConfig(os.Args[2:]...)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	args := positionalArgs(os.Args[2:])

	if err := run(cmd, args, logger); err != nil {
		logger.Error().Err(err).Str("cmd", cmd).Msg("command failed")
		os.Exit(1)
	}
}

// positionalArgs strips --flag value pairs recognised by Config, leaving
// the hex arguments a subcommand operates on.
func positionalArgs(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--log-level":
			i++
		default:
			out = append(out, args[i])
		}
	}
	return out
}

func run(cmd string, args []string, logger zerolog.Logger) error {
	switch cmd {
	case "keygen":
		return cmdKeygen(args, logger)
	case "derive-pubkey":
		return cmdDerivePubkey(args, logger)
	case "sign":
		return cmdSign(args, logger)
	case "verify":
		return cmdVerify(args, logger)
	case "aggregate-pubkeys":
		return cmdAggregatePubkeys(args, logger)
	case "aggregate-signatures":
		return cmdAggregateSignatures(args, logger)
	case "fast-aggregate-verify":
		return cmdFastAggregateVerify(args, logger)
	case "aggregate-verify":
		return cmdAggregateVerify(args, logger)
	case "batch-verify":
		return cmdBatchVerify(args, logger)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: blscli <command> [--log-level LEVEL] ARGS...

commands:
  keygen
  derive-pubkey    SK
  sign             SK MSG
  verify           PK MSG SIG
  aggregate-pubkeys       PK...
  aggregate-signatures    SIG...
  fast-aggregate-verify   MSG SIG PK...
  aggregate-verify        SIG PK1 MSG1 [PK2 MSG2 ...]
  batch-verify            RANDOMNESS PK1 MSG1 SIG1 [PK2 MSG2 SIG2 ...]

all key/point/message/randomness arguments are 0x-prefixed hex.`)
}

func cmdKeygen(args []string, logger zerolog.Logger) error {
	if len(args) != 0 {
		return fmt.Errorf("keygen: expected no arguments, got %d", len(args))
	}
	sk, err := bls.GenerateSecretKey()
	if err != nil {
		return err
	}
	enc := bls.SerializeSecretKey(sk)
	logger.Debug().Msg("generated secret key")
	fmt.Println(hexutil.Encode(enc[:]))
	return nil
}

func cmdDerivePubkey(args []string, logger zerolog.Logger) error {
	if len(args) != 1 {
		return fmt.Errorf("derive-pubkey: expected 1 argument, got %d", len(args))
	}
	sk, err := decodeSecretKey(args[0])
	if err != nil {
		return err
	}
	pk := bls.DerivePublicKey(sk)
	enc := bls.SerializePublicKeyCompressed(pk)
	logger.Debug().Msg("derived public key")
	fmt.Println(hexutil.Encode(enc[:]))
	return nil
}

func cmdSign(args []string, logger zerolog.Logger) error {
	if len(args) != 2 {
		return fmt.Errorf("sign: expected 2 arguments, got %d", len(args))
	}
	sk, err := decodeSecretKey(args[0])
	if err != nil {
		return err
	}
	msg, err := hexutil.Decode(args[1])
	if err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}
	sig, st := bls.Sign(sk, msg)
	if st != bls.Success {
		return st.AsError()
	}
	enc := bls.SerializeSignatureCompressed(sig)
	logger.Debug().Int("msg_len", len(msg)).Msg("signed message")
	fmt.Println(hexutil.Encode(enc[:]))
	return nil
}

func cmdVerify(args []string, logger zerolog.Logger) error {
	if len(args) != 3 {
		return fmt.Errorf("verify: expected 3 arguments, got %d", len(args))
	}
	pk, err := decodePublicKey(args[0])
	if err != nil {
		return err
	}
	msg, err := hexutil.Decode(args[1])
	if err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}
	sig, err := decodeSignature(args[2])
	if err != nil {
		return err
	}
	st := bls.Verify(pk, msg, sig)
	logger.Debug().Str("status", st.String()).Msg("verified")
	fmt.Println(st == bls.Success)
	if st != bls.Success {
		return st.AsError()
	}
	return nil
}

func cmdAggregatePubkeys(args []string, logger zerolog.Logger) error {
	if len(args) == 0 {
		return bls.ZeroLengthAggregation.AsError()
	}
	pks := make([]bls.PublicKey, len(args))
	for i, a := range args {
		pk, err := decodePublicKey(a)
		if err != nil {
			return err
		}
		pks[i] = pk
	}
	agg, st := bls.AggregatePublicKeys(pks)
	if st != bls.Success {
		return st.AsError()
	}
	enc := bls.SerializePublicKeyCompressed(agg)
	logger.Debug().Int("count", len(pks)).Msg("aggregated public keys")
	fmt.Println(hexutil.Encode(enc[:]))
	return nil
}

func cmdAggregateSignatures(args []string, logger zerolog.Logger) error {
	if len(args) == 0 {
		return bls.ZeroLengthAggregation.AsError()
	}
	sigs := make([]bls.Signature, len(args))
	for i, a := range args {
		sig, err := decodeSignature(a)
		if err != nil {
			return err
		}
		sigs[i] = sig
	}
	agg, st := bls.AggregateSignatures(sigs)
	if st != bls.Success {
		return st.AsError()
	}
	enc := bls.SerializeSignatureCompressed(agg)
	logger.Debug().Int("count", len(sigs)).Msg("aggregated signatures")
	fmt.Println(hexutil.Encode(enc[:]))
	return nil
}

func cmdFastAggregateVerify(args []string, logger zerolog.Logger) error {
	if len(args) < 3 {
		return fmt.Errorf("fast-aggregate-verify: expected at least 3 arguments, got %d", len(args))
	}
	msg, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding message: %w", err)
	}
	sig, err := decodeSignature(args[1])
	if err != nil {
		return err
	}
	pks := make([]bls.PublicKey, len(args)-2)
	for i, a := range args[2:] {
		pk, err := decodePublicKey(a)
		if err != nil {
			return err
		}
		pks[i] = pk
	}
	st := bls.FastAggregateVerify(pks, msg, sig)
	logger.Debug().Str("status", st.String()).Int("signers", len(pks)).Msg("fast-aggregate-verified")
	fmt.Println(st == bls.Success)
	if st != bls.Success {
		return st.AsError()
	}
	return nil
}

func cmdAggregateVerify(args []string, logger zerolog.Logger) error {
	if len(args) < 3 || (len(args)-1)%2 != 0 {
		return fmt.Errorf("aggregate-verify: expected SIG then PK/MSG pairs")
	}
	sig, err := decodeSignature(args[0])
	if err != nil {
		return err
	}
	rest := args[1:]
	n := len(rest) / 2
	pks := make([]bls.PublicKey, n)
	msgs := make([][]byte, n)
	for i := 0; i < n; i++ {
		pk, err := decodePublicKey(rest[2*i])
		if err != nil {
			return err
		}
		msg, err := hexutil.Decode(rest[2*i+1])
		if err != nil {
			return fmt.Errorf("decoding message %d: %w", i, err)
		}
		pks[i] = pk
		msgs[i] = msg
	}
	st := bls.AggregateVerify(pks, msgs, sig)
	logger.Debug().Str("status", st.String()).Int("signers", n).Msg("aggregate-verified")
	fmt.Println(st == bls.Success)
	if st != bls.Success {
		return st.AsError()
	}
	return nil
}

func cmdBatchVerify(args []string, logger zerolog.Logger) error {
	if len(args) < 4 || (len(args)-1)%3 != 0 {
		return fmt.Errorf("batch-verify: expected RANDOMNESS then PK/MSG/SIG triples")
	}
	randBytes, err := hexutil.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decoding randomness: %w", err)
	}
	if len(randBytes) != 32 {
		return fmt.Errorf("randomness must be 32 bytes, got %d", len(randBytes))
	}
	var randomness [32]byte
	copy(randomness[:], randBytes)

	rest := args[1:]
	n := len(rest) / 3
	pks := make([]bls.PublicKey, n)
	msgs := make([][]byte, n)
	sigs := make([]bls.Signature, n)
	for i := 0; i < n; i++ {
		pk, err := decodePublicKey(rest[3*i])
		if err != nil {
			return err
		}
		msg, err := hexutil.Decode(rest[3*i+1])
		if err != nil {
			return fmt.Errorf("decoding message %d: %w", i, err)
		}
		sig, err := decodeSignature(rest[3*i+2])
		if err != nil {
			return err
		}
		pks[i] = pk
		msgs[i] = msg
		sigs[i] = sig
	}

	st := bls.BatchVerify(pks, msgs, sigs, randomness)
	logger.Debug().Str("status", st.String()).Int("triples", n).Msg("batch-verified")
	fmt.Println(st == bls.Success)
	if st != bls.Success {
		return st.AsError()
	}
	return nil
}

func decodeSecretKey(hex string) (bls.SecretKey, error) {
	b, err := hexutil.Decode(hex)
	if err != nil {
		return bls.SecretKey{}, fmt.Errorf("decoding secret key: %w", err)
	}
	if len(b) != bls.SecretKeySize {
		return bls.SecretKey{}, fmt.Errorf("secret key must be %d bytes, got %d", bls.SecretKeySize, len(b))
	}
	var arr [bls.SecretKeySize]byte
	copy(arr[:], b)
	sk, st := bls.DeserializeSecretKey(arr)
	if st != bls.Success {
		return bls.SecretKey{}, st.AsError()
	}
	return sk, nil
}

func decodePublicKey(hex string) (bls.PublicKey, error) {
	b, err := hexutil.Decode(hex)
	if err != nil {
		return bls.PublicKey{}, fmt.Errorf("decoding public key: %w", err)
	}
	if len(b) != bls.PublicKeySize {
		return bls.PublicKey{}, fmt.Errorf("public key must be %d bytes, got %d", bls.PublicKeySize, len(b))
	}
	var arr [bls.PublicKeySize]byte
	copy(arr[:], b)
	pk, st := bls.DeserializePublicKeyCompressed(arr)
	if st != bls.Success {
		return bls.PublicKey{}, st.AsError()
	}
	return pk, nil
}

func decodeSignature(hex string) (bls.Signature, error) {
	b, err := hexutil.Decode(hex)
	if err != nil {
		return bls.Signature{}, fmt.Errorf("decoding signature: %w", err)
	}
	if len(b) != bls.SignatureSize {
		return bls.Signature{}, fmt.Errorf("signature must be %d bytes, got %d", bls.SignatureSize, len(b))
	}
	var arr [bls.SignatureSize]byte
	copy(arr[:], b)
	sig, st := bls.DeserializeSignatureCompressed(arr)
	if st != bls.Success {
		return bls.Signature{}, st.AsError()
	}
	return sig, nil
}
