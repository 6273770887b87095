package ethsign

import (
	"testing"

	zrntcommon "github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/stretchr/testify/require"

	"github.com/kysee/bls12381-pop/bls"
)

func testSecretKey(v byte) bls.SecretKey {
	var arr [bls.SecretKeySize]byte
	arr[len(arr)-1] = v
	sk, st := bls.DeserializeSecretKey(arr)
	if st != bls.Success {
		panic(st)
	}
	return sk
}

func TestComputeDomainDeterministic(t *testing.T) {
	domainType := zrntcommon.BLSDomainType{0x07, 0x00, 0x00, 0x00}
	forkVersion := zrntcommon.Version{0x90, 0x00, 0x00, 0x75}
	var genesisValidatorsRoot zrntcommon.Root

	d1 := ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)
	d2 := ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)
	require.Equal(t, d1, d2)
	require.Equal(t, domainType[:], d1[:4])
}

func TestHeaderSigningRootAndSignVerify(t *testing.T) {
	domainType := zrntcommon.BLSDomainType{0x07, 0x00, 0x00, 0x00}
	forkVersion := zrntcommon.Version{0x90, 0x00, 0x00, 0x75}
	var genesisValidatorsRoot zrntcommon.Root
	domain := ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)

	header := &zrntcommon.BeaconBlockHeader{
		Slot:          1,
		ProposerIndex: 2,
	}

	sk := testSecretKey(99)
	pk := bls.DerivePublicKey(sk)

	sig, st := SignBeaconBlockHeader(sk, header, domain)
	require.Equal(t, bls.Success, st)
	require.Equal(t, bls.Success, VerifyBeaconBlockHeader(pk, header, domain, sig))
}

func TestHeaderSigningRootChangesWithHeader(t *testing.T) {
	domainType := zrntcommon.BLSDomainType{0x07, 0x00, 0x00, 0x00}
	forkVersion := zrntcommon.Version{0x90, 0x00, 0x00, 0x75}
	var genesisValidatorsRoot zrntcommon.Root
	domain := ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)

	headerA := &zrntcommon.BeaconBlockHeader{Slot: 1, ProposerIndex: 2}
	headerB := &zrntcommon.BeaconBlockHeader{Slot: 2, ProposerIndex: 2}

	rootA := HeaderSigningRoot(headerA, domain)
	rootB := HeaderSigningRoot(headerB, domain)
	require.NotEqual(t, rootA, rootB)
}
