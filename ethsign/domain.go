package ethsign

import (
	zrntcommon "github.com/protolambda/zrnt/eth2/beacon/common"
	"github.com/protolambda/ztyp/tree"

	"github.com/kysee/bls12381-pop/bls"
)

// ComputeDomain computes the 32-byte BLS domain used to sign a beacon chain
// message: domainType || fork_data_root[:28], where fork_data_root hashes
// the fork version together with the genesis validators root. It delegates
// straight to zrnt's own ComputeDomain rather than re-deriving the SSZ
// hashing this repository does not otherwise implement.
func ComputeDomain(domainType zrntcommon.BLSDomainType, forkVersion zrntcommon.Version, genesisValidatorsRoot zrntcommon.Root) zrntcommon.BLSDomain {
	return zrntcommon.ComputeDomain(domainType, forkVersion, genesisValidatorsRoot)
}

// SigningRoot computes compute_signing_root(objectRoot, domain): the root
// actually signed by validators, binding a message root to the domain it
// was signed under.
func SigningRoot(objectRoot zrntcommon.Root, domain zrntcommon.BLSDomain) zrntcommon.Root {
	return zrntcommon.ComputeSigningRoot(objectRoot, domain)
}

// HeaderSigningRoot computes the signing root of a beacon block header
// under domain: compute_signing_root(hash_tree_root(header), domain).
func HeaderSigningRoot(header *zrntcommon.BeaconBlockHeader, domain zrntcommon.BLSDomain) zrntcommon.Root {
	objectRoot := header.HashTreeRoot(tree.GetHashFn())
	return SigningRoot(objectRoot, domain)
}

// SignBeaconBlockHeader signs header's signing root under domain with sk.
func SignBeaconBlockHeader(sk bls.SecretKey, header *zrntcommon.BeaconBlockHeader, domain zrntcommon.BLSDomain) (bls.Signature, bls.Status) {
	root := HeaderSigningRoot(header, domain)
	return bls.Sign(sk, root[:])
}

// VerifyBeaconBlockHeader verifies sig against header's signing root under
// domain and pk.
func VerifyBeaconBlockHeader(pk bls.PublicKey, header *zrntcommon.BeaconBlockHeader, domain zrntcommon.BLSDomain, sig bls.Signature) bls.Status {
	root := HeaderSigningRoot(header, domain)
	return bls.Verify(pk, root[:], sig)
}
