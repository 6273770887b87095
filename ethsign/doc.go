// Package ethsign wires the bls package into Ethereum consensus signing:
// computing a BLSDomain from a DomainType/ForkVersion/GenesisValidatorsRoot
// triple, deriving the SSZ signing root of a beacon block header, and
// signing/verifying that root. This mirrors the Ethereum consensus
// specification's compute_domain / compute_signing_root, built on
// github.com/protolambda/zrnt and github.com/protolambda/ztyp rather than
// reimplementing SSZ hashing here.
package ethsign
