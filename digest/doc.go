// Package digest defines the pluggable digest capability used by seedselect.
//
// A digest is any deterministic function mapping a byte sequence to a
// fixed-length output. The selection core never hashes on its own; it only
// calls the Func it was given. This package adapts well-known hash
// implementations from the standard library and golang.org/x/crypto:
//
//	fn, err := digest.Provider(digest.SHA3_256)
//	sum, err := fn([]byte("peer-1"))
//
// Any hash.Hash constructor can be adapted with FromHash:
//
//	fn := digest.FromHash(sha256.New)
//
// The fairness and unpredictability of a selection depend entirely on the
// chosen algorithm. Use a cryptographic hash.
package digest
