// Package seedselect provides deterministic, coordination-free selection of
// n items from a shared candidate pool using a common random seed.
//
// Every party holding the same seed, sequence number, context name,
// candidate list and digest function computes byte-identical output, without
// any network round-trip, leader or consensus protocol.
//
// # How it works
//
// A reference digest is derived from the seed, the sequence number and the
// context name:
//
//	reference = digest(seed || uint64_be(seq) || name)
//
// Each candidate identifier is digested as well, and its distance to the
// reference is the XOR of both digests read as an unsigned big-endian
// integer. The n candidates with the smallest distance are kept in a bounded
// max-heap (O(m log n) for m candidates) and returned ascending by
// (distance, id).
//
// # Quick Start
//
//	committee, err := seedselect.SelectN("committee", seed, epoch, 5, peers, digest.Sum256)
//
// With options and a richer result:
//
//	sel := seedselect.New(digest.Sum256,
//	    seedselect.WithParallelism(8),
//	    seedselect.WithLogger(seedselect.NewTextLogger(slog.LevelDebug)),
//	)
//	res, err := sel.Select(ctx, seedselect.Request{
//	    Name: "shard-7", Seed: seed, Seq: round, N: 16, Candidates: peers,
//	})
//	if res.Membership().Contains(uint32(myIndex)) {
//	    // this node was selected
//	}
//
// # Security
//
// A selection is exactly as unpredictable as its seed. Supply seeds from a
// secure entropy source (a randomness beacon, a threshold signature, ...)
// and use a cryptographic digest. Duplicate candidate identifiers are
// rejected, n is never clamped, and every failure is returned as a typed
// error; there are no partial results.
//
// # Candidate Pools
//
// Package pool decodes shared candidate lists (optionally zstd or lz4
// compressed) from the local filesystem, S3 (pool/s3) or MinIO (pool/minio).
package seedselect
