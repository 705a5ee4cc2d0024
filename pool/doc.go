// Package pool reads and writes shared candidate pools.
//
// A pool is a text file with one candidate identifier per line. Blank lines
// and lines starting with '#' are ignored, CRLF line endings are accepted and
// surrounding whitespace is trimmed. Identifiers are either used as raw line
// bytes (FormatLines) or hex-decoded (FormatHex).
//
// Pools may be compressed with zstd or lz4 (frame format); compression is
// detected from the magic bytes, so readers never need to be told.
//
// # Stores
//
// Store abstracts where pools live:
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (package pool/s3)
//   - minio.Store: MinIO and S3-compatible storage (package pool/minio)
//
// Loading a pool never deduplicates or reorders it. Duplicates are reported
// by the selection itself.
//
//	ids, err := pool.Load(ctx, pool.NewLocalStore("/etc/peers"), "validators.txt.zst", pool.FormatHex)
package pool
