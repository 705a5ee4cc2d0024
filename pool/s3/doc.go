// Package s3 provides an S3 implementation of the pool.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("pools/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	ids, err := pool.Load(ctx, store, "validators.txt.zst", pool.FormatHex)
//
// Objects are fetched with the S3 transfer manager, so large pools are
// downloaded in concurrent ranged parts.
package s3
