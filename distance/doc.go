// Package distance provides the XOR metric over equal-length digests.
//
// The distance between two digests is their byte-wise XOR, read as an
// unsigned big-endian integer. It is symmetric, zero iff both digests are
// equal, and spreads candidates uniformly around any reference digest.
//
// # Usage
//
//	d, err := distance.XOR(reference, candidate)
//	if d.Compare(best) < 0 {
//	    best = d
//	}
//
// Values keep the width of their inputs, so Compare is a plain byte-wise
// comparison.
package distance
