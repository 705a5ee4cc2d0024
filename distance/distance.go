package distance

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
)

// LengthMismatchError indicates that two digests of different length were compared.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("digest length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Value is an XOR distance, an unsigned big-endian integer of fixed width.
type Value []byte

// XOR returns the XOR distance between a and b.
// Both digests must have the same length.
func XOR(a, b []byte) (Value, error) {
	if len(a) != len(b) {
		return nil, &LengthMismatchError{Expected: len(a), Actual: len(b)}
	}
	v := make(Value, len(a))
	for i := range a {
		v[i] = a[i] ^ b[i]
	}
	return v, nil
}

// Compare returns -1, 0 or +1 depending on whether v is closer than, equal
// to, or further than o. Both values must have the same width.
func (v Value) Compare(o Value) int {
	return bytes.Compare(v, o)
}

// IsZero reports whether the distance is zero, i.e. both digests were equal.
func (v Value) IsZero() bool {
	for _, b := range v {
		if b != 0 {
			return false
		}
	}
	return true
}

// BigInt returns the distance as an unsigned integer.
func (v Value) BigInt() *big.Int {
	return new(big.Int).SetBytes(v)
}

// Div returns floor(v / weight) with the same width as v.
// A zero weight returns v unchanged.
func (v Value) Div(weight uint64) Value {
	if weight <= 1 {
		return v
	}
	q := v.BigInt()
	q.Quo(q, new(big.Int).SetUint64(weight))
	out := make(Value, len(v))
	q.FillBytes(out)
	return out
}

func (v Value) String() string {
	return hex.EncodeToString(v)
}
