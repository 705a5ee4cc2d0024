package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnsupportedAlgorithm is returned when an Algorithm has no provider.
var ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

// Func maps a byte sequence to a fixed-length digest.
//
// Implementations must be deterministic and side-effect free, and must return
// digests of the same length for every input.
type Func func(data []byte) ([]byte, error)

// FromHash adapts a hash.Hash constructor to a Func.
// A fresh hash is created per call, so the returned Func is safe for
// concurrent use.
func FromHash(newHash func() hash.Hash) Func {
	return func(data []byte) ([]byte, error) {
		h := newHash()
		if _, err := h.Write(data); err != nil {
			return nil, err
		}
		return h.Sum(nil), nil
	}
}

// Algorithm identifies a built-in digest adapter.
type Algorithm int

const (
	SHA256 Algorithm = iota
	SHA512_256
	SHA3_256
	Keccak256
	BLAKE2b256
)

func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512_256:
		return "sha512-256"
	case SHA3_256:
		return "sha3-256"
	case Keccak256:
		return "keccak256"
	case BLAKE2b256:
		return "blake2b-256"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Size returns the digest length in bytes, or 0 for unknown algorithms.
func (a Algorithm) Size() int {
	switch a {
	case SHA256, SHA512_256, SHA3_256, Keccak256, BLAKE2b256:
		return 32
	default:
		return 0
	}
}

// ParseAlgorithm resolves a name as returned by Algorithm.String.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sha256", "sha-256":
		return SHA256, nil
	case "sha512-256", "sha512_256":
		return SHA512_256, nil
	case "sha3-256", "sha3_256":
		return SHA3_256, nil
	case "keccak256", "keccak-256":
		return Keccak256, nil
	case "blake2b-256", "blake2b256", "blake2b":
		return BLAKE2b256, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

// Provider returns the digest function for the given algorithm.
func Provider(a Algorithm) (Func, error) {
	switch a {
	case SHA256:
		return Sum256, nil
	case SHA512_256:
		return FromHash(sha512.New512_256), nil
	case SHA3_256:
		return FromHash(sha3.New256), nil
	case Keccak256:
		return FromHash(sha3.NewLegacyKeccak256), nil
	case BLAKE2b256:
		return blake2b256, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, a)
	}
}

// Sum256 is the SHA-256 digest function.
func Sum256(data []byte) ([]byte, error) {
	sum := sha256.Sum256(data)
	return sum[:], nil
}

func blake2b256(data []byte) ([]byte, error) {
	sum := blake2b.Sum256(data)
	return sum[:], nil
}
