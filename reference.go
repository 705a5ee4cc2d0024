package seedselect

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/hupe1980/seedselect/digest"
)

// Layout fixes the byte layout hashed into the reference digest.
// Parties must use the same layout to agree on a selection.
type Layout int

const (
	// LayoutCanonical hashes seed || uint64_be(seq) || name.
	LayoutCanonical Layout = iota
	// LayoutCompat hashes name || seed || decimal(seq). It reproduces the
	// reference digest of the seedselection crate; candidate distances still
	// follow this package's digest-per-candidate rule, so selections differ
	// from the crate's. Its boundaries are ambiguous.
	LayoutCompat
)

func (l Layout) String() string {
	switch l {
	case LayoutCanonical:
		return "canonical"
	case LayoutCompat:
		return "compat"
	default:
		return fmt.Sprintf("unknown(%d)", int(l))
	}
}

// ParseLayout resolves a name as returned by Layout.String.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "canonical", "":
		return LayoutCanonical, nil
	case "compat":
		return LayoutCompat, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", name)
	}
}

// encode returns the preimage of the reference digest.
func (l Layout) encode(seed []byte, seq uint64, name string) ([]byte, error) {
	switch l {
	case LayoutCanonical:
		buf := make([]byte, 0, len(seed)+8+len(name))
		buf = append(buf, seed...)
		buf = binary.BigEndian.AppendUint64(buf, seq)
		return append(buf, name...), nil
	case LayoutCompat:
		buf := make([]byte, 0, len(name)+len(seed)+20)
		buf = append(buf, name...)
		buf = append(buf, seed...)
		return strconv.AppendUint(buf, seq, 10), nil
	default:
		return nil, fmt.Errorf("unknown layout %d", int(l))
	}
}

// Reference derives the reference digest for a selection context.
//
// The sequence number separates repeated draws from one seed, the name
// separates independent contexts sharing a seed.
func Reference(fn digest.Func, seed []byte, seq uint64, name string, layout Layout) ([]byte, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	if fn == nil {
		return nil, &DigestError{Candidate: -1, cause: errNilDigest}
	}
	preimage, err := layout.encode(seed, seq, name)
	if err != nil {
		return nil, err
	}
	sum, err := fn(preimage)
	if err != nil {
		return nil, &DigestError{Candidate: -1, cause: err}
	}
	return sum, nil
}
