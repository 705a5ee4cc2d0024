package seedselect

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seedselect/distance"
)

var (
	// ErrNoCandidates is returned when the candidate pool is empty.
	ErrNoCandidates = errors.New("no candidates")

	// ErrInvalidSelectionSize is returned when n is not positive or exceeds the pool size.
	ErrInvalidSelectionSize = errors.New("invalid selection size")

	// ErrDuplicateCandidate is returned when two candidates share an identifier.
	ErrDuplicateCandidate = errors.New("duplicate candidate")

	// ErrLengthMismatch is returned when a candidate digest and the reference
	// digest differ in length.
	ErrLengthMismatch = errors.New("digest length mismatch")

	// ErrDigestFailure is returned when the digest function fails.
	ErrDigestFailure = errors.New("digest failure")

	// ErrEmptySeed is returned when the seed is empty.
	ErrEmptySeed = errors.New("empty seed")

	// ErrWeightsMismatch is returned when weights are given but do not align with the candidates.
	ErrWeightsMismatch = errors.New("weights do not match candidates")
)

// SelectionSizeError reports an n outside [1, Candidates].
type SelectionSizeError struct {
	N          int
	Candidates int
}

func (e *SelectionSizeError) Error() string {
	return fmt.Sprintf("invalid selection size: n=%d, candidates=%d", e.N, e.Candidates)
}

func (e *SelectionSizeError) Is(target error) bool { return target == ErrInvalidSelectionSize }

// DuplicateCandidateError reports the first repeated identifier and both positions.
type DuplicateCandidateError struct {
	ID     []byte
	First  int
	Second int
}

func (e *DuplicateCandidateError) Error() string {
	return fmt.Sprintf("duplicate candidate %x at positions %d and %d", e.ID, e.First, e.Second)
}

func (e *DuplicateCandidateError) Is(target error) bool { return target == ErrDuplicateCandidate }

// LengthMismatchError reports a candidate digest whose length differs from the reference.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LengthMismatchError struct {
	Candidate int
	Expected  int
	Actual    int
	cause     error
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("digest length mismatch for candidate %d: expected %d, got %d", e.Candidate, e.Expected, e.Actual)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

func (e *LengthMismatchError) Unwrap() error { return e.cause }

// DigestError wraps a failure of the digest function.
// Candidate is the input position, or -1 for the reference digest.
type DigestError struct {
	Candidate int
	cause     error
}

func (e *DigestError) Error() string {
	if e.Candidate < 0 {
		return fmt.Sprintf("digest failure for reference: %v", e.cause)
	}
	return fmt.Sprintf("digest failure for candidate %d: %v", e.Candidate, e.cause)
}

func (e *DigestError) Is(target error) bool { return target == ErrDigestFailure }

func (e *DigestError) Unwrap() error { return e.cause }

var errNilDigest = errors.New("digest function is nil")

// translateError maps errors of the distance package onto this package's taxonomy.
func translateError(candidate int, err error) error {
	if err == nil {
		return nil
	}
	var lm *distance.LengthMismatchError
	if errors.As(err, &lm) {
		return &LengthMismatchError{Candidate: candidate, Expected: lm.Expected, Actual: lm.Actual, cause: err}
	}
	return err
}
