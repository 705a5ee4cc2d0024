package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/seedselect/digest"
	"github.com/hupe1980/seedselect/distance"
)

// Scored is a candidate with its distance to a reference digest.
type Scored struct {
	ID       []byte
	Distance distance.Value
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// IDs returns num distinct pseudo-random identifiers of size bytes each.
// size must be large enough to hold num distinct values.
func (r *RNG) IDs(num, size int) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, num)
	ids := make([][]byte, 0, num)
	for len(ids) < num {
		id := make([]byte, size)
		_, _ = r.rand.Read(id)
		if _, ok := seen[string(id)]; ok {
			continue
		}
		seen[string(id)] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Shuffled returns a shuffled copy of ids. The identifiers themselves are shared.
func (r *RNG) Shuffled(ids [][]byte) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := slices.Clone(ids)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// PeerIDs returns "peer1".."peerN".
func PeerIDs(num int) [][]byte {
	ids := make([][]byte, num)
	for i := range num {
		ids[i] = fmt.Appendf(nil, "peer%d", i+1)
	}
	return ids
}

// ExactSelection scores every candidate against ref with a full sort and
// returns the closest n. It is the ground truth for heap-based selection.
func ExactSelection(ref []byte, candidates [][]byte, n int, fn digest.Func) ([]Scored, error) {
	scored := make([]Scored, 0, len(candidates))
	for _, id := range candidates {
		sum, err := fn(id)
		if err != nil {
			return nil, err
		}
		d, err := distance.XOR(ref, sum)
		if err != nil {
			return nil, err
		}
		scored = append(scored, Scored{ID: id, Distance: d})
	}
	slices.SortFunc(scored, func(a, b Scored) int {
		if c := a.Distance.Compare(b.Distance); c != 0 {
			return c
		}
		return slices.Compare(a.ID, b.ID)
	})
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n], nil
}

// Overlap returns the fraction of ids in a that also appear in b.
func Overlap(a, b [][]byte) float64 {
	if len(a) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(b))
	for _, id := range b {
		set[string(id)] = struct{}{}
	}
	hits := 0
	for _, id := range a {
		if _, ok := set[string(id)]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(a))
}
