package seedselect

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/seedselect/digest"
	"github.com/hupe1980/seedselect/distance"
	"github.com/hupe1980/seedselect/internal/queue"
)

// Request describes one selection.
type Request struct {
	// Name separates independent selection contexts sharing a seed.
	Name string
	// Seed is the shared random seed. It must not be empty.
	Seed []byte
	// Seq separates repeated draws from the same seed (round, epoch, ...).
	Seq uint64
	// N is the number of candidates to select, 1 <= N <= len(Candidates).
	N int
	// Candidates is the pool. Identifiers must be unique; order does not matter.
	Candidates [][]byte
	// Weights optionally scales each candidate's distance by 1/weight.
	// If set, it must have one entry per candidate. A zero weight means unweighted.
	Weights []uint64
}

// Selector performs deterministic seed-based selections with a fixed digest
// function and configuration. It is immutable and safe for concurrent use.
type Selector struct {
	fn   digest.Func
	opts options
}

// New returns a Selector using fn to digest the reference preimage and every
// candidate.
func New(fn digest.Func, optFns ...Option) *Selector {
	opts := defaultOptions()
	for _, o := range optFns {
		o(&opts)
	}
	return &Selector{fn: fn, opts: opts}
}

// Select returns the req.N candidates closest to the reference digest,
// ascending by (distance, id).
//
// The result depends only on the request and the digest function; it is
// identical for every party and every candidate order. The context is used
// for logging and stops a parallel scan early when cancelled.
func (s *Selector) Select(ctx context.Context, req Request) (res *Result, err error) {
	start := time.Now()
	defer func() {
		s.opts.metricsCollector.RecordSelect(len(req.Candidates), req.N, time.Since(start), err)
	}()

	if err := validate(req); err != nil {
		return nil, err
	}

	ref, err := Reference(s.fn, req.Seed, req.Seq, req.Name, s.opts.layout)
	if err != nil {
		return nil, err
	}

	items, err := s.scan(ctx, ref, req)
	if err != nil {
		return nil, err
	}

	s.opts.logger.WithName(req.Name).WithSeq(req.Seq).LogSelect(ctx, len(req.Candidates), req.N, time.Since(start))

	return newResult(ref, items), nil
}

// SelectN selects n of candidates with the canonical layout and no weights.
func SelectN(name string, seed []byte, seq uint64, n int, candidates [][]byte, fn digest.Func) ([][]byte, error) {
	res, err := New(fn).Select(context.Background(), Request{
		Name:       name,
		Seed:       seed,
		Seq:        seq,
		N:          n,
		Candidates: candidates,
	})
	if err != nil {
		return nil, err
	}
	return res.IDs, nil
}

// SelectStrings is SelectN for string identifiers.
func SelectStrings(name string, seed []byte, seq uint64, n int, candidates []string, fn digest.Func) ([]string, error) {
	ids := make([][]byte, len(candidates))
	for i, c := range candidates {
		ids[i] = []byte(c)
	}
	selected, err := SelectN(name, seed, seq, n, ids, fn)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(selected))
	for i, id := range selected {
		out[i] = string(id)
	}
	return out, nil
}

func validate(req Request) error {
	m := len(req.Candidates)
	if m == 0 {
		return ErrNoCandidates
	}
	if req.N <= 0 || req.N > m {
		return &SelectionSizeError{N: req.N, Candidates: m}
	}

	seen := make(map[string]int, m)
	for i, id := range req.Candidates {
		if j, ok := seen[string(id)]; ok {
			return &DuplicateCandidateError{ID: id, First: j, Second: i}
		}
		seen[string(id)] = i
	}

	if req.Weights != nil && len(req.Weights) != m {
		return fmt.Errorf("%w: %d weights for %d candidates", ErrWeightsMismatch, len(req.Weights), m)
	}
	return nil
}

// scan feeds every candidate through the bounded heap and drains it.
func (s *Selector) scan(ctx context.Context, ref []byte, req Request) ([]queue.PriorityQueueItem, error) {
	pq := queue.NewBounded(req.N)

	if s.opts.parallelism > 1 && len(req.Candidates) > 1 {
		dists, err := s.distancesParallel(ctx, ref, req)
		if err != nil {
			return nil, err
		}
		for i, id := range req.Candidates {
			pq.PushBounded(queue.PriorityQueueItem{ID: id, Index: i, Distance: dists[i]})
		}
		return pq.Drain(), nil
	}

	for i, id := range req.Candidates {
		d, err := s.distance(ref, i, id, req.Weights)
		if err != nil {
			return nil, err
		}
		pq.PushBounded(queue.PriorityQueueItem{ID: id, Index: i, Distance: d})
	}
	return pq.Drain(), nil
}

// distancesParallel computes all distances in contiguous chunks.
// Every candidate is evaluated so that the reported error is always the one
// of the lowest failing index, as in the sequential scan.
func (s *Selector) distancesParallel(ctx context.Context, ref []byte, req Request) ([]distance.Value, error) {
	m := len(req.Candidates)
	dists := make([]distance.Value, m)
	errs := make([]error, m)

	workers := min(s.opts.parallelism, m)
	chunk := (m + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < m; lo += chunk {
		hi := min(lo+chunk, m)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				dists[i], errs[i] = s.distance(ref, i, req.Candidates[i], req.Weights)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return dists, nil
}

func (s *Selector) distance(ref []byte, i int, id []byte, weights []uint64) (distance.Value, error) {
	sum, err := s.fn(id)
	if err != nil {
		return nil, &DigestError{Candidate: i, cause: err}
	}
	d, err := distance.XOR(ref, sum)
	if err != nil {
		return nil, translateError(i, err)
	}
	if weights != nil {
		d = d.Div(weights[i])
	}
	return d, nil
}
