package prommetrics

import (
	"context"
	"testing"

	"github.com/hupe1980/seedselect"
	"github.com/hupe1980/seedselect/digest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	sel := seedselect.New(digest.Sum256, seedselect.WithMetricsCollector(c))
	ctx := context.Background()

	req := seedselect.Request{
		Name:       "test",
		Seed:       []byte("test-seed"),
		Seq:        1,
		N:          3,
		Candidates: [][]byte{[]byte("id1"), []byte("id2"), []byte("id3"), []byte("id4")},
	}
	_, err := sel.Select(ctx, req)
	require.NoError(t, err)

	req.N = 9
	_, err = sel.Select(ctx, req)
	require.ErrorIs(t, err, seedselect.ErrInvalidSelectionSize)

	req.Candidates = nil
	_, err = sel.Select(ctx, req)
	require.ErrorIs(t, err, seedselect.ErrNoCandidates)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Selections.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Selections.WithLabelValues("invalid_size")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Selections.WithLabelValues("no_candidates")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.Selected))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"seedselect_selections_total",
		"seedselect_select_duration_seconds",
		"seedselect_pool_size",
		"seedselect_selected_total",
	} {
		assert.True(t, names[want], "%s not registered", want)
	}
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	sel := seedselect.New(digest.Sum256, seedselect.WithMetricsCollector(c), seedselect.WithParallelism(4))

	req := seedselect.Request{
		Name:       "test",
		Seed:       []byte("test-seed"),
		Seq:        1,
		N:          3,
		Candidates: [][]byte{[]byte("id1"), []byte("id2"), []byte("id3"), []byte("id4"), []byte("id5")},
	}

	const goroutines = 16
	var g errgroup.Group
	for range goroutines {
		g.Go(func() error {
			res, err := sel.Select(context.Background(), req)
			if err != nil {
				return err
			}
			assert.Equal(t, [][]byte{[]byte("id2"), []byte("id1"), []byte("id3")}, res.IDs)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, float64(goroutines), testutil.ToFloat64(c.Selections.WithLabelValues("ok")))
	assert.Equal(t, float64(goroutines*req.N), testutil.ToFloat64(c.Selected))
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{seedselect.ErrDuplicateCandidate, "duplicate"},
		{&seedselect.DigestError{Candidate: 2}, "digest_failure"},
		{seedselect.ErrEmptySeed, "empty_seed"},
		{seedselect.ErrWeightsMismatch, "weights_mismatch"},
		{context.Canceled, "error"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, resultLabel(tt.err))
	}
}
