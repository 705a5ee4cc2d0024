package seedselect

import (
	"bytes"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/seedselect/distance"
	"github.com/hupe1980/seedselect/internal/queue"
)

// Result is a completed selection. All slices are ordered ascending by
// (distance, id) and have the same length.
type Result struct {
	// Reference is the reference digest the distances were measured against.
	Reference []byte
	// IDs are copies of the selected candidate identifiers.
	IDs [][]byte
	// Indices are the positions of the selected candidates in the request.
	Indices []int
	// Distances are the (weighted) distances to Reference.
	Distances []distance.Value
}

func newResult(ref []byte, items []queue.PriorityQueueItem) *Result {
	r := &Result{
		Reference: ref,
		IDs:       make([][]byte, len(items)),
		Indices:   make([]int, len(items)),
		Distances: make([]distance.Value, len(items)),
	}
	for i, it := range items {
		r.IDs[i] = bytes.Clone(it.ID)
		r.Indices[i] = it.Index
		r.Distances[i] = it.Distance
	}
	return r
}

// Len returns the number of selected candidates.
func (r *Result) Len() int { return len(r.IDs) }

// Contains reports whether id was selected.
func (r *Result) Contains(id []byte) bool {
	for _, sel := range r.IDs {
		if bytes.Equal(sel, id) {
			return true
		}
	}
	return false
}

// Membership returns the selected input positions as a bitmap, for cheap
// membership tests against the original candidate list.
// Roaring bitmaps hold 32-bit values; positions above math.MaxUint32 are
// left out, use Indices for pools that large.
func (r *Result) Membership() *roaring.Bitmap {
	return indexBitmap(r.Indices)
}

func indexBitmap(indices []int) *roaring.Bitmap {
	bm := roaring.New()
	for _, idx := range indices {
		if idx < 0 || uint64(idx) > math.MaxUint32 {
			continue
		}
		bm.Add(uint32(idx))
	}
	return bm
}
