package seedselect

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexBitmap(t *testing.T) {
	bm := indexBitmap([]int{7, 0, 3})
	assert.Equal(t, []uint32{0, 3, 7}, bm.ToArray())

	t.Run("OutOfRange", func(t *testing.T) {
		if strconv.IntSize < 64 {
			t.Skip("positions above 32 bits need a 64-bit int")
		}
		top := uint64(math.MaxUint32)
		wide := top + 6 // truncates to 5

		bm := indexBitmap([]int{3, int(wide), int(top)})
		assert.Equal(t, []uint32{3, math.MaxUint32}, bm.ToArray())
		assert.False(t, bm.Contains(5))
	})
}
