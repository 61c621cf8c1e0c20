package llheap_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/llheap"
	"github.com/stretchr/testify/assert"
)

func TestLlheap_InsertFindMinRoundTrip(t *testing.T) {
	h := llheap.New(5, nil)
	heap := 0
	heap = h.Insert(1, 5, heap)
	heap = h.Insert(2, 3, heap)
	heap = h.Insert(3, 8, heap)
	root := h.FindMin(heap)
	assert.Equal(t, int64(3), h.Key(root))
}

func TestLlheap_DeletedPredicateSkipsItems(t *testing.T) {
	deleted := map[int]bool{2: true}
	h := llheap.New(5, func(i int) bool { return deleted[i] })
	heap := 0
	heap = h.Insert(1, 5, heap)
	heap = h.Insert(2, 1, heap) // smallest key, but "deleted"
	heap = h.Insert(3, 8, heap)
	root := h.FindMin(heap)
	assert.Equal(t, int64(5), h.Key(root))
}

func TestLlheap_LmeldIsLazyAndFindMinNormalises(t *testing.T) {
	h := llheap.New(4, nil)
	h.SetKey(1, 10)
	h.SetKey(2, 4)
	lazy := h.Lmeld(1, 2)
	root := h.FindMin(lazy)
	assert.Equal(t, int64(4), h.Key(root))
}

func TestLlheap_MakeHeap(t *testing.T) {
	h := llheap.New(3, nil)
	h.SetKey(1, 9)
	h.SetKey(2, 2)
	h.SetKey(3, 5)
	root := h.MakeHeap([]int{1, 2, 3})
	assert.Equal(t, int64(2), h.Key(root))
}
