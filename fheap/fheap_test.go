package fheap_test

import (
	"testing"

	"github.com/katalvlaran/selfadjust/fheap"
	"github.com/stretchr/testify/assert"
)

func TestFheap_MeldWithEmptyReturnsOther(t *testing.T) {
	h := fheap.New(2)
	root := h.Insert(1, 0, 5)
	assert.Equal(t, root, h.Meld(0, root))
	assert.Equal(t, root, h.Meld(root, 0))
}

func TestFheap_DecreaseKeyAndCascadingCut(t *testing.T) {
	h := fheap.New(6)
	heap := 0
	heap = h.Insert(1, heap, 1)
	heap = h.Insert(2, heap, 10)
	heap = h.Insert(3, heap, 5)
	heap = h.Insert(4, heap, 7)
	heap = h.Insert(5, heap, 12)
	heap = h.Insert(6, heap, 3)

	heap = h.DeleteMin(heap) // removes key 1 (item 1)
	assert.Equal(t, int64(3), h.Key(heap))

	heap = h.DecreaseKey(5, 11, heap) // item that held key 12, now key 1
	assert.Equal(t, int64(1), h.Key(5))

	heap = h.DeleteMin(heap) // removes item 5 (now key 1)
	assert.Equal(t, int64(3), h.Key(heap))

	var got []int64
	for heap != 0 {
		got = append(got, h.Key(heap))
		heap = h.DeleteMin(heap)
	}
	assert.Equal(t, []int64{3, 5, 7, 10}, got)
}

func TestFheap_DeleteMinDrainsInOrder(t *testing.T) {
	h := fheap.New(5)
	keys := []int64{9, 2, 7, 4, 1}
	heap := 0
	for i, k := range keys {
		heap = h.Insert(i+1, heap, k)
	}
	var got []int64
	for heap != 0 {
		got = append(got, h.Key(heap))
		heap = h.DeleteMin(heap)
	}
	assert.Equal(t, []int64{1, 2, 4, 7, 9}, got)
}

func TestFheap_Remove(t *testing.T) {
	h := fheap.New(3)
	heap := 0
	heap = h.Insert(1, heap, 5)
	heap = h.Insert(2, heap, 1)
	heap = h.Insert(3, heap, 9)

	heap = h.Remove(2, heap)
	assert.Equal(t, int64(5), h.Key(heap))
}
