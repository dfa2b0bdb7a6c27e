package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/sorted/order"
	"github.com/stretchr/testify/require"
)

func TestHeapOrdersItems(t *testing.T) {
	h := New(order.Natural[int], 5, 3, 9, 1, 7)
	require.Equal(t, 5, h.Len())
	top, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 1, top)
	h.Push(0)
	h.Push(4)
	require.Equal(t, []int{0, 1, 3, 4, 5, 7, 9}, slices.Collect(h.Drain()))
	require.Equal(t, 0, h.Len())
	_, ok = h.Pop()
	require.False(t, ok)
	_, ok = h.Peek()
	require.False(t, ok)
}

func TestHeapReplace(t *testing.T) {
	h := New[int](order.Natural[int])
	_, ok := h.Replace(4)
	require.False(t, ok)
	h.Push(2)
	top, ok := h.Replace(6)
	require.True(t, ok)
	require.Equal(t, 2, top)
	require.Equal(t, []int{4, 6}, slices.Collect(h.Drain()))
}

func TestHeapDrainStopsEarly(t *testing.T) {
	h := New(order.Reverse[int](order.Natural[int]), 1, 2, 3, 4)
	for item := range h.Drain() {
		require.Equal(t, 4, item)
		break
	}
	require.Equal(t, 3, h.Len())
}

func TestHeapRandomized(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	h := New[int](nil)
	var model []int
	for i := 0; i < 2000; i++ {
		if r.Intn(3) > 0 || len(model) == 0 {
			v := r.Intn(500)
			h.Push(v)
			model = append(model, v)
			continue
		}
		slices.Sort(model)
		got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, model[0], got)
		model = model[1:]
	}
	slices.Sort(model)
	require.Equal(t, model, slices.Collect(h.Drain()))
}

func TestHeapKeepsInputSlice(t *testing.T) {
	items := []int{3, 2, 1}
	h := New(order.Natural[int], items...)
	h.Pop()
	require.Equal(t, []int{3, 2, 1}, items)
}
