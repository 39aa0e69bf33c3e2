package wavefront_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/swtile/wavefront"
	"github.com/stretchr/testify/require"
)

// TestReducerFold folds per-worker slots into region and global maxima.
func TestReducerFold(t *testing.T) {
	r := wavefront.NewReducer(3)
	r.Observe(0, 4)
	r.Observe(1, 9)
	r.Observe(1, 2) // never lowers a slot
	r.Observe(2, 7)

	require.Equal(t, int32(9), r.Fold())
	require.Equal(t, int32(9), r.Max())

	// Slots reset between regions; the global maximum never decreases.
	r.Observe(2, 5)
	require.Equal(t, int32(5), r.Fold())
	require.Equal(t, int32(9), r.Max())

	require.Zero(t, r.Fold(), "empty region")
	require.Equal(t, int32(9), r.Max())
}

// TestReducerConcurrentSlots lets each goroutine raise only its own slot.
func TestReducerConcurrentSlots(t *testing.T) {
	const workers = 16
	r := wavefront.NewReducer(workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for v := int32(0); v <= int32(w*10); v++ {
				r.Observe(w, v)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32((workers-1)*10), r.Fold())
}

// TestReducerMinimumOneSlot tolerates a zero worker count.
func TestReducerMinimumOneSlot(t *testing.T) {
	r := wavefront.NewReducer(0)
	r.Observe(0, 3)
	require.Equal(t, int32(3), r.Fold())
}
