package modal_test

import (
	"sync"
	"testing"

	"hotel/internal/dashboard/modal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPlacesLayerAboveAll(t *testing.T) {
	stack := modal.NewStack()

	first := stack.Push()
	second := stack.Push()
	third := stack.Push()

	assert.Greater(t, first.Z, modal.BaseZ)
	assert.Greater(t, second.Z, first.Z)
	assert.Greater(t, third.Z, second.Z)

	top, ok := stack.Top()
	require.True(t, ok)
	assert.Equal(t, third, top)
}

func TestRemoveKeepsOrderOfOthers(t *testing.T) {
	stack := modal.NewStack()

	first := stack.Push()
	second := stack.Push()
	third := stack.Push()

	assert.True(t, stack.Remove(second.ID))
	assert.Equal(t, []modal.Layer{first, third}, stack.Layers())

	fourth := stack.Push()
	assert.Greater(t, fourth.Z, third.Z)

	assert.False(t, stack.Remove(second.ID))
}

func TestTopOfEmptyStack(t *testing.T) {
	stack := modal.NewStack()

	_, ok := stack.Top()
	assert.False(t, ok)

	layer := stack.Push()
	stack.Remove(layer.ID)

	_, ok = stack.Top()
	assert.False(t, ok)
	assert.Zero(t, stack.Len())
}

func TestConcurrentPush(t *testing.T) {
	stack := modal.NewStack()

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			stack.Push()
		}()
	}

	wg.Wait()

	layers := stack.Layers()
	require.Len(t, layers, 50)

	for i := 1; i < len(layers); i++ {
		assert.Greater(t, layers[i].Z, layers[i-1].Z)
	}
}
