package sequence_test

import (
	"sync"
	"testing"
	"time"

	"hotel/shared/sequence"

	"github.com/stretchr/testify/assert"
)

func TestClockIsStrictlyIncreasing(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	seq := sequence.NewClockFrom(func() time.Time { return frozen })

	first := seq.Next()
	second := seq.Next()
	third := seq.Next()

	assert.Equal(t, int64(1_700_000_000_000), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestClockIgnoresBackwardSteps(t *testing.T) {
	times := []time.Time{time.UnixMilli(2000), time.UnixMilli(1000), time.UnixMilli(5000)}
	index := 0
	seq := sequence.NewClockFrom(func() time.Time {
		current := times[index]
		index++

		return current
	})

	assert.Equal(t, int64(2000), seq.Next())
	assert.Equal(t, int64(2001), seq.Next())
	assert.Equal(t, int64(5000), seq.Next())
}

func TestClockConcurrentUnique(t *testing.T) {
	seq := sequence.NewClock()

	const workers, perWorker = 8, 250

	var (
		mu   sync.Mutex
		seen = make(map[int64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWorker {
				id := seq.Next()

				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
