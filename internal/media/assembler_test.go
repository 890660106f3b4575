package media_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamahmadmhd/cinemora/internal/media"
)

func TestAssemblerCoalescesRapidPatches(t *testing.T) {
	a := media.NewAssembler("movie")

	_, gen1 := a.Apply(media.Patch{Genres: ptr([]int{28})})
	merged, gen2 := a.Apply(media.Patch{ReleaseYear: ptr("2010")})

	assert.Equal(t, []int{28}, merged.Genres)
	assert.Equal(t, "2010", merged.ReleaseYear)

	assert.False(t, a.Latest(gen1), "superseded fetch must discard its result")
	assert.True(t, a.Latest(gen2))
}

func TestAssemblerClearInvalidatesInFlightFetch(t *testing.T) {
	a := media.NewAssembler("tv")

	_, gen1 := a.Apply(media.Patch{Language: ptr("en")})
	cleared, gen2 := a.Clear()

	assert.Empty(t, cleared)
	assert.False(t, a.Latest(gen1))
	assert.True(t, a.Latest(gen2))
	assert.Empty(t, a.Criteria())
}

func TestAssemblerConcurrentPatchesLeaveOneWinner(t *testing.T) {
	a := media.NewAssembler("movie")

	const n = 64
	gens := make([]uint64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page := i + 1
			_, gens[i] = a.Apply(media.Patch{Page: &page})
		}(i)
	}
	wg.Wait()

	latest := 0
	for _, gen := range gens {
		if a.Latest(gen) {
			latest++
		}
	}
	require.Equal(t, 1, latest, "exactly one in-flight fetch may publish its result")
}
