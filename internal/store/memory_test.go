package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordplaylabs/wordplay/internal/game"
)

func TestMemoryGetOrCreate(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	s, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", s.PlayerID)
	assert.Equal(t, game.StateIdle, s.State)

	again, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	assert.NotSame(t, s, again, "each load gets its own copy")
	assert.Equal(t, s, again)

	other, err := m.GetOrCreate(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "p2", other.PlayerID)
}

func TestMemorySave(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	s := game.NewSession("p1")
	s.StartRound("r1", "HOUSE", game.DefaultLanguage, game.DifficultyNormal, time.Now())
	require.NoError(t, m.Save(ctx, s))

	got, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, game.StatePlaying, got.State)
	assert.Equal(t, "HOUSE", got.Secret)
}

// A session handed to one caller must stay fixed while other callers load,
// mutate, and save; and a caller mutating its copy after Save must not
// reach into the store.
func TestMemorySnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	s := game.NewSession("p1")
	s.StartRound("r1", "HOUSE", game.DefaultLanguage, game.DifficultyNormal, time.Now())
	require.NoError(t, m.Save(ctx, s))

	snapshot, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	live, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	_, rej := live.ApplyGuess("MOUSE", time.Now())
	require.Nil(t, rej)
	require.NoError(t, m.Save(ctx, live))

	assert.Empty(t, snapshot.Guesses, "earlier snapshot unaffected by later saves")

	live.Guesses = append(live.Guesses, "TRAIN")
	fresh, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"MOUSE"}, fresh.Guesses, "post-save mutation stays private")
}

// One goroutine keeps reading a previously loaded session while another
// loads, guesses, and saves. Copies on both paths keep the reads safe.
func TestMemoryConcurrentReadsDuringSaves(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	s := game.NewSession("p1")
	s.StartRound("r1", "HOUSE", game.DefaultLanguage, game.DifficultyNormal, time.Now())
	require.NoError(t, m.Save(ctx, s))

	snapshot, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, g := range []string{"TRAIN", "CRANE", "STOMP"} {
			live, err := m.GetOrCreate(ctx, "p1")
			assert.NoError(t, err)
			_, rej := live.ApplyGuess(g, time.Now())
			assert.Nil(t, rej)
			assert.NoError(t, m.Save(ctx, live))
		}
	}()
	for i := 0; i < 1000; i++ {
		for range snapshot.Guesses {
		}
		_ = snapshot.LastMsg
	}
	<-done

	assert.Empty(t, snapshot.Guesses)
	final, err := m.GetOrCreate(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, final.Guesses, 3)
}

func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := m.GetOrCreate(ctx, "p1")
			assert.NoError(t, err)
			assert.NoError(t, m.Save(ctx, s))
		}()
	}
	wg.Wait()
}
