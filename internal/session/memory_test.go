package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyUserID, "42"))

		got, err := s.Get(ctx, sid, KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "42", got)
	})

	t.Run("absent key reads as empty string", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)

		got, err := s.Get(ctx, NewID(), KeyQuiz)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("overwrite replaces prior value", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyQuiz, "first"))
		require.NoError(t, s.Set(ctx, sid, KeyQuiz, "second"))

		got, err := s.Get(ctx, sid, KeyQuiz)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("delete removes a single key", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyUserID, "42"))
		require.NoError(t, s.Set(ctx, sid, KeyQuiz, "q"))
		require.NoError(t, s.Delete(ctx, sid, KeyQuiz))

		got, err := s.Get(ctx, sid, KeyQuiz)
		require.NoError(t, err)
		assert.Equal(t, "", got)

		got, err = s.Get(ctx, sid, KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "42", got)
	})

	t.Run("destroy removes the whole session", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyUserID, "42"))
		require.NoError(t, s.Destroy(ctx, sid))

		got, err := s.Get(ctx, sid, KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		s := NewMemoryStore(time.Hour)
		a, b := NewID(), NewID()

		require.NoError(t, s.Set(ctx, a, KeyUserID, "1"))
		require.NoError(t, s.Set(ctx, b, KeyUserID, "2"))

		got, err := s.Get(ctx, a, KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "1", got)
	})

	t.Run("expired session reads as empty", func(t *testing.T) {
		s := NewMemoryStore(time.Minute)
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyQuiz, "q"))

		now = now.Add(2 * time.Minute)

		got, err := s.Get(ctx, sid, KeyQuiz)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("write slides the deadline forward", func(t *testing.T) {
		s := NewMemoryStore(time.Minute)
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return now }
		sid := NewID()

		require.NoError(t, s.Set(ctx, sid, KeyUserID, "42"))
		now = now.Add(45 * time.Second)
		require.NoError(t, s.Set(ctx, sid, KeyQuiz, "q"))
		now = now.Add(45 * time.Second)

		got, err := s.Get(ctx, sid, KeyUserID)
		require.NoError(t, err)
		assert.Equal(t, "42", got)
	})
}
