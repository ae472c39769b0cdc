package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftCache_SaveGetDelete(t *testing.T) {
	cache := NewDraftCache(time.Hour, time.Hour)
	ctx := context.Background()

	draft := entity.NewDraft("d-1", "Peinture", "Peinture intérieure")
	require.NoError(t, cache.SaveDraft(ctx, draft))

	loaded, err := cache.GetDraft(ctx, "d-1")
	require.NoError(t, err)
	assert.Equal(t, "Peinture", loaded.Category)

	require.NoError(t, cache.DeleteDraft(ctx, "d-1"))

	_, err = cache.GetDraft(ctx, "d-1")
	assert.ErrorIs(t, err, entity.ErrDialogueNotFound)
}

func TestDraftCache_MissingDraft(t *testing.T) {
	cache := NewDraftCache(time.Hour, time.Hour)

	_, err := cache.GetDraft(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrDialogueNotFound)
}

func TestDraftCache_AbandonedDraftExpires(t *testing.T) {
	cache := NewDraftCache(20*time.Millisecond, time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.SaveDraft(ctx, entity.NewDraft("d-1", "", "")))

	time.Sleep(50 * time.Millisecond)

	_, err := cache.GetDraft(ctx, "d-1")
	assert.ErrorIs(t, err, entity.ErrDialogueNotFound)
}

func TestDraftCache_SaveRefreshesExpiration(t *testing.T) {
	cache := NewDraftCache(60*time.Millisecond, time.Millisecond)
	ctx := context.Background()

	draft := entity.NewDraft("d-1", "", "")
	require.NoError(t, cache.SaveDraft(ctx, draft))

	// Keep the session active past the original TTL.
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		require.NoError(t, cache.SaveDraft(ctx, draft))
	}

	_, err := cache.GetDraft(ctx, "d-1")
	assert.NoError(t, err)
}
