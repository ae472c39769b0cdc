package repository

import (
	"context"
	"time"

	"github.com/ouvrio/intake-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

// DraftRepository defines the interface for in-flight dialogue drafts.
// Drafts expire after the configured TTL if the user walks away.
type DraftRepository interface {
	SaveDraft(ctx context.Context, draft *entity.Draft) error
	GetDraft(ctx context.Context, id string) (*entity.Draft, error)
	DeleteDraft(ctx context.Context, id string) error
}

var _ DraftRepository = &DraftCache{}

// DraftCache implements DraftRepository on an in-memory TTL cache.
// Every save refreshes the expiration, so an active dialogue never
// times out mid-conversation.
type DraftCache struct {
	cache *gocache.Cache
}

func NewDraftCache(ttl, cleanupInterval time.Duration) *DraftCache {
	return &DraftCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func (c *DraftCache) SaveDraft(_ context.Context, draft *entity.Draft) error {
	c.cache.Set(draft.ID, draft, gocache.DefaultExpiration)
	return nil
}

func (c *DraftCache) GetDraft(_ context.Context, id string) (*entity.Draft, error) {
	value, found := c.cache.Get(id)
	if !found {
		return nil, entity.ErrDialogueNotFound
	}

	draft, ok := value.(*entity.Draft)
	if !ok {
		return nil, entity.ErrDialogueNotFound
	}

	return draft, nil
}

func (c *DraftCache) DeleteDraft(_ context.Context, id string) error {
	c.cache.Delete(id)
	return nil
}
