package cache

import (
	"context"
	"log"

	"golang.org/x/sync/singleflight"

	"excel-mock-interviewer/internal/model"
	"excel-mock-interviewer/internal/repository"
)

// CachedSessionStore layers a SessionCache in front of a durable
// SessionStore. Reads go through the cache; misses load from the store and
// refill it. Writes go to the store first, then refresh the cache
// best-effort, so a cache outage only costs latency, never correctness.
type CachedSessionStore struct {
	store repository.SessionStore
	cache SessionCache
	sf    singleflight.Group
}

func NewCachedSessionStore(store repository.SessionStore, cache SessionCache) *CachedSessionStore {
	return &CachedSessionStore{
		store: store,
		cache: cache,
	}
}

func (s *CachedSessionStore) Save(ctx context.Context, session *model.Session) error {
	if err := s.store.Save(ctx, session); err != nil {
		return err
	}
	if err := s.cache.Set(ctx, session); err != nil {
		log.Printf("session cache set failed for %s: %v", session.ID, err)
	}
	return nil
}

func (s *CachedSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		log.Printf("session cache get failed for %s: %v", id, err)
	}
	if cached != nil {
		return cached, nil
	}

	// Collapse concurrent misses for the same id into one store read.
	result, err, _ := s.sf.Do(id, func() (interface{}, error) {
		session, err := s.store.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, session); err != nil {
			log.Printf("session cache refill failed for %s: %v", id, err)
		}
		return session, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*model.Session).Clone(), nil
}

func (s *CachedSessionStore) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
