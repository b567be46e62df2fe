package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
	"excel-mock-interviewer/internal/repository"
)

// countingStore tracks how often the durable backend is read.
type countingStore struct {
	repository.SessionStore
	loads int
}

func (s *countingStore) Load(ctx context.Context, id string) (*model.Session, error) {
	s.loads++
	return s.SessionStore.Load(ctx, id)
}

func newCachedStore(t *testing.T) (*CachedSessionStore, *countingStore) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backing := &countingStore{SessionStore: repository.NewMemorySessionStore()}
	return NewCachedSessionStore(backing, NewSessionCache(client, time.Minute)), backing
}

func TestCachedStoreServesRepeatReadsFromCache(t *testing.T) {
	ctx := context.Background()
	store, backing := newCachedStore(t)

	if err := store.Save(ctx, cachedSession("s1")); err != nil {
		t.Fatalf("save: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := store.Load(ctx, "s1")
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if got.ID != "s1" {
			t.Fatalf("load %d: wrong session %+v", i, got)
		}
	}
	// Save warmed the cache, so the durable store is never read.
	if backing.loads != 0 {
		t.Fatalf("expected 0 backend reads, got %d", backing.loads)
	}
}

func TestCachedStoreFillsCacheOnMiss(t *testing.T) {
	ctx := context.Background()
	store, backing := newCachedStore(t)

	// Seed the durable store directly so the cache is cold.
	if err := backing.SessionStore.Save(ctx, cachedSession("s1")); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := store.Load(ctx, "s1"); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := store.Load(ctx, "s1"); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if backing.loads != 1 {
		t.Fatalf("expected exactly 1 backend read, got %d", backing.loads)
	}
}

func TestCachedStoreUnknownIDIsNotFound(t *testing.T) {
	store, _ := newCachedStore(t)
	if _, err := store.Load(context.Background(), "missing"); !errors.Is(err, interview.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCachedStoreSaveRefreshesCache(t *testing.T) {
	ctx := context.Background()
	store, backing := newCachedStore(t)

	s := cachedSession("s1")
	store.Save(ctx, s)
	s.Cursor = 4
	store.Save(ctx, s)

	got, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Cursor != 4 {
		t.Fatalf("cache served stale snapshot: cursor=%d", got.Cursor)
	}
	if backing.loads != 0 {
		t.Fatalf("expected cache hit, got %d backend reads", backing.loads)
	}
}
