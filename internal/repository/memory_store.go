package repository

import (
	"context"
	"fmt"
	"sync"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
)

// MemorySessionStore keeps sessions in a process-local map. It backs tests
// and single-node development runs; nothing survives a restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]*model.Session),
	}
}

func (s *MemorySessionStore) Save(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Clone both ways so callers never share memory with the stored snapshot.
	s.sessions[session.ID] = session.Clone()
	return nil
}

func (s *MemorySessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}
	return session.Clone(), nil
}

func (s *MemorySessionStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.sessions)), nil
}
