package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"excel-mock-interviewer/internal/interview"
	"excel-mock-interviewer/internal/model"
)

// FileSessionStore is the local fallback backend: one JSON file per session
// under a data directory. It honors the same contract as the Mongo store so
// the rest of the system stays backend-agnostic, but offers no durability
// beyond the local disk.
type FileSessionStore struct {
	dir string
}

func NewFileSessionStore(dir string) (*FileSessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir %s: %w", dir, err)
	}
	return &FileSessionStore{dir: dir}, nil
}

func (s *FileSessionStore) Save(ctx context.Context, session *model.Session) error {
	path, err := s.path(session.ID)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode session %s: %v", interview.ErrUpstream, session.ID, err)
	}
	// Write-then-rename keeps a crashed save from truncating the snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write session %s: %v", interview.ErrUpstream, session.ID, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: write session %s: %v", interview.ErrUpstream, session.ID, err)
	}
	return nil
}

func (s *FileSessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	path, err := s.path(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read session %s: %v", interview.ErrUpstream, id, err)
	}
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: decode session %s: %v", interview.ErrUpstream, id, err)
	}
	return &session, nil
}

func (s *FileSessionStore) Count(ctx context.Context) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: count sessions: %v", interview.ErrUpstream, err)
	}
	var n int64
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			n++
		}
	}
	return n, nil
}

func (s *FileSessionStore) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\.`) {
		return "", fmt.Errorf("%w: %s", interview.ErrNotFound, id)
	}
	return filepath.Join(s.dir, id+".json"), nil
}
