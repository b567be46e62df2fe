package repository

import (
	"context"

	"excel-mock-interviewer/internal/model"
)

// SessionStore persists full session snapshots keyed by session id.
//
// Save overwrites the whole snapshot; last write wins, which is safe because
// all writes for one id originate from the single request handling that
// session. Load returns interview.ErrNotFound for unknown ids and
// interview.ErrUpstream for backend failures.
type SessionStore interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context, id string) (*model.Session, error)
	Count(ctx context.Context) (int64, error)
}
