package session

import (
	"context"

	"github.com/google/uuid"
)

// Well-known session keys.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyQuiz     = "current_quiz"
)

// Store is per-client transient state keyed by session id. Values are
// strings; callers JSON-encode anything structured. A lookup of an
// absent key returns "" with no error.
type Store interface {
	Get(ctx context.Context, sid, key string) (string, error)
	Set(ctx context.Context, sid, key, value string) error
	Delete(ctx context.Context, sid, key string) error
	Destroy(ctx context.Context, sid string) error
	Close() error
}

// NewID mints a fresh session id for the cookie.
func NewID() string {
	return uuid.NewString()
}
