package session

import (
	"context"
	"sync"
	"time"
)

type memorySession struct {
	values   map[string]string
	deadline time.Time
}

// MemoryStore is the in-process session backend for development and
// tests. Expiry is checked lazily on access; writes slide the deadline
// forward like the redis backend does.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memorySession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// live returns the session for sid, dropping it first if expired.
func (s *MemoryStore) live(sid string) *memorySession {
	sess, ok := s.sessions[sid]
	if !ok {
		return nil
	}
	if s.now().After(sess.deadline) {
		delete(s.sessions, sid)
		return nil
	}
	return sess
}

func (s *MemoryStore) Get(_ context.Context, sid, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.live(sid)
	if sess == nil {
		return "", nil
	}
	return sess.values[key], nil
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.live(sid)
	if sess == nil {
		sess = &memorySession{values: make(map[string]string)}
		s.sessions[sid] = sess
	}
	sess.values[key] = value
	sess.deadline = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess := s.live(sid); sess != nil {
		delete(sess.values, key)
	}
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
