package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"resto-backend/internal/cache"
)

// ErrUnavailable marks failures of the persistence backend, as opposed to
// bad input. Callers can map it to a retry-later response.
var ErrUnavailable = errors.New("cart storage unavailable")

// Store keeps cart sessions in memory for fast reads and persists every
// mutation to Redis as a single blob. Mutations are optimistic: the local
// session is updated first, and if the remote write fails the snapshot is
// restored and the error returned to the caller. Concurrent mutations of
// the same key are last-writer-wins, matching the persistence layer.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Load returns the session for an ID, falling back to the persisted blob
// and finally to a fresh empty session.
func (st *Store) Load(ctx context.Context, sessionID string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.loadLocked(ctx, sessionID)
}

func (st *Store) loadLocked(ctx context.Context, sessionID string) (*Session, error) {
	if s, ok := st.sessions[sessionID]; ok {
		return s, nil
	}

	data, err := cache.GetCartBlob(ctx, sessionID)
	if err != nil {
		if cache.IsNotFound(err) {
			s := &Session{}
			st.sessions[sessionID] = s
			return s, nil
		}
		return nil, fmt.Errorf("failed to load cart session: %w: %w", ErrUnavailable, err)
	}

	s := &Session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("corrupt cart blob for session %s: %w", sessionID, err)
	}
	st.sessions[sessionID] = s
	return s, nil
}

// Mutate applies fn to the session optimistically and persists the result.
// fn is the apply half of the compensating pair; the pre-mutation snapshot
// is the compensation, restored automatically when the persist fails so
// rollback can never be forgotten by a caller.
func (st *Store) Mutate(ctx context.Context, sessionID string, fn func(*Session)) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, err := st.loadLocked(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := s.clone()
	fn(s)

	data, err := json.Marshal(s)
	if err != nil {
		*s = *snapshot
		return nil, fmt.Errorf("failed to encode cart session: %w", err)
	}
	if err := cache.SaveCartBlob(ctx, sessionID, data); err != nil {
		*s = *snapshot
		return nil, fmt.Errorf("failed to persist cart session: %w: %w", ErrUnavailable, err)
	}
	return s, nil
}

// Drop removes the session locally and from the persisted store
func (st *Store) Drop(ctx context.Context, sessionID string) error {
	st.mu.Lock()
	delete(st.sessions, sessionID)
	st.mu.Unlock()
	return cache.DeleteCartBlob(ctx, sessionID)
}
