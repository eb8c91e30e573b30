// Package session tracks the signed-in user and its persisted record.
package session

import (
	"context"
	"sync"

	"stockview-be/internal/logger"
	"stockview-be/internal/user"

	"go.uber.org/zap"
)

// Session is the process-wide current-user slot. Init must run before the
// first Current call to pick up a persisted record.
type Session struct {
	mu    sync.RWMutex
	store Store
	user  *user.User
}

func New(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Init restores the user from the store. A missing record leaves the
// session anonymous.
func (s *Session) Init(ctx context.Context) error {
	u, err := s.store.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to restore session", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	if u != nil {
		logger.FromCtx(ctx).Info("session restored", zap.String("user_id", u.ID))
	}
	return nil
}

func (s *Session) Current() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return user.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// SetUser makes u current. The record is written to the store only when
// persist is set; otherwise the store is left as it was.
func (s *Session) SetUser(ctx context.Context, u user.User, persist bool) error {
	if persist {
		if err := s.store.Save(ctx, u); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Clear drops the current user and the persisted record.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return s.store.Clear(ctx)
}

func (s *Session) Logout(ctx context.Context) error {
	return s.Clear(ctx)
}
