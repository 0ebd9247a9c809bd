// Package session tracks who is logged in for the dashboard-area views.
//
// It replaces ambient auth state with a narrow injected service: consumers
// get Current/SignIn/SignOut/RefreshProfile and an OnChange subscription.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hearthy-foundation/hearth/internal/entities"
	"github.com/hearthy-foundation/hearth/internal/storage"
)

var log = logrus.WithField("package", "session")

// ErrNotFound is returned when no profile matches the email or the token
// does not resolve to a live session.
var ErrNotFound = fmt.Errorf("not found")

// DefaultTTL ...
const DefaultTTL = time.Hour

type cacheEntry struct {
	profile   *entities.Profile
	expiresAt time.Time
}

// Manager is the session-management service.
type Manager struct {
	s   storage.Storage
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	subs    []func()

	now func() time.Time
}

// New creates new instance of Manager.
func New(s storage.Storage, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		s:       s,
		ttl:     ttl,
		entries: map[string]cacheEntry{},
		now:     time.Now,
	}
}

// SignIn resolves the profile by email and fabricates a session.
//
// The password is accepted but is NOT verified against the stored hash.
// This mirrors the behaviour the dashboard shipped with; a real credential
// check is a deliberate, separate decision (see DESIGN.md).
func (m *Manager) SignIn(ctx context.Context, email, _ string) (string, *entities.Profile, error) {
	p, err := m.s.GetProfileByEmail(ctx, email)
	if err != nil {
		if err == storage.ErrNotFound {
			return "", nil, ErrNotFound
		}

		return "", nil, fmt.Errorf("failed to get profile: %w", err)
	}

	token := uuid.New().String()
	now := m.now()
	expiresAt := now.Add(m.ttl)

	if err := m.s.CreateSession(ctx, &entities.Session{
		Token:     token,
		UserID:    p.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", nil, fmt.Errorf("failed to create session: %w", err)
	}

	m.mu.Lock()
	m.entries[token] = cacheEntry{profile: p, expiresAt: expiresAt}
	m.mu.Unlock()

	m.notify()

	return token, p, nil
}

// SignOut clears the cached state unconditionally and revokes the
// server-side session.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	m.mu.Lock()
	delete(m.entries, token)
	m.mu.Unlock()

	m.notify()

	if err := m.s.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Current returns the profile bound to the token. A token unknown to the
// in-process cache is resolved through storage, so sessions survive a
// restart. Cached entries honor the session expiry: a stale hit is evicted
// and treated as no session.
func (m *Manager) Current(ctx context.Context, token string) (*entities.Profile, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	e, ok := m.entries[token]
	m.mu.RUnlock()

	if ok {
		if m.now().Before(e.expiresAt) {
			return e.profile, nil
		}

		m.mu.Lock()
		delete(m.entries, token)
		m.mu.Unlock()

		return nil, ErrNotFound
	}

	sess, err := m.s.GetSession(ctx, token)
	if err != nil {
		if err == storage.ErrNotFound {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	p, err := m.s.GetProfile(ctx, sess.UserID)
	if err != nil {
		// a session without a profile is treated as no session at all
		log.WithError(err).WithField("user_id", sess.UserID).Error("failed to get profile for session")
		return nil, ErrNotFound
	}

	m.mu.Lock()
	m.entries[token] = cacheEntry{profile: p, expiresAt: sess.ExpiresAt}
	m.mu.Unlock()

	return p, nil
}

// RefreshProfile re-fetches the profile and replaces the cached copy.
// It is a no-op without a live session; fetch errors are logged and leave
// the previous copy in place.
func (m *Manager) RefreshProfile(ctx context.Context, token string) {
	m.mu.RLock()
	e, ok := m.entries[token]
	m.mu.RUnlock()

	if !ok {
		return
	}

	fresh, err := m.s.GetProfile(ctx, e.profile.ID)
	if err != nil {
		log.WithError(err).WithField("user_id", e.profile.ID).Error("failed to refresh profile")
		return
	}

	m.mu.Lock()
	m.entries[token] = cacheEntry{profile: fresh, expiresAt: e.expiresAt}
	m.mu.Unlock()

	m.notify()
}

// OnChange registers fn to be invoked after every sign-in, sign-out and
// profile refresh.
func (m *Manager) OnChange(fn func()) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

func (m *Manager) notify() {
	m.mu.RLock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	for _, fn := range subs {
		fn()
	}
}
