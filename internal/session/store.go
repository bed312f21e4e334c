package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/model"
)

// KeyUser is the durable storage key of the serialized identity.
const KeyUser = "user"

// DefaultLatency is the simulated network round-trip of Login.
const DefaultLatency = time.Second

var (
	// ErrInvalidCredentials is returned when no directory account matches.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCorruptPersistedState marks a stored identity that could not be
	// adopted. Restore recovers from it silently.
	ErrCorruptPersistedState = errors.New("corrupt persisted identity")

	// ErrNotAuthenticated is returned by operations that need an identity.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// State is the authentication state machine position.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticating
	StateAuthenticated
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Storage is the string-keyed durable store the identity is persisted in.
// fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string
	Password string
}

// Snapshot is a consistent read of the store, delivered to subscribers.
type Snapshot struct {
	State         State
	Authenticated bool
	Identity      model.Identity
	Capabilities  model.CapabilitySet
	Err           error
}

// Option configures a Store.
type Option func(*Store)

// WithLatency sets the simulated login round-trip.
func WithLatency(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// WithDirectory sets the account directory logins are checked against.
func WithDirectory(dir *Directory) Option {
	return func(s *Store) {
		if dir != nil {
			s.directory = dir
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store owns the current identity. Login calls are not coalesced: every call
// that resolves applies its outcome, so the latest resolution wins. A Logout
// issued while a Login is pending does not cancel it; if that Login later
// succeeds the session is authenticated again. Callers prevent overlapping
// submissions at the UI level.
type Store struct {
	mu        sync.RWMutex
	storage   Storage
	directory *Directory
	latency   time.Duration
	logger    *zap.Logger

	identity *model.Identity
	pending  int
	lastErr  error

	listeners map[int]func(Snapshot)
	nextID    int
}

// NewStore creates an unauthenticated store. Call Restore to adopt a
// persisted identity.
func NewStore(storage Storage, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		latency:   DefaultLatency,
		logger:    zap.NewNop(),
		listeners: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.directory == nil {
		s.directory = DefaultDirectory()
	}
	return s
}

// Restore adopts the persisted identity, if any. An unreadable entry is
// removed and the store stays unauthenticated; nothing is returned to the
// caller but the resulting state.
func (s *Store) Restore() State {
	var snap Snapshot
	var listeners []func(Snapshot)

	s.mu.Lock()
	s.identity = nil
	if raw := s.storage.String(KeyUser); raw != "" {
		identity, err := decodeIdentity(raw)
		if err != nil {
			s.storage.RemoveValue(KeyUser)
			s.logger.Warn("discarded persisted identity", zap.Error(err))
		} else {
			s.identity = &identity
		}
	}
	snap = s.snapshotLocked()
	listeners = s.listenersLocked()
	s.mu.Unlock()

	s.logger.Info("session restored", zap.Stringer("state", snap.State))
	notify(listeners, snap)
	return snap.State
}

func decodeIdentity(raw string) (model.Identity, error) {
	var identity model.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrCorruptPersistedState, err)
	}
	if err := identity.Validate(); err != nil {
		return model.Identity{}, fmt.Errorf("%w: %v", ErrCorruptPersistedState, err)
	}
	return identity, nil
}

// Login waits out the simulated round-trip, then checks creds against the
// directory. On success the identity is persisted and becomes current. On
// failure the current identity is left as it was and the error is retained
// for LastError. Cancelling ctx before the round-trip completes returns
// ctx.Err() without touching the identity.
func (s *Store) Login(ctx context.Context, creds Credentials) (model.Identity, error) {
	s.update(func() {
		s.pending++
		s.lastErr = nil
	})

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		s.update(func() { s.pending-- })
		return model.Identity{}, ctx.Err()
	}

	identity, ok := s.directory.Authenticate(creds.Email, creds.Password)
	if !ok {
		s.update(func() {
			s.pending--
			s.lastErr = ErrInvalidCredentials
		})
		s.logger.Info("login rejected", zap.String("email", creds.Email))
		return model.Identity{}, ErrInvalidCredentials
	}

	data, err := json.Marshal(identity)
	if err != nil {
		s.update(func() { s.pending-- })
		return model.Identity{}, fmt.Errorf("encode identity: %w", err)
	}

	s.update(func() {
		s.pending--
		s.storage.SetString(KeyUser, string(data))
		s.identity = &identity
	})
	s.logger.Info("login succeeded",
		zap.String("email", identity.Email),
		zap.String("role", identity.Role.String()))
	return identity, nil
}

// Logout clears the current and persisted identity. Calling it while
// unauthenticated is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	wasAuthenticated := s.identity != nil
	s.identity = nil
	s.lastErr = nil
	s.storage.RemoveValue(KeyUser)
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	if !wasAuthenticated {
		return
	}
	s.logger.Info("logged out")
	notify(listeners, snap)
}

// UpdateProfile applies u to the current identity and persists the result.
func (s *Store) UpdateProfile(u model.ProfileUpdate) (model.Identity, error) {
	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return model.Identity{}, ErrNotAuthenticated
	}
	updated := u.Apply(*s.identity)
	data, err := json.Marshal(updated)
	if err != nil {
		s.mu.Unlock()
		return model.Identity{}, fmt.Errorf("encode identity: %w", err)
	}
	s.storage.SetString(KeyUser, string(data))
	s.identity = &updated
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	s.logger.Debug("profile updated", zap.String("id", updated.ID))
	notify(listeners, snap)
	return updated, nil
}

// ChangePassword checks the current password and the password policy. The
// directory is read-only, so a valid change mutates nothing here.
func (s *Store) ChangePassword(current, next, confirm string) error {
	identity, ok := s.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	account, found := s.directory.Lookup(identity.Email)
	if !found || account.Password != current {
		return ErrInvalidCredentials
	}
	return ValidatePassword(current, next, confirm)
}

// Current returns the authenticated identity.
func (s *Store) Current() (model.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return model.Identity{}, false
	}
	return *s.identity, true
}

// IsAuthenticated reports whether an identity is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// State returns the state machine position.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// LastError returns the failure of the most recent login, if it failed.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Capabilities derives the capability set of the current identity.
func (s *Store) Capabilities() model.CapabilitySet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return model.CapabilitySet{}
	}
	return DerivePermissions(s.identity.Role)
}

// HasCapability reports whether the current identity holds c.
func (s *Store) HasCapability(c model.Capability) bool {
	return s.Capabilities().Has(c)
}

// HasRole reports whether the current identity holds any of roles.
func (s *Store) HasRole(roles ...model.Role) bool {
	identity, ok := s.Current()
	if !ok {
		return false
	}
	for _, r := range roles {
		if identity.Role == r {
			return true
		}
	}
	return false
}

// Snapshot returns a consistent read of the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn for state changes. The returned func unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// update runs mutate under the lock and notifies subscribers afterwards.
func (s *Store) update(mutate func()) {
	s.mu.Lock()
	mutate()
	snap := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	notify(listeners, snap)
}

func (s *Store) stateLocked() State {
	switch {
	case s.pending > 0:
		return StateAuthenticating
	case s.identity != nil:
		return StateAuthenticated
	default:
		return StateUnauthenticated
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		State: s.stateLocked(),
		Err:   s.lastErr,
	}
	if s.identity != nil {
		snap.Authenticated = true
		snap.Identity = *s.identity
		snap.Capabilities = DerivePermissions(s.identity.Role)
	}
	return snap
}

func (s *Store) listenersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(Snapshot), snap Snapshot) {
	for _, fn := range listeners {
		fn(snap)
	}
}
