package session

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/clinic-dashboard/internal/model"
)

// memStorage stands in for fyne preferences without starting an app.
type memStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{values: make(map[string]string)}
}

func (m *memStorage) String(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *memStorage) SetString(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *memStorage) RemoveValue(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

func newTestStore(t *testing.T, opts ...Option) (*Store, Storage) {
	t.Helper()
	storage := newMemStorage()
	opts = append([]Option{WithLatency(0)}, opts...)
	return NewStore(storage, opts...), storage
}

var adminCreds = Credentials{Email: "admin@clinic.test", Password: "admin123"}

func TestRestore_EmptyStorage(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, StateUnauthenticated, store.Restore())
	assert.False(t, store.IsAuthenticated())
	assert.True(t, store.Capabilities().Empty())
}

func TestRestore_AdoptsPersistedIdentity(t *testing.T) {
	store, storage := newTestStore(t)
	data, err := json.Marshal(model.Identity{ID: "7", Name: "Ana", Email: "ana@clinic.test", Role: model.RoleClinician})
	require.NoError(t, err)
	storage.SetString(KeyUser, string(data))

	assert.Equal(t, StateAuthenticated, store.Restore())

	identity, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "7", identity.ID)
	assert.True(t, store.HasCapability(model.CapManageSessions))
	assert.False(t, store.HasCapability(model.CapModifyPayments))
}

func TestRestore_CorruptEntryIsDiscarded(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{not json"},
		{"unknown role", `{"id":"1","name":"X","email":"x@clinic.test","role":"janitor"}`},
		{"missing id", `{"name":"X","email":"x@clinic.test","role":"clinician"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, storage := newTestStore(t)
			storage.SetString(KeyUser, tc.raw)

			assert.NotPanics(t, func() { store.Restore() })
			assert.Equal(t, StateUnauthenticated, store.State())
			assert.Empty(t, storage.String(KeyUser))
		})
	}
}

func TestRestoreLogoutRestore(t *testing.T) {
	store, storage := newTestStore(t)
	_, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)

	restarted := NewStore(storage, WithLatency(0))
	require.Equal(t, StateAuthenticated, restarted.Restore())

	restarted.Logout()
	assert.Empty(t, storage.String(KeyUser))

	again := NewStore(storage, WithLatency(0))
	assert.Equal(t, StateUnauthenticated, again.Restore())
}

func TestLogin_Success(t *testing.T) {
	store, storage := newTestStore(t)
	store.Restore()

	identity, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, model.RoleAdministrator, identity.Role)
	assert.NoError(t, store.LastError())

	raw := storage.String(KeyUser)
	require.NotEmpty(t, raw)
	var persisted map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	assert.NotContains(t, persisted, "password")
	assert.NotContains(t, raw, adminCreds.Password)
	assert.Equal(t, "admin@clinic.test", persisted["email"])
}

func TestLogin_WrongPassword(t *testing.T) {
	store, storage := newTestStore(t)

	_, err := store.Login(context.Background(), Credentials{Email: adminCreds.Email, Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StateUnauthenticated, store.State())
	assert.ErrorIs(t, store.LastError(), ErrInvalidCredentials)
	assert.Empty(t, storage.String(KeyUser))
}

func TestLogin_EmailMustMatchExactly(t *testing.T) {
	for _, email := range []string{"Admin@CLINIC.test", "  admin@clinic.test ", "admin@clinic.test\n"} {
		t.Run(email, func(t *testing.T) {
			store, storage := newTestStore(t)

			_, err := store.Login(context.Background(), Credentials{Email: email, Password: adminCreds.Password})
			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.False(t, store.IsAuthenticated())
			assert.Empty(t, storage.String(KeyUser))
		})
	}
}

func TestLogin_WrongPasswordKeepsPriorIdentity(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)

	_, err = store.Login(context.Background(), Credentials{Email: "clinician@clinic.test", Password: "bad"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	identity, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, adminCreds.Email, identity.Email)
	assert.Equal(t, StateAuthenticated, store.State())
}

func TestLogin_AuthenticatingWhilePending(t *testing.T) {
	store, _ := newTestStore(t, WithLatency(50*time.Millisecond))

	var states []State
	var mu sync.Mutex
	unsubscribe := store.Subscribe(func(s Snapshot) {
		mu.Lock()
		states = append(states, s.State)
		mu.Unlock()
	})
	defer unsubscribe()

	_, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateAuthenticating, StateAuthenticated}, states)
}

func TestLogin_ContextCancelled(t *testing.T) {
	store, storage := newTestStore(t, WithLatency(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Login(ctx, adminCreds)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateUnauthenticated, store.State())
	assert.Empty(t, storage.String(KeyUser))
	assert.NoError(t, store.LastError())
}

func TestLogin_PendingLoginSurvivesLogout(t *testing.T) {
	store, storage := newTestStore(t, WithLatency(30*time.Millisecond))

	done := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), adminCreds)
		done <- err
	}()

	require.Eventually(t, func() bool { return store.State() == StateAuthenticating }, time.Second, time.Millisecond)
	store.Logout()

	require.NoError(t, <-done)
	assert.Equal(t, StateAuthenticated, store.State(), "a stale login resolving after logout re-authenticates")
	assert.NotEmpty(t, storage.String(KeyUser))
}

func TestLogin_LastResolvedWins(t *testing.T) {
	store, _ := newTestStore(t, WithLatency(20*time.Millisecond))

	var wg sync.WaitGroup
	for _, creds := range []Credentials{adminCreds, {Email: "clinician@clinic.test", Password: "clinic123"}} {
		wg.Add(1)
		go func(c Credentials) {
			defer wg.Done()
			_, _ = store.Login(context.Background(), c)
		}(creds)
	}
	wg.Wait()

	identity, ok := store.Current()
	require.True(t, ok)
	assert.Contains(t, []model.Role{model.RoleAdministrator, model.RoleClinician}, identity.Role)
	assert.Equal(t, StateAuthenticated, store.State())
}

func TestLogout_Idempotent(t *testing.T) {
	store, _ := newTestStore(t)
	notified := 0
	store.Subscribe(func(Snapshot) { notified++ })

	assert.NotPanics(t, func() {
		store.Logout()
		store.Logout()
	})
	assert.Equal(t, StateUnauthenticated, store.State())
	assert.Zero(t, notified)
}

func TestHasRole(t *testing.T) {
	store, _ := newTestStore(t)
	assert.False(t, store.HasRole(model.RoleAdministrator))

	_, err := store.Login(context.Background(), Credentials{Email: "frontdesk@clinic.test", Password: "desk1234"})
	require.NoError(t, err)

	assert.True(t, store.HasRole(model.RoleClinician, model.RoleFrontDesk))
	assert.False(t, store.HasRole(model.RoleAdministrator))
	assert.False(t, store.HasRole())
}

func TestUpdateProfile(t *testing.T) {
	store, storage := newTestStore(t)

	dept := "Neurology"
	_, err := store.UpdateProfile(model.ProfileUpdate{Department: &dept})
	require.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = store.Login(context.Background(), Credentials{Email: "clinician@clinic.test", Password: "clinic123"})
	require.NoError(t, err)

	updated, err := store.UpdateProfile(model.ProfileUpdate{Department: &dept})
	require.NoError(t, err)
	assert.Equal(t, "Neurology", updated.Department)

	restarted := NewStore(storage)
	restarted.Restore()
	identity, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, "Neurology", identity.Department)
}

func TestChangePassword(t *testing.T) {
	store, storage := newTestStore(t)
	require.ErrorIs(t, store.ChangePassword("admin123", "newpass42", "newpass42"), ErrNotAuthenticated)

	_, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)
	before := storage.String(KeyUser)

	assert.ErrorIs(t, store.ChangePassword("wrong", "newpass42", "newpass42"), ErrInvalidCredentials)
	assert.ErrorIs(t, store.ChangePassword("admin123", "short1", "short1"), ErrPasswordPolicy)
	assert.NoError(t, store.ChangePassword("admin123", "newpass42", "newpass42"))

	assert.Equal(t, before, storage.String(KeyUser))
	assert.True(t, store.IsAuthenticated())
}

func TestSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	snap := store.Snapshot()
	assert.False(t, snap.Authenticated)
	assert.True(t, snap.Capabilities.Empty())

	_, err := store.Login(context.Background(), adminCreds)
	require.NoError(t, err)

	snap = store.Snapshot()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.True(t, snap.Capabilities.Has(model.CapManageUsers))
}
