package app

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/config"
	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
	"github.com/ytget/clinic-dashboard/internal/session"
	"github.com/ytget/clinic-dashboard/internal/ui"
)

func testEnv() config.Env {
	env := config.DefaultEnv()
	env.LoginLatency = 0
	env.Language = "en"
	return env
}

func TestNew_WiresStores(t *testing.T) {
	a, err := New(test.NewApp(), testEnv(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.Session.IsAuthenticated())
	assert.True(t, a.Panels.Registered(panel.Sidebar))
	assert.Equal(t, model.ThemeLight, a.Preferences.Theme())

	current, ok := a.Fyne.Settings().Theme().(*ui.ClinicTheme)
	require.True(t, ok)
	assert.Equal(t, model.ThemeLight, current.Mode())

	a.Preferences.ToggleTheme()
	current, ok = a.Fyne.Settings().Theme().(*ui.ClinicTheme)
	require.True(t, ok)
	assert.Equal(t, model.ThemeDark, current.Mode())
}

func TestNew_RestoresPersistedState(t *testing.T) {
	fyneApp := test.NewApp()
	prefs := fyneApp.Preferences()
	prefs.SetString(session.KeyUser, `{"id":"2","name":"Rafael Moreira","email":"clinician@clinic.test","role":"clinician"}`)
	prefs.SetString(config.KeyTheme, "dark")
	prefs.SetString(config.KeySidebarCollapsed, "true")

	a, err := New(fyneApp, testEnv(), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.Session.IsAuthenticated())
	assert.True(t, a.Session.HasRole(model.RoleClinician))
	assert.Equal(t, model.ThemeDark, a.Preferences.Theme())
	assert.True(t, a.Preferences.SidebarCollapsed())
}

func TestNew_MissingDirectoryFile(t *testing.T) {
	env := testEnv()
	env.DirectoryFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := New(test.NewApp(), env, zap.NewNop())
	assert.Error(t, err)
}

func TestDemoHints(t *testing.T) {
	hints := DemoHints(session.DefaultDirectory())
	require.Len(t, hints, 3)
	assert.Contains(t, hints, "admin@clinic.test · admin123")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = NewLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
