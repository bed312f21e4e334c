package app

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/config"
	"github.com/ytget/clinic-dashboard/internal/layout"
	"github.com/ytget/clinic-dashboard/internal/notify"
	"github.com/ytget/clinic-dashboard/internal/panel"
	"github.com/ytget/clinic-dashboard/internal/session"
	"github.com/ytget/clinic-dashboard/internal/ui"
)

const (
	AppName = "Clinic Dashboard"

	WindowWidth  = 1100
	WindowHeight = 720
)

// App is one wired dashboard window
type App struct {
	Env    config.Env
	Logger *zap.Logger
	Fyne   fyne.App
	Window fyne.Window

	Directory   *session.Directory
	Preferences *config.Preferences
	Settings    *config.Settings
	Session     *session.Store
	Panels      *panel.Coordinator
	Bus         *panel.PointerBus
	Layout      *layout.Controller
	Feed        *notify.Feed
	UI          *ui.RootUI
}

// New wires a dashboard on top of fyneApp. Preferences and the session are
// hydrated from the app's preference storage before the UI is built; the
// window is created but not shown.
func New(fyneApp fyne.App, env config.Env, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	directory, err := session.LoadDirectory(env.DirectoryFile)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}

	storage := fyneApp.Preferences()
	prefs := config.NewPreferences(storage,
		config.WithThemeApplier(ui.ThemeApplier(fyneApp)),
		config.WithPreferenceLogger(logger.Named("preferences")),
	)

	store := session.NewStore(storage,
		session.WithDirectory(directory),
		session.WithLatency(env.LoginLatency),
		session.WithLogger(logger.Named("session")),
	)
	state := store.Restore()

	panels := panel.NewCoordinator(panel.WithLogger(logger.Named("panel")))
	bus := panel.NewPointerBus()
	controller := layout.NewController(prefs, store, panels,
		layout.WithBreakpoint(env.MobileBreakpoint),
		layout.WithLogger(logger.Named("layout")),
	)
	feed := notify.NewMockFeed(time.Now())

	settings := config.NewSettings(storage, env.Language)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	root := ui.NewRootUI(window, ui.Dependencies{
		Session:      store,
		Preferences:  prefs,
		Settings:     settings,
		Panels:       panels,
		Bus:          bus,
		Layout:       controller,
		Feed:         feed,
		Localization: localization,
		Logger:       logger.Named("ui"),
		DemoAccounts: DemoHints(directory),
	})

	logger.Info("dashboard ready",
		zap.String("app_id", env.AppID),
		zap.Stringer("session", state),
		zap.String("theme", string(prefs.Theme())),
		zap.String("language", localization.GetCurrentLanguage()),
		zap.Int("accounts", len(directory.Accounts())))

	return &App{
		Env:         env,
		Logger:      logger,
		Fyne:        fyneApp,
		Window:      window,
		Directory:   directory,
		Preferences: prefs,
		Settings:    settings,
		Session:     store,
		Panels:      panels,
		Bus:         bus,
		Layout:      controller,
		Feed:        feed,
		UI:          root,
	}, nil
}

// Run shows the window and blocks until the app quits
func (a *App) Run() {
	a.Window.ShowAndRun()
	a.Close()
}

// Close detaches the UI and the layout controller from the stores
func (a *App) Close() {
	a.UI.Close()
	a.Layout.Close()
}

// DemoHints formats the directory accounts as "email · password" sign-in hints
func DemoHints(directory *session.Directory) []string {
	var hints []string
	for _, identity := range directory.Accounts() {
		account, ok := directory.Lookup(identity.Email)
		if !ok {
			continue
		}
		hints = append(hints, fmt.Sprintf("%s · %s", account.Email, account.Password))
	}
	return hints
}
