package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/config"
	"github.com/ytget/clinic-dashboard/internal/layout"
	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/notify"
	"github.com/ytget/clinic-dashboard/internal/panel"
	"github.com/ytget/clinic-dashboard/internal/session"
)

// Toast notification constants
const (
	RootToastWidth    = 300
	RootToastHeight   = 64
	RootToastMargin   = 20
	RootToastAutoHide = 4 * time.Second
)

// Dependencies are the stores and controllers the UI projects
type Dependencies struct {
	Session      *session.Store
	Preferences  *config.Preferences
	Settings     *config.Settings
	Panels       *panel.Coordinator
	Bus          *panel.PointerBus
	Layout       *layout.Controller
	Feed         *notify.Feed
	Localization *Localization
	Logger       *zap.Logger

	// DemoAccounts are shown on the login screen as sign-in hints
	DemoAccounts []string
}

// RootUI represents the main UI structure. It swaps between the login screen
// and the dashboard as the session changes.
type RootUI struct {
	window       fyne.Window
	session      *session.Store
	prefs        *config.Preferences
	settings     *config.Settings
	panels       *panel.Coordinator
	bus          *panel.PointerBus
	layout       *layout.Controller
	feed         *notify.Feed
	localization *Localization
	logger       *zap.Logger
	demoAccounts []string
	now          func() time.Time
	after        func(time.Duration, func())

	ctx    context.Context
	cancel context.CancelFunc

	screen    *fyne.Container
	login     *LoginView
	dashboard *Dashboard
	release   []func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, deps Dependencies) *RootUI {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	localization := deps.Localization
	if localization == nil {
		localization = NewLocalization()
	}

	ui := &RootUI{
		window:       window,
		session:      deps.Session,
		prefs:        deps.Preferences,
		settings:     deps.Settings,
		panels:       deps.Panels,
		bus:          deps.Bus,
		layout:       deps.Layout,
		feed:         deps.Feed,
		localization: localization,
		logger:       logger,
		demoAccounts: deps.DemoAccounts,
		now:          time.Now,
		after:        func(d time.Duration, fn func()) { time.AfterFunc(d, fn) },
		screen:       container.NewStack(),
	}
	ui.ctx, ui.cancel = context.WithCancel(context.Background())

	ui.release = append(ui.release,
		ui.session.Subscribe(func(session.Snapshot) { fyne.Do(ui.render) }),
		ui.prefs.Subscribe(func(model.PreferenceState) { fyne.Do(ui.refresh) }),
		ui.layout.Subscribe(func(layout.Geometry) { fyne.Do(ui.refresh) }),
		ui.panels.Subscribe(func(id panel.ID, open bool) {
			fyne.Do(func() { ui.onPanel(id, open) })
		}),
	)
	ui.feed.SetUpdateCallback(func([]model.Notification) { fyne.Do(ui.refresh) })

	window.SetContent(container.New(newViewportLayout(ui.onResize), ui.screen))
	ui.render()

	logger.Debug("root UI initialized", zap.String("language", localization.GetCurrentLanguage()))
	return ui
}

// Close detaches the UI from the stores and cancels pending logins
func (ui *RootUI) Close() {
	ui.cancel()
	for _, release := range ui.release {
		release()
	}
	ui.release = nil
	ui.feed.SetUpdateCallback(nil)
	if ui.dashboard != nil {
		ui.dashboard.close()
		ui.dashboard = nil
	}
}

// onResize is the window-resize listener
func (ui *RootUI) onResize(size fyne.Size) {
	ui.layout.Resize(size.Width)
}

// render picks the screen for the current session state
func (ui *RootUI) render() {
	snap := ui.session.Snapshot()
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	if snap.Authenticated {
		if ui.dashboard == nil {
			ui.dashboard = newDashboard(ui)
			ui.dashboard.mount()
			ui.setScreen(ui.dashboard.Object())
			ui.logger.Info("dashboard shown", zap.String("role", snap.Identity.Role.String()))
		}
		ui.dashboard.refresh()
		return
	}

	if ui.dashboard != nil {
		ui.dashboard.close()
		ui.dashboard = nil
	}
	if ui.login == nil {
		ui.login = NewLoginView(ui.localization, ui.demoAccounts, ui.onLogin)
	}
	ui.setScreen(ui.login.Object())
	ui.login.Update(snap)
}

// refresh re-projects the stores onto whichever screen is shown
func (ui *RootUI) refresh() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	if ui.dashboard != nil {
		ui.dashboard.refresh()
		return
	}
	if ui.login != nil {
		ui.login.Update(ui.session.Snapshot())
	}
}

func (ui *RootUI) onPanel(id panel.ID, open bool) {
	if ui.dashboard == nil {
		return
	}
	ui.dashboard.panels.SetOpen(id, open)
}

func (ui *RootUI) setScreen(obj fyne.CanvasObject) {
	ui.screen.Objects = []fyne.CanvasObject{obj}
	ui.screen.Refresh()
}

// onLogin runs the login round-trip off the UI goroutine
func (ui *RootUI) onLogin(creds session.Credentials) {
	go func() {
		if _, err := ui.session.Login(ui.ctx, creds); err != nil {
			ui.logger.Debug("login failed", zap.String("email", creds.Email), zap.Error(err))
			fyne.Do(func() {
				if ui.login != nil {
					ui.login.Failed()
				}
			})
		}
	}()
}

func (ui *RootUI) logout() {
	ui.session.Logout()
}

// showToast shows a short non-modal message in the top-right corner
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	toast = widget.NewPopUp(container.NewBorder(nil, nil, nil, closeBtn, label), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(RootToastWidth, RootToastHeight)
	toast.Resize(toastSize)
	toast.ShowAtPosition(fyne.NewPos(canvasSize.Width-toastSize.Width-RootToastMargin, layout.HeaderHeight+RootToastMargin))

	ui.after(RootToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}
