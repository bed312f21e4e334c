package ui

import (
	"fmt"
	"image/color"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/layout"
	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
)

// Backdrop dims the content behind the mobile sidebar and closes it on tap
type Backdrop struct {
	widget.BaseWidget

	rect  *canvas.Rectangle
	bus   *panel.PointerBus
	onTap func()
}

// NewBackdrop creates a backdrop that publishes its taps to bus, then calls onTap
func NewBackdrop(bus *panel.PointerBus, onTap func()) *Backdrop {
	b := &Backdrop{
		rect:  canvas.NewRectangle(color.NRGBA{A: BackdropAlpha}),
		bus:   bus,
		onTap: onTap,
	}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *Backdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.rect)
}

// Tapped implements fyne.Tappable
func (b *Backdrop) Tapped(ev *fyne.PointEvent) {
	if b.bus != nil && ev != nil {
		b.bus.Publish(ev.AbsolutePosition)
	}
	if b.onTap != nil {
		b.onTap()
	}
}

// Dashboard is the protected shell: header, sidebar, content and panels
type Dashboard struct {
	ui *RootUI

	header  *Header
	sidebar *Sidebar
	panels  *PanelLayer
	content *fyne.Container

	profileBox      *fyne.Container
	languageBox     *fyne.Container
	notificationBox *fyne.Container

	backdrop *Backdrop
	shell    *fyne.Container
	surface  *PointerSurface

	active  Section
	unmount func()
}

func newDashboard(ui *RootUI) *Dashboard {
	d := &Dashboard{ui: ui, active: SectionDashboard, unmount: func() {}}

	d.header = NewHeader(ui.localization, ui.bus, HeaderActions{
		ToggleSidebar:       ui.layout.ToggleSidebar,
		ToggleTheme:         func() { ui.prefs.ToggleTheme() },
		ToggleLanguage:      func() { d.toggle(panel.Language) },
		ToggleNotifications: func() { d.toggle(panel.Notifications) },
		ToggleProfile:       func() { d.toggle(panel.Profile) },
	})
	d.sidebar = NewSidebar(ui.localization, ui.bus, d.navigate)

	d.panels = NewPanelLayer()
	d.profileBox = d.panels.Add(panel.Profile, d.header.ProfileButton, ProfilePanelH)
	d.languageBox = d.panels.Add(panel.Language, d.header.LanguageButton, LanguagePanelH)
	d.notificationBox = d.panels.Add(panel.Notifications, d.header.NotificationsButton, NotificationPanelH)

	d.content = container.NewStack()
	d.backdrop = NewBackdrop(ui.bus, ui.layout.BackdropTapped)

	shell := &shellLayout{
		geometry: ui.layout.Geometry,
		header:   d.header.Object(),
		content:  d.content,
		backdrop: d.backdrop,
		sidebar:  d.sidebar.Object(),
		panels:   d.panels.Object(),
	}
	// Children are listed bottom to top.
	d.shell = container.New(shell, d.content, d.header.Object(), d.backdrop, d.sidebar.Object(), d.panels.Object())
	d.surface = NewPointerSurface(d.shell, ui.bus, d.onGesture)

	for _, id := range []panel.ID{panel.Profile, panel.Language, panel.Notifications} {
		ui.panels.Register(id, d.panels.Boundary(id))
	}
	ui.panels.Register(panel.Sidebar, boundaryOf(d.sidebar.Object(), d.header.MenuButton))

	return d
}

// Object returns the canvas object to place in the window
func (d *Dashboard) Object() fyne.CanvasObject {
	return d.surface
}

// mount attaches the outside-pointer listener for the lifetime of the shell
func (d *Dashboard) mount() {
	unmount, err := d.ui.panels.Mount(d.ui.bus)
	if err != nil {
		d.ui.logger.Warn("panel listener not mounted", zap.Error(err))
		return
	}
	d.unmount = unmount
}

// close releases the pointer listener and closes every open panel
func (d *Dashboard) close() {
	d.unmount()
	d.ui.panels.CloseAll()
}

func (d *Dashboard) toggle(id panel.ID) {
	if _, err := d.ui.panels.Toggle(id); err != nil {
		d.ui.logger.Warn("toggle panel", zap.String("panel", string(id)), zap.Error(err))
	}
}

func (d *Dashboard) navigate(section Section) {
	d.active = section
	d.ui.layout.Navigated()
	d.refresh()
}

func (d *Dashboard) onGesture(g GestureType) {
	if g == GestureSwipeLeft && d.ui.layout.MobileSidebarOpen() {
		d.ui.layout.BackdropTapped()
	}
}

func (d *Dashboard) editProfile() {
	_ = d.ui.panels.Close(panel.Profile)
	NewProfileDialog(d.ui.session, d.ui.localization, d.ui.window, d.ui.showToast).Show()
}

func (d *Dashboard) selectLanguage(code string) {
	d.ui.localization.SetLanguage(code)
	if d.ui.settings != nil {
		d.ui.settings.SetLanguage(code)
	}
	_ = d.ui.panels.Close(panel.Language)
	d.ui.refresh()
}

// refresh re-projects every store onto the shell
func (d *Dashboard) refresh() {
	ui := d.ui
	loc := ui.localization

	identity, _ := ui.session.Current()
	caps := ui.session.Capabilities()
	visible := VisibleSections(caps)
	if !slices.Contains(visible, d.active) && len(visible) > 0 {
		d.active = visible[0]
	}
	item, _ := navItemFor(d.active)

	geometry := ui.layout.Geometry()
	collapsed := geometry.SidebarMode == layout.SidebarInline && geometry.SidebarWidth == layout.SidebarCollapsedWidth

	d.header.Update(loc.GetText(item.textKey), identity, ui.prefs.Theme(), ui.feed.Unread())
	d.sidebar.Update(caps, d.active, collapsed)

	fillProfilePanel(d.profileBox, loc, ui.bus, identity, d.editProfile, ui.logout)
	fillLanguagePanel(d.languageBox, loc, ui.bus, d.selectLanguage)
	fillNotificationPanel(d.notificationBox, loc, ui.bus, ui.feed.Items(), ui.feed.Unread(), ui.now(), ui.feed.MarkAllRead)
	for _, id := range []panel.ID{panel.Profile, panel.Language, panel.Notifications} {
		d.panels.SetOpen(id, ui.panels.IsOpen(id))
	}
	d.panels.Restyle()

	d.content.Objects = []fyne.CanvasObject{sectionView(loc, d.active, identity, caps)}
	d.shell.Refresh()
}

// sectionView renders the placeholder page of a section
func sectionView(loc *Localization, section Section, identity model.Identity, caps model.CapabilitySet) fyne.CanvasObject {
	item, ok := navItemFor(section)
	if !ok || !caps.Has(item.capability) {
		return container.NewCenter(widget.NewLabel(loc.GetText(KeyNoPermissionSection)))
	}
	title := loc.GetText(item.textKey)
	body := container.NewVBox()

	if section == SectionDashboard {
		welcome := widget.NewLabelWithStyle(fmt.Sprintf(loc.GetText(KeyWelcome), identity.Name), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		body.Add(welcome)
		body.Add(widget.NewLabel(roleLabel(loc, identity.Role)))
		body.Add(widget.NewSeparator())
		body.Add(widget.NewLabel(loc.GetText(KeyPermissionsHeading)))
		for _, c := range caps.Granted() {
			body.Add(widget.NewLabel(MiddleDotSeparator + string(c)))
		}
	} else {
		intro := widget.NewLabel(fmt.Sprintf(loc.GetText(KeySectionIntro), title))
		intro.Wrapping = fyne.TextWrapWord
		body.Add(intro)
	}

	return container.NewPadded(container.NewVScroll(widget.NewCard(item.icon+"  "+title, "", body)))
}
