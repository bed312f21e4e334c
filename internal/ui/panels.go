package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/layout"
	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
)

// panelView is one floating panel anchored under its header trigger
type panelView struct {
	id         panel.ID
	trigger    fyne.CanvasObject
	height     float32
	background *canvas.Rectangle
	content    *fyne.Container
	object     *fyne.Container
}

// PanelLayer hosts the header panels above the content. It covers the whole
// shell but only the open panels are visible.
type PanelLayer struct {
	views []*panelView
	root  *fyne.Container
}

// NewPanelLayer creates an empty layer
func NewPanelLayer() *PanelLayer {
	l := &PanelLayer{}
	l.root = container.New(&panelLayout{layer: l})
	return l
}

// Object returns the canvas object to place in the shell
func (l *PanelLayer) Object() fyne.CanvasObject {
	return l.root
}

// Add creates a hidden panel anchored to trigger and returns its content box
func (l *PanelLayer) Add(id panel.ID, trigger fyne.CanvasObject, height float32) *fyne.Container {
	v := &panelView{
		id:         id,
		trigger:    trigger,
		height:     height,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground)),
		content:    container.NewVBox(),
	}
	v.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	v.background.StrokeWidth = 1
	v.background.CornerRadius = theme.Size(theme.SizeNameSelectionRadius)
	v.object = container.NewStack(v.background, container.NewPadded(container.NewVScroll(v.content)))
	v.object.Hide()

	l.views = append(l.views, v)
	l.root.Add(v.object)
	return v.content
}

// Boundary returns the boundary of id: its trigger plus the panel itself
func (l *PanelLayer) Boundary(id panel.ID) panel.BoundaryFunc {
	v := l.view(id)
	if v == nil {
		return panel.Fixed()
	}
	return boundaryOf(v.trigger, v.object)
}

// SetOpen shows or hides a panel
func (l *PanelLayer) SetOpen(id panel.ID, open bool) {
	v := l.view(id)
	if v == nil {
		return
	}
	if open {
		v.object.Show()
	} else {
		v.object.Hide()
	}
	l.root.Refresh()
}

// IsVisible reports whether the panel is currently shown
func (l *PanelLayer) IsVisible(id panel.ID) bool {
	v := l.view(id)
	return v != nil && v.object.Visible()
}

// Restyle re-reads theme colors after a theme switch
func (l *PanelLayer) Restyle() {
	for _, v := range l.views {
		v.background.FillColor = theme.Color(theme.ColorNameOverlayBackground)
		v.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
		v.background.Refresh()
	}
}

func (l *PanelLayer) view(id panel.ID) *panelView {
	for _, v := range l.views {
		if v.id == id {
			return v
		}
	}
	return nil
}

// panelLayout right-aligns each panel with its trigger just below the header
type panelLayout struct {
	layer *PanelLayer
}

func (p *panelLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	var origin fyne.Position
	if app := fyne.CurrentApp(); app != nil {
		origin = app.Driver().AbsolutePositionForObject(p.layer.root)
	}

	width := fyne.Min(PanelWidth, size.Width-2*PanelMargin)
	for _, v := range p.layer.views {
		x := size.Width - width - PanelMargin
		if app := fyne.CurrentApp(); app != nil && v.trigger.Visible() {
			trigger := app.Driver().AbsolutePositionForObject(v.trigger)
			x = trigger.X - origin.X + v.trigger.Size().Width - width
		}
		x = fyne.Max(PanelMargin, fyne.Min(x, size.Width-width-PanelMargin))

		height := fyne.Min(v.height, size.Height-layout.HeaderHeight-PanelMargin)
		v.object.Move(fyne.NewPos(x, layout.HeaderHeight))
		v.object.Resize(fyne.NewSize(width, height))
	}
}

func (p *panelLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// fillProfilePanel renders the identity summary with profile and logout actions
func fillProfilePanel(box *fyne.Container, loc *Localization, bus *panel.PointerBus, identity model.Identity, onEdit, onLogout func()) {
	box.RemoveAll()

	name := widget.NewLabelWithStyle(identity.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	email := widget.NewLabel(identity.Email)
	email.Truncation = fyne.TextTruncateEllipsis
	role := widget.NewLabel(roleLabel(loc, identity.Role))
	role.Importance = widget.LowImportance

	edit := NewTapButtonWithIcon(bus, loc.GetText(KeyEditProfile), theme.AccountIcon(), onEdit)
	logout := NewTapButton(bus, IconLogout+"  "+loc.GetText(KeyLogout), onLogout)
	logout.Importance = widget.DangerImportance

	box.Add(name)
	box.Add(email)
	box.Add(role)
	box.Add(widget.NewSeparator())
	box.Add(edit)
	box.Add(logout)
}

// fillLanguagePanel lists the available languages and marks the current one
func fillLanguagePanel(box *fyne.Container, loc *Localization, bus *panel.PointerBus, onSelect func(string)) {
	box.RemoveAll()

	box.Add(widget.NewLabelWithStyle(loc.GetText(KeyLanguage), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	names := loc.GetAvailableLanguages()
	for _, code := range loc.LanguageCodes() {
		btn := NewTapButton(bus, names[code], func() { onSelect(code) })
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		if code == loc.GetCurrentLanguage() {
			btn.Importance = widget.HighImportance
		}
		box.Add(btn)
	}
}

// fillNotificationPanel renders the tray, newest first
func fillNotificationPanel(box *fyne.Container, loc *Localization, bus *panel.PointerBus, items []model.Notification, unread int, now time.Time, onMarkAllRead func()) {
	box.RemoveAll()

	title := widget.NewLabelWithStyle(loc.GetText(KeyNotifications), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	markRead := NewTapButton(bus, loc.GetText(KeyMarkAllRead), onMarkAllRead)
	markRead.Importance = widget.LowImportance
	if unread == 0 {
		markRead.Disable()
	}
	box.Add(container.NewBorder(nil, nil, title, markRead))
	box.Add(widget.NewSeparator())

	if len(items) == 0 {
		empty := widget.NewLabel(loc.GetText(KeyNoNotifications))
		empty.Alignment = fyne.TextAlignCenter
		box.Add(empty)
		return
	}

	for _, n := range items {
		box.Add(notificationRow(n, now))
	}
}

func notificationRow(n model.Notification, now time.Time) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(kindIcon(n.Kind)+" "+n.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: !n.Read})
	title.Truncation = fyne.TextTruncateEllipsis
	age := widget.NewLabel(n.Age(now))
	age.Importance = widget.LowImportance

	body := widget.NewLabel(n.Body)
	body.Wrapping = fyne.TextWrapWord

	return container.NewVBox(container.NewBorder(nil, nil, nil, age, title), body)
}

func roleLabel(loc *Localization, role model.Role) string {
	switch role {
	case model.RoleAdministrator:
		return loc.GetText(KeyRoleAdministrator)
	case model.RoleClinician:
		return loc.GetText(KeyRoleClinician)
	case model.RoleFrontDesk:
		return loc.GetText(KeyRoleFrontDesk)
	default:
		return role.String()
	}
}

func kindIcon(kind model.NotificationKind) string {
	switch kind {
	case model.NotificationAppointment:
		return IconSessions
	case model.NotificationPayment:
		return IconPayments
	default:
		return IconSettings
	}
}
