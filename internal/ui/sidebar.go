package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
)

// Section is a top-level destination of the dashboard
type Section string

const (
	SectionDashboard Section = "dashboard"
	SectionPatients  Section = "patients"
	SectionSessions  Section = "sessions"
	SectionPayments  Section = "payments"
	SectionReports   Section = "reports"
	SectionStaff     Section = "staff"
	SectionSettings  Section = "settings"
)

type navItem struct {
	section    Section
	icon       string
	textKey    string
	capability model.Capability
}

var navItems = []navItem{
	{SectionDashboard, IconDashboard, KeyNavDashboard, model.CapViewDashboard},
	{SectionPatients, IconPatients, KeyNavPatients, model.CapViewPatients},
	{SectionSessions, IconSessions, KeyNavSessions, model.CapViewSessions},
	{SectionPayments, IconPayments, KeyNavPayments, model.CapViewPayments},
	{SectionReports, IconReports, KeyNavReports, model.CapViewReports},
	{SectionStaff, IconStaff, KeyNavStaff, model.CapManageUsers},
	{SectionSettings, IconSettings, KeyNavSettings, model.CapManageSettings},
}

// VisibleSections lists the sections the capability set grants, in menu order.
func VisibleSections(caps model.CapabilitySet) []Section {
	var out []Section
	for _, item := range navItems {
		if caps.Has(item.capability) {
			out = append(out, item.section)
		}
	}
	return out
}

func navItemFor(section Section) (navItem, bool) {
	for _, item := range navItems {
		if item.section == section {
			return item, true
		}
	}
	return navItem{}, false
}

// Sidebar renders the navigation menu. Collapsed mode shows icons only.
type Sidebar struct {
	localization *Localization
	bus          *panel.PointerBus
	onSelect     func(Section)

	background *canvas.Rectangle
	items      *fyne.Container
	root       *fyne.Container
}

// NewSidebar creates an empty sidebar; call Update to populate it.
func NewSidebar(localization *Localization, bus *panel.PointerBus, onSelect func(Section)) *Sidebar {
	s := &Sidebar{
		localization: localization,
		bus:          bus,
		onSelect:     onSelect,
		background:   canvas.NewRectangle(theme.Color(theme.ColorNameMenuBackground)),
		items:        container.NewVBox(),
	}
	s.root = container.NewStack(s.background, container.NewVScroll(container.NewPadded(s.items)))
	return s
}

// Object returns the canvas object to place in the shell
func (s *Sidebar) Object() fyne.CanvasObject {
	return s.root
}

// Update rebuilds the menu for caps, highlighting active.
func (s *Sidebar) Update(caps model.CapabilitySet, active Section, collapsed bool) {
	s.items.RemoveAll()

	title := widget.NewLabelWithStyle(s.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if collapsed {
		title.SetText(IconDashboard)
		title.Alignment = fyne.TextAlignCenter
	}
	s.items.Add(title)
	s.items.Add(widget.NewSeparator())

	for _, section := range VisibleSections(caps) {
		item, _ := navItemFor(section)
		text := item.icon + "  " + s.localization.GetText(item.textKey)
		if collapsed {
			text = item.icon
		}
		btn := NewTapButton(s.bus, text, func() {
			if s.onSelect != nil {
				s.onSelect(section)
			}
		})
		if !collapsed {
			btn.Alignment = widget.ButtonAlignLeading
		}
		btn.Importance = widget.LowImportance
		if section == active {
			btn.Importance = widget.HighImportance
		}
		s.items.Add(btn)
	}

	s.background.FillColor = theme.Color(theme.ColorNameMenuBackground)
	s.root.Refresh()
}
