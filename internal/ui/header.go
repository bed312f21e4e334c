package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
)

// HeaderActions are the commands the header buttons issue
type HeaderActions struct {
	ToggleSidebar       func()
	ToggleTheme         func()
	ToggleLanguage      func()
	ToggleNotifications func()
	ToggleProfile       func()
}

// Header is the top bar of the dashboard. Its trigger buttons are part of the
// panel boundaries so a pointer-down on them never counts as outside.
type Header struct {
	localization *Localization

	MenuButton          *TapButton
	ThemeButton         *TapButton
	LanguageButton      *TapButton
	NotificationsButton *TapButton
	ProfileButton       *TapButton

	title      *widget.Label
	background *canvas.Rectangle
	root       *fyne.Container
}

// NewHeader builds the header bar
func NewHeader(localization *Localization, bus *panel.PointerBus, actions HeaderActions) *Header {
	h := &Header{localization: localization}

	h.MenuButton = NewTapButton(bus, IconMenu, actions.ToggleSidebar)
	h.MenuButton.Importance = widget.LowImportance
	h.ThemeButton = NewTapButton(bus, IconMoon, actions.ToggleTheme)
	h.ThemeButton.Importance = widget.LowImportance
	h.LanguageButton = NewTapButton(bus, IconLanguage, actions.ToggleLanguage)
	h.LanguageButton.Importance = widget.LowImportance
	h.NotificationsButton = NewTapButton(bus, IconNotifications, actions.ToggleNotifications)
	h.NotificationsButton.Importance = widget.LowImportance
	h.ProfileButton = NewTapButton(bus, "", actions.ToggleProfile)
	h.ProfileButton.Importance = widget.MediumImportance

	h.title = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	bar := container.NewBorder(nil, nil,
		container.NewHBox(h.MenuButton, h.title),
		container.NewHBox(h.ThemeButton, h.LanguageButton, h.NotificationsButton, h.ProfileButton),
	)
	h.background = canvas.NewRectangle(theme.Color(theme.ColorNameHeaderBackground))
	h.root = container.NewStack(h.background, container.NewPadded(bar))
	return h
}

// Object returns the canvas object to place in the shell
func (h *Header) Object() fyne.CanvasObject {
	return h.root
}

// Update refreshes the labels from the current state
func (h *Header) Update(title string, identity model.Identity, mode model.ThemeMode, unread int) {
	h.title.SetText(title)
	h.background.FillColor = theme.Color(theme.ColorNameHeaderBackground)
	h.background.Refresh()
	h.ProfileButton.SetText(identity.Initials())

	if mode == model.ThemeDark {
		h.ThemeButton.SetText(IconSun)
	} else {
		h.ThemeButton.SetText(IconMoon)
	}

	if unread > 0 {
		h.NotificationsButton.SetText(fmt.Sprintf("%s %d", IconNotifications, unread))
	} else {
		h.NotificationsButton.SetText(IconNotifications)
	}
}
