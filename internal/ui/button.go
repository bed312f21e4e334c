package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/panel"
)

// TapButton is a button that reports its taps to the pointer bus before
// acting on them. Fyne hands a pointer-down to the deepest interactive object
// only, so taps on buttons never reach the PointerSurface.
type TapButton struct {
	widget.Button

	bus *panel.PointerBus
}

// NewTapButton creates a button publishing to bus. A nil bus publishes nothing.
func NewTapButton(bus *panel.PointerBus, label string, tapped func()) *TapButton {
	b := &TapButton{bus: bus}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

// NewTapButtonWithIcon creates a button with a label and an icon
func NewTapButtonWithIcon(bus *panel.PointerBus, label string, icon fyne.Resource, tapped func()) *TapButton {
	b := NewTapButton(bus, label, tapped)
	b.Icon = icon
	return b
}

// Tapped publishes the tap position, then runs the button action.
func (b *TapButton) Tapped(ev *fyne.PointEvent) {
	if b.bus != nil && ev != nil {
		b.bus.Publish(ev.AbsolutePosition)
	}
	b.Button.Tapped(ev)
}
