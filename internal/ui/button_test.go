package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/clinic-dashboard/internal/panel"
)

func TestTapButton_PublishesBeforeAction(t *testing.T) {
	test.NewApp()
	bus := panel.NewPointerBus()

	var events []string
	var got fyne.Position
	release := bus.Subscribe(func(pos fyne.Position) {
		got = pos
		events = append(events, "publish")
	})
	defer release()

	btn := NewTapButton(bus, "ok", func() { events = append(events, "action") })
	w := test.NewWindow(btn)
	defer w.Close()

	btn.Tapped(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(5, 7)})

	assert.Equal(t, []string{"publish", "action"}, events)
	assert.Equal(t, fyne.NewPos(5, 7), got)
}

func TestTapButton_DisabledStillPublishes(t *testing.T) {
	test.NewApp()
	bus := panel.NewPointerBus()

	published, actions := 0, 0
	release := bus.Subscribe(func(fyne.Position) { published++ })
	defer release()

	btn := NewTapButton(bus, "ok", func() { actions++ })
	w := test.NewWindow(btn)
	defer w.Close()
	btn.Disable()

	btn.Tapped(&fyne.PointEvent{})

	assert.Equal(t, 1, published)
	assert.Equal(t, 0, actions)
}

func TestTapButton_NilBus(t *testing.T) {
	test.NewApp()
	called := false
	btn := NewTapButton(nil, "ok", func() { called = true })
	w := test.NewWindow(btn)
	defer w.Close()

	assert.NotPanics(t, func() { btn.Tapped(&fyne.PointEvent{}) })
	assert.True(t, called)
}
