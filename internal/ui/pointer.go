package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clinic-dashboard/internal/panel"
)

// PointerSurface wraps the dashboard content and reports pointer-downs, mouse
// or touch, that land on passive content to the panel bus. Fyne delivers a
// pointer-down to the deepest interactive object only, so buttons publish
// their own taps (see TapButton and Backdrop).
type PointerSurface struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	bus      *panel.PointerBus
	gestures *GestureHandler
}

var (
	_ desktop.Mouseable = (*PointerSurface)(nil)
	_ mobile.Touchable  = (*PointerSurface)(nil)
)

// NewPointerSurface creates a surface publishing to bus. onGesture may be nil.
func NewPointerSurface(content fyne.CanvasObject, bus *panel.PointerBus, onGesture func(GestureType)) *PointerSurface {
	s := &PointerSurface{content: content, bus: bus}
	if onGesture != nil {
		s.gestures = NewGestureHandler(onGesture)
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget.
func (s *PointerSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// MouseDown implements desktop.Mouseable.
func (s *PointerSurface) MouseDown(ev *desktop.MouseEvent) {
	s.bus.Publish(ev.AbsolutePosition)
}

// MouseUp implements desktop.Mouseable.
func (s *PointerSurface) MouseUp(*desktop.MouseEvent) {}

// TouchDown implements mobile.Touchable.
func (s *PointerSurface) TouchDown(ev *mobile.TouchEvent) {
	s.bus.Publish(ev.AbsolutePosition)
	if s.gestures != nil {
		s.gestures.TouchDown(ev)
	}
}

// TouchUp implements mobile.Touchable.
func (s *PointerSurface) TouchUp(ev *mobile.TouchEvent) {
	if s.gestures != nil {
		s.gestures.TouchUp(ev)
	}
}

// TouchCancel implements mobile.Touchable.
func (s *PointerSurface) TouchCancel(ev *mobile.TouchEvent) {
	if s.gestures != nil {
		s.gestures.TouchCancel(ev)
	}
}

// regionOf reports the on-canvas rectangle of obj, or false when obj is
// hidden or not yet attached to a canvas.
func regionOf(obj fyne.CanvasObject) (panel.Region, bool) {
	if obj == nil || !obj.Visible() {
		return panel.Region{}, false
	}
	app := fyne.CurrentApp()
	if app == nil {
		return panel.Region{}, false
	}
	pos := app.Driver().AbsolutePositionForObject(obj)
	return panel.Region{Position: pos, Size: obj.Size()}, true
}

// boundaryOf builds a panel boundary from the current on-canvas rectangles
// of the given objects.
func boundaryOf(objects ...fyne.CanvasObject) panel.BoundaryFunc {
	return func() []panel.Region {
		regions := make([]panel.Region, 0, len(objects))
		for _, obj := range objects {
			if r, ok := regionOf(obj); ok {
				regions = append(regions, r)
			}
		}
		return regions
	}
}
