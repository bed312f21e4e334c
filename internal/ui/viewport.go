package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/clinic-dashboard/internal/layout"
)

// viewportLayout reports every size change to onResize and stretches its
// children to fill the canvas. It is the window-resize listener of the shell.
type viewportLayout struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func newViewportLayout(onResize func(fyne.Size)) *viewportLayout {
	return &viewportLayout{onResize: onResize}
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if size != l.last {
		l.last = size
		if l.onResize != nil {
			l.onResize(size)
		}
	}
	for _, obj := range objects {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
}

func (l *viewportLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var minSize fyne.Size
	for _, obj := range objects {
		minSize = minSize.Max(obj.MinSize())
	}
	return minSize
}

// shellLayout places the header, content, backdrop and sidebar from the
// controller's Geometry. The panel layer always covers the whole shell.
type shellLayout struct {
	geometry func() layout.Geometry

	header, content, backdrop, sidebar, panels fyne.CanvasObject
}

func (l *shellLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	g := l.geometry()

	l.header.Move(fyne.NewPos(g.ContentOffset, 0))
	l.header.Resize(fyne.NewSize(size.Width-g.ContentOffset, layout.HeaderHeight))

	l.content.Move(fyne.NewPos(g.ContentOffset, layout.HeaderHeight))
	l.content.Resize(fyne.NewSize(size.Width-g.ContentOffset, size.Height-layout.HeaderHeight))

	if g.BackdropVisible {
		l.backdrop.Move(fyne.NewPos(0, 0))
		l.backdrop.Resize(size)
		l.backdrop.Show()
	} else {
		l.backdrop.Hide()
	}

	if g.SidebarVisible {
		l.sidebar.Move(fyne.NewPos(0, 0))
		l.sidebar.Resize(fyne.NewSize(g.SidebarWidth, size.Height))
		l.sidebar.Show()
	} else {
		l.sidebar.Hide()
	}

	l.panels.Move(fyne.NewPos(0, 0))
	l.panels.Resize(size)
}

func (l *shellLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	header := l.header.MinSize()
	return fyne.NewSize(header.Width, layout.HeaderHeight+l.content.MinSize().Height)
}
