package layout

import (
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/model"
	"github.com/ytget/clinic-dashboard/internal/panel"
	"github.com/ytget/clinic-dashboard/internal/session"
)

// Shell sizing
const (
	DefaultMobileBreakpoint float32 = 768
	SidebarExpandedWidth    float32 = 256
	SidebarCollapsedWidth   float32 = 80
	MobileSidebarWidth      float32 = 256
	HeaderHeight            float32 = 64
)

// SidebarMode says how the sidebar is composed with the content.
type SidebarMode string

const (
	SidebarInline  SidebarMode = "inline"
	SidebarOverlay SidebarMode = "overlay"
)

// Geometry is the rendered shell layout derived from the viewport, the
// preferences and the session.
type Geometry struct {
	Viewport        model.ViewportClass
	SidebarMode     SidebarMode
	SidebarWidth    float32
	SidebarVisible  bool
	BackdropVisible bool
	ContentOffset   float32
	Protected       bool
}

// PreferenceReader is the part of the preference store the controller uses.
type PreferenceReader interface {
	SidebarCollapsed() bool
	ToggleSidebar() bool
	Subscribe(func(model.PreferenceState)) func()
}

// SessionReader is the part of the session store the controller uses.
type SessionReader interface {
	IsAuthenticated() bool
	Subscribe(func(session.Snapshot)) func()
}

// Option configures a Controller
type Option func(*Controller)

// WithBreakpoint sets the width below which the viewport is mobile
func WithBreakpoint(width float32) Option {
	return func(c *Controller) {
		if width > 0 {
			c.breakpoint = width
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller tracks the viewport class and composes the shell geometry. The
// mobile sidebar is the panel.Sidebar panel of the coordinator, so it follows
// the same outside-dismissal rule as the other transient panels.
type Controller struct {
	mu         sync.Mutex
	prefs      PreferenceReader
	session    SessionReader
	panels     *panel.Coordinator
	breakpoint float32
	viewport   model.ViewportClass
	width      float32
	logger     *zap.Logger

	listeners map[int]func(Geometry)
	nextID    int
	release   []func()
}

// NewController wires the controller to the stores. The viewport starts as
// desktop until the first Resize. If panel.Sidebar is not registered yet it is
// registered with an empty boundary; the shell re-registers it with the
// sidebar and its trigger once those are laid out.
func NewController(prefs PreferenceReader, sess SessionReader, panels *panel.Coordinator, opts ...Option) *Controller {
	c := &Controller{
		prefs:      prefs,
		session:    sess,
		panels:     panels,
		breakpoint: DefaultMobileBreakpoint,
		viewport:   model.ViewportDesktop,
		logger:     zap.NewNop(),
		listeners:  make(map[int]func(Geometry)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !panels.Registered(panel.Sidebar) {
		panels.Register(panel.Sidebar, nil)
	}

	c.release = append(c.release,
		prefs.Subscribe(func(model.PreferenceState) { c.changed() }),
		sess.Subscribe(c.onSession),
		panels.Subscribe(func(id panel.ID, _ bool) {
			if id == panel.Sidebar {
				c.changed()
			}
		}),
	)
	return c
}

// Close detaches the controller from the stores
func (c *Controller) Close() {
	c.mu.Lock()
	release := c.release
	c.release = nil
	c.mu.Unlock()
	for _, fn := range release {
		fn()
	}
}

// Classify maps a width to a viewport class for the given breakpoint
func Classify(width, breakpoint float32) model.ViewportClass {
	if width < breakpoint {
		return model.ViewportMobile
	}
	return model.ViewportDesktop
}

// Resize re-evaluates the viewport class for a new width. Crossing the
// breakpoint in either direction closes the mobile sidebar.
func (c *Controller) Resize(width float32) model.ViewportClass {
	c.mu.Lock()
	c.width = width
	prev := c.viewport
	c.viewport = Classify(width, c.breakpoint)
	next := c.viewport
	c.mu.Unlock()

	if prev == next {
		return next
	}
	c.logger.Debug("viewport changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Float32("width", width))
	_ = c.panels.Close(panel.Sidebar)
	c.changed()
	return next
}

// Viewport returns the current viewport class
func (c *Controller) Viewport() model.ViewportClass {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

// Width returns the last width passed to Resize
func (c *Controller) Width() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Geometry computes the current shell layout
func (c *Controller) Geometry() Geometry {
	viewport := c.Viewport()
	g := Geometry{
		Viewport:  viewport,
		Protected: c.session.IsAuthenticated(),
	}
	if !g.Protected {
		return g
	}

	if viewport == model.ViewportMobile {
		open := c.panels.IsOpen(panel.Sidebar)
		g.SidebarMode = SidebarOverlay
		g.SidebarWidth = MobileSidebarWidth
		g.SidebarVisible = open
		g.BackdropVisible = open
		return g
	}

	g.SidebarMode = SidebarInline
	g.SidebarVisible = true
	g.SidebarWidth = SidebarExpandedWidth
	if c.prefs.SidebarCollapsed() {
		g.SidebarWidth = SidebarCollapsedWidth
	}
	g.ContentOffset = g.SidebarWidth
	return g
}

// ToggleSidebar opens or closes the overlay on mobile and collapses or
// expands the inline sidebar on desktop.
func (c *Controller) ToggleSidebar() {
	if c.Viewport() == model.ViewportMobile {
		_, _ = c.panels.Toggle(panel.Sidebar)
		return
	}
	c.prefs.ToggleSidebar()
}

// MobileSidebarOpen reports whether the overlay sidebar is open
func (c *Controller) MobileSidebarOpen() bool {
	return c.Viewport() == model.ViewportMobile && c.panels.IsOpen(panel.Sidebar)
}

// BackdropTapped closes the overlay sidebar
func (c *Controller) BackdropTapped() {
	_ = c.panels.Close(panel.Sidebar)
}

// Navigated closes the overlay sidebar and every transient panel after the
// user picks a destination.
func (c *Controller) Navigated() {
	c.panels.CloseAll()
}

// Subscribe registers fn for geometry changes. The returned func unregisters it.
func (c *Controller) Subscribe(fn func(Geometry)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Controller) onSession(snap session.Snapshot) {
	if !snap.Authenticated {
		c.panels.CloseAll()
	}
	c.changed()
}

func (c *Controller) changed() {
	g := c.Geometry()
	c.mu.Lock()
	listeners := make([]func(Geometry), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()
	for _, fn := range listeners {
		fn(g)
	}
}
