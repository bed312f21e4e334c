package panel

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"
)

// ID identifies a transient panel
type ID string

const (
	Profile       ID = "profile"
	Language      ID = "language"
	Notifications ID = "notifications"
	Sidebar       ID = "sidebar"
)

var (
	// ErrAlreadyMounted is returned by Mount while a previous mount is live.
	ErrAlreadyMounted = errors.New("panel set already mounted")

	// ErrUnknownPanel is returned for ids that were never registered.
	ErrUnknownPanel = errors.New("unknown panel")
)

// Policy decides what opening a panel does to its siblings.
type Policy int

const (
	// Independent panels open and close without affecting each other.
	Independent Policy = iota

	// Exclusive panels close every sibling when one opens.
	Exclusive
)

// Option configures a Coordinator
type Option func(*Coordinator)

// WithPolicy sets the sibling policy
func WithPolicy(p Policy) Option {
	return func(c *Coordinator) {
		c.policy = p
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Coordinator owns the open/closed flag of every registered panel.
type Coordinator struct {
	mu        sync.Mutex
	policy    Policy
	logger    *zap.Logger
	order     []ID
	bounds    map[ID]BoundaryFunc
	open      map[ID]bool
	release   func()
	listeners map[int]func(ID, bool)
	nextID    int
}

// NewCoordinator creates a coordinator with no panels
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		logger:    zap.NewNop(),
		bounds:    make(map[ID]BoundaryFunc),
		open:      make(map[ID]bool),
		listeners: make(map[int]func(ID, bool)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a panel, closed, with the boundary used for outside dismissal.
// Registering an existing id replaces its boundary and keeps its state.
func (c *Coordinator) Register(id ID, boundary BoundaryFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.bounds[id]; !ok {
		c.order = append(c.order, id)
	}
	if boundary == nil {
		boundary = Fixed()
	}
	c.bounds[id] = boundary
}

// Registered reports whether id has been registered
func (c *Coordinator) Registered(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.bounds[id]
	return ok
}

// Mount installs the outside-dismissal listener on bus. Exactly one listener
// is live per mount; the release func removes it and closes every panel, and
// is safe to call more than once.
func (c *Coordinator) Mount(bus *PointerBus) (func(), error) {
	c.mu.Lock()
	if c.release != nil {
		c.mu.Unlock()
		return nil, ErrAlreadyMounted
	}
	unsubscribe := bus.Subscribe(c.HandlePointerDown)
	var once sync.Once
	release := func() {
		once.Do(func() {
			unsubscribe()
			c.mu.Lock()
			c.release = nil
			c.mu.Unlock()
			c.CloseAll()
			c.logger.Debug("panel set unmounted")
		})
	}
	c.release = release
	c.mu.Unlock()

	c.logger.Debug("panel set mounted")
	return release, nil
}

// Mounted reports whether a listener is currently installed
func (c *Coordinator) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.release != nil
}

// Open opens a panel. Under the Exclusive policy every sibling closes first.
func (c *Coordinator) Open(id ID) error {
	return c.set(id, true)
}

// Close closes a panel
func (c *Coordinator) Close(id ID) error {
	return c.set(id, false)
}

// Toggle flips a panel and returns its new state
func (c *Coordinator) Toggle(id ID) (bool, error) {
	c.mu.Lock()
	_, ok := c.bounds[id]
	next := !c.open[id]
	c.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}
	return next, c.set(id, next)
}

// IsOpen reports whether a panel is open. Unknown panels are closed.
func (c *Coordinator) IsOpen(id ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open[id]
}

// OpenPanels lists the open panels in registration order
func (c *Coordinator) OpenPanels() []ID {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []ID
	for _, id := range c.order {
		if c.open[id] {
			out = append(out, id)
		}
	}
	return out
}

// CloseAll closes every open panel
func (c *Coordinator) CloseAll() {
	for _, id := range c.OpenPanels() {
		_ = c.set(id, false)
	}
}

// HandlePointerDown closes every open panel whose boundary does not contain pos.
func (c *Coordinator) HandlePointerDown(pos fyne.Position) {
	c.mu.Lock()
	var candidates []ID
	boundaries := make(map[ID]BoundaryFunc)
	for _, id := range c.order {
		if c.open[id] {
			candidates = append(candidates, id)
			boundaries[id] = c.bounds[id]
		}
	}
	c.mu.Unlock()

	// Boundaries run unlocked: they may query widget geometry.
	for _, id := range candidates {
		if !inside(boundaries[id](), pos) {
			_ = c.set(id, false)
		}
	}
}

func inside(regions []Region, pos fyne.Position) bool {
	for _, r := range regions {
		if r.Contains(pos) {
			return true
		}
	}
	return false
}

// Subscribe registers fn for open/close changes. The returned func unregisters it.
func (c *Coordinator) Subscribe(fn func(ID, bool)) func() {
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

type change struct {
	id   ID
	open bool
}

func (c *Coordinator) set(id ID, open bool) error {
	c.mu.Lock()
	if _, ok := c.bounds[id]; !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownPanel, id)
	}

	var changes []change
	if open && c.policy == Exclusive {
		for _, other := range c.order {
			if other != id && c.open[other] {
				c.open[other] = false
				changes = append(changes, change{id: other})
			}
		}
	}
	if c.open[id] != open {
		c.open[id] = open
		changes = append(changes, change{id: id, open: open})
	}
	listeners := make([]func(ID, bool), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, ch := range changes {
		c.logger.Debug("panel changed", zap.String("panel", string(ch.id)), zap.Bool("open", ch.open))
		for _, fn := range listeners {
			fn(ch.id, ch.open)
		}
	}
	return nil
}
