package config

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/clinic-dashboard/internal/model"
)

// Durable storage keys for UI preferences
const (
	KeyTheme            = "theme"
	KeySidebarCollapsed = "sidebarCollapsed"
)

// ErrInvalidTheme is returned by SetTheme for modes outside the enumeration.
var ErrInvalidTheme = errors.New("invalid theme mode")

// Storage is the string-keyed durable store preferences live in.
// fyne.Preferences satisfies it.
type Storage interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// ThemeApplier renders a theme mode onto the application root.
type ThemeApplier func(model.ThemeMode)

// PreferenceOption configures a Preferences store.
type PreferenceOption func(*Preferences)

// WithThemeApplier sets the callback invoked after hydration and every transition.
func WithThemeApplier(apply ThemeApplier) PreferenceOption {
	return func(p *Preferences) {
		p.apply = apply
	}
}

// WithPreferenceLogger sets the logger.
func WithPreferenceLogger(logger *zap.Logger) PreferenceOption {
	return func(p *Preferences) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Preferences owns the theme mode and sidebar collapse flag. Every transition
// updates memory, writes both keys to storage and applies the theme before it
// returns, so storage never lags behind the in-memory state.
type Preferences struct {
	mu        sync.Mutex
	storage   Storage
	state     model.PreferenceState
	apply     ThemeApplier
	logger    *zap.Logger
	listeners map[int]func(model.PreferenceState)
	nextID    int
}

// NewPreferences hydrates the store from storage, falling back to defaults for
// missing or unreadable values.
func NewPreferences(storage Storage, opts ...PreferenceOption) *Preferences {
	p := &Preferences{
		storage:   storage,
		logger:    zap.NewNop(),
		listeners: make(map[int]func(model.PreferenceState)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	p.state = p.hydrate()
	p.persistLocked()
	state := p.state
	p.mu.Unlock()

	p.applyTheme(state.Theme)
	return p
}

// hydrate reads the stored state; invalid values fall back field by field.
func (p *Preferences) hydrate() model.PreferenceState {
	state := model.DefaultPreferenceState()

	if raw := p.storage.String(KeyTheme); raw != "" {
		mode := model.ThemeMode(raw)
		if mode.IsValid() {
			state.Theme = mode
		} else {
			p.logger.Warn("ignoring stored theme", zap.String("value", raw))
		}
	}

	if raw := p.storage.String(KeySidebarCollapsed); raw != "" {
		collapsed, err := strconv.ParseBool(raw)
		if err == nil {
			state.SidebarCollapsed = collapsed
		} else {
			p.logger.Warn("ignoring stored sidebar flag", zap.String("value", raw))
		}
	}

	p.logger.Debug("preferences hydrated",
		zap.String("theme", string(state.Theme)),
		zap.Bool("sidebar_collapsed", state.SidebarCollapsed))
	return state
}

// Theme returns the active theme mode
func (p *Preferences) Theme() model.ThemeMode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Theme
}

// IsDark reports whether the dark theme is active
func (p *Preferences) IsDark() bool {
	return p.Theme() == model.ThemeDark
}

// SidebarCollapsed reports whether the desktop sidebar is collapsed
func (p *Preferences) SidebarCollapsed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.SidebarCollapsed
}

// State returns a snapshot of both preferences
func (p *Preferences) State() model.PreferenceState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// ToggleTheme flips between light and dark and returns the new mode
func (p *Preferences) ToggleTheme() model.ThemeMode {
	state := p.transition(func(s model.PreferenceState) model.PreferenceState {
		s.Theme = s.Theme.Toggled()
		return s
	})
	return state.Theme
}

// SetTheme selects a theme mode
func (p *Preferences) SetTheme(mode model.ThemeMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, mode)
	}
	p.transition(func(s model.PreferenceState) model.PreferenceState {
		s.Theme = mode
		return s
	})
	return nil
}

// ToggleSidebar flips the collapse flag and returns the new value
func (p *Preferences) ToggleSidebar() bool {
	state := p.transition(func(s model.PreferenceState) model.PreferenceState {
		s.SidebarCollapsed = !s.SidebarCollapsed
		return s
	})
	return state.SidebarCollapsed
}

// SetSidebarCollapsed sets the collapse flag
func (p *Preferences) SetSidebarCollapsed(collapsed bool) {
	p.transition(func(s model.PreferenceState) model.PreferenceState {
		s.SidebarCollapsed = collapsed
		return s
	})
}

// Subscribe registers fn for state changes. The returned func unregisters it.
func (p *Preferences) Subscribe(fn func(model.PreferenceState)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// transition runs reduce over the current state, persists the result and
// applies the theme. Listeners run after the lock is released.
func (p *Preferences) transition(reduce func(model.PreferenceState) model.PreferenceState) model.PreferenceState {
	p.mu.Lock()
	prev := p.state
	p.state = reduce(prev)
	p.persistLocked()
	state := p.state
	listeners := make([]func(model.PreferenceState), 0, len(p.listeners))
	for _, fn := range p.listeners {
		listeners = append(listeners, fn)
	}
	p.mu.Unlock()

	p.logger.Debug("preferences changed",
		zap.String("theme", string(state.Theme)),
		zap.Bool("sidebar_collapsed", state.SidebarCollapsed))

	p.applyTheme(state.Theme)
	if state != prev {
		for _, fn := range listeners {
			fn(state)
		}
	}
	return state
}

func (p *Preferences) persistLocked() {
	p.storage.SetString(KeyTheme, string(p.state.Theme))
	p.storage.SetString(KeySidebarCollapsed, strconv.FormatBool(p.state.SidebarCollapsed))
}

func (p *Preferences) applyTheme(mode model.ThemeMode) {
	if p.apply != nil {
		p.apply(mode)
	}
}
