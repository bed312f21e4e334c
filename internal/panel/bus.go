package panel

import (
	"sync"

	"fyne.io/fyne/v2"
)

// PointerBus fans pointer-down positions out to the listeners installed on it.
// The shell publishes every pointer-down it captures; coordinators subscribe
// while they are mounted.
type PointerBus struct {
	mu        sync.RWMutex
	listeners map[int]func(fyne.Position)
	nextID    int
}

// NewPointerBus creates an empty bus
func NewPointerBus() *PointerBus {
	return &PointerBus{listeners: make(map[int]func(fyne.Position))}
}

// Subscribe installs fn and returns an idempotent release func.
func (b *PointerBus) Subscribe(fn func(fyne.Position)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.listeners, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers a pointer-down at pos to every listener
func (b *PointerBus) Publish(pos fyne.Position) {
	b.mu.RLock()
	listeners := make([]func(fyne.Position), 0, len(b.listeners))
	for _, fn := range b.listeners {
		listeners = append(listeners, fn)
	}
	b.mu.RUnlock()

	for _, fn := range listeners {
		fn(pos)
	}
}

// Len returns the number of installed listeners
func (b *PointerBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}
