package panel

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	panelA ID = "a"
	panelB ID = "b"
	panelC ID = "c"
)

// threePanels registers A, B and C side by side, each 100x100 with a gap of 50.
func threePanels(opts ...Option) *Coordinator {
	c := NewCoordinator(opts...)
	c.Register(panelA, Fixed(NewRegion(0, 0, 100, 100)))
	c.Register(panelB, Fixed(NewRegion(150, 0, 100, 100)))
	c.Register(panelC, Fixed(NewRegion(300, 0, 100, 100)))
	return c
}

func TestRegion_Contains(t *testing.T) {
	r := NewRegion(10, 20, 30, 40)
	tests := []struct {
		pos      fyne.Position
		expected bool
	}{
		{fyne.NewPos(10, 20), true},
		{fyne.NewPos(40, 60), true},
		{fyne.NewPos(25, 30), true},
		{fyne.NewPos(9, 30), false},
		{fyne.NewPos(25, 61), false},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, r.Contains(test.pos), "%v", test.pos)
	}
}

func TestPointerDown_InsideKeepsPanelOpen(t *testing.T) {
	c := threePanels()
	require.NoError(t, c.Open(panelA))

	c.HandlePointerDown(fyne.NewPos(50, 50))

	assert.True(t, c.IsOpen(panelA))
}

func TestPointerDown_OutsideAllClosesPanel(t *testing.T) {
	c := threePanels()
	require.NoError(t, c.Open(panelA))

	c.HandlePointerDown(fyne.NewPos(500, 500))

	assert.False(t, c.IsOpen(panelA))
}

func TestPointerDown_ClosesOnlyPanelsItMisses(t *testing.T) {
	c := threePanels()
	require.NoError(t, c.Open(panelA))
	require.NoError(t, c.Open(panelB))

	c.HandlePointerDown(fyne.NewPos(175, 50))

	assert.False(t, c.IsOpen(panelA))
	assert.True(t, c.IsOpen(panelB))
	assert.False(t, c.IsOpen(panelC))
}

func TestPointerDown_MultipleRegionsPerPanel(t *testing.T) {
	c := NewCoordinator()
	trigger := NewRegion(0, 0, 20, 20)
	content := NewRegion(0, 40, 200, 200)
	c.Register(Profile, Fixed(trigger, content))
	require.NoError(t, c.Open(Profile))

	c.HandlePointerDown(fyne.NewPos(10, 10))
	assert.True(t, c.IsOpen(Profile))
	c.HandlePointerDown(fyne.NewPos(100, 100))
	assert.True(t, c.IsOpen(Profile))
	c.HandlePointerDown(fyne.NewPos(100, 30))
	assert.False(t, c.IsOpen(Profile))
}

func TestIndependentPolicy(t *testing.T) {
	c := threePanels()
	require.NoError(t, c.Open(panelA))
	require.NoError(t, c.Open(panelC))

	assert.Equal(t, []ID{panelA, panelC}, c.OpenPanels())
}

func TestExclusivePolicy(t *testing.T) {
	c := threePanels(WithPolicy(Exclusive))
	require.NoError(t, c.Open(panelA))
	require.NoError(t, c.Open(panelC))

	assert.Equal(t, []ID{panelC}, c.OpenPanels())
}

func TestToggle(t *testing.T) {
	c := threePanels()

	open, err := c.Toggle(panelB)
	require.NoError(t, err)
	assert.True(t, open)

	open, err = c.Toggle(panelB)
	require.NoError(t, err)
	assert.False(t, open)

	_, err = c.Toggle("missing")
	assert.ErrorIs(t, err, ErrUnknownPanel)
	assert.ErrorIs(t, c.Open("missing"), ErrUnknownPanel)
	assert.False(t, c.IsOpen("missing"))
}

func TestMount_OneListenerPerMount(t *testing.T) {
	bus := NewPointerBus()
	c := threePanels()

	release, err := c.Mount(bus)
	require.NoError(t, err)
	assert.Equal(t, 1, bus.Len())
	assert.True(t, c.Mounted())

	_, err = c.Mount(bus)
	assert.ErrorIs(t, err, ErrAlreadyMounted)
	assert.Equal(t, 1, bus.Len())

	require.NoError(t, c.Open(panelA))
	bus.Publish(fyne.NewPos(999, 999))
	assert.False(t, c.IsOpen(panelA))

	require.NoError(t, c.Open(panelB))
	release()
	release()
	assert.Equal(t, 0, bus.Len())
	assert.False(t, c.Mounted())
	assert.False(t, c.IsOpen(panelB), "unmount closes every panel")
}

func TestMount_RemountCyclesDoNotLeak(t *testing.T) {
	bus := NewPointerBus()
	c := threePanels()

	for i := 0; i < 5; i++ {
		release, err := c.Mount(bus)
		require.NoError(t, err)
		assert.Equal(t, 1, bus.Len())
		release()
	}
	assert.Equal(t, 0, bus.Len())

	require.NoError(t, c.Open(panelA))
	bus.Publish(fyne.NewPos(999, 999))
	assert.True(t, c.IsOpen(panelA), "unmounted coordinator ignores the bus")
}

func TestSubscribe(t *testing.T) {
	c := threePanels(WithPolicy(Exclusive))
	type event struct {
		id   ID
		open bool
	}
	var events []event
	unsubscribe := c.Subscribe(func(id ID, open bool) {
		events = append(events, event{id, open})
	})

	require.NoError(t, c.Open(panelA))
	require.NoError(t, c.Open(panelA))
	require.NoError(t, c.Open(panelB))
	unsubscribe()
	require.NoError(t, c.Close(panelB))

	assert.Equal(t, []event{{panelA, true}, {panelA, false}, {panelB, true}}, events)
}

func TestBoundaryFollowsLayout(t *testing.T) {
	c := NewCoordinator()
	region := NewRegion(0, 0, 50, 50)
	c.Register(Notifications, func() []Region { return []Region{region} })
	require.NoError(t, c.Open(Notifications))

	region = NewRegion(200, 200, 50, 50)
	c.HandlePointerDown(fyne.NewPos(10, 10))

	assert.False(t, c.IsOpen(Notifications))
}
