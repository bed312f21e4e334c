package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitySet_ZeroValueGrantsNothing(t *testing.T) {
	var s CapabilitySet
	assert.True(t, s.Empty())
	for _, c := range Capabilities() {
		assert.False(t, s.Has(c), c)
	}
	for c, granted := range s.Map() {
		assert.False(t, granted, c)
	}
	assert.Len(t, s.Map(), len(Capabilities()))
}

func TestCapabilitySet_HasAndGranted(t *testing.T) {
	s := NewCapabilitySet(CapViewPatients, CapManageUsers, Capability("launch-rockets"))

	assert.True(t, s.Has(CapViewPatients))
	assert.True(t, s.Has(CapManageUsers))
	assert.False(t, s.Has(CapModifyPayments))
	assert.False(t, s.Has(Capability("launch-rockets")))
	assert.Equal(t, []Capability{CapManageUsers, CapViewPatients}, s.Granted())
}

func TestCapabilitySet_MapIsACopy(t *testing.T) {
	s := NewCapabilitySet(CapViewDashboard)
	m := s.Map()
	m[CapManageUsers] = true

	assert.False(t, s.Has(CapManageUsers))
}

func TestThemeMode_Toggled(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggled())
	assert.Equal(t, ThemeLight, ThemeDark.Toggled())
	assert.False(t, ThemeMode("sepia").IsValid())
}
