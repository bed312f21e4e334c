package model

// ThemeMode is the rendered color scheme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// IsValid reports whether m is a known theme mode.
func (m ThemeMode) IsValid() bool {
	return m == ThemeLight || m == ThemeDark
}

// Toggled returns the opposite mode.
func (m ThemeMode) Toggled() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// PreferenceState is the persisted UI preference pair.
type PreferenceState struct {
	Theme            ThemeMode
	SidebarCollapsed bool
}

// DefaultPreferenceState is used when durable storage holds nothing usable.
func DefaultPreferenceState() PreferenceState {
	return PreferenceState{Theme: ThemeLight}
}

// ViewportClass classifies the window width.
type ViewportClass string

const (
	ViewportDesktop ViewportClass = "desktop"
	ViewportMobile  ViewportClass = "mobile"
)

// String returns the string representation of ViewportClass
func (v ViewportClass) String() string {
	return string(v)
}
