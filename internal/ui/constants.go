package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconMenu          = "☰"
	IconLanguage      = "🌐"
	IconNotifications = "🔔"
	IconSun           = "☀"
	IconMoon          = "☾"
	IconClose         = "×"
	IconLogout        = "⎋"

	// Navigation icons
	IconDashboard = "▦"
	IconPatients  = "👥"
	IconSessions  = "📅"
	IconPayments  = "💳"
	IconReports   = "📊"
	IconStaff     = "🩺"
	IconSettings  = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	LoginCardWidth float32 = 380

	PanelWidth         float32 = 300
	PanelMargin        float32 = 8
	NotificationPanelH float32 = 360
	ProfilePanelH      float32 = 180
	LanguagePanelH     float32 = 150

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Backdrop dimming (alpha over black)
const (
	BackdropAlpha uint8 = 128
)
