package ui

// Package ui contains the Fyne-based dashboard shell. It renders the login
// screen and, once a session exists, the header, sidebar navigation, content
// area and transient panels. All state lives in the session, config, panel and
// layout packages; this package only projects it and forwards user commands.
// All UI strings are localized via Localization.
