package panel

// Package panel coordinates the transient overlays of the dashboard shell:
// the profile and language menus, the notification tray and the mobile
// sidebar. Panels open and close by id, and a single pointer listener per
// mounted panel set closes every open panel whose registered boundary does
// not contain the pointer-down position.
