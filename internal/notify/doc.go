package notify

// Package notify supplies the notification tray content. The feed is a plain
// read-only sequence; whether the tray is open is owned by the panel package.
