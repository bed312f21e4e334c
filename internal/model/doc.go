package model

// Package model defines the value types shared by the dashboard stores: the
// authenticated identity and its role, derived capability sets, UI preference
// enums, and notification entries. Types carry no behavior beyond validation
// and projection so they can be passed freely between stores and the UI.
