package session

// Package session owns the authenticated identity: it restores it from durable
// storage at start, runs the simulated login round-trip against the identity
// directory, persists and clears it, and answers capability queries derived
// from the identity's role.
