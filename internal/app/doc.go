// Package app is the composition root: it builds the stores, controllers and
// UI of a dashboard window from the process configuration.
package app
