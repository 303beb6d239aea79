// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionReshow Action = "reshow" // s - show the last notification again

	// Modal actions
	ActionDismiss Action = "dismiss"
)
