// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the notification modal.
const (
	// ModalMinWidth keeps short notifications from collapsing around their title.
	ModalMinWidth = 36

	// ModalMaxWidth caps the message column so long server messages wrap.
	ModalMaxWidth = 64

	// ModalMargin is the horizontal space left around the modal on small terminals.
	ModalMargin = 4
)
