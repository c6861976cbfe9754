// Package ui provides shared UI building blocks.
package ui

const (
	// MinContentWidth is the narrowest width the card views lay out for.
	MinContentWidth = 30

	// MaxContentWidth caps card and text widths on wide terminals.
	MaxContentWidth = 80
)
