// Package types contains shared types used across the application.
package types

import "fmt"

// Mode represents what currently receives keyboard input
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModePanel
	ModeLoading
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModePanel:
		return "PANEL"
	case ModeLoading:
		return "LOADING"
	default:
		return "UNKNOWN"
	}
}

// View selects how standings are laid out
type View int

const (
	ViewBoard View = iota
	ViewTable
)

// String returns the config name of the view
func (v View) String() string {
	if v == ViewTable {
		return "table"
	}
	return "board"
}

// Toggle returns the other view
func (v View) Toggle() View {
	if v == ViewTable {
		return ViewBoard
	}
	return ViewTable
}

// ParseView parses "board" or "table" (empty means board)
func ParseView(s string) (View, error) {
	switch s {
	case "", "board":
		return ViewBoard, nil
	case "table":
		return ViewTable, nil
	default:
		return ViewBoard, fmt.Errorf("unknown view %q", s)
	}
}
