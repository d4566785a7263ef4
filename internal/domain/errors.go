package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound             = errors.New("not found")
	ErrEmptySnapshot        = errors.New("snapshot has no kingdoms")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// SourceError represents a failure loading or decoding standings
type SourceError struct {
	Op        string // Operation: "fetch", "decode", "validate"
	Source    string // Optional: path or URL
	KingdomID string // Optional: offending kingdom
	Message   string // Human-readable context
	Err       error  // Underlying error
}

func (e *SourceError) Error() string {
	if e.KingdomID != "" {
		return fmt.Sprintf("source %s [%s]: %s", e.Op, e.KingdomID, e.Message)
	}
	if e.Source != "" && e.Err != nil {
		return fmt.Sprintf("source %s %s: %v", e.Op, e.Source, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("source %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("source %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("source %s failed", e.Op)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// StoreError represents an error from the rank history store
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("history %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
