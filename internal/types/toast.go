package types

import "time"

// DefaultToastTTL is how long a toast stays on screen
const DefaultToastTTL = 4 * time.Second

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// NewToast creates a toast shown from now for ttl
func NewToast(level ToastLevel, message string, now time.Time, ttl time.Duration) Toast {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return Toast{Level: level, Message: message, Expires: now.Add(ttl)}
}

// Expired reports whether the toast should be gone at now
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Icon returns the glyph shown before a toast message
func (l ToastLevel) Icon() string {
	switch l {
	case ToastSuccess:
		return "✓"
	case ToastWarning:
		return "!"
	case ToastError:
		return "✗"
	default:
		return "•"
	}
}
