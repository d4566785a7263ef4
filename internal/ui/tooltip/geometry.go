// Package tooltip implements contextual popups for dashboard triggers:
// placement relative to a trigger region, a single-active-instance
// coordinator, the per-trigger lifecycle, and a detached surface that
// draws the popup over the finished frame.
package tooltip

import "fmt"

// Position is the placement preference requested by a host
type Position int

const (
	PositionAuto Position = iota
	PositionTop
	PositionBottom
)

// String returns the config representation of the position
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	default:
		return "auto"
	}
}

// ParsePosition parses "top", "bottom" or "auto" (empty means auto)
func ParsePosition(s string) (Position, error) {
	switch s {
	case "", "auto":
		return PositionAuto, nil
	case "top":
		return PositionTop, nil
	case "bottom":
		return PositionBottom, nil
	default:
		return PositionAuto, fmt.Errorf("unknown tooltip position %q", s)
	}
}

// Side is the resolved vertical side of the trigger the overlay sits on
type Side int

const (
	SideTop Side = iota
	SideBottom
)

func (s Side) String() string {
	if s == SideBottom {
		return "bottom"
	}
	return "top"
}

// Rect is a region in viewport coordinates
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
}

// Size is a width/height pair, used for overlays and viewports
type Size struct {
	Width  int
	Height int
}

// Placement is a resolved overlay anchor. Left is the horizontal center of
// the overlay; Top is its top edge.
type Placement struct {
	Top  int
	Left int
	Side Side
}

// Spacing controls the distances used by Resolve
type Spacing struct {
	// Margin is the gap between trigger and overlay
	Margin int
	// EdgePad is the minimum distance kept from every viewport edge
	EdgePad int
	// FlipSlack is the extra room required above the trigger before auto
	// placement keeps the overlay on top
	FlipSlack int
}

// DefaultSpacing returns the pixel-scale spacing (8/12/10)
func DefaultSpacing() Spacing {
	return Spacing{Margin: 8, EdgePad: 12, FlipSlack: 10}
}

// Resolve computes where an overlay of the given size goes relative to the
// trigger. It is pure and never panics: zero-size triggers and overlays
// larger than the viewport produce clamped, degenerate placements.
func Resolve(trigger Rect, overlay Size, viewport Size, pref Position, sp Spacing) Placement {
	side := resolveSide(trigger, overlay, viewport, pref, sp)

	var top int
	if side == SideTop {
		top = trigger.Top - sp.Margin - overlay.Height
	} else {
		top = trigger.Top + trigger.Height + sp.Margin
	}

	// Clamp the drawn left edge so odd widths cannot spill a cell past
	// the right pad; the right clamp wins
	half := overlay.Width / 2
	edge := trigger.Left + trigger.Width/2 - half
	edge = max(edge, sp.EdgePad)
	edge = min(edge, viewport.Width-sp.EdgePad-overlay.Width)
	left := edge + half

	// EdgePad wins when the overlay is taller than the viewport
	top = min(top, viewport.Height-overlay.Height-sp.EdgePad)
	top = max(top, sp.EdgePad)

	return Placement{Top: top, Left: left, Side: side}
}

func resolveSide(trigger Rect, overlay Size, viewport Size, pref Position, sp Spacing) Side {
	switch pref {
	case PositionTop:
		return SideTop
	case PositionBottom:
		return SideBottom
	}

	if trigger.Top < overlay.Height+sp.Margin+sp.FlipSlack {
		return SideBottom
	}
	// Trigger is scrolled below the viewport: a top overlay would hang off the bottom
	if trigger.Top-sp.Margin > viewport.Height {
		return SideBottom
	}
	return SideTop
}
