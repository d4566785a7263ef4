package tooltip

import zone "github.com/lrstanley/bubblezone"

// Trigger exposes the live on-screen region of the element a tooltip is
// attached to. ok is false while the region has not been laid out yet.
type Trigger interface {
	Bounds() (r Rect, ok bool)
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// ZoneTrigger reads trigger bounds from a bubblezone manager. The host
// marks the trigger text with the same id and scans the frame in View.
type ZoneTrigger struct {
	zones *zone.Manager
	id    string
}

// NewZoneTrigger creates a trigger backed by zone id in zones
func NewZoneTrigger(zones *zone.Manager, id string) ZoneTrigger {
	return ZoneTrigger{zones: zones, id: id}
}

// Bounds returns the zone's last scanned position
func (z ZoneTrigger) Bounds() (Rect, bool) {
	if z.zones == nil {
		return Rect{}, false
	}
	info := z.zones.Get(z.id)
	if info == nil || info.IsZero() {
		return Rect{}, false
	}
	return Rect{
		Top:    info.StartY,
		Left:   info.StartX,
		Width:  info.EndX - info.StartX + 1,
		Height: info.EndY - info.StartY + 1,
	}, true
}

// StaticTrigger is a fixed region, used for triggers with known geometry
type StaticTrigger Rect

// Bounds returns the fixed region
func (s StaticTrigger) Bounds() (Rect, bool) {
	return Rect(s), true
}
