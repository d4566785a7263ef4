package tooltip

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Layer is something drawn on the surface: its rendered view and the
// viewport cell of its top-left corner
type Layer interface {
	Frame() (view string, x, y int)
}

// Surface is the render target that sits above the whole frame. Layers
// mounted here are composited after the host has rendered (and zone
// scanned) its view, so no container can clip them.
type Surface struct {
	layers []Layer
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{}
}

// Mount adds a layer; mounting twice is a no-op
func (s *Surface) Mount(l Layer) {
	for _, existing := range s.layers {
		if existing == l {
			return
		}
	}
	s.layers = append(s.layers, l)
}

// Unmount removes a layer immediately
func (s *Surface) Unmount(l Layer) {
	for i, existing := range s.layers {
		if existing == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Len returns the number of mounted layers
func (s *Surface) Len() int {
	return len(s.layers)
}

// Render composites every mounted layer over frame, a width×height screen
func (s *Surface) Render(frame string, width, height int) string {
	if len(s.layers) == 0 {
		return frame
	}

	lines := strings.Split(frame, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for _, l := range s.layers {
		view, x, y := l.Frame()
		if view == "" {
			continue
		}
		boxLines := strings.Split(view, "\n")
		boxWidth := 0
		for _, bl := range boxLines {
			boxWidth = max(boxWidth, ansi.StringWidth(bl))
		}

		// Keep the box on screen even if the frame shrank since placement
		x = max(min(x, width-boxWidth), 0)
		y = max(min(y, height-len(boxLines)), 0)

		for i, bl := range boxLines {
			row := y + i
			if row >= len(lines) {
				break
			}
			lines[row] = splice(lines[row], bl, x)
		}
	}

	return strings.Join(lines, "\n")
}

// splice writes overlay over line starting at cell x
func splice(line, overlay string, x int) string {
	w := ansi.StringWidth(overlay)

	left := ansi.Truncate(line, x, "")
	if lw := ansi.StringWidth(left); lw < x {
		left += strings.Repeat(" ", x-lw)
	}
	right := ansi.TruncateLeft(line, x+w, "")

	return left + ansi.ResetStyle + overlay + ansi.ResetStyle + right
}
