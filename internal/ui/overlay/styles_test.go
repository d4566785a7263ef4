package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewStyles(t *testing.T) {
	styles := New()
	if styles == nil {
		t.Fatal("New() returned nil")
	}

	tests := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Overlay", styles.Overlay},
		{"Title", styles.Title},
		{"MenuItem", styles.MenuItem},
		{"MenuItemActive", styles.MenuItemActive},
		{"MenuKey", styles.MenuKey},
		{"Separator", styles.Separator},
		{"Footer", styles.Footer},
		{"Header", styles.Header},
		{"Label", styles.Label},
		{"Leader", styles.Leader},
		{"Trailer", styles.Trailer},
		{"Danger", styles.Danger},
		{"Search", styles.Search},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rendered := tt.style.Render("test"); rendered == "" {
				t.Errorf("%s style rendered empty string", tt.name)
			}
		})
	}
}

func TestOverlayStyle_HasBorder(t *testing.T) {
	styles := New()

	w, h := lipgloss.Size(styles.Overlay.Render("Content"))

	// border (2) + horizontal padding (4)
	if w != len("Content")+6 {
		t.Errorf("expected width %d, got %d", len("Content")+6, w)
	}
	// border (2) + vertical padding (2)
	if h != 5 {
		t.Errorf("expected height 5, got %d", h)
	}
}

func TestLabelStyle_RightAligned(t *testing.T) {
	styles := New()

	got := styles.Label.Render("Score:")
	if lipgloss.Width(got) != 12 {
		t.Errorf("expected label width 12, got %d", lipgloss.Width(got))
	}
}
