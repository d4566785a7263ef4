package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
	"github.com/riordanpawley/kingdoms/internal/services/share"
)

// ActionShareKingdom is the SelectionMsg key asking the host to copy a
// kingdom's summary; the value is the kingdom ID
const ActionShareKingdom = "share-kingdom"

const (
	detailWidth      = 62
	detailViewHeight = 16
)

// DetailPanel displays everything known about one kingdom: its stats,
// earned achievements and rank trend across recorded snapshots
type DetailPanel struct {
	standing domain.Standing
	lines    int
	vp       viewport.Model
	styles   *Styles
}

// NewDetailPanel creates a detail panel; trend is oldest first and may be empty
func NewDetailPanel(st domain.Standing, trend []history.Entry) *DetailPanel {
	d := &DetailPanel{
		standing: st,
		styles:   New(),
		vp:       viewport.New(detailWidth, detailViewHeight),
	}
	content := d.render(trend)
	d.lines = len(strings.Split(content, "\n"))
	d.vp.SetContent(content)
	return d
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter":
		return d, func() tea.Msg { return CloseOverlayMsg{} }
	case "j", "down":
		d.vp.SetYOffset(d.vp.YOffset + 1)
	case "k", "up":
		d.vp.SetYOffset(d.vp.YOffset - 1)
	case "g":
		d.vp.SetYOffset(0)
	case "G":
		d.vp.SetYOffset(d.lines)
	case "y":
		id := d.standing.ID
		return d, func() tea.Msg {
			return SelectionMsg{Key: ActionShareKingdom, Value: id}
		}
	}

	return d, nil
}

// ScrollOffset returns the first visible content line
func (d *DetailPanel) ScrollOffset() int {
	return d.vp.YOffset
}

func (d *DetailPanel) field(b *strings.Builder, label, value string) {
	b.WriteString(d.styles.Label.Render(label + ":"))
	b.WriteString("  ")
	b.WriteString(d.styles.MenuItem.Render(value))
	b.WriteString("\n")
}

func (d *DetailPanel) render(trend []history.Entry) string {
	st := d.standing
	var b strings.Builder

	b.WriteString(d.styles.Header.Render(fmt.Sprintf("#%d %s", st.Rank, st.Name)))
	b.WriteString(d.styles.Trailer.Render("  " + st.Tier().String()))
	b.WriteString("\n\n")

	if st.Ruler != "" {
		d.field(&b, "Ruler", st.Ruler)
	}
	d.field(&b, "Score", humanize.Comma(int64(st.Score)))
	d.field(&b, "Record", fmt.Sprintf("%dW / %dL (%s)", st.Wins, st.Losses, share.Percent(st.WinRate())))
	d.field(&b, "Territory", humanize.Comma(int64(st.Territory)))
	d.field(&b, "Members", fmt.Sprintf("%s (%s pts each)", humanize.Comma(int64(st.Members)), humanize.CommafWithDigits(st.ScorePerMember(), 1)))
	d.field(&b, "Streak", fmt.Sprintf("%d", st.Streak))
	d.field(&b, "Movement", share.Movement(st))
	if !st.UpdatedAt.IsZero() {
		d.field(&b, "Updated", st.UpdatedAt.Format("2006-01-02 15:04"))
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Header.Render("Achievements"))
	b.WriteString("\n")
	if len(st.Achievements) == 0 {
		b.WriteString(d.styles.Trailer.Render("  none yet"))
		b.WriteString("\n")
	}
	for _, a := range st.Achievements {
		b.WriteString("  ")
		b.WriteString(d.styles.MenuKey.Render(a.Icon + " " + a.Title))
		b.WriteString(d.styles.Trailer.Render(" " + a.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(d.styles.Header.Render("Rank history"))
	b.WriteString("\n")
	if len(trend) == 0 {
		b.WriteString(d.styles.Trailer.Render("  no earlier snapshots recorded"))
	} else {
		ranks := make([]string, len(trend))
		for i, e := range trend {
			ranks[i] = fmt.Sprintf("#%d", e.Rank)
		}
		b.WriteString("  " + d.styles.MenuItem.Render(strings.Join(ranks, " → ")))
		b.WriteString("\n")
		first, last := trend[0], trend[len(trend)-1]
		b.WriteString(d.styles.Trailer.Render(fmt.Sprintf("  %s to %s, %d snapshots",
			first.TakenAt.Format("2006-01-02"), last.TakenAt.Format("2006-01-02"), len(trend))))
	}

	return b.String()
}

// View renders the detail panel
func (d *DetailPanel) View() string {
	view := d.vp.View()
	if d.lines > detailViewHeight {
		view += "\n" + d.styles.Footer.Render(fmt.Sprintf("j/k scroll • y copy • line %d/%d", d.vp.YOffset+1, d.lines))
	} else {
		view += "\n" + d.styles.Footer.Render("y copy • Esc close")
	}
	return view
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Kingdom"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	return detailWidth + 4, detailViewHeight + 6
}
