package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/share"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
)

// cardHeight is the rendered height of a card: three content lines and a border
const cardHeight = 5

// renderCard renders a kingdom card
func renderCard(st domain.Standing, isCursor, isMarked bool, width int, opts Options, s *styles.Styles) string {
	cardStyle := s.Card
	if isMarked {
		cardStyle = s.CardMarked
	} else if isCursor {
		cardStyle = s.CardActive
	}

	// Width includes padding; the border adds two more cells
	cardStyle = cardStyle.Width(max(width-2, 6))
	inner := max(width-4, 4)
	m := opts.marker()

	cursor := " "
	if isCursor {
		cursor = "▶"
	}
	rank := s.Rank.Render("#" + humanize.Comma(int64(st.Rank)))
	nameWidth := max(inner-lipgloss.Width(cursor+rank)-1, 1)
	name := s.KingdomName.Render(ansi.Truncate(st.Name, nameWidth, "…"))
	titleLine := cursor + rank + " " + m.Mark(NameZone(st.ID), name)

	score := m.Mark(ScoreZone(st.ID), s.Score.Render(humanize.Comma(int64(st.Score))+" pts"))
	move := m.Mark(MoveZone(st.ID), s.Movement(st).Render(share.Movement(st)))
	statLine := " " + score + "  " + move

	badgeLine := " "
	if opts.ShowAchievements && len(st.Achievements) > 0 {
		badges := make([]string, 0, len(st.Achievements))
		for _, a := range st.Achievements {
			badges = append(badges, m.Mark(BadgeZone(st.ID, a.ID), s.Badge.Render(a.Icon)))
		}
		badgeLine += strings.Join(badges, " ")
	} else {
		badgeLine += s.Muted.Render(humanize.Comma(int64(st.Members)) + " members")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, statLine, badgeLine)
	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(st domain.Standing, isCursor, isMarked bool, width int, opts Options, s *styles.Styles) string {
	return renderCard(st, isCursor, isMarked, width, opts, s)
}
