package app

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/share"
	"github.com/riordanpawley/kingdoms/internal/types"
	"github.com/riordanpawley/kingdoms/internal/ui/board"
	"github.com/riordanpawley/kingdoms/internal/ui/compact"
	"github.com/riordanpawley/kingdoms/internal/ui/styles"
	"github.com/riordanpawley/kingdoms/internal/ui/tooltip"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// tipContent is what a trigger's tooltip shows
type tipContent struct {
	text   string
	accent lipgloss.Color
}

// tipSet owns one tooltip per mounted trigger region
type tipSet struct {
	zones *zone.Manager
	opts  tooltip.Options
	base  tooltip.Config
	tips  map[string]*tooltip.Tooltip

	width, height int
}

func newTipSet(zones *zone.Manager, opts tooltip.Options, base tooltip.Config) *tipSet {
	return &tipSet{
		zones: zones,
		opts:  opts,
		base:  base,
		tips:  make(map[string]*tooltip.Tooltip),
	}
}

// Sync makes the set match contents (trigger id → content). Missing ids are
// destroyed and new ones created. A tooltip whose content changed is
// replaced unless it is on screen.
func (s *tipSet) Sync(contents map[string]tipContent) {
	for id, tip := range s.tips {
		if _, ok := contents[id]; !ok {
			tip.Destroy()
			delete(s.tips, id)
		}
	}

	for id, c := range contents {
		if tip, ok := s.tips[id]; ok {
			cfg := tip.Config()
			if cfg.Content == c.text || tip.Visible() {
				continue
			}
			tip.Destroy()
		}
		cfg := s.base
		cfg.Content = c.text
		if c.accent != "" {
			cfg.AccentColor = c.accent
		}
		tip := tooltip.New(id, tooltip.NewZoneTrigger(s.zones, id), cfg, s.opts)
		tip.SetViewport(s.width, s.height)
		s.tips[id] = tip
	}
}

// Update broadcasts an environment message to every tooltip
func (s *tipSet) Update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.width, s.height = size.Width, size.Height
	}

	var cmds []tea.Cmd
	for _, id := range s.ids() {
		if cmd := s.tips[id].Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Hit reports whether a tap-mode click landed on a trigger. The host skips
// its own click handling when it does.
func (s *tipSet) Hit(msg tea.MouseMsg) bool {
	if s.opts.Mode != tooltip.ModeTap {
		return false
	}
	for _, tip := range s.tips {
		if tip.Hit(msg) {
			return true
		}
	}
	return false
}

// HideAll hides every visible tooltip
func (s *tipSet) HideAll() {
	for _, tip := range s.tips {
		tip.Hide()
	}
}

// DestroyAll tears the whole set down
func (s *tipSet) DestroyAll() {
	for id, tip := range s.tips {
		tip.Destroy()
		delete(s.tips, id)
	}
}

// Get returns the tooltip for a trigger id
func (s *tipSet) Get(id string) (*tooltip.Tooltip, bool) {
	tip, ok := s.tips[id]
	return tip, ok
}

// Visible returns the tooltip currently on screen, if any
func (s *tipSet) Visible() (*tooltip.Tooltip, bool) {
	for _, tip := range s.tips {
		if tip.Visible() {
			return tip, true
		}
	}
	return nil, false
}

// Len returns the number of live tooltips
func (s *tipSet) Len() int {
	return len(s.tips)
}

func (s *tipSet) ids() []string {
	ids := make([]string, 0, len(s.tips))
	for id := range s.tips {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// tooltipContents lists the triggers the given view mounts for standings
func tooltipContents(standings []domain.Standing, view types.View, showAchievements bool, s *styles.Styles) map[string]tipContent {
	contents := make(map[string]tipContent)
	for _, st := range standings {
		accent := bannerColor(st.Banner)
		if view == types.ViewTable {
			contents[compact.WinRateZone(st.ID)] = tipContent{text: winRateTip(st, s), accent: accent}
			contents[compact.StreakZone(st.ID)] = tipContent{text: streakTip(st, s), accent: accent}
			continue
		}

		contents[board.ScoreZone(st.ID)] = tipContent{text: scoreTip(st, s), accent: accent}
		contents[board.MoveZone(st.ID)] = tipContent{text: movementTip(st, s), accent: accent}
		if showAchievements {
			for _, a := range st.Achievements {
				contents[board.BadgeZone(st.ID, a.ID)] = tipContent{text: badgeTip(a, s)}
			}
		}
	}
	return contents
}

func bannerColor(banner string) lipgloss.Color {
	if hexColor.MatchString(banner) {
		return lipgloss.Color(banner)
	}
	return ""
}

func tipLines(s *styles.Styles, title string, rows ...[2]string) string {
	lines := []string{s.TooltipTitle.Render(title)}
	for _, r := range rows {
		lines = append(lines, s.TooltipLabel.Render(fmt.Sprintf("%-11s", r[0]))+r[1])
	}
	return strings.Join(lines, "\n")
}

func scoreTip(st domain.Standing, s *styles.Styles) string {
	return tipLines(s, st.Name,
		[2]string{"Score", humanize.Comma(int64(st.Score))},
		[2]string{"Per member", humanize.CommafWithDigits(st.ScorePerMember(), 1)},
		[2]string{"Territory", humanize.Comma(int64(st.Territory))},
	)
}

func movementTip(st domain.Standing, s *styles.Styles) string {
	var detail string
	switch {
	case st.New:
		detail = fmt.Sprintf("New at #%d since the last snapshot", st.Rank)
	case st.Delta > 0:
		detail = fmt.Sprintf("Climbed from #%d to #%d", st.Rank+st.Delta, st.Rank)
	case st.Delta < 0:
		detail = fmt.Sprintf("Fell from #%d to #%d", st.Rank+st.Delta, st.Rank)
	default:
		detail = fmt.Sprintf("Holding at #%d", st.Rank)
	}
	return s.TooltipTitle.Render("Rank movement") + "\n" + detail
}

func badgeTip(a domain.Achievement, s *styles.Styles) string {
	return s.TooltipTitle.Render(a.Icon+" "+a.Title) + "\n" + a.Description
}

func winRateTip(st domain.Standing, s *styles.Styles) string {
	return tipLines(s, st.Name,
		[2]string{"Won", humanize.Comma(int64(st.Wins))},
		[2]string{"Lost", humanize.Comma(int64(st.Losses))},
		[2]string{"Win rate", fmt.Sprintf("%s of %s battles", share.Percent(st.WinRate()), humanize.Comma(int64(st.Battles())))},
	)
}

func streakTip(st domain.Standing, s *styles.Styles) string {
	title := fmt.Sprintf("%d straight wins", st.Streak)
	if st.Streak == 1 {
		title = "1 straight win"
	}

	detail := "Unbroken earned"
	if remaining := domain.UnbrokenStreak - st.Streak; remaining > 0 {
		detail = fmt.Sprintf("%d more for Unbroken", remaining)
	}
	return s.TooltipTitle.Render(title) + "\n" + detail
}
