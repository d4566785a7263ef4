// Package share formats standings as plain text and copies them to the
// system clipboard.
package share

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/dustin/go-humanize"

	"github.com/riordanpawley/kingdoms/internal/domain"
)

// Clipboard abstracts the system clipboard for testing
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard
type SystemClipboard struct{}

// WriteAll copies text, reporting ErrClipboardUnavailable when no
// clipboard utility is installed
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// Service copies summaries to a clipboard
type Service struct {
	clip   Clipboard
	logger *slog.Logger
}

// NewService creates a share service with dependency injection
func NewService(clip Clipboard, logger *slog.Logger) *Service {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{clip: clip, logger: logger}
}

// Copy writes text to the clipboard
func (s *Service) Copy(text string) error {
	s.logger.Debug("copying to clipboard", "bytes", len(text))
	if err := s.clip.WriteAll(text); err != nil {
		s.logger.Warn("clipboard write failed", "error", err)
		return err
	}
	return nil
}

// Movement formats a rank delta as ▲n, ▼n, "new" or "="
func Movement(s domain.Standing) string {
	switch {
	case s.New:
		return "new"
	case s.Delta > 0:
		return fmt.Sprintf("▲%d", s.Delta)
	case s.Delta < 0:
		return fmt.Sprintf("▼%d", -s.Delta)
	default:
		return "="
	}
}

// Percent formats a ratio in [0, 1] as a whole percentage
func Percent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// MetricValue formats a comparison value by kind
func MetricValue(kind domain.MetricKind, v float64) string {
	switch kind {
	case domain.MetricPercent:
		return Percent(v)
	case domain.MetricRank:
		return "#" + humanize.Comma(int64(v))
	default:
		return humanize.Comma(int64(v))
	}
}

// Comparison renders a head-to-head table with the leader of each row
// marked by an arrow
func Comparison(c domain.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-10s %14s   %-14s\n", "", c.A.Name, c.B.Name)
	for _, m := range c.Metrics {
		a, bv := MetricValue(m.Kind, m.A), MetricValue(m.Kind, m.B)
		mark := " = "
		switch m.Leader() {
		case domain.LeaderA:
			mark = " ◀ "
		case domain.LeaderB:
			mark = " ▶ "
		}
		fmt.Fprintf(&b, "%-10s %14s%s%-14s\n", m.Label, a, mark, bv)
	}

	ta, tb := c.Tally()
	switch c.Winner() {
	case domain.LeaderA:
		fmt.Fprintf(&b, "%s leads %d-%d", c.A.Name, ta, tb)
	case domain.LeaderB:
		fmt.Fprintf(&b, "%s leads %d-%d", c.B.Name, tb, ta)
	default:
		fmt.Fprintf(&b, "Level at %d-%d", ta, tb)
	}
	return b.String()
}

// Summary describes one standing for sharing
func Summary(s domain.Standing, season string, total int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is %s of %d", s.Name, humanize.Ordinal(s.Rank), total)
	if season != "" {
		fmt.Fprintf(&b, " in %s", season)
	}
	fmt.Fprintf(&b, " (%s)\n", Movement(s))

	fmt.Fprintf(&b, "Score %s · %dW/%dL (%s) · %s territories · streak %d\n",
		humanize.Comma(int64(s.Score)), s.Wins, s.Losses, Percent(s.WinRate()),
		humanize.Comma(int64(s.Territory)), s.Streak)

	if len(s.Achievements) > 0 {
		titles := make([]string, len(s.Achievements))
		for i, a := range s.Achievements {
			titles[i] = a.Icon + " " + a.Title
		}
		fmt.Fprintf(&b, "Badges: %s\n", strings.Join(titles, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

// Leaderboard lists the top n standings; n <= 0 lists all
func Leaderboard(standings []domain.Standing, season string, n int) string {
	if n <= 0 || n > len(standings) {
		n = len(standings)
	}

	var b strings.Builder
	if season != "" {
		fmt.Fprintf(&b, "%s standings\n", season)
	}
	for _, s := range standings[:n] {
		fmt.Fprintf(&b, "%3d. %-20s %10s  %s\n", s.Rank, s.Name, humanize.Comma(int64(s.Score)), Movement(s))
	}
	return strings.TrimRight(b.String(), "\n")
}
