package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/riordanpawley/kingdoms/internal/config"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
	"github.com/riordanpawley/kingdoms/internal/services/share"
	"github.com/riordanpawley/kingdoms/internal/services/source"
)

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Source *source.Client
	// History is nil when rank history is disabled
	History *history.Store
	Share   *share.Service
	Logger  *slog.Logger
}

// NewDependencies creates a new Dependencies instance with all required services
func NewDependencies(cfg *config.Config, clip share.Clipboard, logger *slog.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fetcher := source.NewFetcher(cfg.Source.Path, cfg.Source.Timeout())
	deps := &Dependencies{
		Config: cfg,
		Source: source.NewClient(fetcher, nil, logger),
		Share:  share.NewService(clip, logger),
		Logger: logger,
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		deps.History = store
	}

	return deps, nil
}

// Close releases the history database
func (d *Dependencies) Close() error {
	if d.History == nil {
		return nil
	}
	return d.History.Close()
}

// loadStandings fetches and ranks the current snapshot. Movement is read
// from history when it is enabled; commands never record snapshots.
func (d *Dependencies) loadStandings(ctx context.Context) (domain.Snapshot, []domain.Standing, error) {
	ctx, cancel := context.WithTimeout(ctx, d.Config.Source.Timeout())
	defer cancel()

	snap, err := d.Source.Load(ctx)
	if err != nil {
		return domain.Snapshot{}, nil, err
	}

	var previous map[string]int
	if d.History != nil {
		previous, err = d.History.RanksBefore(ctx, snap.TakenAt)
		if err != nil {
			d.Logger.Warn("failed to read previous ranks", "error", err)
		}
	}

	return snap, domain.Rank(snap.Kingdoms, previous), nil
}

// ListCommand prints the leaderboard; top <= 0 prints every kingdom
func ListCommand(ctx context.Context, deps *Dependencies, out io.Writer, top int) error {
	snap, standings, err := deps.loadStandings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load standings: %w", err)
	}

	if top <= 0 || top > len(standings) {
		top = len(standings)
	}

	if snap.Season != "" {
		fmt.Fprintf(out, "%s (%d kingdoms)\n\n", snap.Season, len(standings))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tKINGDOM\tSCORE\tW/L\tWIN%\tMOVE\tTIER")
	fmt.Fprintln(w, "----\t-------\t-----\t---\t----\t----\t----")

	for _, s := range standings[:top] {
		name := s.Name
		// Truncate name if too long
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%s\t%s\t%s\n",
			s.Rank, name, humanize.Comma(int64(s.Score)), s.Wins, s.Losses,
			share.Percent(s.WinRate()), share.Movement(s), s.Tier())
	}

	return w.Flush()
}

// CompareCommand prints a metric-by-metric comparison of two kingdoms,
// each given by ID or name
func CompareCommand(ctx context.Context, deps *Dependencies, out io.Writer, first, second string) error {
	_, standings, err := deps.loadStandings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load standings: %w", err)
	}

	a, err := lookup(standings, first)
	if err != nil {
		return err
	}
	b, err := lookup(standings, second)
	if err != nil {
		return err
	}
	if a.ID == b.ID {
		return fmt.Errorf("cannot compare %s with itself", a.Name)
	}

	fmt.Fprintln(out, share.Comparison(domain.Compare(a, b)))
	return nil
}

// ShareCommand copies a kingdom's summary to the clipboard, or prints it
// when printOnly is set
func ShareCommand(ctx context.Context, deps *Dependencies, out io.Writer, key string, printOnly bool) error {
	snap, standings, err := deps.loadStandings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load standings: %w", err)
	}

	st, err := lookup(standings, key)
	if err != nil {
		return err
	}

	summary := share.Summary(st, snap.Season, len(standings))
	if printOnly {
		fmt.Fprintln(out, summary)
		return nil
	}

	if err := deps.Share.Copy(summary); err != nil {
		return fmt.Errorf("failed to copy summary (use --print instead): %w", err)
	}

	fmt.Fprintf(out, "✓ Copied summary for %s\n", st.Name)
	return nil
}

func lookup(standings []domain.Standing, key string) (domain.Standing, error) {
	st, err := domain.Lookup(standings, key)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Standing{}, fmt.Errorf("kingdom %q: %w", key, err)
	}
	return st, err
}
