package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/riordanpawley/kingdoms/internal/services/history"
)

const (
	// trendLimit is how many snapshots the detail panel shows
	trendLimit = 8
	// storeTimeout bounds history queries made from the UI
	storeTimeout = 2 * time.Second
)

// Message types for async operations

type snapshotLoadedMsg struct {
	snapshot  domain.Snapshot
	standings []domain.Standing
	// recorded is set when the snapshot was new to the history store
	recorded bool
}

type loadErrorMsg struct {
	err error
}

type refreshTickMsg struct {
	gen int
}

type toastTickMsg time.Time

type detailReadyMsg struct {
	standing domain.Standing
	trend    []history.Entry
}

type copiedMsg struct {
	what string
	err  error
}

type historyClearedMsg struct {
	err error
}

// Commands

// loadCmd fetches and ranks the current snapshot. Movement is measured
// against the last recorded snapshot, or against the standings on screen
// when history is off.
func (m Model) loadCmd() tea.Cmd {
	src, store, logger := m.source, m.history, m.logger
	timeout := m.config.Source.Timeout()
	onScreen := domain.Ranks(m.standings)

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := src.Load(ctx)
		if err != nil {
			return loadErrorMsg{err: err}
		}

		previous := onScreen
		if store != nil {
			ranks, err := store.RanksBefore(ctx, snap.TakenAt)
			if err != nil {
				logger.Warn("failed to read previous ranks", "error", err)
			} else {
				previous = ranks
			}
		}

		standings := domain.Rank(snap.Kingdoms, previous)

		recorded := false
		if store != nil {
			_, created, err := store.Record(ctx, snap.Season, snap.TakenAt, standings)
			if err != nil {
				logger.Warn("failed to record snapshot", "error", err)
			}
			recorded = created
		}

		return snapshotLoadedMsg{snapshot: snap, standings: standings, recorded: recorded}
	}
}

// openDetailCmd loads the kingdom's rank trend and then opens its panel
func (m Model) openDetailCmd(st domain.Standing) tea.Cmd {
	store, logger := m.history, m.logger
	return func() tea.Msg {
		var trend []history.Entry
		if store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
			defer cancel()

			var err error
			trend, err = store.Trend(ctx, st.ID, trendLimit)
			if err != nil {
				logger.Warn("failed to load trend", "kingdom", st.ID, "error", err)
			}
		}
		return detailReadyMsg{standing: st, trend: trend}
	}
}

// copyCmd puts text on the clipboard
func (m Model) copyCmd(text, what string) tea.Cmd {
	svc := m.share
	return func() tea.Msg {
		return copiedMsg{what: what, err: svc.Copy(text)}
	}
}

// clearHistoryCmd forgets every recorded snapshot
func (m Model) clearHistoryCmd() tea.Cmd {
	store := m.history
	return func() tea.Msg {
		if store == nil {
			return historyClearedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		return historyClearedMsg{err: store.Clear(ctx)}
	}
}

func refreshEvery(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}
