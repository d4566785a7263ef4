// Package source loads kingdom standings from a local file or an HTTP endpoint.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"gopkg.in/yaml.v3"
)

// Client loads and validates snapshots
type Client struct {
	fetcher Fetcher
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewClient creates a new source client with dependency injection
func NewClient(fetcher Fetcher, clock clockwork.Clock, logger *slog.Logger) *Client {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		fetcher: fetcher,
		clock:   clock,
		logger:  logger,
	}
}

// Location returns where the client reads from
func (c *Client) Location() string {
	return c.fetcher.Location()
}

// Load fetches, decodes and validates the current snapshot
func (c *Client) Load(ctx context.Context) (domain.Snapshot, error) {
	loc := c.fetcher.Location()
	c.logger.Debug("fetching snapshot", "source", loc)

	data, format, err := c.fetcher.Fetch(ctx)
	if err != nil {
		return domain.Snapshot{}, &domain.SourceError{Op: "fetch", Source: loc, Err: err}
	}

	snap, err := Decode(data, format)
	if err != nil {
		return domain.Snapshot{}, &domain.SourceError{Op: "decode", Source: loc, Err: err}
	}

	if err := snap.Validate(); err != nil {
		return domain.Snapshot{}, err
	}

	if snap.TakenAt.IsZero() {
		snap.TakenAt = c.clock.Now()
	}

	c.logger.Debug("fetched snapshot", "season", snap.Season, "count", len(snap.Kingdoms))
	return snap, nil
}

// Decode parses a snapshot document. A bare array of kingdoms is accepted
// as a snapshot without a season.
func Decode(data []byte, format Format) (domain.Snapshot, error) {
	var snap domain.Snapshot

	trimmed := bytes.TrimSpace(data)
	if format == FormatJSON {
		if len(trimmed) > 0 && trimmed[0] == '[' {
			err := json.Unmarshal(trimmed, &snap.Kingdoms)
			return snap, err
		}
		err := json.Unmarshal(trimmed, &snap)
		return snap, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return snap, err
	}
	if len(doc.Content) == 0 {
		return snap, nil
	}
	if doc.Content[0].Kind == yaml.SequenceNode {
		err := doc.Content[0].Decode(&snap.Kingdoms)
		return snap, err
	}
	err := doc.Content[0].Decode(&snap)
	return snap, err
}
