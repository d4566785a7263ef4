package source

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFetcher implements Fetcher for testing
type mockFetcher struct {
	data   string
	format Format
	err    error
}

func (m *mockFetcher) Fetch(ctx context.Context) ([]byte, Format, error) {
	return []byte(m.data), m.format, m.err
}

func (m *mockFetcher) Location() string {
	return "mock://standings"
}

func TestClient_Load(t *testing.T) {
	tests := []struct {
		name      string
		fetcher   *mockFetcher
		wantCount int
		wantOp    string
		wantIs    error
	}{
		{
			name: "json snapshot",
			fetcher: &mockFetcher{data: `{"season": "S1", "kingdoms": [
				{"id": "a", "name": "Ashvale", "score": 10},
				{"id": "b", "name": "Brinehold", "score": 20}
			]}`},
			wantCount: 2,
		},
		{
			name:      "json bare array",
			fetcher:   &mockFetcher{data: `[{"id": "a", "name": "Ashvale"}]`},
			wantCount: 1,
		},
		{
			name:      "yaml snapshot",
			fetcher:   &mockFetcher{data: "season: S2\nkingdoms:\n  - id: a\n    name: Ashvale\n", format: FormatYAML},
			wantCount: 1,
		},
		{
			name:      "yaml bare sequence",
			fetcher:   &mockFetcher{data: "- id: a\n- id: b\n", format: FormatYAML},
			wantCount: 2,
		},
		{
			name:    "invalid json",
			fetcher: &mockFetcher{data: `not json`},
			wantOp:  "decode",
		},
		{
			name:    "fetch error",
			fetcher: &mockFetcher{err: errors.New("connection refused")},
			wantOp:  "fetch",
		},
		{
			name:    "empty snapshot",
			fetcher: &mockFetcher{data: `{"season": "S1", "kingdoms": []}`},
			wantIs:  domain.ErrEmptySnapshot,
		},
		{
			name:    "empty yaml document",
			fetcher: &mockFetcher{data: "", format: FormatYAML},
			wantIs:  domain.ErrEmptySnapshot,
		},
		{
			name:    "duplicate ids",
			fetcher: &mockFetcher{data: `[{"id": "a"}, {"id": "a"}]`},
			wantOp:  "validate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.fetcher, clockwork.NewFakeClock(), slog.Default())

			snap, err := client.Load(context.Background())

			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
				return
			}
			if tt.wantOp != "" {
				require.Error(t, err)
				var srcErr *domain.SourceError
				require.ErrorAs(t, err, &srcErr)
				assert.Equal(t, tt.wantOp, srcErr.Op)
				return
			}

			require.NoError(t, err)
			assert.Len(t, snap.Kingdoms, tt.wantCount)
		})
	}
}

func TestClient_LoadStampsTakenAt(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("missing timestamp uses the clock", func(t *testing.T) {
		client := NewClient(&mockFetcher{data: `[{"id": "a"}]`}, clock, nil)

		snap, err := client.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, clock.Now(), snap.TakenAt)
	})

	t.Run("document timestamp wins", func(t *testing.T) {
		client := NewClient(&mockFetcher{data: `{"taken_at": "2025-12-24T08:30:00Z", "kingdoms": [{"id": "a"}]}`}, clock, nil)

		snap, err := client.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2025, snap.TakenAt.Year())
	})
}

func TestClient_LoadTestdata(t *testing.T) {
	client := NewClient(&FileFetcher{Path: "testdata/season.yaml"}, nil, nil)

	snap, err := client.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Winter of Ash", snap.Season)
	require.Len(t, snap.Kingdoms, 3)
	assert.Equal(t, "Brinehold", snap.Kingdoms[0].Name)
	assert.Equal(t, 18420, snap.Kingdoms[0].Score)
	assert.Equal(t, "#8aadf4", snap.Kingdoms[0].Banner)
	assert.Equal(t, "testdata/season.yaml", client.Location())
}
