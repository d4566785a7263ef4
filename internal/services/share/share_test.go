package share

import (
	"errors"
	"strings"
	"testing"

	"github.com/riordanpawley/kingdoms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func champion() domain.Standing {
	s := domain.Standing{
		Kingdom: domain.Kingdom{
			ID: "brinehold", Name: "Brinehold",
			Wins: 120, Losses: 30, Score: 18420, Territory: 57, Streak: 6, Members: 12,
		},
		Rank:  1,
		Delta: 2,
	}
	s.Achievements = domain.Evaluate(s)
	return s
}

func TestMovement(t *testing.T) {
	tests := []struct {
		s    domain.Standing
		want string
	}{
		{domain.Standing{Delta: 3}, "▲3"},
		{domain.Standing{Delta: -2}, "▼2"},
		{domain.Standing{}, "="},
		{domain.Standing{New: true}, "new"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Movement(tt.s))
	}
}

func TestSummary(t *testing.T) {
	got := Summary(champion(), "Winter of Ash", 12)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Brinehold is 1st of 12 in Winter of Ash (▲2)", lines[0])
	assert.Equal(t, "Score 18,420 · 120W/30L (80%) · 57 territories · streak 6", lines[1])
	assert.Equal(t, "Badges: ♛ Champion, ⚑ Conqueror, ∞ Unbroken, ⚔ Veteran", lines[2])
}

func TestSummary_NoSeasonNoBadges(t *testing.T) {
	s := domain.Standing{Kingdom: domain.Kingdom{Name: "Duskmere"}, Rank: 14}

	got := Summary(s, "", 20)

	assert.Equal(t, "Duskmere is 14th of 20 (=)\nScore 0 · 0W/0L (0%) · 0 territories · streak 0", got)
}

func TestLeaderboard(t *testing.T) {
	standings := domain.Rank([]domain.Kingdom{
		{ID: "a", Name: "Ashvale", Score: 1500},
		{ID: "b", Name: "Brinehold", Score: 2500},
		{ID: "c", Name: "Cinderfall", Score: 500},
	}, nil)

	got := Leaderboard(standings, "S1", 2)
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "S1 standings", lines[0])
	assert.Contains(t, lines[1], "Brinehold")
	assert.Contains(t, lines[1], "2,500")
	assert.Contains(t, lines[2], "Ashvale")

	assert.Len(t, strings.Split(Leaderboard(standings, "", 0), "\n"), 3)
}

func TestService_Copy(t *testing.T) {
	t.Run("writes text", func(t *testing.T) {
		clip := &fakeClipboard{}
		svc := NewService(clip, nil)

		require.NoError(t, svc.Copy("hello"))
		assert.Equal(t, "hello", clip.text)
	})

	t.Run("propagates errors", func(t *testing.T) {
		clip := &fakeClipboard{err: domain.ErrClipboardUnavailable}
		svc := NewService(clip, nil)

		err := svc.Copy("hello")
		assert.True(t, errors.Is(err, domain.ErrClipboardUnavailable))
	})
}

func TestMetricValue(t *testing.T) {
	tests := []struct {
		kind domain.MetricKind
		v    float64
		want string
	}{
		{domain.MetricCount, 18420, "18,420"},
		{domain.MetricPercent, 0.8, "80%"},
		{domain.MetricRank, 3, "#3"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, MetricValue(tt.kind, tt.v))
		})
	}
}

func TestComparison(t *testing.T) {
	rival := domain.Standing{
		Kingdom: domain.Kingdom{
			ID: "ashvale", Name: "Ashvale",
			Wins: 50, Losses: 10, Score: 9000, Territory: 57, Streak: 6, Members: 40,
		},
		Rank: 2,
	}

	got := Comparison(domain.Compare(champion(), rival))
	lines := strings.Split(got, "\n")

	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "Brinehold")
	assert.Contains(t, lines[0], "Ashvale")
	assert.Contains(t, lines[1], "#1 ◀ #2")
	assert.Contains(t, lines[4], "30 ▶ 10", "fewer losses lead")
	assert.Contains(t, lines[6], "57 = 57")
	assert.Equal(t, "Level at 3-3", lines[9])

	rival.Members = 5
	got = Comparison(domain.Compare(champion(), rival))
	assert.True(t, strings.HasSuffix(got, "Brinehold leads 4-2"), got)
}
