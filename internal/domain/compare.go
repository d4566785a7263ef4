package domain

// Leader identifies which side of a comparison is ahead on a metric
type Leader int

const (
	LeaderNone Leader = iota
	LeaderA
	LeaderB
)

// MetricKind tells renderers how to format a metric value
type MetricKind int

const (
	MetricCount MetricKind = iota
	MetricPercent
	MetricRank
)

// Metric is one row of a head-to-head comparison
type Metric struct {
	Label         string
	Kind          MetricKind
	A, B          float64
	LowerIsBetter bool
}

// Leader returns the side that is ahead, or LeaderNone on a tie
func (m Metric) Leader() Leader {
	switch {
	case m.A == m.B:
		return LeaderNone
	case (m.A > m.B) != m.LowerIsBetter:
		return LeaderA
	default:
		return LeaderB
	}
}

// Comparison is a head-to-head view of two standings
type Comparison struct {
	A, B    Standing
	Metrics []Metric
}

// Compare builds the metric table for two standings
func Compare(a, b Standing) Comparison {
	return Comparison{
		A: a,
		B: b,
		Metrics: []Metric{
			{Label: "Rank", Kind: MetricRank, A: float64(a.Rank), B: float64(b.Rank), LowerIsBetter: true},
			{Label: "Score", A: float64(a.Score), B: float64(b.Score)},
			{Label: "Wins", A: float64(a.Wins), B: float64(b.Wins)},
			{Label: "Losses", A: float64(a.Losses), B: float64(b.Losses), LowerIsBetter: true},
			{Label: "Win rate", Kind: MetricPercent, A: a.WinRate(), B: b.WinRate()},
			{Label: "Territory", A: float64(a.Territory), B: float64(b.Territory)},
			{Label: "Members", A: float64(a.Members), B: float64(b.Members)},
			{Label: "Streak", A: float64(a.Streak), B: float64(b.Streak)},
		},
	}
}

// Tally counts the metrics each side leads
func (c Comparison) Tally() (a, b int) {
	for _, m := range c.Metrics {
		switch m.Leader() {
		case LeaderA:
			a++
		case LeaderB:
			b++
		}
	}
	return a, b
}

// Winner returns the side leading more metrics
func (c Comparison) Winner() Leader {
	a, b := c.Tally()
	switch {
	case a > b:
		return LeaderA
	case b > a:
		return LeaderB
	default:
		return LeaderNone
	}
}
