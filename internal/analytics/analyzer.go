package analytics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/goserg/fantasygoat/internal/domain"
	"github.com/goserg/fantasygoat/internal/tracker"
)

// Analyzer derives trends, consistency scores and naive projections
// from a player's game log. It only reads from the tracker.
type Analyzer struct {
	tracker *tracker.Tracker
}

func New(t *tracker.Tracker) *Analyzer {
	return &Analyzer{tracker: t}
}

func getPoints(l domain.StatLine) float64   { return float64(l.Points) }
func getRebounds(l domain.StatLine) float64 { return float64(l.Rebounds) }
func getAssists(l domain.StatLine) float64  { return float64(l.Assists) }
func getSteals(l domain.StatLine) float64   { return float64(l.Steals) }
func getBlocks(l domain.StatLine) float64   { return float64(l.Blocks) }

var coreStats = []struct {
	name string
	get  func(domain.StatLine) float64
}{
	{"points", getPoints},
	{"rebounds", getRebounds},
	{"assists", getAssists},
}

func series(lines []domain.StatLine, get func(domain.StatLine) float64) []float64 {
	xs := make([]float64, len(lines))
	for i := range lines {
		xs[i] = get(lines[i])
	}
	return xs
}

// TrendingStats splits the player's last comparisonN games into the
// recentN most recent and the rest, and reports the percent change of
// the recent average over the older one. Keys are "points_change",
// "rebounds_change" and "assists_change". A stat whose older average
// is zero is left out rather than reported as an infinite change. The
// map is empty when fewer than comparisonN games exist or the older
// slice would be empty.
func (a *Analyzer) TrendingStats(playerID string, recentN, comparisonN int) map[string]float64 {
	games := a.tracker.LastNGames(playerID, comparisonN)
	trends := map[string]float64{}
	if recentN <= 0 || len(games) < comparisonN || recentN >= len(games) {
		return trends
	}
	recent := games[:recentN]
	older := games[recentN:]
	for _, s := range coreStats {
		recentAvg := stat.Mean(series(recent, s.get), nil)
		olderAvg := stat.Mean(series(older, s.get), nil)
		if olderAvg > 0 {
			trends[s.name+"_change"] = (recentAvg - olderAvg) / olderAvg * 100
		}
	}
	return trends
}

// ConsistencyScore reports the coefficient of variation over the last
// n games for points, rebounds and assists ("points_cv" and friends).
// Lower means steadier. Needs at least 3 games; stats with a zero
// mean are omitted.
func (a *Analyzer) ConsistencyScore(playerID string, n int) map[string]float64 {
	games := a.tracker.LastNGames(playerID, n)
	scores := map[string]float64{}
	if len(games) < 3 {
		return scores
	}
	for _, s := range coreStats {
		xs := series(games, s.get)
		mean := stat.Mean(xs, nil)
		if mean > 0 {
			scores[s.name+"_cv"] = stat.StdDev(xs, nil) / mean * 100
		}
	}
	return scores
}

// Projection is a naive average over recent games. Opponent
// adjustments and model-based projections are out of scope for now.
type Projection struct {
	Opponent string
	Points   float64
	Rebounds float64
	Assists  float64
	Steals   float64
	Blocks   float64
	// PointsStdDev is the sample deviation of recent scoring, 0 when
	// fewer than 2 games contributed.
	PointsStdDev float64
}

func (a *Analyzer) ProjectNextGame(playerID string, opponent string, n int) *Projection {
	games := a.tracker.LastNGames(playerID, n)
	if len(games) == 0 {
		return nil
	}
	p := Projection{
		Opponent: opponent,
		Points:   stat.Mean(series(games, getPoints), nil),
		Rebounds: stat.Mean(series(games, getRebounds), nil),
		Assists:  stat.Mean(series(games, getAssists), nil),
		Steals:   stat.Mean(series(games, getSteals), nil),
		Blocks:   stat.Mean(series(games, getBlocks), nil),
	}
	if len(games) > 1 {
		p.PointsStdDev = stat.StdDev(series(games, getPoints), nil)
	}
	return &p
}

// Averages is a player's per-game line over a recent window.
type Averages struct {
	Points   float64
	Rebounds float64
	Assists  float64
}

// Comparison is a head-to-head of two players' recent averages.
type Comparison struct {
	PlayerA Averages
	PlayerB Averages
	// Diff is PlayerA minus PlayerB per stat.
	Diff Averages
}

// ComparePlayers compares two players over their last n games, nil
// when either has no games in the window.
func (a *Analyzer) ComparePlayers(idA, idB string, n int) *Comparison {
	gamesA := a.tracker.LastNGames(idA, n)
	gamesB := a.tracker.LastNGames(idB, n)
	if len(gamesA) == 0 || len(gamesB) == 0 {
		return nil
	}
	avgA := averages(gamesA)
	avgB := averages(gamesB)
	return &Comparison{
		PlayerA: avgA,
		PlayerB: avgB,
		Diff: Averages{
			Points:   avgA.Points - avgB.Points,
			Rebounds: avgA.Rebounds - avgB.Rebounds,
			Assists:  avgA.Assists - avgB.Assists,
		},
	}
}

func averages(games []domain.StatLine) Averages {
	return Averages{
		Points:   stat.Mean(series(games, getPoints), nil),
		Rebounds: stat.Mean(series(games, getRebounds), nil),
		Assists:  stat.Mean(series(games, getAssists), nil),
	}
}
