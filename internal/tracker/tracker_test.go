package tracker

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/fantasygoat/internal/domain"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func date(d int) time.Time {
	return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC)
}

func line(playerID string, day int, points, rebounds, assists int) domain.StatLine {
	return domain.StatLine{
		PlayerID: playerID,
		GameDate: date(day),
		Opponent: "GSW",
		Points:   points,
		Rebounds: rebounds,
		Assists:  assists,
	}
}

func seedLeBron(t *testing.T) *Tracker {
	t.Helper()
	tr := New(testLogger())
	require.NoError(t, tr.AddPlayer(domain.Player{ID: "lbj23", Name: "LeBron James", Team: "LAL", Position: "SF"}))
	// Inserted out of date order on purpose.
	require.NoError(t, tr.AddGameStats(line("lbj23", 24, 30, 10, 8)))
	require.NoError(t, tr.AddGameStats(line("lbj23", 20, 28, 8, 7)))
	require.NoError(t, tr.AddGameStats(line("lbj23", 22, 25, 6, 9)))
	return tr
}

func TestTracker_SeasonStats(t *testing.T) {
	tr := seedLeBron(t)

	summary := tr.SeasonStats("lbj23", "2024-25", nil)
	require.NotNil(t, summary)
	assert.Equal(t, 3, summary.GamesPlayed)
	assert.InDelta(t, 27.67, summary.AvgPoints, 0.01)
	assert.InDelta(t, 8.0, summary.AvgRebounds, 0.001)
	assert.InDelta(t, 8.0, summary.AvgAssists, 0.001)
	assert.Equal(t, 83, summary.TotalPoints)
	assert.Equal(t, 24, summary.TotalRebounds)
	assert.Equal(t, "2024-25", summary.Season)

	// No shooting attempts recorded: percentages are absent, not zero.
	assert.Nil(t, summary.FieldGoalPct)
	assert.Nil(t, summary.ThreePointPct)
	assert.Nil(t, summary.FreeThrowPct)
}

func TestTracker_SeasonStats_Idempotent(t *testing.T) {
	tr := seedLeBron(t)

	first := tr.SeasonStats("lbj23", "2024-25", nil)
	second := tr.SeasonStats("lbj23", "2024-25", nil)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestTracker_SeasonStats_AveragesMatchTotals(t *testing.T) {
	tr := seedLeBron(t)

	s := tr.SeasonStats("lbj23", "2024-25", nil)
	require.NotNil(t, s)
	played := float64(s.GamesPlayed)
	assert.InDelta(t, float64(s.TotalPoints)/played, s.AvgPoints, 1e-9)
	assert.InDelta(t, float64(s.TotalRebounds)/played, s.AvgRebounds, 1e-9)
	assert.InDelta(t, float64(s.TotalAssists)/played, s.AvgAssists, 1e-9)
	assert.InDelta(t, float64(s.TotalSteals)/played, s.AvgSteals, 1e-9)
	assert.InDelta(t, float64(s.TotalBlocks)/played, s.AvgBlocks, 1e-9)
}

func TestTracker_SeasonStats_NoGames(t *testing.T) {
	tr := New(testLogger())
	assert.Nil(t, tr.SeasonStats("unknown", "2024-25", nil))
	assert.Nil(t, tr.SeasonStats("unknown", "2024-25", []domain.StatLine{}))
}

func TestTracker_SeasonStats_ExplicitGames(t *testing.T) {
	tr := seedLeBron(t)

	games := []domain.StatLine{line("lbj23", 20, 28, 8, 7)}
	summary := tr.SeasonStats("lbj23", "2024-25", games)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.GamesPlayed)
	assert.InDelta(t, 28.0, summary.AvgPoints, 0.001)
}

func TestTracker_SeasonStats_ShootingPercentages(t *testing.T) {
	tr := New(testLogger())
	a := line("p1", 1, 10, 0, 0)
	a.FieldGoalsMade = 3
	a.FieldGoalsAttempted = 10
	b := line("p1", 2, 5, 0, 0)
	b.FieldGoalsMade = 1
	b.FieldGoalsAttempted = 2
	require.NoError(t, tr.AddGameStats(a))
	require.NoError(t, tr.AddGameStats(b))

	s := tr.SeasonStats("p1", "2024-25", nil)
	require.NotNil(t, s)
	// 4 of 12 overall, not the 0.4 mean of per-game percentages.
	require.NotNil(t, s.FieldGoalPct)
	assert.InDelta(t, 4.0/12.0, *s.FieldGoalPct, 1e-9)
	assert.Nil(t, s.ThreePointPct)
}

func TestTracker_DuplicateGamesDoubleCount(t *testing.T) {
	tr := New(testLogger())
	g := line("p1", 20, 10, 5, 5)
	require.NoError(t, tr.AddGameStats(g))
	require.NoError(t, tr.AddGameStats(g))

	s := tr.SeasonStats("p1", "2024-25", nil)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.GamesPlayed)
	assert.Equal(t, 20, s.TotalPoints)
}

func TestTracker_AddPlayer_Overwrites(t *testing.T) {
	tr := New(testLogger())
	require.NoError(t, tr.AddPlayer(domain.Player{ID: "p1", Name: "First", Team: "LAL", Position: "SF"}))
	require.NoError(t, tr.AddPlayer(domain.Player{ID: "p1", Name: "Second", Team: "PHX", Position: "PF"}))

	p, ok := tr.Player("p1")
	require.True(t, ok)
	assert.Equal(t, "Second", p.Name)
	assert.Equal(t, "PHX", p.Team)
}

func TestTracker_AddGameStats_Invalid(t *testing.T) {
	tr := New(testLogger())
	bad := line("p1", 20, -5, 0, 0)
	assert.Error(t, tr.AddGameStats(bad))
	assert.Empty(t, tr.LastNGames("p1", 10))
}

func TestTracker_GamesBetween(t *testing.T) {
	tr := seedLeBron(t)

	from := date(21)
	to := date(24)
	games := tr.GamesBetween("lbj23", &from, &to)
	require.Len(t, games, 2)
	assert.Equal(t, date(22), games[0].GameDate)
	assert.Equal(t, date(24), games[1].GameDate)

	// Inclusive bounds.
	from = date(20)
	games = tr.GamesBetween("lbj23", &from, &to)
	assert.Len(t, games, 3)

	// Open bounds return everything, ascending.
	games = tr.GamesBetween("lbj23", nil, nil)
	require.Len(t, games, 3)
	assert.Equal(t, date(20), games[0].GameDate)

	assert.Empty(t, tr.GamesBetween("unknown", nil, nil))
}

func TestTracker_LastNGames(t *testing.T) {
	tr := seedLeBron(t)

	games := tr.LastNGames("lbj23", 2)
	require.Len(t, games, 2)
	assert.Equal(t, date(24), games[0].GameDate)
	assert.Equal(t, date(22), games[1].GameDate)

	// Asking for more than exists returns all.
	assert.Len(t, tr.LastNGames("lbj23", 10), 3)
	assert.Empty(t, tr.LastNGames("unknown", 5))
}

func TestTracker_PlayerByName(t *testing.T) {
	tr := seedLeBron(t)

	p, ok := tr.PlayerByName("  lebron  JAMES ")
	require.True(t, ok)
	assert.Equal(t, "lbj23", p.ID)

	_, ok = tr.PlayerByName("Kevin Durant")
	assert.False(t, ok)
}
