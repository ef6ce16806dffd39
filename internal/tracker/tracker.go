package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goserg/fantasygoat/internal/domain"
	"github.com/goserg/fantasygoat/internal/normalize"
)

// Tracker owns the per-player game logs. Logs are append-only and
// unordered on insert; queries sort on demand. Duplicate lines for
// the same game are accepted and double-count in aggregates.
type Tracker struct {
	log     *logrus.Logger
	players map[string]domain.Player
	games   map[string][]domain.StatLine
}

func New(log *logrus.Logger) *Tracker {
	return &Tracker{
		log:     log,
		players: make(map[string]domain.Player),
		games:   make(map[string][]domain.StatLine),
	}
}

// AddPlayer registers a player. Re-adding the same ID overwrites the
// stored record.
func (t *Tracker) AddPlayer(p domain.Player) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("add player: %w", err)
	}
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	t.players[p.ID] = p
	t.log.WithFields(logrus.Fields{
		"player": p.ID,
		"team":   p.Team,
	}).Debug("player registered")
	return nil
}

func (t *Tracker) AddGameStats(line domain.StatLine) error {
	if err := line.Validate(); err != nil {
		return fmt.Errorf("add game stats: %w", err)
	}
	t.games[line.PlayerID] = append(t.games[line.PlayerID], line)
	t.log.WithFields(logrus.Fields{
		"player":   line.PlayerID,
		"opponent": line.Opponent,
		"date":     line.GameDate.Format(time.DateOnly),
	}).Debug("game stats added")
	return nil
}

func (t *Tracker) Player(id string) (domain.Player, bool) {
	p, ok := t.players[id]
	return p, ok
}

// PlayerByName finds a player by display name, ignoring case and
// extra whitespace.
func (t *Tracker) PlayerByName(name string) (domain.Player, bool) {
	want := normalize.Name(name)
	for _, p := range t.players {
		if normalize.Name(p.Name) == want {
			return p, true
		}
	}
	return domain.Player{}, false
}

func (t *Tracker) Players() []domain.Player {
	players := make([]domain.Player, 0, len(t.players))
	for _, p := range t.players {
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Name < players[j].Name
	})
	return players
}

// GamesBetween returns the player's games with dates inside the
// inclusive range, ascending by date. Nil bounds are open. Unknown
// players get an empty slice, not an error.
func (t *Tracker) GamesBetween(playerID string, from, to *time.Time) []domain.StatLine {
	var games []domain.StatLine
	for _, g := range t.games[playerID] {
		if from != nil && g.GameDate.Before(*from) {
			continue
		}
		if to != nil && g.GameDate.After(*to) {
			continue
		}
		games = append(games, g)
	}
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].GameDate.Before(games[j].GameDate)
	})
	return games
}

// LastNGames returns up to n most recent games, newest first.
func (t *Tracker) LastNGames(playerID string, n int) []domain.StatLine {
	stored := t.games[playerID]
	games := make([]domain.StatLine, len(stored))
	copy(games, stored)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].GameDate.After(games[j].GameDate)
	})
	if n < len(games) {
		games = games[:n]
	}
	return games
}

// SeasonStats aggregates a game log into a season line. When games is
// nil the player's full stored history is used; the season argument
// labels the result and never filters it, so callers wanting a real
// season slice pre-filter with GamesBetween. Returns nil when nothing
// contributed.
func (t *Tracker) SeasonStats(playerID string, season string, games []domain.StatLine) *domain.SeasonSummary {
	if games == nil {
		games = t.games[playerID]
	}
	if len(games) == 0 {
		return nil
	}

	summary := domain.SeasonSummary{
		PlayerID:    playerID,
		Season:      season,
		GamesPlayed: len(games),
	}

	var totalTurnovers int
	var totalMinutes float64
	var fgm, fga, tpm, tpa, ftm, fta int
	for _, g := range games {
		summary.TotalPoints += g.Points
		summary.TotalRebounds += g.Rebounds
		summary.TotalAssists += g.Assists
		summary.TotalSteals += g.Steals
		summary.TotalBlocks += g.Blocks
		totalTurnovers += g.Turnovers
		totalMinutes += g.MinutesPlayed
		fgm += g.FieldGoalsMade
		fga += g.FieldGoalsAttempted
		tpm += g.ThreePointersMade
		tpa += g.ThreePointersAttempted
		ftm += g.FreeThrowsMade
		fta += g.FreeThrowsAttempted
	}

	played := float64(summary.GamesPlayed)
	summary.AvgPoints = float64(summary.TotalPoints) / played
	summary.AvgRebounds = float64(summary.TotalRebounds) / played
	summary.AvgAssists = float64(summary.TotalAssists) / played
	summary.AvgSteals = float64(summary.TotalSteals) / played
	summary.AvgBlocks = float64(summary.TotalBlocks) / played
	summary.AvgTurnovers = float64(totalTurnovers) / played
	summary.AvgMinutes = totalMinutes / played

	summary.FieldGoalPct = percentage(fgm, fga)
	summary.ThreePointPct = percentage(tpm, tpa)
	summary.FreeThrowPct = percentage(ftm, fta)

	return &summary
}

// percentage is nil when nothing was attempted, never a zero standing
// in for missing data.
func percentage(made, attempted int) *float64 {
	if attempted == 0 {
		return nil
	}
	pct := float64(made) / float64(attempted)
	return &pct
}
