package schedule

import (
	"fmt"
	"sort"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/fantasygoat/internal/domain"
)

// Manager keeps per-season game schedules in memory and answers date
// and team queries over them. An empty season argument on the query
// methods means "all seasons".
type Manager struct {
	log     *logrus.Logger
	seasons map[string][]domain.Game
	byID    map[uuid.UUID]domain.Game
}

func New(log *logrus.Logger) *Manager {
	return &Manager{
		log:     log,
		seasons: make(map[string][]domain.Game),
		byID:    make(map[uuid.UUID]domain.Game),
	}
}

func (m *Manager) AddGame(season string, g domain.Game) error {
	if err := g.Validate(); err != nil {
		return fmt.Errorf("add game: %w", err)
	}
	if g.Status == "" {
		g.Status = domain.GameScheduled
	}
	m.seasons[season] = append(m.seasons[season], g)
	m.byID[g.ID] = g
	m.log.WithFields(logrus.Fields{
		"season": season,
		"home":   g.HomeTeam,
		"away":   g.AwayTeam,
		"date":   g.Date.Format(time.DateOnly),
	}).Debug("game scheduled")
	return nil
}

func (m *Manager) Game(id uuid.UUID) (domain.Game, bool) {
	g, ok := m.byID[id]
	return g, ok
}

func (m *Manager) pool(season string) []domain.Game {
	if season != "" {
		return m.seasons[season]
	}
	var games []domain.Game
	for _, seasonGames := range m.seasons {
		games = append(games, seasonGames...)
	}
	return games
}

func byDate(games []domain.Game) []domain.Game {
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date.Before(games[j].Date)
	})
	return games
}

// GamesOn returns the games tipping off on the given calendar day.
func (m *Manager) GamesOn(day time.Time, season string) []domain.Game {
	var games []domain.Game
	for _, g := range m.pool(season) {
		if sameDay(g.Date, day) {
			games = append(games, g)
		}
	}
	return byDate(games)
}

func (m *Manager) GamesFor(team string, season string) []domain.Game {
	var games []domain.Game
	for _, g := range m.pool(season) {
		if g.HasTeam(team) {
			games = append(games, g)
		}
	}
	return byDate(games)
}

// Upcoming returns still-scheduled games within daysAhead days of
// from. Team filters when non-empty.
func (m *Manager) Upcoming(from time.Time, daysAhead int, team string) []domain.Game {
	end := from.AddDate(0, 0, daysAhead)
	var games []domain.Game
	for _, g := range m.pool("") {
		if g.Status != domain.GameScheduled {
			continue
		}
		if g.Date.Before(from) || g.Date.After(end) {
			continue
		}
		if team != "" && !g.HasTeam(team) {
			continue
		}
		games = append(games, g)
	}
	return byDate(games)
}

// GameCountByTeam counts how many games each team plays inside the
// inclusive range.
func (m *Manager) GameCountByTeam(from, to time.Time, season string) map[string]int {
	counts := make(map[string]int)
	for _, g := range m.pool(season) {
		if g.Date.Before(from) || g.Date.After(to) {
			continue
		}
		counts[g.HomeTeam]++
		counts[g.AwayTeam]++
	}
	return counts
}

// BackToBacks finds a team's games on consecutive calendar days.
func (m *Manager) BackToBacks(team string, season string) [][2]domain.Game {
	games := m.GamesFor(team, season)
	var pairs [][2]domain.Game
	for i := 0; i+1 < len(games); i++ {
		if calendarDaysBetween(games[i].Date, games[i+1].Date) == 1 {
			pairs = append(pairs, [2]domain.Game{games[i], games[i+1]})
		}
	}
	return pairs
}

// Teams lists every team appearing in the schedule, sorted.
func (m *Manager) Teams(season string) []string {
	set := mapset.NewSet[string]()
	for _, g := range m.pool(season) {
		set.Add(g.HomeTeam)
		set.Add(g.AwayTeam)
	}
	teams := set.ToSlice()
	sort.Strings(teams)
	return teams
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
