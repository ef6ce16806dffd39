package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameScheduled  GameStatus = "scheduled"
	GameInProgress GameStatus = "in_progress"
	GameFinal      GameStatus = "final"
)

// Game is one scheduled or finished game between two teams. Date
// carries the tip-off time, unlike StatLine.GameDate which is a bare
// calendar date.
type Game struct {
	ID        uuid.UUID
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeScore *int
	AwayScore *int
	Status    GameStatus
}

func (g Game) Validate() error {
	var err error
	if g.ID == uuid.Nil {
		err = errors.Join(err, errors.New("game id must be set"))
	}
	if g.Date.IsZero() {
		err = errors.Join(err, errors.New("game date must be set"))
	}
	if g.HomeTeam == "" {
		err = errors.Join(err, errors.New("home team must not be empty"))
	}
	if g.AwayTeam == "" {
		err = errors.Join(err, errors.New("away team must not be empty"))
	}
	if g.HomeScore != nil && *g.HomeScore < 0 {
		err = errors.Join(err, errors.New("home score must not be negative"))
	}
	if g.AwayScore != nil && *g.AwayScore < 0 {
		err = errors.Join(err, errors.New("away score must not be negative"))
	}
	return err
}

func (g Game) HasTeam(team string) bool {
	return g.HomeTeam == team || g.AwayTeam == team
}
