package domain

import (
	"errors"
	"fmt"
	"time"
)

// StatLine holds one player's counting stats for a single game.
// Lines are append-only: once accepted by the tracker they are never
// mutated or deleted, so callers must not change a line after
// submitting it.
type StatLine struct {
	PlayerID string
	GameDate time.Time
	Opponent string

	MinutesPlayed float64
	Points        int
	Rebounds      int
	Assists       int
	Steals        int
	Blocks        int
	Turnovers     int

	FieldGoalsMade         int
	FieldGoalsAttempted    int
	ThreePointersMade      int
	ThreePointersAttempted int
	FreeThrowsMade         int
	FreeThrowsAttempted    int

	OffensiveRebounds int
	DefensiveRebounds int
	PersonalFouls     int
	PlusMinus         *int
}

// Validate checks identity fields and that every counting stat is
// non-negative. Each field is checked on its own: made vs attempted
// is intentionally not cross-checked.
func (s StatLine) Validate() error {
	var err error
	if s.PlayerID == "" {
		err = errors.Join(err, errors.New("player id must not be empty"))
	}
	if s.GameDate.IsZero() {
		err = errors.Join(err, errors.New("game date must be set"))
	}
	if s.Opponent == "" {
		err = errors.Join(err, errors.New("opponent must not be empty"))
	}
	if s.MinutesPlayed < 0 {
		err = errors.Join(err, errors.New("minutes played must not be negative"))
	}
	counts := []struct {
		name  string
		value int
	}{
		{"points", s.Points},
		{"rebounds", s.Rebounds},
		{"assists", s.Assists},
		{"steals", s.Steals},
		{"blocks", s.Blocks},
		{"turnovers", s.Turnovers},
		{"field goals made", s.FieldGoalsMade},
		{"field goals attempted", s.FieldGoalsAttempted},
		{"three pointers made", s.ThreePointersMade},
		{"three pointers attempted", s.ThreePointersAttempted},
		{"free throws made", s.FreeThrowsMade},
		{"free throws attempted", s.FreeThrowsAttempted},
		{"offensive rebounds", s.OffensiveRebounds},
		{"defensive rebounds", s.DefensiveRebounds},
		{"personal fouls", s.PersonalFouls},
	}
	for _, c := range counts {
		if c.value < 0 {
			err = errors.Join(err, fmt.Errorf("%s must not be negative", c.name))
		}
	}
	return err
}
