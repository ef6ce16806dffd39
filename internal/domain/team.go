package domain

import (
	"errors"
	"fmt"
)

// FantasyTeam is one owner's roster in a fantasy league.
type FantasyTeam struct {
	ID        string
	Name      string
	Owner     string
	LeagueID  string
	PlayerIDs []string

	Wins   int
	Losses int
	Ties   int
}

func (t FantasyTeam) Validate() error {
	var err error
	if t.ID == "" {
		err = errors.Join(err, errors.New("team id must not be empty"))
	}
	if t.Name == "" {
		err = errors.Join(err, errors.New("team name must not be empty"))
	}
	if t.Owner == "" {
		err = errors.Join(err, errors.New("team owner must not be empty"))
	}
	if t.LeagueID == "" {
		err = errors.Join(err, errors.New("league id must not be empty"))
	}
	return err
}

type League struct {
	ID         string
	Name       string
	Season     string
	Format     string
	NumTeams   int
	RosterSize int
}

func (l League) Validate() error {
	var err error
	if l.ID == "" {
		err = errors.Join(err, errors.New("league id must not be empty"))
	}
	if l.Name == "" {
		err = errors.Join(err, errors.New("league name must not be empty"))
	}
	if l.NumTeams < 2 {
		err = errors.Join(err, fmt.Errorf("league needs at least 2 teams, got %d", l.NumTeams))
	}
	if l.RosterSize < 1 {
		err = errors.Join(err, fmt.Errorf("roster size must be at least 1, got %d", l.RosterSize))
	}
	return err
}
