package domain

import "errors"

type PlayerStatus string

const (
	StatusActive  PlayerStatus = "active"
	StatusInjured PlayerStatus = "injured"
	StatusOut     PlayerStatus = "out"
)

type Player struct {
	ID           string
	Name         string
	Team         string
	Position     string
	JerseyNumber *int
	Status       PlayerStatus
}

func (p Player) Validate() error {
	var err error
	if p.ID == "" {
		err = errors.Join(err, errors.New("player id must not be empty"))
	}
	if p.Name == "" {
		err = errors.Join(err, errors.New("player name must not be empty"))
	}
	if p.Team == "" {
		err = errors.Join(err, errors.New("player team must not be empty"))
	}
	if p.Position == "" {
		err = errors.Join(err, errors.New("player position must not be empty"))
	}
	return err
}
