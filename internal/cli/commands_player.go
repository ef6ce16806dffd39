package cli

import (
	"flag"
	"fmt"

	"github.com/goserg/fantasygoat/internal/domain"
	"github.com/goserg/fantasygoat/internal/normalize"
)

func (a *App) playerAdd(args []string) error {
	fs := flag.NewFlagSet("player-add", flag.ContinueOnError)
	id := fs.String("id", "", "unique player identifier")
	name := fs.String("name", "", "player name")
	team := fs.String("team", "", "team abbreviation")
	position := fs.String("position", "", "position (PG, SG, SF, PF, C)")
	jersey := fs.Int("jersey", -1, "jersey number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p := domain.Player{
		ID:       *id,
		Name:     *name,
		Team:     normalize.TeamCode(*team),
		Position: *position,
	}
	if *jersey >= 0 {
		p.JerseyNumber = jersey
	}
	if err := a.tracker.AddPlayer(p); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added player %s (%s)\n", p.Name, p.Team)
	return nil
}

func (a *App) playerList(args []string) error {
	fs := flag.NewFlagSet("player-list", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	players := a.tracker.Players()
	if len(players) == 0 {
		fmt.Fprintln(a.out, "no players found")
		return nil
	}
	for _, p := range players {
		fmt.Fprintf(a.out, "%-30s %-5s %-3s %s\n", p.Name, p.Team, p.Position, p.Status)
	}
	return nil
}
