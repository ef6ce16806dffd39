package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goserg/fantasygoat/internal/domain"
	"github.com/goserg/fantasygoat/internal/normalize"
)

const gameTimeLayout = "2006-01-02 15:04"

func (a *App) scheduleAdd(args []string) error {
	fs := flag.NewFlagSet("schedule-add", flag.ContinueOnError)
	date := fs.String("date", "", "game date and time (YYYY-MM-DD HH:MM)")
	home := fs.String("home", "", "home team abbreviation")
	away := fs.String("away", "", "away team abbreviation")
	season := fs.String("season", a.cfg.App.Season, "season label")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gameDate, err := time.Parse(gameTimeLayout, *date)
	if err != nil {
		return fmt.Errorf("parse game date: %w", err)
	}
	g := domain.Game{
		ID:       uuid.New(),
		Date:     gameDate,
		HomeTeam: normalize.TeamCode(*home),
		AwayTeam: normalize.TeamCode(*away),
		Status:   domain.GameScheduled,
	}
	if err := a.schedule.AddGame(*season, g); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added game: %s @ %s on %s\n", g.AwayTeam, g.HomeTeam, *date)
	return nil
}

func (a *App) scheduleUpcoming(args []string) error {
	fs := flag.NewFlagSet("schedule-upcoming", flag.ContinueOnError)
	days := fs.Int("days", 7, "number of days to look ahead")
	team := fs.String("team", "", "filter by team abbreviation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	games := a.schedule.Upcoming(time.Now(), *days, normalize.TeamCode(*team))
	if len(games) == 0 {
		fmt.Fprintln(a.out, "no upcoming games found")
		return nil
	}
	for _, g := range games {
		fmt.Fprintf(a.out, "%s - %s @ %s\n", g.Date.Format(gameTimeLayout), g.AwayTeam, g.HomeTeam)
	}
	return nil
}

func (a *App) scheduleBackToBacks(args []string) error {
	fs := flag.NewFlagSet("schedule-b2b", flag.ContinueOnError)
	team := fs.String("team", "", "team abbreviation")
	season := fs.String("season", "", "season label, empty for all")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pairs := a.schedule.BackToBacks(normalize.TeamCode(*team), *season)
	if len(pairs) == 0 {
		fmt.Fprintf(a.out, "no back-to-back games for %s\n", *team)
		return nil
	}
	for _, pair := range pairs {
		fmt.Fprintf(a.out, "%s then %s\n",
			describeGame(pair[0]), describeGame(pair[1]))
	}
	return nil
}

func describeGame(g domain.Game) string {
	return fmt.Sprintf("%s @ %s (%s)", g.AwayTeam, g.HomeTeam, g.Date.Format(time.DateOnly))
}
