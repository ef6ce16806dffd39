package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/goserg/fantasygoat/internal/domain"
	"github.com/goserg/fantasygoat/internal/normalize"
)

func (a *App) statsAdd(args []string) error {
	fs := flag.NewFlagSet("stats-add", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	date := fs.String("date", "", "game date (YYYY-MM-DD)")
	opponent := fs.String("opponent", "", "opponent team abbreviation")
	minutes := fs.Float64("minutes", 0, "minutes played")
	points := fs.Int("points", 0, "points")
	rebounds := fs.Int("rebounds", 0, "rebounds")
	assists := fs.Int("assists", 0, "assists")
	steals := fs.Int("steals", 0, "steals")
	blocks := fs.Int("blocks", 0, "blocks")
	turnovers := fs.Int("turnovers", 0, "turnovers")
	fgm := fs.Int("fgm", 0, "field goals made")
	fga := fs.Int("fga", 0, "field goals attempted")
	tpm := fs.Int("threes", 0, "three-pointers made")
	tpa := fs.Int("three-attempts", 0, "three-pointers attempted")
	ftm := fs.Int("ftm", 0, "free throws made")
	fta := fs.Int("fta", 0, "free throws attempted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gameDate, err := time.Parse(time.DateOnly, *date)
	if err != nil {
		return fmt.Errorf("parse game date: %w", err)
	}
	line := domain.StatLine{
		PlayerID:               *id,
		GameDate:               gameDate,
		Opponent:               normalize.TeamCode(*opponent),
		MinutesPlayed:          *minutes,
		Points:                 *points,
		Rebounds:               *rebounds,
		Assists:                *assists,
		Steals:                 *steals,
		Blocks:                 *blocks,
		Turnovers:              *turnovers,
		FieldGoalsMade:         *fgm,
		FieldGoalsAttempted:    *fga,
		ThreePointersMade:      *tpm,
		ThreePointersAttempted: *tpa,
		FreeThrowsMade:         *ftm,
		FreeThrowsAttempted:    *fta,
	}
	if err := a.tracker.AddGameStats(line); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added stats for %s vs %s on %s\n", *id, line.Opponent, *date)
	return nil
}

func (a *App) statsShow(args []string) error {
	fs := flag.NewFlagSet("stats-show", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	n := fs.Int("n", 10, "number of recent games")
	if err := fs.Parse(args); err != nil {
		return err
	}

	games := a.tracker.LastNGames(*id, *n)
	if len(games) == 0 {
		fmt.Fprintf(a.out, "no statistics found for player %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "recent games for %s:\n", a.playerName(*id))
	fmt.Fprintf(a.out, "%-12s %-5s %5s %4s %4s %4s %4s %4s\n",
		"DATE", "OPP", "MIN", "PTS", "REB", "AST", "STL", "BLK")
	for _, g := range games {
		fmt.Fprintf(a.out, "%-12s %-5s %5.1f %4d %4d %4d %4d %4d\n",
			g.GameDate.Format(time.DateOnly), g.Opponent, g.MinutesPlayed,
			g.Points, g.Rebounds, g.Assists, g.Steals, g.Blocks)
	}
	return nil
}

func (a *App) statsSeason(args []string) error {
	fs := flag.NewFlagSet("stats-season", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	season := fs.String("season", a.cfg.App.Season, "season label")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary := a.tracker.SeasonStats(*id, *season, nil)
	if summary == nil {
		fmt.Fprintf(a.out, "no season statistics found for player %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "%s season stats for %s:\n", summary.Season, a.playerName(*id))
	fmt.Fprintf(a.out, "games played: %d\n", summary.GamesPlayed)
	fmt.Fprintf(a.out, "  points:   %.1f\n", summary.AvgPoints)
	fmt.Fprintf(a.out, "  rebounds: %.1f\n", summary.AvgRebounds)
	fmt.Fprintf(a.out, "  assists:  %.1f\n", summary.AvgAssists)
	fmt.Fprintf(a.out, "  steals:   %.1f\n", summary.AvgSteals)
	fmt.Fprintf(a.out, "  blocks:   %.1f\n", summary.AvgBlocks)
	fmt.Fprintf(a.out, "  minutes:  %.1f\n", summary.AvgMinutes)
	if summary.FieldGoalPct != nil {
		fmt.Fprintf(a.out, "  FG%%: %.1f\n", *summary.FieldGoalPct*100)
	}
	if summary.ThreePointPct != nil {
		fmt.Fprintf(a.out, "  3P%%: %.1f\n", *summary.ThreePointPct*100)
	}
	if summary.FreeThrowPct != nil {
		fmt.Fprintf(a.out, "  FT%%: %.1f\n", *summary.FreeThrowPct*100)
	}
	return nil
}

func (a *App) playerName(id string) string {
	if p, ok := a.tracker.Player(id); ok {
		return p.Name
	}
	return id
}
