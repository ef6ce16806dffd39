package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/goserg/fantasygoat/internal/scoring"
)

func (a *App) fantasyPoints(args []string) error {
	fs := flag.NewFlagSet("fantasy-points", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	n := fs.Int("n", 10, "number of recent games")
	if err := fs.Parse(args); err != nil {
		return err
	}

	games := a.tracker.LastNGames(*id, *n)
	if len(games) == 0 {
		fmt.Fprintf(a.out, "no games found for player %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "fantasy points for %s (last %d games):\n", a.playerName(*id), len(games))
	for _, g := range games {
		fp := scoring.FantasyPoints(g, a.scoring)
		fmt.Fprintf(a.out, "%-12s vs %-5s %6.1f FPTS\n",
			g.GameDate.Format(time.DateOnly), g.Opponent, fp)
	}
	fmt.Fprintf(a.out, "average: %.1f FPTS\n", scoring.AveragePoints(games, a.scoring))
	return nil
}

func (a *App) fantasyCompare(args []string) error {
	fs := flag.NewFlagSet("fantasy-compare", flag.ContinueOnError)
	idA := fs.String("a", "", "first player identifier")
	idB := fs.String("b", "", "second player identifier")
	n := fs.Int("n", 10, "number of recent games per side")
	if err := fs.Parse(args); err != nil {
		return err
	}

	gamesA := a.tracker.LastNGames(*idA, *n)
	gamesB := a.tracker.LastNGames(*idB, *n)
	totalsA := scoring.AggregateCategories(gamesA, a.cats)
	totalsB := scoring.AggregateCategories(gamesB, a.cats)
	result := scoring.CompareCategories(gamesA, gamesB, a.cats)

	fmt.Fprintf(a.out, "category comparison: %s vs %s\n", a.playerName(*idA), a.playerName(*idB))
	for _, cat := range a.cats.Categories {
		fmt.Fprintf(a.out, "%-5s %8.2f  %8.2f\n", cat, totalsA[cat], totalsB[cat])
	}
	fmt.Fprintf(a.out, "result: %d-%d-%d (W-L-T for %s)\n",
		result.WinsA, result.WinsB, result.Ties, a.playerName(*idA))
	return nil
}
