package cli

import (
	"flag"
	"fmt"
	"sort"

	"github.com/goserg/fantasygoat/internal/normalize"
)

func (a *App) analyzeTrends(args []string) error {
	fs := flag.NewFlagSet("analyze-trends", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	recent := fs.Int("recent", 10, "recent window size")
	window := fs.Int("window", 20, "total comparison window size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	trends := a.analyzer.TrendingStats(*id, *recent, *window)
	if len(trends) == 0 {
		fmt.Fprintf(a.out, "insufficient data to analyze trends for %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "performance trends for %s:\n", a.playerName(*id))
	for _, key := range sortedKeys(trends) {
		fmt.Fprintf(a.out, "%-20s %+.1f%%\n", key, trends[key])
	}
	return nil
}

func (a *App) analyzeConsistency(args []string) error {
	fs := flag.NewFlagSet("analyze-consistency", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	n := fs.Int("n", 20, "number of recent games")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scores := a.analyzer.ConsistencyScore(*id, *n)
	if len(scores) == 0 {
		fmt.Fprintf(a.out, "insufficient data to analyze consistency for %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "consistency for %s (lower is steadier):\n", a.playerName(*id))
	for _, key := range sortedKeys(scores) {
		fmt.Fprintf(a.out, "%-20s %5.1f%%\n", key, scores[key])
	}
	return nil
}

func (a *App) analyzeProject(args []string) error {
	fs := flag.NewFlagSet("analyze-project", flag.ContinueOnError)
	id := fs.String("id", "", "player identifier")
	opponent := fs.String("opponent", "", "opposing team abbreviation")
	n := fs.Int("n", 10, "number of recent games")
	if err := fs.Parse(args); err != nil {
		return err
	}

	projection := a.analyzer.ProjectNextGame(*id, normalize.TeamCode(*opponent), *n)
	if projection == nil {
		fmt.Fprintf(a.out, "no games to project from for %s\n", *id)
		return nil
	}
	fmt.Fprintf(a.out, "projection for %s vs %s:\n", a.playerName(*id), projection.Opponent)
	fmt.Fprintf(a.out, "  points:   %.1f (±%.1f)\n", projection.Points, projection.PointsStdDev)
	fmt.Fprintf(a.out, "  rebounds: %.1f\n", projection.Rebounds)
	fmt.Fprintf(a.out, "  assists:  %.1f\n", projection.Assists)
	fmt.Fprintf(a.out, "  steals:   %.1f\n", projection.Steals)
	fmt.Fprintf(a.out, "  blocks:   %.1f\n", projection.Blocks)
	return nil
}

func (a *App) analyzeCompare(args []string) error {
	fs := flag.NewFlagSet("analyze-compare", flag.ContinueOnError)
	idA := fs.String("a", "", "first player identifier")
	idB := fs.String("b", "", "second player identifier")
	n := fs.Int("n", 20, "number of recent games per side")
	if err := fs.Parse(args); err != nil {
		return err
	}

	comparison := a.analyzer.ComparePlayers(*idA, *idB, *n)
	if comparison == nil {
		fmt.Fprintln(a.out, "insufficient data to compare players")
		return nil
	}
	nameA, nameB := a.playerName(*idA), a.playerName(*idB)
	fmt.Fprintf(a.out, "player comparison: %s vs %s\n", nameA, nameB)
	rows := []struct {
		label   string
		a, b, d float64
	}{
		{"points", comparison.PlayerA.Points, comparison.PlayerB.Points, comparison.Diff.Points},
		{"rebounds", comparison.PlayerA.Rebounds, comparison.PlayerB.Rebounds, comparison.Diff.Rebounds},
		{"assists", comparison.PlayerA.Assists, comparison.PlayerB.Assists, comparison.Diff.Assists},
	}
	for _, r := range rows {
		fmt.Fprintf(a.out, "%-10s %6.1f %6.1f (%+.1f)\n", r.label, r.a, r.b, r.d)
	}
	return nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
