package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/goserg/fantasygoat/internal/analytics"
	"github.com/goserg/fantasygoat/internal/config"
	"github.com/goserg/fantasygoat/internal/schedule"
	"github.com/goserg/fantasygoat/internal/scoring"
	"github.com/goserg/fantasygoat/internal/tracker"
)

// App wires the tracker, schedule and analyzer behind the command
// line. Everything lives in memory for the length of one invocation.
type App struct {
	log      *logrus.Logger
	cfg      config.Config
	scoring  scoring.Config
	cats     scoring.CategoryConfig
	tracker  *tracker.Tracker
	schedule *schedule.Manager
	analyzer *analytics.Analyzer
	out      io.Writer
}

func New(cfg config.Config, log *logrus.Logger) (*App, error) {
	cats, err := cfg.CategoryConfig()
	if err != nil {
		return nil, fmt.Errorf("league config: %w", err)
	}
	t := tracker.New(log)
	return &App{
		log:      log,
		cfg:      cfg,
		scoring:  cfg.ScoringConfig(),
		cats:     cats,
		tracker:  t,
		schedule: schedule.New(log),
		analyzer: analytics.New(t),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("command required")
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "player-add":
		return a.playerAdd(rest)
	case "player-list":
		return a.playerList(rest)
	case "stats-add":
		return a.statsAdd(rest)
	case "stats-show":
		return a.statsShow(rest)
	case "stats-season":
		return a.statsSeason(rest)
	case "fantasy-points":
		return a.fantasyPoints(rest)
	case "fantasy-compare":
		return a.fantasyCompare(rest)
	case "analyze-trends":
		return a.analyzeTrends(rest)
	case "analyze-consistency":
		return a.analyzeConsistency(rest)
	case "analyze-project":
		return a.analyzeProject(rest)
	case "analyze-compare":
		return a.analyzeCompare(rest)
	case "schedule-add":
		return a.scheduleAdd(rest)
	case "schedule-upcoming":
		return a.scheduleUpcoming(rest)
	case "schedule-b2b":
		return a.scheduleBackToBacks(rest)
	case "help":
		a.usage()
		return nil
	}
	a.usage()
	return fmt.Errorf("unknown command %q", cmd)
}

func (a *App) usage() {
	fmt.Fprint(a.out, `fantasygoat - fantasy basketball stat tracker

commands:
  player-add           register a player
  player-list          list registered players
  stats-add            record one game's stats for a player
  stats-show           show a player's recent games
  stats-season         show a player's season averages
  fantasy-points       score recent games under the league weights
  fantasy-compare      head-to-head category comparison of two players
  analyze-trends       recent-vs-older performance trends
  analyze-consistency  coefficient-of-variation consistency scores
  analyze-project      naive next-game projection
  analyze-compare      average-line comparison of two players
  schedule-add         add a game to the schedule
  schedule-upcoming    show upcoming games
  schedule-b2b         show a team's back-to-back games
  help                 show this help

run with -demo to preload the sample dataset.
`)
}
