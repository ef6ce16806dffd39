package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goserg/fantasygoat/internal/domain"
)

// SeedDemo loads a small sample dataset so the query commands have
// something to chew on without a persistence layer.
func (a *App) SeedDemo() error {
	jersey23, jersey35 := 23, 35
	players := []domain.Player{
		{ID: "lbj23", Name: "LeBron James", Team: "LAL", Position: "SF", JerseyNumber: &jersey23},
		{ID: "kd35", Name: "Kevin Durant", Team: "PHX", Position: "SF", JerseyNumber: &jersey35},
	}
	for _, p := range players {
		if err := a.tracker.AddPlayer(p); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	}

	day := func(d int) time.Time { return time.Date(2024, time.October, d, 0, 0, 0, 0, time.UTC) }
	lines := []domain.StatLine{
		{
			PlayerID: "lbj23", GameDate: day(15), Opponent: "DEN",
			MinutesPlayed: 33.0, Points: 20, Rebounds: 5, Assists: 6, Steals: 1, Turnovers: 2,
			FieldGoalsMade: 8, FieldGoalsAttempted: 17, ThreePointersMade: 1, ThreePointersAttempted: 4,
		},
		{
			PlayerID: "lbj23", GameDate: day(17), Opponent: "MIA",
			MinutesPlayed: 31.5, Points: 22, Rebounds: 6, Assists: 5, Steals: 1, Blocks: 1, Turnovers: 3,
			FieldGoalsMade: 9, FieldGoalsAttempted: 19, ThreePointersMade: 2, ThreePointersAttempted: 6,
		},
		{
			PlayerID: "lbj23", GameDate: day(20), Opponent: "GSW",
			MinutesPlayed: 35.5, Points: 28, Rebounds: 8, Assists: 7, Steals: 2, Blocks: 1, Turnovers: 3,
			FieldGoalsMade: 10, FieldGoalsAttempted: 20, ThreePointersMade: 3, ThreePointersAttempted: 8,
		},
		{
			PlayerID: "lbj23", GameDate: day(22), Opponent: "LAC",
			MinutesPlayed: 32.0, Points: 25, Rebounds: 6, Assists: 9, Steals: 1, Turnovers: 2,
			FieldGoalsMade: 9, FieldGoalsAttempted: 18, ThreePointersMade: 2, ThreePointersAttempted: 5,
		},
		{
			PlayerID: "lbj23", GameDate: day(24), Opponent: "PHX",
			MinutesPlayed: 34.0, Points: 30, Rebounds: 10, Assists: 8, Steals: 2, Blocks: 1, Turnovers: 4,
			FieldGoalsMade: 11, FieldGoalsAttempted: 22, ThreePointersMade: 4, ThreePointersAttempted: 9,
		},
		{
			PlayerID: "kd35", GameDate: day(19), Opponent: "SAS",
			MinutesPlayed: 36.0, Points: 32, Rebounds: 7, Assists: 4, Blocks: 2, Turnovers: 2,
			FieldGoalsMade: 12, FieldGoalsAttempted: 21, ThreePointersMade: 3, ThreePointersAttempted: 7,
			FreeThrowsMade: 5, FreeThrowsAttempted: 5,
		},
		{
			PlayerID: "kd35", GameDate: day(21), Opponent: "DAL",
			MinutesPlayed: 34.5, Points: 27, Rebounds: 6, Assists: 5, Steals: 1, Blocks: 1, Turnovers: 3,
			FieldGoalsMade: 10, FieldGoalsAttempted: 19, ThreePointersMade: 2, ThreePointersAttempted: 5,
			FreeThrowsMade: 5, FreeThrowsAttempted: 6,
		},
		{
			PlayerID: "kd35", GameDate: day(24), Opponent: "LAL",
			MinutesPlayed: 37.0, Points: 35, Rebounds: 9, Assists: 6, Steals: 1, Blocks: 3, Turnovers: 2,
			FieldGoalsMade: 13, FieldGoalsAttempted: 24, ThreePointersMade: 4, ThreePointersAttempted: 8,
			FreeThrowsMade: 5, FreeThrowsAttempted: 5,
		},
	}
	for _, line := range lines {
		if err := a.tracker.AddGameStats(line); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	}

	base := time.Now().AddDate(0, 0, 1)
	games := []domain.Game{
		{ID: uuid.New(), Date: base, HomeTeam: "LAL", AwayTeam: "GSW", Status: domain.GameScheduled},
		{ID: uuid.New(), Date: base.AddDate(0, 0, 1), HomeTeam: "PHX", AwayTeam: "LAL", Status: domain.GameScheduled},
		{ID: uuid.New(), Date: base.AddDate(0, 0, 3), HomeTeam: "LAL", AwayTeam: "BOS", Status: domain.GameScheduled},
	}
	for _, g := range games {
		if err := a.schedule.AddGame(a.cfg.App.Season, g); err != nil {
			return fmt.Errorf("seed demo: %w", err)
		}
	}
	return nil
}
