package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/goserg/fantasygoat/internal/domain"
)

func sampleLine() domain.StatLine {
	return domain.StatLine{
		PlayerID:          "test_001",
		GameDate:          time.Date(2024, time.October, 26, 0, 0, 0, 0, time.UTC),
		Opponent:          "GSW",
		Points:            25,
		Rebounds:          8,
		Assists:           6,
		Steals:            2,
		Blocks:            1,
		Turnovers:         3,
		ThreePointersMade: 3,
	}
}

func TestFantasyPoints(t *testing.T) {
	tests := []struct {
		name string
		line domain.StatLine
		cfg  Config
		want float64
	}{
		{
			// 25 + 9.6 + 9 + 6 + 3 - 3 + 1.5
			name: "default weights",
			line: sampleLine(),
			cfg:  DefaultConfig(),
			want: 51.1,
		},
		{
			name: "zero line",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW"},
			cfg:  DefaultConfig(),
			want: 0,
		},
		{
			name: "shooting volume weights",
			line: domain.StatLine{
				PlayerID:            "p",
				Opponent:            "GSW",
				FieldGoalsMade:      10,
				FieldGoalsAttempted: 20,
				FreeThrowsMade:      5,
				FreeThrowsAttempted: 6,
			},
			cfg: Config{
				PerFieldGoalMade:    2,
				PerFieldGoalAttempt: -0.5,
				PerFreeThrowMade:    1,
				PerFreeThrowAttempt: -0.25,
			},
			want: 10*2 - 20*0.5 + 5*1 - 6*0.25,
		},
		{
			name: "double double bonus",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW", Points: 20, Rebounds: 10, Assists: 5},
			cfg: Config{
				PerPoint:          1,
				DoubleDoubleBonus: 2,
			},
			want: 22,
		},
		{
			name: "triple double collects both bonuses",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW", Points: 20, Rebounds: 10, Assists: 10},
			cfg: Config{
				PerPoint:          1,
				DoubleDoubleBonus: 2,
				TripleDoubleBonus: 5,
			},
			want: 27,
		},
		{
			name: "zero bonus skips qualification",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW", Points: 30, Rebounds: 15, Assists: 12},
			cfg:  Config{PerPoint: 1},
			want: 30,
		},
		{
			name: "steals and blocks count toward double digits",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW", Steals: 10, Blocks: 10},
			cfg: Config{
				DoubleDoubleBonus: 3,
			},
			want: 3,
		},
		{
			name: "negative bonus still applies",
			line: domain.StatLine{PlayerID: "p", Opponent: "GSW", Points: 10, Rebounds: 10},
			cfg: Config{
				DoubleDoubleBonus: -2,
			},
			want: -2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FantasyPoints(tt.line, tt.cfg); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FantasyPoints() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalPoints(t *testing.T) {
	lines := []domain.StatLine{sampleLine(), sampleLine()}
	got := TotalPoints(lines, DefaultConfig())
	if math.Abs(got-102.2) > 1e-9 {
		t.Errorf("TotalPoints() = %v, want 102.2", got)
	}
}

func TestAveragePoints(t *testing.T) {
	lines := []domain.StatLine{sampleLine(), sampleLine()}
	got := AveragePoints(lines, DefaultConfig())
	if math.Abs(got-51.1) > 1e-9 {
		t.Errorf("AveragePoints() = %v, want 51.1", got)
	}
}

func TestAveragePoints_Empty(t *testing.T) {
	if got := AveragePoints(nil, DefaultConfig()); got != 0.0 {
		t.Errorf("AveragePoints(nil) = %v, want exactly 0.0", got)
	}
	if got := AveragePoints([]domain.StatLine{}, DefaultConfig()); got != 0.0 {
		t.Errorf("AveragePoints(empty) = %v, want exactly 0.0", got)
	}
}
