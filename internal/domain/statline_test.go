package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatLine_Validate(t *testing.T) {
	valid := StatLine{
		PlayerID: "lbj23",
		GameDate: date(2024, time.October, 20),
		Opponent: "GSW",
		Points:   28,
		Rebounds: 8,
	}
	tests := []struct {
		name    string
		mutate  func(*StatLine)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(*StatLine) {},
			wantErr: false,
		},
		{
			name:    "missing player id",
			mutate:  func(s *StatLine) { s.PlayerID = "" },
			wantErr: true,
		},
		{
			name:    "missing game date",
			mutate:  func(s *StatLine) { s.GameDate = time.Time{} },
			wantErr: true,
		},
		{
			name:    "missing opponent",
			mutate:  func(s *StatLine) { s.Opponent = "" },
			wantErr: true,
		},
		{
			name:    "negative points",
			mutate:  func(s *StatLine) { s.Points = -1 },
			wantErr: true,
		},
		{
			name:    "negative minutes",
			mutate:  func(s *StatLine) { s.MinutesPlayed = -0.5 },
			wantErr: true,
		},
		{
			name:    "negative free throws attempted",
			mutate:  func(s *StatLine) { s.FreeThrowsAttempted = -2 },
			wantErr: true,
		},
		{
			// Per-field checks only: cross-field consistency is not
			// the model's job.
			name: "made above attempted passes",
			mutate: func(s *StatLine) {
				s.FieldGoalsMade = 10
				s.FieldGoalsAttempted = 5
			},
			wantErr: false,
		},
		{
			name: "negative plus minus passes",
			mutate: func(s *StatLine) {
				pm := -15
				s.PlusMinus = &pm
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := valid
			tt.mutate(&line)
			if err := line.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		player  Player
		wantErr bool
	}{
		{
			name:    "valid",
			player:  Player{ID: "lbj23", Name: "LeBron James", Team: "LAL", Position: "SF"},
			wantErr: false,
		},
		{
			name:    "missing id",
			player:  Player{Name: "LeBron James", Team: "LAL", Position: "SF"},
			wantErr: true,
		},
		{
			name:    "missing team",
			player:  Player{ID: "lbj23", Name: "LeBron James", Position: "SF"},
			wantErr: true,
		},
		{
			name:    "empty",
			player:  Player{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.player.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
