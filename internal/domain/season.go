package domain

// SeasonSummary is a player's aggregated line over a set of games. It
// is derived on every query and never stored. The season field is
// descriptive only: it does not restrict which games were aggregated.
// Shooting percentages are nil when the player attempted none.
type SeasonSummary struct {
	PlayerID    string
	Season      string
	GamesPlayed int

	AvgPoints    float64
	AvgRebounds  float64
	AvgAssists   float64
	AvgSteals    float64
	AvgBlocks    float64
	AvgTurnovers float64
	AvgMinutes   float64

	FieldGoalPct  *float64
	ThreePointPct *float64
	FreeThrowPct  *float64

	TotalPoints   int
	TotalRebounds int
	TotalAssists  int
	TotalSteals   int
	TotalBlocks   int
}
