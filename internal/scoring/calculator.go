package scoring

import "github.com/goserg/fantasygoat/internal/domain"

const doubleDigitFloor = 10

// FantasyPoints converts one game's stat line into fantasy points
// under the given weights. A triple-double also qualifies as a
// double-double, so a line can collect both bonuses.
func FantasyPoints(line domain.StatLine, cfg Config) float64 {
	points := float64(line.Points)*cfg.PerPoint +
		float64(line.Rebounds)*cfg.PerRebound +
		float64(line.Assists)*cfg.PerAssist +
		float64(line.Steals)*cfg.PerSteal +
		float64(line.Blocks)*cfg.PerBlock +
		float64(line.Turnovers)*cfg.PerTurnover +
		float64(line.ThreePointersMade)*cfg.PerThreeMade +
		float64(line.FieldGoalsMade)*cfg.PerFieldGoalMade +
		float64(line.FieldGoalsAttempted)*cfg.PerFieldGoalAttempt +
		float64(line.FreeThrowsMade)*cfg.PerFreeThrowMade +
		float64(line.FreeThrowsAttempted)*cfg.PerFreeThrowAttempt

	if cfg.DoubleDoubleBonus != 0 && doubleDigitCategories(line) >= 2 {
		points += cfg.DoubleDoubleBonus
	}
	if cfg.TripleDoubleBonus != 0 && doubleDigitCategories(line) >= 3 {
		points += cfg.TripleDoubleBonus
	}
	return points
}

// doubleDigitCategories counts how many of points, rebounds, assists,
// steals and blocks reached double digits.
func doubleDigitCategories(line domain.StatLine) int {
	n := 0
	for _, v := range [...]int{line.Points, line.Rebounds, line.Assists, line.Steals, line.Blocks} {
		if v >= doubleDigitFloor {
			n++
		}
	}
	return n
}

func TotalPoints(lines []domain.StatLine, cfg Config) float64 {
	total := 0.0
	for _, line := range lines {
		total += FantasyPoints(line, cfg)
	}
	return total
}

// AveragePoints is 0.0 for an empty log.
func AveragePoints(lines []domain.StatLine, cfg Config) float64 {
	if len(lines) == 0 {
		return 0.0
	}
	return TotalPoints(lines, cfg) / float64(len(lines))
}
