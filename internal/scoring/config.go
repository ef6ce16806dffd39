package scoring

// Config holds the per-stat weights for a points league. Weights may
// be negative or zero; a zero weight disables that term. A zero bonus
// is the same thing as a disabled bonus.
type Config struct {
	PerPoint            float64
	PerRebound          float64
	PerAssist           float64
	PerSteal            float64
	PerBlock            float64
	PerTurnover         float64
	PerThreeMade        float64
	PerFieldGoalMade    float64
	PerFieldGoalAttempt float64
	PerFreeThrowMade    float64
	PerFreeThrowAttempt float64
	DoubleDoubleBonus   float64
	TripleDoubleBonus   float64
}

// DefaultConfig returns the standard points-league weights. Shooting
// volume terms and the double/triple-double bonuses start disabled.
func DefaultConfig() Config {
	return Config{
		PerPoint:     1.0,
		PerRebound:   1.2,
		PerAssist:    1.5,
		PerSteal:     3.0,
		PerBlock:     3.0,
		PerTurnover:  -1.0,
		PerThreeMade: 0.5,
	}
}
