package scoring

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/fantasygoat/internal/domain"
)

// Category is one scoring category in a head-to-head category league.
type Category int

const (
	CatPoints Category = iota
	CatRebounds
	CatAssists
	CatSteals
	CatBlocks
	CatTurnovers
	CatThreesMade
	CatFieldGoalsMade
	CatFieldGoalsAttempted
	CatFreeThrowsMade
	CatFreeThrowsAttempted
	CatFieldGoalPct
	CatThreePointPct
	CatFreeThrowPct
)

var categoryCodes = map[Category]string{
	CatPoints:              "PTS",
	CatRebounds:            "REB",
	CatAssists:             "AST",
	CatSteals:              "STL",
	CatBlocks:              "BLK",
	CatTurnovers:           "TO",
	CatThreesMade:          "3PM",
	CatFieldGoalsMade:      "FGM",
	CatFieldGoalsAttempted: "FGA",
	CatFreeThrowsMade:      "FTM",
	CatFreeThrowsAttempted: "FTA",
	CatFieldGoalPct:        "FG%",
	CatThreePointPct:       "3P%",
	CatFreeThrowPct:        "FT%",
}

func (c Category) String() string {
	code, ok := categoryCodes[c]
	if !ok {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return code
}

// ParseCategory maps a league code ("PTS", "FG%", ...) to a Category.
// Unknown codes are an error, never a silent zero-valued category.
func ParseCategory(code string) (Category, error) {
	for cat, c := range categoryCodes {
		if c == code {
			return cat, nil
		}
	}
	return 0, fmt.Errorf("unknown category code %q", code)
}

// Value reads the category's value from a single stat line. The three
// percentage categories are per-game ratios here; percentages over a
// whole game log come from AggregateCategories, which works from the
// summed makes and attempts instead.
func (c Category) Value(line domain.StatLine) float64 {
	switch c {
	case CatPoints:
		return float64(line.Points)
	case CatRebounds:
		return float64(line.Rebounds)
	case CatAssists:
		return float64(line.Assists)
	case CatSteals:
		return float64(line.Steals)
	case CatBlocks:
		return float64(line.Blocks)
	case CatTurnovers:
		return float64(line.Turnovers)
	case CatThreesMade:
		return float64(line.ThreePointersMade)
	case CatFieldGoalsMade:
		return float64(line.FieldGoalsMade)
	case CatFieldGoalsAttempted:
		return float64(line.FieldGoalsAttempted)
	case CatFreeThrowsMade:
		return float64(line.FreeThrowsMade)
	case CatFreeThrowsAttempted:
		return float64(line.FreeThrowsAttempted)
	case CatFieldGoalPct:
		return ratio(line.FieldGoalsMade, line.FieldGoalsAttempted)
	case CatThreePointPct:
		return ratio(line.ThreePointersMade, line.ThreePointersAttempted)
	case CatFreeThrowPct:
		return ratio(line.FreeThrowsMade, line.FreeThrowsAttempted)
	}
	return 0
}

func (c Category) isPercentage() bool {
	switch c {
	case CatFieldGoalPct, CatThreePointPct, CatFreeThrowPct:
		return true
	}
	return false
}

func ratio(made, attempted int) float64 {
	if attempted == 0 {
		return 0.0
	}
	return float64(made) / float64(attempted)
}

// CategoryConfig lists the categories a league scores, in the order
// they should be reported, plus the turnover direction.
type CategoryConfig struct {
	Categories []Category
	// TurnoversLower means fewer turnovers win the TO category.
	TurnoversLower bool
}

// NewCategoryConfig drops duplicate categories while keeping the
// order the caller listed them in.
func NewCategoryConfig(categories []Category, turnoversLower bool) CategoryConfig {
	seen := mapset.NewSet[Category]()
	ordered := make([]Category, 0, len(categories))
	for _, cat := range categories {
		if seen.Add(cat) {
			ordered = append(ordered, cat)
		}
	}
	return CategoryConfig{
		Categories:     ordered,
		TurnoversLower: turnoversLower,
	}
}

// DefaultCategoryConfig is the common 9-category league.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		Categories: []Category{
			CatPoints,
			CatRebounds,
			CatAssists,
			CatSteals,
			CatBlocks,
			CatFieldGoalPct,
			CatFreeThrowPct,
			CatThreesMade,
			CatTurnovers,
		},
		TurnoversLower: true,
	}
}
