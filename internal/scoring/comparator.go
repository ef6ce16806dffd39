package scoring

import "github.com/goserg/fantasygoat/internal/domain"

// ComparisonResult is a head-to-head category outcome. Every
// configured category lands in exactly one of the three buckets.
type ComparisonResult struct {
	WinsA int
	WinsB int
	Ties  int
}

// AggregateCategories totals category values over a game log.
// Counting categories are summed; percentage categories are total
// made over total attempted, never an average of per-game
// percentages. An empty log maps every configured category to 0.0.
func AggregateCategories(lines []domain.StatLine, cfg CategoryConfig) map[Category]float64 {
	totals := make(map[Category]float64, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		totals[cat] = 0.0
	}
	if len(lines) == 0 {
		return totals
	}
	for _, cat := range cfg.Categories {
		if cat.isPercentage() {
			totals[cat] = aggregatePercentage(lines, cat)
			continue
		}
		sum := 0.0
		for _, line := range lines {
			sum += cat.Value(line)
		}
		totals[cat] = sum
	}
	return totals
}

func aggregatePercentage(lines []domain.StatLine, cat Category) float64 {
	var made, attempted int
	for _, line := range lines {
		switch cat {
		case CatFieldGoalPct:
			made += line.FieldGoalsMade
			attempted += line.FieldGoalsAttempted
		case CatThreePointPct:
			made += line.ThreePointersMade
			attempted += line.ThreePointersAttempted
		case CatFreeThrowPct:
			made += line.FreeThrowsMade
			attempted += line.FreeThrowsAttempted
		}
	}
	return ratio(made, attempted)
}

// CompareCategories scores two sides category by category. Strictly
// greater wins, equal ties. The turnover direction inverts when the
// league counts fewer turnovers as better.
func CompareCategories(a, b []domain.StatLine, cfg CategoryConfig) ComparisonResult {
	totalsA := AggregateCategories(a, cfg)
	totalsB := AggregateCategories(b, cfg)

	var result ComparisonResult
	for _, cat := range cfg.Categories {
		valA := totalsA[cat]
		valB := totalsB[cat]
		if cat == CatTurnovers && cfg.TurnoversLower {
			valA, valB = valB, valA
		}
		switch {
		case valA > valB:
			result.WinsA++
		case valB > valA:
			result.WinsB++
		default:
			result.Ties++
		}
	}
	return result
}
