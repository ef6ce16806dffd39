package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/goserg/fantasygoat/internal/scoring"
)

type App struct {
	Debug    bool   `toml:"debug_mode"`
	LogLevel string `toml:"log_level"`
	Season   string `toml:"season"`
}

type Scoring struct {
	PointsPerPoint        float64 `toml:"points_per_point"`
	PointsPerRebound      float64 `toml:"points_per_rebound"`
	PointsPerAssist       float64 `toml:"points_per_assist"`
	PointsPerSteal        float64 `toml:"points_per_steal"`
	PointsPerBlock        float64 `toml:"points_per_block"`
	PointsPerTurnover     float64 `toml:"points_per_turnover"`
	PointsPerThree        float64 `toml:"points_per_three"`
	PointsPerFGM          float64 `toml:"points_per_fgm"`
	PointsPerFGA          float64 `toml:"points_per_fga"`
	PointsPerFTM          float64 `toml:"points_per_ftm"`
	PointsPerFTA          float64 `toml:"points_per_fta"`
	PointsPerDoubleDouble float64 `toml:"points_per_double_double"`
	PointsPerTripleDouble float64 `toml:"points_per_triple_double"`
}

type Categories struct {
	Codes          []string `toml:"categories"`
	TurnoversLower bool     `toml:"turnovers_lower_is_better"`
}

type Config struct {
	App        App        `toml:"app"`
	Scoring    Scoring    `toml:"scoring"`
	Categories Categories `toml:"categories"`
}

// New loads the league config, starting from the documented defaults
// so an absent key keeps its baseline value. An empty path skips the
// file entirely. FANTASYGOAT_LOG_LEVEL overrides the file.
func New(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	if level := os.Getenv("FANTASYGOAT_LOG_LEVEL"); level != "" {
		cfg.App.LogLevel = level
	}
	return cfg, nil
}

func defaults() Config {
	base := scoring.DefaultConfig()
	baseCats := scoring.DefaultCategoryConfig()
	codes := make([]string, 0, len(baseCats.Categories))
	for _, cat := range baseCats.Categories {
		codes = append(codes, cat.String())
	}
	return Config{
		App: App{
			LogLevel: "info",
			Season:   "2024-25",
		},
		Scoring: Scoring{
			PointsPerPoint:        base.PerPoint,
			PointsPerRebound:      base.PerRebound,
			PointsPerAssist:       base.PerAssist,
			PointsPerSteal:        base.PerSteal,
			PointsPerBlock:        base.PerBlock,
			PointsPerTurnover:     base.PerTurnover,
			PointsPerThree:        base.PerThreeMade,
			PointsPerFGM:          base.PerFieldGoalMade,
			PointsPerFGA:          base.PerFieldGoalAttempt,
			PointsPerFTM:          base.PerFreeThrowMade,
			PointsPerFTA:          base.PerFreeThrowAttempt,
			PointsPerDoubleDouble: base.DoubleDoubleBonus,
			PointsPerTripleDouble: base.TripleDoubleBonus,
		},
		Categories: Categories{
			Codes:          codes,
			TurnoversLower: baseCats.TurnoversLower,
		},
	}
}

// ScoringConfig converts the file representation into calculator
// weights.
func (c Config) ScoringConfig() scoring.Config {
	return scoring.Config{
		PerPoint:            c.Scoring.PointsPerPoint,
		PerRebound:          c.Scoring.PointsPerRebound,
		PerAssist:           c.Scoring.PointsPerAssist,
		PerSteal:            c.Scoring.PointsPerSteal,
		PerBlock:            c.Scoring.PointsPerBlock,
		PerTurnover:         c.Scoring.PointsPerTurnover,
		PerThreeMade:        c.Scoring.PointsPerThree,
		PerFieldGoalMade:    c.Scoring.PointsPerFGM,
		PerFieldGoalAttempt: c.Scoring.PointsPerFGA,
		PerFreeThrowMade:    c.Scoring.PointsPerFTM,
		PerFreeThrowAttempt: c.Scoring.PointsPerFTA,
		DoubleDoubleBonus:   c.Scoring.PointsPerDoubleDouble,
		TripleDoubleBonus:   c.Scoring.PointsPerTripleDouble,
	}
}

// CategoryConfig parses the configured category codes. An unknown
// code fails loading instead of scoring as a silent zero.
func (c Config) CategoryConfig() (scoring.CategoryConfig, error) {
	cats := make([]scoring.Category, 0, len(c.Categories.Codes))
	for _, code := range c.Categories.Codes {
		cat, err := scoring.ParseCategory(code)
		if err != nil {
			return scoring.CategoryConfig{}, fmt.Errorf("categories: %w", err)
		}
		cats = append(cats, cat)
	}
	return scoring.NewCategoryConfig(cats, c.Categories.TurnoversLower), nil
}
