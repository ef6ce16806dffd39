package config

import (
	"testing"

	"github.com/goserg/fantasygoat/internal/scoring"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sc := cfg.ScoringConfig()
	if sc != scoring.DefaultConfig() {
		t.Errorf("ScoringConfig() = %+v, want defaults", sc)
	}
	cats, err := cfg.CategoryConfig()
	if err != nil {
		t.Fatalf("CategoryConfig: %v", err)
	}
	if len(cats.Categories) != 9 {
		t.Errorf("got %d default categories, want 9", len(cats.Categories))
	}
	if !cats.TurnoversLower {
		t.Error("turnovers should default to lower-is-better")
	}
}

func TestNew_FileOverridesKeepRest(t *testing.T) {
	cfg, err := New("testdata/league.toml")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sc := cfg.ScoringConfig()
	if sc.DoubleDoubleBonus != 2.5 {
		t.Errorf("DoubleDoubleBonus = %v, want 2.5", sc.DoubleDoubleBonus)
	}
	// Keys absent from the file keep their baseline.
	if sc.PerRebound != 1.2 {
		t.Errorf("PerRebound = %v, want 1.2", sc.PerRebound)
	}
	if cfg.App.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.App.LogLevel)
	}
}

func TestNew_MissingFile(t *testing.T) {
	if _, err := New("testdata/does-not-exist.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCategoryConfig_UnknownCode(t *testing.T) {
	cfg, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg.Categories.Codes = []string{"PTS", "XYZ"}
	if _, err := cfg.CategoryConfig(); err == nil {
		t.Fatal("expected error for unknown category code")
	}
}
