package game

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate: %v", err)
	}
	if cfg.MeteorCount() != 58 {
		t.Errorf("Expected 58 meteors on easy in a medium world, got %d", cfg.MeteorCount())
	}
	if cfg.Tier().EnemyCount != 15 {
		t.Errorf("Expected 15 enemies on easy, got %d", cfg.Tier().EnemyCount)
	}
}

func TestTierTable(t *testing.T) {
	tests := []struct {
		d       Difficulty
		enemies int
		meteors int
		damage  float64
	}{
		{Easy, 15, 58, 1},
		{Medium, 30, 100, 2},
		{Hard, 60, 700, 3},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Difficulty = tt.d
			if cfg.Tier().EnemyCount != tt.enemies {
				t.Errorf("Expected %d enemies, got %d", tt.enemies, cfg.Tier().EnemyCount)
			}
			if cfg.MeteorCount() != tt.meteors {
				t.Errorf("Expected %d meteors, got %d", tt.meteors, cfg.MeteorCount())
			}
			if cfg.Tier().DamageMultiplier != tt.damage {
				t.Errorf("Expected damage multiplier %v, got %v", tt.damage, cfg.Tier().DamageMultiplier)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for a missing config file")
	}
}

func TestLoadConfigPartialTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiers.json")
	data := []byte(`{"difficulty": 2, "tiers": {"2": {"enemy_count": 5}}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultTiers()[Hard]
	want.EnemyCount = 5
	if got := cfg.Tier(); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if n := cfg.MeteorCount(); n != 700 {
		t.Errorf("Expected 700 meteors, got %d", n)
	}
	if got := cfg.Tiers[Easy]; got != DefaultTiers()[Easy] {
		t.Errorf("Expected untouched tier to keep defaults, got %+v", got)
	}
}

func TestValidateTier(t *testing.T) {
	tests := []struct {
		name string
		edit func(*TierConfig)
	}{
		{"zero meteor frequency", func(tc *TierConfig) { tc.MeteorFrequency = 0 }},
		{"negative enemies", func(tc *TierConfig) { tc.EnemyCount = -1 }},
		{"zero damage multiplier", func(tc *TierConfig) { tc.DamageMultiplier = 0 }},
		{"zero health multiplier", func(tc *TierConfig) { tc.HealthMultiplier = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tier := cfg.Tiers[cfg.Difficulty]
			tt.edit(&tier)
			cfg.Tiers[cfg.Difficulty] = tier
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inertia.json")
	data := []byte(`{"world_size": 5000, "cell_size": 600, "difficulty": 2}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WorldSize != SmallWorld || cfg.CellSize != LowQuality {
		t.Errorf("Expected small world with low quality cells, got %v / %v", cfg.WorldSize, cfg.CellSize)
	}
	if cfg.Difficulty != Hard {
		t.Errorf("Expected hard difficulty, got %v", cfg.Difficulty)
	}
	if cfg.ScreenWidth != 1280 {
		t.Errorf("Expected untouched fields to keep defaults, got width %d", cfg.ScreenWidth)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"world_size": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("Expected parse error")
	}

	zero := filepath.Join(dir, "zero.json")
	if err := os.WriteFile(zero, []byte(`{"cell_size": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(zero); err == nil {
		t.Error("Expected validation error")
	}
}

func TestParseFlags(t *testing.T) {
	if d, err := ParseDifficulty("HARD"); err != nil || d != Hard {
		t.Errorf("Expected hard, got %v (%v)", d, err)
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
	if w, err := ParseWorldSize("large"); err != nil || w != LargeWorld {
		t.Errorf("Expected large world, got %v (%v)", w, err)
	}
	if q, err := ParseQuality("high"); err != nil || q != HighQuality {
		t.Errorf("Expected high quality, got %v (%v)", q, err)
	}
	if _, err := ParseQuality("ultra"); err == nil {
		t.Error("Expected error for unknown quality")
	}
}

func TestConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	var f ConfigFlags
	f.Register(fs)

	if err := fs.Parse([]string{"-difficulty", "medium", "-world", "small", "-quality", "high", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.Difficulty != Medium || cfg.WorldSize != SmallWorld || cfg.CellSize != HighQuality || cfg.Seed != 9 {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestConfigFlagsDefaults(t *testing.T) {
	var f ConfigFlags
	cfg, err := f.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorldSize != MediumWorld || cfg.Difficulty != Easy {
		t.Errorf("Expected defaults with no flags, got %+v", cfg)
	}

	f.World = "huge"
	if _, err := f.Resolve(); err == nil {
		t.Error("Expected error for an unknown world size")
	}
}

func TestConfigFlagsMissingFile(t *testing.T) {
	f := ConfigFlags{Path: filepath.Join(t.TempDir(), "typo.json")}
	if _, err := f.Resolve(); err == nil {
		t.Error("Expected error for a config path that does not exist")
	}
}
