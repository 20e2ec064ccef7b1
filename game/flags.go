package game

import (
	"flag"
	"fmt"
)

// ConfigFlags are the command-line options shared by every command
type ConfigFlags struct {
	Path       string
	Difficulty string
	World      string
	Quality    string
	Seed       int64
}

// Register adds the flags to fs
func (f *ConfigFlags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Path, "config", "", "JSON config file overlaid on the defaults")
	fs.StringVar(&f.Difficulty, "difficulty", "", "easy, medium or hard")
	fs.StringVar(&f.World, "world", "", "world size: small, medium or large")
	fs.StringVar(&f.Quality, "quality", "", "grid quality: low, medium or high")
	fs.Int64Var(&f.Seed, "seed", 0, "field generation seed (0 = random)")
}

// Resolve loads the config file, if any, then applies the flags given
func (f *ConfigFlags) Resolve() (Config, error) {
	cfg := DefaultConfig()
	if f.Path != "" {
		loaded, err := LoadConfig(f.Path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.Difficulty != "" {
		d, err := ParseDifficulty(f.Difficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = d
	}
	if f.World != "" {
		w, err := ParseWorldSize(f.World)
		if err != nil {
			return cfg, err
		}
		cfg.WorldSize = w
	}
	if f.Quality != "" {
		q, err := ParseQuality(f.Quality)
		if err != nil {
			return cfg, err
		}
		cfg.CellSize = q
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}
