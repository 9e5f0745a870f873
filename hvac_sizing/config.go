package hvac_sizing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir string // directory of the result files
	Workers   int    // units sized at once, 0 for no limit
	Debug     bool   // development logging
	XLSX      bool   // also write result_sizing.xlsx
	PDF       bool   // also write result_sizing.pdf
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Workers:   4,
	}
}

/*
Load the configuration.

	Args:
		env_files: .env files to read, ".env" when empty

	Returns:
		configuration

	Notes:
		Missing .env files are ignored. Variables already set in the
		environment win over the files.
*/
func LoadConfig(env_files ...string) (*Config, error) {
	if err := godotenv.Load(env_files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := DefaultConfig()

	if v := os.Getenv("HVAC_SIZING_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	var err error
	if cfg.Workers, err = env_int("HVAC_SIZING_WORKERS", cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.Debug, err = env_bool("HVAC_SIZING_DEBUG", cfg.Debug); err != nil {
		return nil, err
	}
	if cfg.XLSX, err = env_bool("HVAC_SIZING_XLSX", cfg.XLSX); err != nil {
		return nil, err
	}
	if cfg.PDF, err = env_bool("HVAC_SIZING_PDF", cfg.PDF); err != nil {
		return nil, err
	}

	return cfg, nil
}

func env_int(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidInput, key, v)
	}
	return n, nil
}

func env_bool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidInput, key, v)
	}
	return b, nil
}
