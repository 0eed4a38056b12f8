package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	return load(customPath, "minesweeper.yaml", defaultMinesweeperYAML, DefaultMinesweeperConfig)
}

// LoadGemGem loads gem swap configuration.
// Search order: customPath -> ~/.arcade/configs/gemgem.yaml -> ./configs/gemgem.yaml -> embedded default
func LoadGemGem(customPath string) (GemGemConfig, error) {
	return load(customPath, "gemgem.yaml", defaultGemGemYAML, DefaultGemGemConfig)
}

// load decodes the first usable file on the search path over a copy of the
// built-in defaults, so files may override only the keys they care about.
// A custom path that fails is an error; the other locations are skipped
// when missing or invalid.
func load[T validator](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath, fallback())
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := decodeFile(path, fallback()); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil
	}
	return cfg, nil
}

func decodeFile[T any](path string, base T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return base, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
