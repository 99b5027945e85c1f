package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RetrievalConfig tunes the chunk scoring blend. The weights and the fuzzy
// threshold were chosen empirically; they are configuration, not constants
// the rest of the system depends on.
type RetrievalConfig struct {
	TFIDFWeight      float64 `yaml:"tfidf_weight"`
	FuzzyWeight      float64 `yaml:"fuzzy_weight"`
	KeywordWeight    float64 `yaml:"keyword_weight"`
	ChunkWeight      float64 `yaml:"chunk_weight"`
	FuzzyMaxDistance float64 `yaml:"fuzzy_max_distance"`
	TopK             int     `yaml:"top_k"`
	// TopRender is how many deduplicated chunks the fallback answer shows.
	TopRender int `yaml:"top_render"`
	// MinSignal is the floor on the content-derived score portion below
	// which a query is treated as matching nothing.
	MinSignal float64 `yaml:"min_signal"`
}

// HistoryConfig configures the per-session conversation log.
type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// TypingConfig configures the cosmetic typing-delay helper.
type TypingConfig struct {
	BaseMillis    int `yaml:"base_ms"`
	PerCharMillis int `yaml:"per_char_ms"`
	MaxMillis     int `yaml:"max_ms"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Profile   string          `yaml:"profile"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	History   HistoryConfig   `yaml:"history"`
	Typing    TypingConfig    `yaml:"typing"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/resume-chat/config.yaml.
// If neither exists, it writes defaults to the user path and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "resume-chat", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Profile == "" {
		cfg.Profile = "profile.json"
	}
	r := &cfg.Retrieval
	if r.TFIDFWeight == 0 && r.FuzzyWeight == 0 && r.KeywordWeight == 0 && r.ChunkWeight == 0 {
		r.TFIDFWeight = 0.3
		r.FuzzyWeight = 0.3
		r.KeywordWeight = 0.2
		r.ChunkWeight = 0.2
	}
	if r.FuzzyMaxDistance <= 0 || r.FuzzyMaxDistance > 1 {
		r.FuzzyMaxDistance = 0.4
	}
	if r.TopK <= 0 {
		r.TopK = 10
	}
	if r.TopRender <= 0 {
		r.TopRender = 3
	}
	if r.MinSignal <= 0 {
		r.MinSignal = 0.05
	}
	if cfg.History.MaxEntries <= 0 {
		cfg.History.MaxEntries = 10
	}
	if cfg.Typing.BaseMillis <= 0 {
		cfg.Typing.BaseMillis = 500
	}
	if cfg.Typing.PerCharMillis <= 0 {
		cfg.Typing.PerCharMillis = 5
	}
	if cfg.Typing.MaxMillis <= 0 {
		cfg.Typing.MaxMillis = 1500
	}
}
