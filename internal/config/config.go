// Package config loads the optional YAML tuning file. Every field has
// a working default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nvarma/quizfeed/internal/engine"
	"github.com/nvarma/quizfeed/internal/syncer"
)

// File is the on-disk configuration shape. Zero values mean "use the
// default".
type File struct {
	// User is the default user id for CLI commands.
	User string `yaml:"user"`

	// LogMode selects the zap preset: "prod" or "dev".
	LogMode string `yaml:"log_mode"`

	BatchSize int `yaml:"batch_size"`

	Weights WeightsSection `yaml:"weights"`
	Feed    FeedSection    `yaml:"feed"`
	Remote  RemoteSection  `yaml:"remote"`
}

// WeightsSection tunes the weight model. Pointer fields distinguish
// "not set" from an explicit zero, which is a legal tuning for the
// deltas.
type WeightsSection struct {
	CorrectDelta           *float64 `yaml:"correct_delta"`
	IncorrectDelta         *float64 `yaml:"incorrect_delta"`
	SkipPenalty            *float64 `yaml:"skip_penalty"`
	CompensationPerCorrect *float64 `yaml:"compensation_per_correct"`
	MaxCompensationShare   *float64 `yaml:"max_compensation_share"`
	HistoryWindow          *int     `yaml:"history_window"`
	MinScore               *float64 `yaml:"min_score"`
	MaxScore               *float64 `yaml:"max_score"`
	NeutralScore           *float64 `yaml:"neutral_score"`
}

// FeedSection tunes the feed ranking.
type FeedSection struct {
	RelatedBonus *float64 `yaml:"related_bonus"`
	NeutralScore *float64 `yaml:"neutral_score"`
}

// RemoteSection configures the sync remote.
type RemoteSection struct {
	URL            string   `yaml:"url"`
	Token          string   `yaml:"token"`
	RequestTimeout Duration `yaml:"request_timeout"`
	MaxAttempts    int      `yaml:"max_attempts"`
}

// Duration parses Go duration strings like "30s" from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		User:    "default",
		LogMode: "prod",
	}
}

// DefaultPath resolves the config file location:
// 1. QUIZFEED_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/quizfeed/config.yaml
// 3. ~/.config/quizfeed/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZFEED_CONFIG"); p != "" {
		return p, nil
	}
	confHome := os.Getenv("XDG_CONFIG_HOME")
	if confHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		confHome = filepath.Join(home, ".config")
	}
	return filepath.Join(confHome, "quizfeed", "config.yaml"), nil
}

// Load reads the file at path, falling back to defaults when it does
// not exist. An empty path uses DefaultPath.
func Load(path string) (File, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.User == "" {
		cfg.User = Default().User
	}
	if cfg.LogMode == "" {
		cfg.LogMode = Default().LogMode
	}
	return cfg, nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// EngineConfig maps the file onto the engine tuning, keeping defaults
// for unset fields.
func (f File) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if f.BatchSize > 0 {
		cfg.BatchSize = f.BatchSize
	}
	setFloat(&cfg.Weights.CorrectDelta, f.Weights.CorrectDelta)
	setFloat(&cfg.Weights.IncorrectDelta, f.Weights.IncorrectDelta)
	setFloat(&cfg.Weights.SkipPenalty, f.Weights.SkipPenalty)
	setFloat(&cfg.Weights.CompensationPerCorrect, f.Weights.CompensationPerCorrect)
	setFloat(&cfg.Weights.MaxCompensationShare, f.Weights.MaxCompensationShare)
	setFloat(&cfg.Weights.MinScore, f.Weights.MinScore)
	setFloat(&cfg.Weights.MaxScore, f.Weights.MaxScore)
	setFloat(&cfg.Weights.NeutralScore, f.Weights.NeutralScore)
	if f.Weights.HistoryWindow != nil {
		cfg.Weights.HistoryWindow = *f.Weights.HistoryWindow
	}
	setFloat(&cfg.Feed.RelatedBonus, f.Feed.RelatedBonus)
	setFloat(&cfg.Feed.NeutralScore, f.Feed.NeutralScore)
	return cfg
}

// SyncerConfig maps the file onto the reconciler tuning.
func (f File) SyncerConfig() syncer.Config {
	cfg := syncer.DefaultConfig()
	if f.Remote.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(f.Remote.RequestTimeout)
	}
	if f.Remote.MaxAttempts > 0 {
		cfg.Retry.MaxAttempts = f.Remote.MaxAttempts
	}
	return cfg
}

// RemoteURL resolves the sync endpoint, preferring the environment.
func (f File) RemoteURL() string {
	if u := os.Getenv("QUIZFEED_REMOTE_URL"); u != "" {
		return u
	}
	return f.Remote.URL
}

// RemoteToken resolves the sync bearer token, preferring the
// environment.
func (f File) RemoteToken() string {
	if t := os.Getenv("QUIZFEED_REMOTE_TOKEN"); t != "" {
		return t
	}
	return f.Remote.Token
}
