package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.User != "default" {
		t.Errorf("user = %q, want default", cfg.User)
	}
	if cfg.LogMode != "prod" {
		t.Errorf("log_mode = %q, want prod", cfg.LogMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
user: nina
log_mode: dev
batch_size: 8
weights:
  correct_delta: 2.0
  history_window: 20
feed:
  related_bonus: 3.5
remote:
  url: https://sync.example.com
  request_timeout: 30s
  max_attempts: 5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.User != "nina" {
		t.Errorf("user = %q", cfg.User)
	}

	ec := cfg.EngineConfig()
	if ec.BatchSize != 8 {
		t.Errorf("batch size = %d, want 8", ec.BatchSize)
	}
	if ec.Weights.CorrectDelta != 2.0 {
		t.Errorf("correct delta = %v, want 2.0", ec.Weights.CorrectDelta)
	}
	if ec.Weights.HistoryWindow != 20 {
		t.Errorf("history window = %d, want 20", ec.Weights.HistoryWindow)
	}
	// Unset fields keep their defaults.
	if ec.Weights.SkipPenalty <= 0 {
		t.Errorf("skip penalty = %v, want default", ec.Weights.SkipPenalty)
	}
	if ec.Feed.RelatedBonus != 3.5 {
		t.Errorf("related bonus = %v, want 3.5", ec.Feed.RelatedBonus)
	}

	sc := cfg.SyncerConfig()
	if sc.RequestTimeout != 30*time.Second {
		t.Errorf("request timeout = %v, want 30s", sc.RequestTimeout)
	}
	if sc.Retry.MaxAttempts != 5 {
		t.Errorf("max attempts = %d, want 5", sc.Retry.MaxAttempts)
	}
}

func TestLoadZeroOverrides(t *testing.T) {
	path := writeConfig(t, `
weights:
  incorrect_delta: 0
  max_compensation_share: 0.5
  min_score: 10
  max_score: 90
  neutral_score: 40
feed:
  related_bonus: 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ec := cfg.EngineConfig()
	// Explicit zeros are honored, not treated as "unset".
	if ec.Weights.IncorrectDelta != 0 {
		t.Errorf("incorrect delta = %v, want 0", ec.Weights.IncorrectDelta)
	}
	if ec.Feed.RelatedBonus != 0 {
		t.Errorf("related bonus = %v, want 0", ec.Feed.RelatedBonus)
	}
	if ec.Weights.MaxCompensationShare != 0.5 {
		t.Errorf("max compensation share = %v, want 0.5", ec.Weights.MaxCompensationShare)
	}
	if ec.Weights.MinScore != 10 || ec.Weights.MaxScore != 90 {
		t.Errorf("score bounds = [%v, %v], want [10, 90]", ec.Weights.MinScore, ec.Weights.MaxScore)
	}
	if ec.Weights.NeutralScore != 40 {
		t.Errorf("neutral score = %v, want 40", ec.Weights.NeutralScore)
	}
	// Untouched fields keep their defaults.
	if ec.Weights.CorrectDelta <= 0 {
		t.Errorf("correct delta = %v, want default", ec.Weights.CorrectDelta)
	}
	if ec.Feed.NeutralScore != 50 {
		t.Errorf("feed neutral score = %v, want default 50", ec.Feed.NeutralScore)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "batch_size: [not a number")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRemoteURLPrefersEnv(t *testing.T) {
	t.Setenv("QUIZFEED_REMOTE_URL", "https://env.example.com")
	f := File{Remote: RemoteSection{URL: "https://file.example.com"}}
	if got := f.RemoteURL(); got != "https://env.example.com" {
		t.Errorf("url = %q, want env value", got)
	}

	t.Setenv("QUIZFEED_REMOTE_URL", "")
	if got := f.RemoteURL(); got != "https://file.example.com" {
		t.Errorf("url = %q, want file value", got)
	}
}
