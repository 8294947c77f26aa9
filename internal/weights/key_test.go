package weights

import (
	"reflect"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{Topic: "science"}, "science"},
		{Key{Topic: "science", Subtopic: "physics"}, "science/physics"},
		{Key{Topic: "science", Subtopic: "physics", Branch: "optics"}, "science/physics/optics"},
		// Branch without subtopic renders at topic granularity.
		{Key{Topic: "science", Branch: "optics"}, "science"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLevels(t *testing.T) {
	got := Levels("science", "physics", "optics")
	want := []Key{
		{Topic: "science"},
		{Topic: "science", Subtopic: "physics"},
		{Topic: "science", Subtopic: "physics", Branch: "optics"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Levels = %v, want %v", got, want)
	}

	if got := Levels("science", "", "optics"); len(got) != 1 {
		t.Errorf("branch without subtopic should expand to topic only, got %v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"incorrect above correct", func(c *Config) { c.IncorrectDelta = c.CorrectDelta + 1 }, true},
		{"negative incorrect", func(c *Config) { c.IncorrectDelta = -0.1 }, true},
		{"negative skip penalty", func(c *Config) { c.SkipPenalty = -1 }, true},
		{"full compensation share", func(c *Config) { c.MaxCompensationShare = 1 }, true},
		{"inverted score range", func(c *Config) { c.MinScore = c.MaxScore }, true},
		{"zero history window", func(c *Config) { c.HistoryWindow = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
