package weights

import "testing"

func TestCompensation(t *testing.T) {
	cfg := Config{
		SkipPenalty:            0.8,
		CompensationPerCorrect: 0.1,
		MaxCompensationShare:   0.75,
	}

	tests := []struct {
		name          string
		recentCorrect int
		want          float64
	}{
		{"no history", 0, 0},
		{"negative count", -3, 0},
		{"one correct", 1, 0.1},
		{"three correct", 3, 0.3},
		{"capped at share of penalty", 50, 0.6}, // 0.75 * 0.8
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compensation(tt.recentCorrect, cfg); got != tt.want {
				t.Errorf("Compensation(%d) = %v, want %v", tt.recentCorrect, got, tt.want)
			}
		})
	}
}

func TestCompensation_NeverReachesPenalty(t *testing.T) {
	cfg := DefaultConfig()
	for n := 0; n <= 100; n++ {
		if comp := Compensation(n, cfg); comp >= cfg.SkipPenalty {
			t.Fatalf("Compensation(%d) = %v, must stay below the penalty %v", n, comp, cfg.SkipPenalty)
		}
	}
}

func TestCountCorrect(t *testing.T) {
	if got := countCorrect([]bool{true, false, true, true}); got != 3 {
		t.Errorf("countCorrect = %d, want 3", got)
	}
	if got := countCorrect(nil); got != 0 {
		t.Errorf("countCorrect(nil) = %d, want 0", got)
	}
}
