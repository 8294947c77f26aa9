package weights

import "fmt"

// Config holds the tuning parameters for the weight model. The exact
// magnitudes are product tuning, not protocol; the only hard rule is
// CorrectDelta >= IncorrectDelta >= 0.
type Config struct {
	// CorrectDelta is added at each hierarchy level for a correct answer.
	CorrectDelta float64

	// IncorrectDelta is added at each hierarchy level for an incorrect
	// answer. Still positive: answering at all signals interest.
	IncorrectDelta float64

	// SkipPenalty is subtracted at each hierarchy level for a skip,
	// before compensation.
	SkipPenalty float64

	// CompensationPerCorrect is the skip-penalty offset earned by each
	// correct answer in the recent-history window.
	CompensationPerCorrect float64

	// MaxCompensationShare caps compensation as a fraction of
	// SkipPenalty, keeping the net skip delta strictly negative.
	MaxCompensationShare float64

	// HistoryWindow is how many recent answer outcomes per level feed
	// the compensation term.
	HistoryWindow int

	// MinScore and MaxScore clamp stored scores. Events still record
	// the intended unclamped delta.
	MinScore float64
	MaxScore float64

	// NeutralScore is the midpoint assumed for topics the user has
	// never touched; the feed assembler ranks unknowns at this value.
	NeutralScore float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		CorrectDelta:           1.0,
		IncorrectDelta:         0.4,
		SkipPenalty:            0.8,
		CompensationPerCorrect: 0.1,
		MaxCompensationShare:   0.75,
		HistoryWindow:          10,
		MinScore:               0.0,
		MaxScore:               100.0,
		NeutralScore:           50.0,
	}
}

// Validate checks the monotonicity and range rules.
func (c Config) Validate() error {
	if c.CorrectDelta < c.IncorrectDelta {
		return fmt.Errorf("correct delta %v must be >= incorrect delta %v", c.CorrectDelta, c.IncorrectDelta)
	}
	if c.IncorrectDelta < 0 {
		return fmt.Errorf("incorrect delta %v must be >= 0", c.IncorrectDelta)
	}
	if c.SkipPenalty < 0 {
		return fmt.Errorf("skip penalty %v must be >= 0", c.SkipPenalty)
	}
	if c.MaxCompensationShare < 0 || c.MaxCompensationShare >= 1 {
		return fmt.Errorf("max compensation share %v must be in [0, 1)", c.MaxCompensationShare)
	}
	if c.MinScore >= c.MaxScore {
		return fmt.Errorf("min score %v must be below max score %v", c.MinScore, c.MaxScore)
	}
	if c.HistoryWindow <= 0 {
		return fmt.Errorf("history window must be positive, got %d", c.HistoryWindow)
	}
	return nil
}
