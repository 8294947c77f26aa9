package feed

// Config holds the ranking tuning for the assembler.
type Config struct {
	// NeutralScore ranks topics the user has no weight for; the
	// midpoint of the weight range.
	NeutralScore float64

	// RelatedBonus is added when a candidate's topic is related to the
	// most recently answered topic. Small relative to typical weight
	// spreads: it promotes discovery without dominating the ranking.
	RelatedBonus float64
}

// DefaultConfig returns the standard ranking tuning.
func DefaultConfig() Config {
	return Config{
		NeutralScore: 50.0,
		RelatedBonus: 2.0,
	}
}
