package weights

// Compensation computes the skip-penalty offset for one hierarchy
// level, given the count of correct answers in that level's recent
// history window. Pure so the tuning can be tested in isolation.
//
// The result grows linearly with recent correct answers and is capped
// at MaxCompensationShare of the penalty, so the net skip delta stays
// strictly negative: a skip is always a downgrade, just a gentler one
// after sustained engagement.
func Compensation(recentCorrect int, cfg Config) float64 {
	if recentCorrect <= 0 {
		return 0
	}
	comp := float64(recentCorrect) * cfg.CompensationPerCorrect
	if max := cfg.MaxCompensationShare * cfg.SkipPenalty; comp > max {
		comp = max
	}
	return comp
}

// countCorrect tallies true entries in an outcome window.
func countCorrect(outcomes []bool) int {
	n := 0
	for _, ok := range outcomes {
		if ok {
			n++
		}
	}
	return n
}
