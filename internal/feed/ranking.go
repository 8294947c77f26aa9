package feed

import (
	"sort"

	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/weights"
)

// candidateScore resolves a candidate's ranking score against the
// user's weight snapshot: the most specific hierarchy level with a
// recorded weight wins, unknown classifications fall back to the
// neutral midpoint, and related topics earn the fixed discovery bonus.
func candidateScore(q pool.Question, snap map[string]float64, related map[string]struct{}, cfg Config) float64 {
	score := cfg.NeutralScore
	for _, k := range weights.Levels(q.Topic, q.Subtopic, q.Branch) {
		if s, ok := snap[k.String()]; ok {
			score = s
		}
	}
	if _, ok := related[q.Topic]; ok {
		score += cfg.RelatedBonus
	}
	return score
}

// rank orders candidates by score descending with a stable tie-break on
// ingestion order, so equal-weight batches are deterministic.
func rank(candidates []pool.Question, snap map[string]float64, related map[string]struct{}, cfg Config) []pool.Question {
	ranked := append([]pool.Question(nil), candidates...)
	scores := make(map[string]float64, len(ranked))
	for _, q := range ranked {
		scores[q.ID] = candidateScore(q, snap, related, cfg)
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		sa, sb := scores[ranked[a].ID], scores[ranked[b].ID]
		if sa != sb {
			return sa > sb
		}
		return ranked[a].Seq < ranked[b].Seq
	})
	return ranked
}
