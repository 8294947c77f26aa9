package feed

import (
	"testing"

	"github.com/nvarma/quizfeed/internal/pool"
)

func TestCandidateScore_MostSpecificLevelWins(t *testing.T) {
	cfg := DefaultConfig()
	snap := map[string]float64{
		"science":         60,
		"science/physics": 80,
	}

	q := pool.Question{Topic: "science", Subtopic: "physics", Branch: "optics"}
	if got := candidateScore(q, snap, nil, cfg); got != 80 {
		t.Errorf("score = %v, want 80 (subtopic weight, no branch weight recorded)", got)
	}

	broad := pool.Question{Topic: "science"}
	if got := candidateScore(broad, snap, nil, cfg); got != 60 {
		t.Errorf("score = %v, want 60", got)
	}
}

func TestCandidateScore_UnknownTopicIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	q := pool.Question{Topic: "mythology"}
	if got := candidateScore(q, map[string]float64{}, nil, cfg); got != cfg.NeutralScore {
		t.Errorf("score = %v, want neutral %v", got, cfg.NeutralScore)
	}
}

func TestCandidateScore_RelatedBonus(t *testing.T) {
	cfg := DefaultConfig()
	related := map[string]struct{}{"technology": {}}

	plain := candidateScore(pool.Question{Topic: "history"}, nil, related, cfg)
	boosted := candidateScore(pool.Question{Topic: "technology"}, nil, related, cfg)
	if boosted != plain+cfg.RelatedBonus {
		t.Errorf("boosted = %v, plain = %v, want bonus of %v", boosted, plain, cfg.RelatedBonus)
	}
}

func TestRank_WeightDescendingThenSeq(t *testing.T) {
	cfg := DefaultConfig()
	snap := map[string]float64{"science": 70, "history": 40}

	candidates := []pool.Question{
		{ID: "h1", Topic: "history", Seq: 1},
		{ID: "s2", Topic: "science", Seq: 3},
		{ID: "s1", Topic: "science", Seq: 2},
		{ID: "m1", Topic: "music", Seq: 4}, // neutral 50
	}

	ranked := rank(candidates, snap, nil, cfg)
	want := []string{"s1", "s2", "m1", "h1"}
	for i, q := range ranked {
		if q.ID != want[i] {
			t.Fatalf("rank[%d] = %s, want %s (full order %v)", i, q.ID, want[i], ids(ranked))
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	candidates := []pool.Question{
		{ID: "a", Topic: "x", Seq: 2},
		{ID: "b", Topic: "x", Seq: 1},
	}
	rank(candidates, nil, nil, DefaultConfig())
	if candidates[0].ID != "a" {
		t.Error("rank reordered the caller's slice")
	}
}

func ids(qs []pool.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}
