package pool

import (
	"context"
	"errors"
	"testing"
)

func q(id, text, topic, subtopic string, tags ...string) Question {
	return Question{ID: id, Text: text, Topic: topic, Subtopic: subtopic, Tags: tags}
}

func mustIngest(t *testing.T, idx *Index, questions ...Question) {
	t.Helper()
	for _, question := range questions {
		if err := idx.Ingest(context.Background(), question); err != nil {
			t.Fatalf("ingest %s: %v", question.ID, err)
		}
	}
}

func TestIngest_AssignsSequenceAndFingerprint(t *testing.T) {
	idx := NewIndex(nil, nil)
	mustIngest(t, idx,
		q("q1", "capital of France?", "geography", ""),
		q("q2", "capital of Spain?", "geography", ""),
	)

	first, ok := idx.Get("q1")
	if !ok {
		t.Fatal("q1 missing")
	}
	second, _ := idx.Get("q2")
	if first.Seq != 1 || second.Seq != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", first.Seq, second.Seq)
	}
	if first.Fingerprint == "" {
		t.Error("fingerprint not computed at ingest")
	}
}

func TestIngest_RejectsFingerprintCollision(t *testing.T) {
	idx := NewIndex(nil, nil)
	mustIngest(t, idx, q("q1", "What is 2+2?", "math", "", "math", "easy"))

	err := idx.Ingest(context.Background(), q("q2", "what is 2+2", "math", "", "Easy", "Math"))
	var dup *ErrDuplicateQuestion
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want ErrDuplicateQuestion", err)
	}
	if dup.ExistingID != "q1" {
		t.Errorf("colliding id = %s, want q1", dup.ExistingID)
	}
	if idx.Len() != 1 {
		t.Errorf("pool size = %d, duplicate must not enter the index", idx.Len())
	}
}

func TestIngest_RejectsDuplicateID(t *testing.T) {
	idx := NewIndex(nil, nil)
	mustIngest(t, idx, q("q1", "first text", "science", ""))

	err := idx.Ingest(context.Background(), q("q1", "entirely different text", "science", ""))
	var dup *ErrDuplicateQuestion
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want ErrDuplicateQuestion", err)
	}
}

func TestIngest_RejectsEmptyText(t *testing.T) {
	idx := NewIndex(nil, nil)
	if err := idx.Ingest(context.Background(), q("q1", "  ?! ", "science", "")); err == nil {
		t.Error("punctuation-only text should be rejected")
	}
	if idx.Len() != 0 {
		t.Error("rejected question entered the index")
	}
}

func TestCandidates_FilterAndOrder(t *testing.T) {
	idx := NewIndex(nil, nil)
	mustIngest(t, idx,
		q("s1", "science one", "science", "physics"),
		q("h1", "history one", "history", ""),
		q("s2", "science two", "science", "biology"),
		q("s3", "science three", "science", "physics"),
	)

	got := idx.Candidates("science", "", nil, 0)
	if len(got) != 3 {
		t.Fatalf("got %d science candidates, want 3", len(got))
	}
	// Insertion order, not grouped.
	if got[0].ID != "s1" || got[1].ID != "s2" || got[2].ID != "s3" {
		t.Errorf("order = %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
	}

	phys := idx.Candidates("science", "physics", nil, 0)
	if len(phys) != 2 {
		t.Errorf("got %d physics candidates, want 2", len(phys))
	}

	all := idx.Candidates("", "", nil, 0)
	if len(all) != 4 {
		t.Errorf("broad query returned %d, want 4", len(all))
	}
}

func TestCandidates_ExcludeAndLimit(t *testing.T) {
	idx := NewIndex(nil, nil)
	mustIngest(t, idx,
		q("q1", "one", "science", ""),
		q("q2", "two", "science", ""),
		q("q3", "three", "science", ""),
	)

	exclude := map[string]struct{}{"q2": {}}
	got := idx.Candidates("science", "", exclude, 0)
	for _, c := range got {
		if c.ID == "q2" {
			t.Error("excluded id returned as candidate")
		}
	}

	limited := idx.Candidates("science", "", nil, 2)
	if len(limited) != 2 {
		t.Errorf("limit 2 returned %d", len(limited))
	}
}

func TestLoad_PreservesSequence(t *testing.T) {
	idx := NewIndex(nil, nil)
	idx.Load([]Question{
		{ID: "q1", Text: "one", Topic: "science", Fingerprint: "fp1", Seq: 4},
		{ID: "q2", Text: "two", Topic: "science", Fingerprint: "fp2", Seq: 9},
	})

	mustIngest(t, idx, q("q3", "three", "science", ""))
	loaded, _ := idx.Get("q3")
	if loaded.Seq != 10 {
		t.Errorf("new seq = %d, want 10 (after the highest stored seq)", loaded.Seq)
	}
}

func TestLoad_DropsStoredDuplicates(t *testing.T) {
	idx := NewIndex(nil, nil)
	idx.Load([]Question{
		{ID: "q1", Text: "one", Topic: "science", Fingerprint: "same", Seq: 1},
		{ID: "q2", Text: "two", Topic: "science", Fingerprint: "same", Seq: 2},
	})
	if idx.Len() != 1 {
		t.Errorf("pool size = %d, want 1 after dropping the collision", idx.Len())
	}
}

type failingSaver struct{}

func (failingSaver) SaveQuestion(context.Context, Question) error {
	return errors.New("disk full")
}

func TestIngest_SaverFailureKeepsIndexUnchanged(t *testing.T) {
	idx := NewIndex(failingSaver{}, nil)
	if err := idx.Ingest(context.Background(), q("q1", "one", "science", "")); err == nil {
		t.Fatal("expected saver error")
	}
	if idx.Len() != 0 {
		t.Error("failed ingest left the question in the index")
	}
}
