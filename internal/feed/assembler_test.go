package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/topics"
)

// fakeResolved is a mutable resolved-set store. Mutations between
// NeedMore calls must be visible immediately, mirroring the real state
// repo.
type fakeResolved struct {
	ids map[string]struct{}
	err error
}

func (f *fakeResolved) ResolvedIDs(context.Context, string) (map[string]struct{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[string]struct{}, len(f.ids))
	for id := range f.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeResolved) resolve(id string) {
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	f.ids[id] = struct{}{}
}

type fakeWeights map[string]float64

func (f fakeWeights) CurrentWeights(string) map[string]float64 { return f }

func testPool(t *testing.T, questions ...pool.Question) *pool.Index {
	t.Helper()
	idx := pool.NewIndex(nil, nil)
	for _, q := range questions {
		if err := idx.Ingest(context.Background(), q); err != nil {
			t.Fatalf("ingest %s: %v", q.ID, err)
		}
	}
	return idx
}

func question(id, topic string) pool.Question {
	return pool.Question{ID: id, Text: "text of " + id, Topic: topic}
}

func TestNeedMore_RanksByWeight(t *testing.T) {
	idx := testPool(t,
		question("h1", "history"),
		question("s1", "science"),
		question("m1", "music"),
	)
	resolved := &fakeResolved{}
	a := NewAssembler(DefaultConfig(), resolved, idx, fakeWeights{"science": 90, "history": 10}, nil, nil)

	batch, err := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 3)
	if err != nil {
		t.Fatalf("NeedMore: %v", err)
	}
	want := []string{"s1", "m1", "h1"} // 90, neutral 50, 10
	for i, id := range want {
		if batch.QuestionIDs[i] != id {
			t.Fatalf("batch = %v, want %v", batch.QuestionIDs, want)
		}
	}
	if batch.Exhausted {
		t.Error("full batch marked exhausted")
	}
}

func TestNeedMore_NeverReturnsResolved(t *testing.T) {
	idx := testPool(t, question("q1", "science"), question("q2", "science"))
	resolved := &fakeResolved{}
	a := NewAssembler(DefaultConfig(), resolved, idx, fakeWeights{}, nil, nil)

	resolved.resolve("q1")

	for _, reason := range []Reason{ReasonCheckpoint, ReasonSkip, ReasonAnswer, ReasonImport} {
		batch, err := a.NeedMore(context.Background(), "u1", reason, 10)
		if err != nil {
			t.Fatalf("NeedMore(%s): %v", reason, err)
		}
		for _, id := range batch.QuestionIDs {
			if id == "q1" {
				t.Fatalf("reason %s resurfaced a resolved question", reason)
			}
		}
	}
}

func TestNeedMore_ResolvedSetIsFreshPerCall(t *testing.T) {
	idx := testPool(t, question("q1", "science"), question("q2", "science"), question("q3", "science"))
	resolved := &fakeResolved{}
	a := NewAssembler(DefaultConfig(), resolved, idx, fakeWeights{}, nil, nil)

	first, _ := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 1)
	if len(first.QuestionIDs) != 1 {
		t.Fatalf("first batch = %v", first.QuestionIDs)
	}
	shown := first.QuestionIDs[0]

	// Resolve it out of band, as the engine does after recordAnswer.
	resolved.resolve(shown)
	a.StateFor("u1").MarkResolved(shown)

	second, _ := a.NeedMore(context.Background(), "u1", ReasonAnswer, 10)
	for _, id := range second.QuestionIDs {
		if id == shown {
			t.Error("stale resolved set: answered question came back")
		}
	}
}

func TestNeedMore_ExcludesInFlight(t *testing.T) {
	idx := testPool(t, question("q1", "science"), question("q2", "science"))
	a := NewAssembler(DefaultConfig(), &fakeResolved{}, idx, fakeWeights{}, nil, nil)

	first, _ := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 1)
	second, _ := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 1)

	if first.QuestionIDs[0] == second.QuestionIDs[0] {
		t.Error("in-flight question returned twice")
	}
	if got := a.StateFor("u1").Len(); got != 2 {
		t.Errorf("in-flight count = %d, want 2", got)
	}
}

func TestNeedMore_PerUserIsolation(t *testing.T) {
	idx := testPool(t, question("q1", "science"))
	resolved := &fakeResolved{}
	a := NewAssembler(DefaultConfig(), resolved, idx, fakeWeights{}, nil, nil)

	b1, _ := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 1)
	b2, _ := a.NeedMore(context.Background(), "u2", ReasonCheckpoint, 1)
	if len(b1.QuestionIDs) != 1 || len(b2.QuestionIDs) != 1 {
		t.Error("one user's in-flight feed leaked into another's exclusion set")
	}
}

func TestNeedMore_RelatedTopicBonus(t *testing.T) {
	idx := testPool(t,
		question("h1", "history"),
		question("t1", "technology"),
	)
	a := NewAssembler(DefaultConfig(), &fakeResolved{}, idx, fakeWeights{}, topics.Default(), nil)

	st := a.StateFor("u1")
	st.SetLastAnsweredTopic("science") // science relates to technology

	batch, _ := a.NeedMore(context.Background(), "u1", ReasonAnswer, 2)
	if batch.QuestionIDs[0] != "t1" {
		t.Errorf("batch = %v, want the related topic ranked first", batch.QuestionIDs)
	}
}

func TestNeedMore_ExhaustedIsSoft(t *testing.T) {
	idx := testPool(t, question("q1", "science"))
	a := NewAssembler(DefaultConfig(), &fakeResolved{}, idx, fakeWeights{}, nil, nil)

	batch, err := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 5)
	if err != nil {
		t.Fatalf("exhaustion must not be an error: %v", err)
	}
	if len(batch.QuestionIDs) != 1 || !batch.Exhausted {
		t.Errorf("batch = %+v, want 1 id and Exhausted", batch)
	}

	// Nothing left at all: still no error.
	batch, err = a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 5)
	if err != nil || len(batch.QuestionIDs) != 0 || !batch.Exhausted {
		t.Errorf("empty pool: batch = %+v, err = %v", batch, err)
	}
}

func TestNeedMore_ZeroCount(t *testing.T) {
	idx := testPool(t, question("q1", "science"))
	a := NewAssembler(DefaultConfig(), &fakeResolved{}, idx, fakeWeights{}, nil, nil)

	batch, err := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 0)
	if err != nil || len(batch.QuestionIDs) != 0 {
		t.Errorf("count 0: batch = %+v, err = %v", batch, err)
	}
}

func TestNeedMore_StateStoreError(t *testing.T) {
	idx := testPool(t, question("q1", "science"))
	resolved := &fakeResolved{err: errors.New("db locked")}
	a := NewAssembler(DefaultConfig(), resolved, idx, fakeWeights{}, nil, nil)

	if _, err := a.NeedMore(context.Background(), "u1", ReasonCheckpoint, 1); err == nil {
		t.Error("state store failure should surface, not silently return a batch")
	}
	if got := a.StateFor("u1").Len(); got != 0 {
		t.Errorf("failed call left %d ids in flight", got)
	}
}
