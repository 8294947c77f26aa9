package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/weights"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testQuestion(id string, seq int64) pool.Question {
	return pool.Question{
		ID:          id,
		Text:        "What is the capital of " + id + "?",
		Tags:        []string{"capitals"},
		Topic:       "geography",
		Subtopic:    "capitals",
		Difficulty:  1,
		Fingerprint: "fp-" + id,
		Seq:         seq,
	}
}

func testEvent(userID string) weights.Event {
	return weights.Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		Topic:     "geography",
		Delta:     1.0,
		Origin:    weights.OriginLocal,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionSaveAndReload(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	for i, id := range []string{"q-france", "q-japan", "q-peru"} {
		if err := repo.SaveQuestion(ctx, testQuestion(id, int64(i+1))); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	got, err := repo.AllQuestions(ctx)
	if err != nil {
		t.Fatalf("all questions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Ingestion order.
	for i, id := range []string{"q-france", "q-japan", "q-peru"} {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
		if got[i].Seq != int64(i+1) {
			t.Errorf("got[%d].Seq = %d, want %d", i, got[i].Seq, i+1)
		}
	}
	if got[0].Tags[0] != "capitals" {
		t.Errorf("tags not round-tripped: %v", got[0].Tags)
	}
}

func TestQuestionSaveDuplicateIsNoop(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := testQuestion("q-dup", 1)
	if err := repo.SaveQuestion(ctx, q); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.SaveQuestion(ctx, q); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.AllQuestions(ctx)
	if err != nil {
		t.Fatalf("all questions: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestStateLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.EnsureShown(ctx, "u1", []string{"q1", "q2", "q3"}); err != nil {
		t.Fatalf("ensure shown: %v", err)
	}

	// Shown but unresolved questions are not in the resolved set.
	resolved, err := repo.ResolvedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("resolved ids: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("resolved = %v, want empty", resolved)
	}

	idx := 2
	now := time.Now().UTC()
	if err := repo.Resolve(ctx, "u1", "q1", StatusAnswered, &idx, now); err != nil {
		t.Fatalf("resolve q1: %v", err)
	}
	if err := repo.Resolve(ctx, "u1", "q2", StatusSkipped, nil, now); err != nil {
		t.Fatalf("resolve q2: %v", err)
	}

	resolved, err = repo.ResolvedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("resolved ids: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("resolved = %v, want q1 and q2", resolved)
	}
	if _, ok := resolved["q3"]; ok {
		t.Error("q3 should still be unresolved")
	}
}

func TestStateResolveIsTerminal(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.EnsureShown(ctx, "u1", []string{"q1"}); err != nil {
		t.Fatalf("ensure shown: %v", err)
	}
	if err := repo.Resolve(ctx, "u1", "q1", StatusSkipped, nil, now); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	// A second resolution must not overwrite the first.
	idx := 0
	if err := repo.Resolve(ctx, "u1", "q1", StatusAnswered, &idx, now.Add(time.Minute)); err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	row, err := s.Client().QuestionState.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query state row: %v", err)
	}
	if row.Status != StatusSkipped {
		t.Errorf("status = %q, want %q", row.Status, StatusSkipped)
	}
}

func TestStateEnsureShownIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	if err := repo.EnsureShown(ctx, "u1", []string{"q1", "q2"}); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := repo.EnsureShown(ctx, "u1", []string{"q2", "q3"}); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	count, err := s.Client().QuestionState.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
}

func TestStateIsolatedPerUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.StateRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	if err := repo.Resolve(ctx, "u1", "q1", StatusSkipped, nil, now); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	resolved, err := repo.ResolvedIDs(ctx, "u2")
	if err != nil {
		t.Fatalf("resolved ids: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("u2 resolved = %v, want empty", resolved)
	}
}

func TestWeightUpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.WeightRepo()
	ctx := context.Background()

	w := weights.TopicWeight{
		Key:         weights.Key{Topic: "science", Subtopic: "physics"},
		Score:       53.5,
		SampleCount: 4,
		Recent:      []bool{true, false, true, true},
		LastUpdated: time.Now().UTC().Truncate(time.Millisecond),
	}
	if err := repo.UpsertWeight(ctx, "u1", w); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Second upsert on the same key updates in place.
	w.Score = 54.5
	w.SampleCount = 5
	w.Recent = append(w.Recent, true)
	if err := repo.UpsertWeight(ctx, "u1", w); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.WeightsFor(ctx, "u1")
	if err != nil {
		t.Fatalf("weights for: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Score != 54.5 || got[0].SampleCount != 5 {
		t.Errorf("row = %+v, want score 54.5 count 5", got[0])
	}
	if len(got[0].Recent) != 5 {
		t.Errorf("recent len = %d, want 5", len(got[0].Recent))
	}
}

func TestWeightDistinctLevels(t *testing.T) {
	s := openTestStore(t)
	repo := s.WeightRepo()
	ctx := context.Background()

	keys := []weights.Key{
		{Topic: "science"},
		{Topic: "science", Subtopic: "physics"},
		{Topic: "science", Subtopic: "physics", Branch: "optics"},
	}
	for _, k := range keys {
		err := repo.UpsertWeight(ctx, "u1", weights.TopicWeight{Key: k, Score: 50})
		if err != nil {
			t.Fatalf("upsert %s: %v", k, err)
		}
	}

	got, err := repo.WeightsFor(ctx, "u1")
	if err != nil {
		t.Fatalf("weights for: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 distinct levels", len(got))
	}
}

func TestEventAppendAndUnsynced(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ev1 := testEvent("u1")
	ev2 := testEvent("u1")
	ev2.CreatedAt = ev1.CreatedAt.Add(time.Second)

	if err := repo.AppendEvent(ctx, ev1); err != nil {
		t.Fatalf("append ev1: %v", err)
	}
	if err := repo.AppendEvent(ctx, ev2); err != nil {
		t.Fatalf("append ev2: %v", err)
	}
	// Duplicate id is silently ignored.
	if err := repo.AppendEvent(ctx, ev1); err != nil {
		t.Fatalf("append dup: %v", err)
	}

	pending, err := repo.Unsynced(ctx)
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("unsynced len = %d, want 2", len(pending))
	}
	// Oldest first.
	if pending[0].ID != ev1.ID || pending[1].ID != ev2.ID {
		t.Errorf("order = [%s %s], want [%s %s]",
			pending[0].ID, pending[1].ID, ev1.ID, ev2.ID)
	}
}

func TestEventMarkSynced(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ev := testEvent("u1")
	if err := repo.AppendEvent(ctx, ev); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.MarkSynced(ctx, ev.ID, time.Now().UTC()); err != nil {
		t.Fatalf("mark synced: %v", err)
	}

	pending, err := repo.Unsynced(ctx)
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("unsynced len = %d, want 0", len(pending))
	}

	if err := repo.MarkSynced(ctx, "no-such-id", time.Now().UTC()); err == nil {
		t.Error("expected error for unknown event id")
	}
}

func TestEventRecordRemote(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ev := testEvent("u1")
	ev.Origin = weights.OriginRemote
	if err := repo.RecordRemote(ctx, ev); err != nil {
		t.Fatalf("record remote: %v", err)
	}
	if err := repo.RecordRemote(ctx, ev); err != nil {
		t.Fatalf("record remote dup: %v", err)
	}

	// Remote events never enter the outbox.
	pending, err := repo.Unsynced(ctx)
	if err != nil {
		t.Fatalf("unsynced: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("unsynced len = %d, want 0", len(pending))
	}

	// But they do advance the pull cursor.
	cursor, err := repo.LatestRemoteCreatedAt(ctx, "u1")
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	if !cursor.Equal(ev.CreatedAt) {
		t.Errorf("cursor = %v, want %v", cursor, ev.CreatedAt)
	}
}

func TestEventCursorEmptyIsZero(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	cursor, err := repo.LatestRemoteCreatedAt(ctx, "u1")
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	if !cursor.IsZero() {
		t.Errorf("cursor = %v, want zero time", cursor)
	}
}

func TestEventAppliedIDsCoversBothOrigins(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	local := testEvent("u1")
	remote := testEvent("u1")
	remote.Origin = weights.OriginRemote
	other := testEvent("u2")

	if err := repo.AppendEvent(ctx, local); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.RecordRemote(ctx, remote); err != nil {
		t.Fatalf("record remote: %v", err)
	}
	if err := repo.AppendEvent(ctx, other); err != nil {
		t.Fatalf("append other: %v", err)
	}

	ids, err := repo.AppliedEventIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("applied ids: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("ids = %v, want exactly the two u1 events", ids)
	}
}

func TestResetUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.QuestionRepo().SaveQuestion(ctx, testQuestion("q1", 1)); err != nil {
		t.Fatalf("save question: %v", err)
	}
	if err := s.StateRepo().EnsureShown(ctx, "u1", []string{"q1"}); err != nil {
		t.Fatalf("ensure shown: %v", err)
	}
	err := s.WeightRepo().UpsertWeight(ctx, "u1", weights.TopicWeight{
		Key: weights.Key{Topic: "geography"}, Score: 60,
	})
	if err != nil {
		t.Fatalf("upsert weight: %v", err)
	}
	if err := s.EventRepo().AppendEvent(ctx, testEvent("u1")); err != nil {
		t.Fatalf("append event: %v", err)
	}
	if err := s.EventRepo().AppendEvent(ctx, testEvent("u2")); err != nil {
		t.Fatalf("append other event: %v", err)
	}

	if err := s.ResetUser(ctx, "u1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// u1 data is gone.
	resolved, err := s.StateRepo().ResolvedIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("resolved ids: %v", err)
	}
	if len(resolved) != 0 {
		t.Errorf("resolved = %v, want empty", resolved)
	}
	ws, err := s.WeightRepo().WeightsFor(ctx, "u1")
	if err != nil {
		t.Fatalf("weights for: %v", err)
	}
	if len(ws) != 0 {
		t.Errorf("weights = %v, want empty", ws)
	}
	ids, err := s.EventRepo().AppliedEventIDs(ctx, "u1")
	if err != nil {
		t.Fatalf("applied ids: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}

	// The shared pool and other users survive.
	qs, err := s.QuestionRepo().AllQuestions(ctx)
	if err != nil {
		t.Fatalf("all questions: %v", err)
	}
	if len(qs) != 1 {
		t.Errorf("questions = %d, want 1", len(qs))
	}
	otherIDs, err := s.EventRepo().AppliedEventIDs(ctx, "u2")
	if err != nil {
		t.Fatalf("applied ids u2: %v", err)
	}
	if len(otherIDs) != 1 {
		t.Errorf("u2 ids = %v, want 1", otherIDs)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{
		"questions", "question_states", "topic_weights", "weight_change_events",
	} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}
