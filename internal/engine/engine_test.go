package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nvarma/quizfeed/internal/feed"
	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/store"
	"github.com/nvarma/quizfeed/internal/topics"
	"github.com/nvarma/quizfeed/internal/weights"
)

// In-memory repositories standing in for the SQLite-backed ones.

type memQuestions struct {
	rows []pool.Question
}

func (m *memQuestions) SaveQuestion(_ context.Context, q pool.Question) error {
	m.rows = append(m.rows, q)
	return nil
}

func (m *memQuestions) AllQuestions(_ context.Context) ([]pool.Question, error) {
	return append([]pool.Question(nil), m.rows...), nil
}

type stateRow struct {
	status      string
	answerIndex *int
}

type memStates struct {
	rows map[string]map[string]*stateRow // user -> question -> row
}

func newMemStates() *memStates {
	return &memStates{rows: make(map[string]map[string]*stateRow)}
}

func (m *memStates) user(userID string) map[string]*stateRow {
	u, ok := m.rows[userID]
	if !ok {
		u = make(map[string]*stateRow)
		m.rows[userID] = u
	}
	return u
}

func (m *memStates) EnsureShown(_ context.Context, userID string, questionIDs []string) error {
	u := m.user(userID)
	for _, id := range questionIDs {
		if _, ok := u[id]; !ok {
			u[id] = &stateRow{status: store.StatusUnanswered}
		}
	}
	return nil
}

func (m *memStates) Resolve(_ context.Context, userID, questionID, status string, answerIndex *int, _ time.Time) error {
	u := m.user(userID)
	row, ok := u[questionID]
	if !ok {
		u[questionID] = &stateRow{status: status, answerIndex: answerIndex}
		return nil
	}
	if row.status != store.StatusUnanswered {
		return nil
	}
	row.status = status
	row.answerIndex = answerIndex
	return nil
}

func (m *memStates) ResolvedIDs(_ context.Context, userID string) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	for id, row := range m.rows[userID] {
		if row.status != store.StatusUnanswered {
			out[id] = struct{}{}
		}
	}
	return out, nil
}

type memWeights struct {
	rows map[string]map[weights.Key]weights.TopicWeight
}

func newMemWeights() *memWeights {
	return &memWeights{rows: make(map[string]map[weights.Key]weights.TopicWeight)}
}

func (m *memWeights) UpsertWeight(_ context.Context, userID string, w weights.TopicWeight) error {
	u, ok := m.rows[userID]
	if !ok {
		u = make(map[weights.Key]weights.TopicWeight)
		m.rows[userID] = u
	}
	u[w.Key] = w
	return nil
}

func (m *memWeights) WeightsFor(_ context.Context, userID string) ([]weights.TopicWeight, error) {
	var out []weights.TopicWeight
	for _, w := range m.rows[userID] {
		out = append(out, w)
	}
	return out, nil
}

type memEvents struct {
	evs []weights.Event
	ids map[string]struct{}
}

func newMemEvents() *memEvents {
	return &memEvents{ids: make(map[string]struct{})}
}

func (m *memEvents) add(ev weights.Event) {
	if _, ok := m.ids[ev.ID]; ok {
		return
	}
	m.ids[ev.ID] = struct{}{}
	m.evs = append(m.evs, ev)
}

func (m *memEvents) AppendEvent(_ context.Context, ev weights.Event) error {
	ev.Origin = weights.OriginLocal
	m.add(ev)
	return nil
}

func (m *memEvents) RecordRemote(_ context.Context, ev weights.Event) error {
	ev.Origin = weights.OriginRemote
	m.add(ev)
	return nil
}

func (m *memEvents) AppliedEventIDs(_ context.Context, userID string) ([]string, error) {
	var out []string
	for _, ev := range m.evs {
		if ev.UserID == userID {
			out = append(out, ev.ID)
		}
	}
	return out, nil
}

func (m *memEvents) Unsynced(_ context.Context) ([]weights.Event, error) {
	var out []weights.Event
	for _, ev := range m.evs {
		if ev.Origin == weights.OriginLocal && ev.SyncedAt == nil {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memEvents) MarkSynced(_ context.Context, eventID string, at time.Time) error {
	for i := range m.evs {
		if m.evs[i].ID == eventID {
			m.evs[i].SyncedAt = &at
			return nil
		}
	}
	return fmt.Errorf("event %s not found", eventID)
}

func (m *memEvents) LatestRemoteCreatedAt(_ context.Context, userID string) (time.Time, error) {
	var latest time.Time
	for _, ev := range m.evs {
		if ev.UserID == userID && ev.Origin == weights.OriginRemote && ev.CreatedAt.After(latest) {
			latest = ev.CreatedAt
		}
	}
	return latest, nil
}

type testRig struct {
	engine    *Engine
	questions *memQuestions
	states    *memStates
	weights   *memWeights
	events    *memEvents
}

func newTestRig(t *testing.T) *testRig {
	t.Helper()
	rig := &testRig{
		questions: &memQuestions{},
		states:    newMemStates(),
		weights:   newMemWeights(),
		events:    newMemEvents(),
	}
	e, err := New(DefaultConfig(), rig.questions, rig.states, rig.weights, rig.events, topics.Default(), nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	rig.engine = e
	return rig
}

func (r *testRig) ingest(t *testing.T, topic string, n int) []string {
	t.Helper()
	var ids []string
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s-%d", topic, i)
		err := r.engine.Ingest(context.Background(), pool.Question{
			ID:    id,
			Text:  fmt.Sprintf("Question %d about %s?", i, topic),
			Tags:  []string{topic},
			Topic: topic,
		})
		if err != nil {
			t.Fatalf("ingest %s: %v", id, err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestNeedMoreRecordsShown(t *testing.T) {
	rig := newTestRig(t)
	rig.ingest(t, "geography", 8)
	ctx := context.Background()

	batch, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, 0)
	if err != nil {
		t.Fatalf("need more: %v", err)
	}
	if len(batch.QuestionIDs) != DefaultConfig().BatchSize {
		t.Fatalf("batch len = %d, want %d", len(batch.QuestionIDs), DefaultConfig().BatchSize)
	}
	if batch.Exhausted {
		t.Error("pool should not be exhausted")
	}
	for _, id := range batch.QuestionIDs {
		row, ok := rig.states.rows["u1"][id]
		if !ok || row.status != store.StatusUnanswered {
			t.Errorf("question %s not recorded as shown", id)
		}
	}
}

func TestRecordAnswerResolvesAndReplaces(t *testing.T) {
	rig := newTestRig(t)
	rig.ingest(t, "geography", 6)
	ctx := context.Background()

	batch, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, 3)
	if err != nil {
		t.Fatalf("need more: %v", err)
	}
	answered := batch.QuestionIDs[0]

	replacement, err := rig.engine.RecordAnswer(ctx, "u1", answered, 2, true)
	if err != nil {
		t.Fatalf("record answer: %v", err)
	}
	if len(replacement.QuestionIDs) != 1 {
		t.Fatalf("replacement len = %d, want 1", len(replacement.QuestionIDs))
	}
	if replacement.QuestionIDs[0] == answered {
		t.Error("replacement resurfaced the answered question")
	}

	row := rig.states.rows["u1"][answered]
	if row.status != store.StatusAnswered {
		t.Errorf("status = %q, want answered", row.status)
	}
	if row.answerIndex == nil || *row.answerIndex != 2 {
		t.Errorf("answerIndex = %v, want 2", row.answerIndex)
	}

	// The correct answer raised the topic weight above neutral.
	snap, err := rig.engine.CurrentWeights(ctx, "u1")
	if err != nil {
		t.Fatalf("current weights: %v", err)
	}
	if snap["geography"] <= DefaultConfig().Weights.NeutralScore {
		t.Errorf("geography weight = %v, want above neutral", snap["geography"])
	}

	// Events and weight rows were persisted.
	if len(rig.events.evs) == 0 {
		t.Error("no events persisted")
	}
	if len(rig.weights.rows["u1"]) == 0 {
		t.Error("no weight rows persisted")
	}
}

func TestRecordSkipLowersWeight(t *testing.T) {
	rig := newTestRig(t)
	rig.ingest(t, "science", 4)
	ctx := context.Background()

	batch, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, 2)
	if err != nil {
		t.Fatalf("need more: %v", err)
	}
	skipped := batch.QuestionIDs[0]

	replacement, err := rig.engine.RecordSkip(ctx, "u1", skipped)
	if err != nil {
		t.Fatalf("record skip: %v", err)
	}
	if len(replacement.QuestionIDs) != 1 {
		t.Fatalf("replacement len = %d, want 1", len(replacement.QuestionIDs))
	}

	row := rig.states.rows["u1"][skipped]
	if row.status != store.StatusSkipped {
		t.Errorf("status = %q, want skipped", row.status)
	}
	if row.answerIndex != nil {
		t.Errorf("answerIndex = %v, want nil for a skip", row.answerIndex)
	}

	snap, err := rig.engine.CurrentWeights(ctx, "u1")
	if err != nil {
		t.Fatalf("current weights: %v", err)
	}
	if snap["science"] >= DefaultConfig().Weights.NeutralScore {
		t.Errorf("science weight = %v, want below neutral", snap["science"])
	}
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	_, err := rig.engine.RecordAnswer(ctx, "u1", "no-such-q", 0, true)
	var unknown *ErrUnknownQuestion
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want ErrUnknownQuestion", err)
	}
	if unknown.QuestionID != "no-such-q" {
		t.Errorf("QuestionID = %q", unknown.QuestionID)
	}
}

func TestResolvedNeverResurfaces(t *testing.T) {
	rig := newTestRig(t)
	ids := rig.ingest(t, "history", 6)
	ctx := context.Background()

	if _, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, len(ids)); err != nil {
		t.Fatalf("need more: %v", err)
	}
	for _, id := range ids[:3] {
		if _, err := rig.engine.RecordAnswer(ctx, "u1", id, 0, true); err != nil {
			t.Fatalf("answer %s: %v", id, err)
		}
	}

	batch, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, 10)
	if err != nil {
		t.Fatalf("need more: %v", err)
	}
	for _, id := range batch.QuestionIDs {
		for _, resolved := range ids[:3] {
			if id == resolved {
				t.Errorf("resolved question %s resurfaced", id)
			}
		}
	}
}

func TestHydrateFromStorage(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	// Pre-seed storage as a previous process would have left it.
	seeded := weights.TopicWeight{
		Key:         weights.Key{Topic: "art"},
		Score:       72.5,
		SampleCount: 9,
	}
	if err := rig.weights.UpsertWeight(ctx, "u1", seeded); err != nil {
		t.Fatalf("seed weight: %v", err)
	}
	evID := uuid.NewString()
	err := rig.events.AppendEvent(ctx, weights.Event{
		ID: evID, UserID: "u1", Topic: "art", Delta: 1.0,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}

	snap, err := rig.engine.CurrentWeights(ctx, "u1")
	if err != nil {
		t.Fatalf("current weights: %v", err)
	}
	if snap["art"] != 72.5 {
		t.Errorf("art weight = %v, want 72.5", snap["art"])
	}

	// The seeded event id counts as already applied.
	err = rig.engine.ApplyRemote(ctx, weights.Event{
		ID: evID, UserID: "u1", Topic: "art", Delta: 5.0,
		Origin: weights.OriginRemote, CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("apply remote: %v", err)
	}
	snap, err = rig.engine.CurrentWeights(ctx, "u1")
	if err != nil {
		t.Fatalf("current weights: %v", err)
	}
	if snap["art"] != 72.5 {
		t.Errorf("art weight = %v after duplicate event, want unchanged 72.5", snap["art"])
	}
}

func TestApplyRemotePersistsOnce(t *testing.T) {
	rig := newTestRig(t)
	ctx := context.Background()

	ev := weights.Event{
		ID:        uuid.NewString(),
		UserID:    "u1",
		Topic:     "music",
		Delta:     1.0,
		Origin:    weights.OriginRemote,
		CreatedAt: time.Now().UTC(),
	}
	if err := rig.engine.ApplyRemote(ctx, ev); err != nil {
		t.Fatalf("apply remote: %v", err)
	}
	if err := rig.engine.ApplyRemote(ctx, ev); err != nil {
		t.Fatalf("apply remote again: %v", err)
	}

	if len(rig.events.evs) != 1 {
		t.Errorf("stored events = %d, want 1", len(rig.events.evs))
	}
	snap, err := rig.engine.CurrentWeights(ctx, "u1")
	if err != nil {
		t.Fatalf("current weights: %v", err)
	}
	want := DefaultConfig().Weights.NeutralScore + 1.0
	if snap["music"] != want {
		t.Errorf("music weight = %v, want %v", snap["music"], want)
	}
}

func TestSyncWithoutRemoteFails(t *testing.T) {
	rig := newTestRig(t)
	if err := rig.engine.Sync(context.Background(), "u1"); err == nil {
		t.Fatal("expected error with no remote configured")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	rig := newTestRig(t)
	rig.ingest(t, "geography", 4)
	ctx := context.Background()

	batch, err := rig.engine.NeedMore(ctx, "u1", feed.ReasonCheckpoint, 2)
	if err != nil {
		t.Fatalf("need more: %v", err)
	}
	if _, err := rig.engine.RecordAnswer(ctx, "u1", batch.QuestionIDs[0], 0, true); err != nil {
		t.Fatalf("answer: %v", err)
	}

	// u2 sees the full pool and neutral weights.
	other, err := rig.engine.NeedMore(ctx, "u2", feed.ReasonCheckpoint, 10)
	if err != nil {
		t.Fatalf("need more u2: %v", err)
	}
	if len(other.QuestionIDs) != 4 {
		t.Errorf("u2 batch len = %d, want full pool of 4", len(other.QuestionIDs))
	}
	snap, err := rig.engine.CurrentWeights(ctx, "u2")
	if err != nil {
		t.Fatalf("current weights u2: %v", err)
	}
	if len(snap) != 0 {
		t.Errorf("u2 weights = %v, want empty", snap)
	}
}

func TestLoadPoolRebuildsIndex(t *testing.T) {
	rig := newTestRig(t)
	rig.questions.rows = []pool.Question{
		{ID: "q1", Text: "One?", Topic: "science", Fingerprint: "fp1", Seq: 1},
		{ID: "q2", Text: "Two?", Topic: "science", Fingerprint: "fp2", Seq: 2},
	}

	if err := rig.engine.LoadPool(context.Background()); err != nil {
		t.Fatalf("load pool: %v", err)
	}
	if rig.engine.PoolSize() != 2 {
		t.Errorf("pool size = %d, want 2", rig.engine.PoolSize())
	}
	if _, ok := rig.engine.Question("q2"); !ok {
		t.Error("q2 missing from index")
	}
}
