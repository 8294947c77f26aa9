package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvarma/quizfeed/internal/weights"
)

// fakeOutbox holds events in memory, tracking synced stamps.
type fakeOutbox struct {
	events []weights.Event
	remote []weights.Event
}

func (f *fakeOutbox) Unsynced(context.Context) ([]weights.Event, error) {
	var out []weights.Event
	for _, ev := range f.events {
		if ev.SyncedAt == nil {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeOutbox) MarkSynced(_ context.Context, id string, at time.Time) error {
	for i := range f.events {
		if f.events[i].ID == id {
			stamp := at
			f.events[i].SyncedAt = &stamp
			return nil
		}
	}
	return errors.New("unknown event " + id)
}

func (f *fakeOutbox) RecordRemote(_ context.Context, ev weights.Event) error {
	for _, existing := range f.remote {
		if existing.ID == ev.ID {
			return nil
		}
	}
	f.remote = append(f.remote, ev)
	return nil
}

func (f *fakeOutbox) LatestRemoteCreatedAt(_ context.Context, userID string) (time.Time, error) {
	var latest time.Time
	for _, ev := range f.remote {
		if ev.UserID == userID && ev.CreatedAt.After(latest) {
			latest = ev.CreatedAt
		}
	}
	return latest, nil
}

// fakeRemote records pushes and serves canned pulls.
type fakeRemote struct {
	version string
	pushes  []string // event ids, in push order
	reduced map[string]bool
	pushErr map[string]error // per-id error, consumed once
	pull    []weights.Event
	pullErr error
	since   time.Time

	// strictlyAfter makes pulls filter to events created after since,
	// like a real remote honoring the cursor.
	strictlyAfter bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		version: SchemaVersion,
		reduced: make(map[string]bool),
		pushErr: make(map[string]error),
	}
}

func (f *fakeRemote) SchemaVersion(context.Context) (string, error) {
	return f.version, nil
}

func (f *fakeRemote) PushEvent(_ context.Context, ev weights.Event, reduced bool) error {
	if err, ok := f.pushErr[ev.ID]; ok {
		delete(f.pushErr, ev.ID)
		return err
	}
	f.pushes = append(f.pushes, ev.ID)
	f.reduced[ev.ID] = reduced
	return nil
}

func (f *fakeRemote) PullEvents(_ context.Context, _ string, since time.Time) ([]weights.Event, error) {
	f.since = since
	if f.pullErr != nil {
		return nil, f.pullErr
	}
	if !f.strictlyAfter {
		return f.pull, nil
	}
	var out []weights.Event
	for _, ev := range f.pull {
		if ev.CreatedAt.After(since) {
			out = append(out, ev)
		}
	}
	return out, nil
}

type fakeApplier struct {
	applied []string
	err     error
}

func (f *fakeApplier) ApplyRemote(_ context.Context, ev weights.Event) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, ev.ID)
	return nil
}

// recordingApplier mimics the engine: a successful apply persists the
// event, which advances the pull cursor.
type recordingApplier struct {
	outbox  *fakeOutbox
	applied []string
	failID  string // fail once when applying this id
}

func (a *recordingApplier) ApplyRemote(ctx context.Context, ev weights.Event) error {
	if ev.ID == a.failID {
		a.failID = ""
		return errors.New("persist failure")
	}
	a.applied = append(a.applied, ev.ID)
	return a.outbox.RecordRemote(ctx, ev)
}

func localEvent(id string) weights.Event {
	return weights.Event{
		ID:        id,
		UserID:    "u1",
		Topic:     "science",
		Delta:     1,
		Origin:    weights.OriginLocal,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func fastConfig() Config {
	return Config{
		RequestTimeout: time.Second,
		Retry:          RetryConfig{MaxAttempts: 2, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1},
	}
}

func TestSync_UploadsEachEventOnce(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1"), localEvent("e2")}}
	remote := newFakeRemote()
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, nil, nil)

	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if len(remote.pushes) != 2 {
		t.Fatalf("pushed %d events, want 2", len(remote.pushes))
	}
	for _, ev := range outbox.events {
		if ev.SyncedAt == nil {
			t.Errorf("event %s not stamped synced", ev.ID)
		}
	}

	// Second call with nothing new: zero additional remote writes.
	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if len(remote.pushes) != 2 {
		t.Errorf("idempotent sync pushed again: %v", remote.pushes)
	}
}

func TestSync_OfflineIsANoOp(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1")}}
	remote := newFakeRemote()
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, func() bool { return false }, nil)

	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("offline Sync should not error: %v", err)
	}
	if len(remote.pushes) != 0 {
		t.Error("pushed while offline")
	}
	if outbox.events[0].SyncedAt != nil {
		t.Error("event stamped synced while offline")
	}
}

func TestSync_TransportFailureLeavesEventsUnsynced(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1"), localEvent("e2")}}
	remote := newFakeRemote()
	// e1 fails on every retry attempt.
	remote.pushErr["e1"] = &ErrSyncTransport{Err: errors.New("connection reset")}
	r := NewReconciler(Config{
		RequestTimeout: time.Second,
		Retry:          RetryConfig{MaxAttempts: 1, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1},
	}, outbox, remote, &fakeApplier{}, nil, nil)

	err := r.Sync(context.Background())
	var transport *ErrSyncTransport
	if !errors.As(err, &transport) {
		t.Fatalf("err = %v, want ErrSyncTransport", err)
	}
	if outbox.events[0].SyncedAt != nil {
		t.Error("failed event stamped synced")
	}

	// Retry succeeds later, and e1 is delivered exactly once more.
	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("retry Sync: %v", err)
	}
	if outbox.events[0].SyncedAt == nil || outbox.events[1].SyncedAt == nil {
		t.Error("events still unsynced after recovery")
	}
}

func TestSync_RetriesTransientTransportError(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1")}}
	remote := newFakeRemote()
	remote.pushErr["e1"] = &ErrSyncTransport{Err: errors.New("flaky")} // consumed by first attempt
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, nil, nil)

	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("Sync should retry a transient failure: %v", err)
	}
	if outbox.events[0].SyncedAt == nil {
		t.Error("event not synced after successful retry")
	}
}

func TestSync_CancelLeavesEventsUnsynced(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1"), localEvent("e2"), localEvent("e3")}}
	remote := newFakeRemote()
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Sync(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	for _, ev := range outbox.events {
		if ev.SyncedAt != nil {
			t.Errorf("event %s stamped synced after cancellation", ev.ID)
		}
	}
}

func TestSync_SchemaDowngradeUsesReducedShape(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1")}}
	remote := newFakeRemote()
	remote.version = "v1.0.2" // predates the compensation columns
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, nil, nil)

	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if !remote.reduced["e1"] {
		t.Error("old remote should receive the reduced event shape")
	}
}

func TestSync_MismatchMidBatchDegrades(t *testing.T) {
	outbox := &fakeOutbox{events: []weights.Event{localEvent("e1"), localEvent("e2")}}
	remote := newFakeRemote()
	remote.pushErr["e1"] = &ErrSchemaMismatch{Err: errors.New("unknown column")}
	r := NewReconciler(fastConfig(), outbox, remote, &fakeApplier{}, nil, nil)

	if err := r.Sync(context.Background()); err != nil {
		t.Fatalf("Sync should degrade, not fail: %v", err)
	}
	if !remote.reduced["e1"] || !remote.reduced["e2"] {
		t.Errorf("batch not degraded after mismatch: %v", remote.reduced)
	}
	for _, ev := range outbox.events {
		if ev.SyncedAt == nil {
			t.Errorf("event %s unsynced after degrade", ev.ID)
		}
	}
}

func TestFetchRemoteDeltas_AppliesAndAdvancesCursor(t *testing.T) {
	outbox := &fakeOutbox{}
	remote := newFakeRemote()
	applier := &fakeApplier{}
	created := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	remote.pull = []weights.Event{
		{ID: "r1", UserID: "u1", Topic: "science", Delta: 1, Origin: weights.OriginRemote, CreatedAt: created},
	}
	r := NewReconciler(fastConfig(), outbox, remote, applier, nil, nil)

	applied, err := r.FetchRemoteDeltas(context.Background(), "u1")
	if err != nil {
		t.Fatalf("FetchRemoteDeltas: %v", err)
	}
	if applied != 1 || len(applier.applied) != 1 {
		t.Errorf("applied = %d, applier saw %v", applied, applier.applied)
	}
	if !remote.since.IsZero() {
		t.Errorf("first pull used since = %v, want zero", remote.since)
	}
}

func TestFetchRemoteDeltas_SkipsMalformedEvents(t *testing.T) {
	outbox := &fakeOutbox{}
	remote := newFakeRemote()
	remote.pull = []weights.Event{
		{ID: "bad", UserID: "u1", Topic: "science", Delta: 1},
		{ID: "good", UserID: "u1", Topic: "science", Delta: 1},
	}
	applier := &fakeApplier{err: &weights.ErrInvalidWeightUpdate{Reason: "test"}}
	r := NewReconciler(fastConfig(), outbox, remote, applier, nil, nil)

	applied, err := r.FetchRemoteDeltas(context.Background(), "u1")
	if err != nil {
		t.Fatalf("malformed events must not fail the batch: %v", err)
	}
	if applied != 0 {
		t.Errorf("applied = %d, want 0", applied)
	}
}

func TestFetchRemoteDeltas_InterruptedOutOfOrderPullLosesNothing(t *testing.T) {
	outbox := &fakeOutbox{}
	remote := newFakeRemote()
	remote.strictlyAfter = true

	early := weights.Event{
		ID: "early", UserID: "u1", Topic: "science", Delta: 1,
		Origin: weights.OriginRemote, CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	late := weights.Event{
		ID: "late", UserID: "u1", Topic: "science", Delta: 1,
		Origin: weights.OriginRemote, CreatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}
	// Delivered newest first; applying "early" fails once.
	remote.pull = []weights.Event{late, early}
	applier := &recordingApplier{outbox: outbox, failID: "early"}
	r := NewReconciler(fastConfig(), outbox, remote, applier, nil, nil)

	if _, err := r.FetchRemoteDeltas(context.Background(), "u1"); err == nil {
		t.Fatal("expected the interrupted pull to report its failure")
	}

	// The failure hit the oldest event, so nothing newer may have been
	// recorded: the cursor must not have moved past the unapplied event.
	cursor, err := outbox.LatestRemoteCreatedAt(context.Background(), "u1")
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	if cursor.After(early.CreatedAt) {
		t.Fatalf("cursor = %v, moved past unapplied event at %v", cursor, early.CreatedAt)
	}

	// The retry sees both events again and applies them oldest first.
	applied, err := r.FetchRemoteDeltas(context.Background(), "u1")
	if err != nil {
		t.Fatalf("retry pull: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}
	want := []string{"early", "late"}
	if len(applier.applied) != len(want) {
		t.Fatalf("applied ids = %v, want %v", applier.applied, want)
	}
	for i, id := range want {
		if applier.applied[i] != id {
			t.Errorf("applied[%d] = %q, want %q", i, applier.applied[i], id)
		}
	}
}

func TestFetchRemoteDeltas_OfflineIsANoOp(t *testing.T) {
	r := NewReconciler(fastConfig(), &fakeOutbox{}, newFakeRemote(), &fakeApplier{}, func() bool { return false }, nil)
	applied, err := r.FetchRemoteDeltas(context.Background(), "u1")
	if err != nil || applied != 0 {
		t.Errorf("offline pull = (%d, %v), want (0, nil)", applied, err)
	}
}
