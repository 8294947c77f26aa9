package store

import (
	"context"
	"time"

	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/weights"
)

// Question lifecycle states. A question leaves "unanswered" exactly
// once; answered and skipped are both terminal.
const (
	StatusUnanswered = "unanswered"
	StatusAnswered   = "answered"
	StatusSkipped    = "skipped"
)

// QuestionRepo persists the shared question pool. Satisfies
// pool.Saver.
type QuestionRepo interface {
	// SaveQuestion stores a newly ingested question.
	SaveQuestion(ctx context.Context, q pool.Question) error

	// AllQuestions returns every stored question in ingestion order,
	// used to rebuild the in-memory index at startup.
	AllQuestions(ctx context.Context) ([]pool.Question, error)
}

// StateRepo tracks each user's per-question lifecycle. Satisfies
// feed.ResolvedSource.
type StateRepo interface {
	// EnsureShown records that the questions were handed to the user,
	// creating unanswered rows for any not yet tracked.
	EnsureShown(ctx context.Context, userID string, questionIDs []string) error

	// Resolve moves a question to a terminal status. Resolving an
	// already-resolved question is a no-op.
	Resolve(ctx context.Context, userID, questionID, status string, answerIndex *int, at time.Time) error

	// ResolvedIDs returns the IDs of every question the user has
	// answered or skipped.
	ResolvedIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}

// WeightRepo persists per-user topic weights.
type WeightRepo interface {
	// UpsertWeight writes the current state of one weight row.
	UpsertWeight(ctx context.Context, userID string, w weights.TopicWeight) error

	// WeightsFor returns every weight row for the user.
	WeightsFor(ctx context.Context, userID string) ([]weights.TopicWeight, error)
}

// EventRepo is the append-only weight-change event log. Satisfies
// syncer.Outbox.
type EventRepo interface {
	// AppendEvent stores a locally created event. Appending an event
	// id that already exists is a no-op.
	AppendEvent(ctx context.Context, ev weights.Event) error

	// AppliedEventIDs returns every event id recorded for the user,
	// used to rebuild the model's idempotency set at startup.
	AppliedEventIDs(ctx context.Context, userID string) ([]string, error)

	// Unsynced returns local events not yet acknowledged by the
	// remote, oldest first.
	Unsynced(ctx context.Context) ([]weights.Event, error)

	// MarkSynced stamps synced_at after remote acknowledgment.
	MarkSynced(ctx context.Context, eventID string, at time.Time) error

	// RecordRemote persists a pulled event as already synced.
	// Inserting an id that already exists is a no-op.
	RecordRemote(ctx context.Context, ev weights.Event) error

	// LatestRemoteCreatedAt returns the newest created_at among pulled
	// events for the user, the cursor for the next pull.
	LatestRemoteCreatedAt(ctx context.Context, userID string) (time.Time, error)
}
