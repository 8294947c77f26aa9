package syncer

import (
	"context"
	"time"

	"github.com/nvarma/quizfeed/internal/weights"
)

// SchemaVersion is the event shape this client writes. The
// skip-compensation audit columns arrived in v1.1.0; remotes older than
// that receive the reduced shape.
const (
	SchemaVersion    = "v1.1.0"
	minFullSchemaVer = "v1.1.0"
)

// Remote is the other side of the sync protocol. Re-submission of an
// event id must be a server-side no-op; the client relies on that for
// crash recovery.
type Remote interface {
	// SchemaVersion reports the event schema the remote accepts.
	SchemaVersion(ctx context.Context) (string, error)

	// PushEvent upserts one event keyed by its id. reduced omits the
	// optional audit columns for older remotes.
	PushEvent(ctx context.Context, ev weights.Event, reduced bool) error

	// PullEvents returns events created by the user's other devices
	// strictly after since.
	PullEvents(ctx context.Context, userID string, since time.Time) ([]weights.Event, error)
}

// eventPayload is the wire shape of one event. The optional columns are
// omitted in reduced mode; everything else predates v1.1.0 and is
// accepted by every deployed remote.
type eventPayload struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Topic    string  `json:"topic"`
	Subtopic string  `json:"subtopic,omitempty"`
	Branch   string  `json:"branch,omitempty"`
	Delta    float64 `json:"delta"`

	SkipCompensationApplied  *bool    `json:"skip_compensation_applied,omitempty"`
	SkipCompensationTopic    *float64 `json:"skip_compensation_topic,omitempty"`
	SkipCompensationSubtopic *float64 `json:"skip_compensation_subtopic,omitempty"`
	SkipCompensationBranch   *float64 `json:"skip_compensation_branch,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func payloadFrom(ev weights.Event, reduced bool) eventPayload {
	p := eventPayload{
		ID:        ev.ID,
		UserID:    ev.UserID,
		Topic:     ev.Topic,
		Subtopic:  ev.Subtopic,
		Branch:    ev.Branch,
		Delta:     ev.Delta,
		CreatedAt: ev.CreatedAt,
	}
	if !reduced {
		p.SkipCompensationApplied = &ev.SkipCompensationApplied
		p.SkipCompensationTopic = &ev.SkipCompensationTopic
		p.SkipCompensationSubtopic = &ev.SkipCompensationSubtopic
		p.SkipCompensationBranch = &ev.SkipCompensationBranch
	}
	return p
}

func (p eventPayload) event() weights.Event {
	ev := weights.Event{
		ID:        p.ID,
		UserID:    p.UserID,
		Topic:     p.Topic,
		Subtopic:  p.Subtopic,
		Branch:    p.Branch,
		Delta:     p.Delta,
		Origin:    weights.OriginRemote,
		CreatedAt: p.CreatedAt,
	}
	if p.SkipCompensationApplied != nil {
		ev.SkipCompensationApplied = *p.SkipCompensationApplied
	}
	if p.SkipCompensationTopic != nil {
		ev.SkipCompensationTopic = *p.SkipCompensationTopic
	}
	if p.SkipCompensationSubtopic != nil {
		ev.SkipCompensationSubtopic = *p.SkipCompensationSubtopic
	}
	if p.SkipCompensationBranch != nil {
		ev.SkipCompensationBranch = *p.SkipCompensationBranch
	}
	return ev
}
