package weights

import "time"

// Event origins. Local events are created on this device and flow out
// through the sync outbox; remote events were pulled from another
// device and arrive already synced.
const (
	OriginLocal  = "local"
	OriginRemote = "remote"
)

// Event is one immutable weight delta. ID is a UUID and serves as the
// idempotency key everywhere an event can be applied or delivered
// twice. Only SyncedAt is ever set after creation.
type Event struct {
	ID     string
	UserID string

	Topic    string
	Subtopic string
	Branch   string

	// Delta is the intended delta before clamping.
	Delta float64

	SkipCompensationApplied  bool
	SkipCompensationTopic    float64
	SkipCompensationSubtopic float64
	SkipCompensationBranch   float64

	Origin    string
	CreatedAt time.Time
	SyncedAt  *time.Time
}

// Key returns the hierarchy level this event targets.
func (e Event) Key() Key {
	return Key{Topic: e.Topic, Subtopic: e.Subtopic, Branch: e.Branch}
}
