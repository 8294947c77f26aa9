// Package feed decides which questions enter a user's feed. NeedMore is
// the single choke point shared by every trigger, so resolved questions
// are filtered identically no matter why the feed is being extended.
package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nvarma/quizfeed/internal/logging"
	"github.com/nvarma/quizfeed/internal/pool"
)

// Reason is the trigger that asked for more feed items. All reasons
// share the same filtering; the value is carried for logging and on the
// returned batch.
type Reason string

const (
	ReasonCheckpoint Reason = "checkpoint"
	ReasonSkip       Reason = "skip"
	ReasonAnswer     Reason = "answer"
	ReasonImport     Reason = "import"
)

// Batch is one assembled extension of the feed: ordered question ids,
// consumed immediately by the caller and discarded. Exhausted is the
// soft pool-exhausted signal, never an error.
type Batch struct {
	Reason      Reason
	QuestionIDs []string
	Exhausted   bool
}

// ResolvedSource answers "which questions has this user resolved",
// fresh from the state store on every call.
type ResolvedSource interface {
	ResolvedIDs(ctx context.Context, userID string) (map[string]struct{}, error)
}

// WeightSource supplies the ranking weights.
type WeightSource interface {
	CurrentWeights(userID string) map[string]float64
}

// RelatedSource supplies the related-topics lookup. May be nil, in
// which case ranking falls back to weight-only ordering.
type RelatedSource interface {
	RelatedSet(topic string) map[string]struct{}
}

// Assembler produces ranked feed batches. Safe for concurrent use: the
// four triggers may fire simultaneously and each recomputes its
// exclusion sets at call time.
type Assembler struct {
	cfg      Config
	resolved ResolvedSource
	pool     *pool.Index
	weights  WeightSource
	related  RelatedSource
	log      *zap.SugaredLogger

	mu     sync.Mutex
	states map[string]*State
}

// NewAssembler wires an assembler. related and log may be nil.
func NewAssembler(cfg Config, resolved ResolvedSource, idx *pool.Index, ws WeightSource, related RelatedSource, log *zap.SugaredLogger) *Assembler {
	if log == nil {
		log = logging.Nop()
	}
	return &Assembler{
		cfg:      cfg,
		resolved: resolved,
		pool:     idx,
		weights:  ws,
		related:  related,
		log:      log,
		states:   make(map[string]*State),
	}
}

// StateFor returns the feed state for a user, creating it on first use.
func (a *Assembler) StateFor(userID string) *State {
	a.mu.Lock()
	defer a.mu.Unlock()

	st, ok := a.states[userID]
	if !ok {
		st = NewState()
		a.states[userID] = st
	}
	return st
}

// NeedMore extends the user's feed by up to count questions and returns
// them as a batch. The resolved set is recomputed from the state store
// on every call; a stale cached copy is exactly the defect this method
// exists to prevent. Returning fewer than count is not an error: the
// batch is marked Exhausted and the caller may fetch more questions
// remotely.
func (a *Assembler) NeedMore(ctx context.Context, userID string, reason Reason, count int) (*Batch, error) {
	if count <= 0 {
		return &Batch{Reason: reason}, nil
	}

	st := a.StateFor(userID)

	resolved, err := a.resolved.ResolvedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	existing := st.Members()

	exclude := make(map[string]struct{}, len(resolved)+len(existing))
	for id := range resolved {
		exclude[id] = struct{}{}
	}
	for id := range existing {
		exclude[id] = struct{}{}
	}

	candidates := a.pool.Candidates("", "", exclude, 0)

	var related map[string]struct{}
	if a.related != nil {
		if last := st.LastAnsweredTopic(); last != "" {
			related = a.related.RelatedSet(last)
		}
	}

	ranked := rank(candidates, a.weights.CurrentWeights(userID), related, a.cfg)
	if len(ranked) > count {
		ranked = ranked[:count]
	}

	ids := make([]string, len(ranked))
	for i, q := range ranked {
		ids[i] = q.ID
	}
	appended := st.Append(ids)

	total := a.pool.Len()
	a.log.Infow("feed batch assembled",
		"user_id", userID,
		"reason", string(reason),
		"total", total,
		"considered", len(candidates),
		"excluded", total-len(candidates),
		"returned", len(appended),
	)

	return &Batch{
		Reason:      reason,
		QuestionIDs: appended,
		Exhausted:   len(appended) < count,
	}, nil
}
