// Package engine ties the pool, weight model, feed assembler, and
// persistence together behind one surface. Every mutation for a user
// runs under that user's lock, so answer, skip, feed, and sync
// handling for the same user are strictly serialized while different
// users proceed in parallel.
package engine

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nvarma/quizfeed/internal/feed"
	"github.com/nvarma/quizfeed/internal/logging"
	"github.com/nvarma/quizfeed/internal/pool"
	"github.com/nvarma/quizfeed/internal/store"
	"github.com/nvarma/quizfeed/internal/syncer"
	"github.com/nvarma/quizfeed/internal/topics"
	"github.com/nvarma/quizfeed/internal/weights"
)

// Config holds the engine tuning.
type Config struct {
	Weights weights.Config
	Feed    feed.Config

	// BatchSize is how many questions a checkpoint or import refill
	// requests. Answer and skip replacements always request one.
	BatchSize int
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		Weights:   weights.DefaultConfig(),
		Feed:      feed.DefaultConfig(),
		BatchSize: 5,
	}
}

// Engine is the orchestration facade. Construct one per process with
// New, then hydrate the pool with LoadPool.
type Engine struct {
	cfg       Config
	idx       *pool.Index
	model     *weights.Model
	assembler *feed.Assembler
	questions store.QuestionRepo
	states    store.StateRepo
	weightRepo store.WeightRepo
	events    store.EventRepo
	rec       *syncer.Reconciler
	log       *zap.SugaredLogger
	now       func() time.Time

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// New wires an engine over the given repositories. graph supplies the
// related-topics bonus and may be nil; log may be nil.
func New(cfg Config, questions store.QuestionRepo, states store.StateRepo, weightRepo store.WeightRepo, events store.EventRepo, graph *topics.Graph, log *zap.SugaredLogger) (*Engine, error) {
	if log == nil {
		log = logging.Nop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}

	model, err := weights.NewModel(cfg.Weights)
	if err != nil {
		return nil, fmt.Errorf("weight model: %w", err)
	}

	idx := pool.NewIndex(questions, log)

	var related feed.RelatedSource
	if graph != nil {
		related = graph
	}
	assembler := feed.NewAssembler(cfg.Feed, states, idx, model, related, log)

	return &Engine{
		cfg:        cfg,
		idx:        idx,
		model:      model,
		assembler:  assembler,
		questions:  questions,
		states:     states,
		weightRepo: weightRepo,
		events:     events,
		log:        log,
		now:        time.Now,
		userLocks:  make(map[string]*sync.Mutex),
	}, nil
}

// UseRemote attaches a sync reconciler. Without one, Sync is an error.
func (e *Engine) UseRemote(rec *syncer.Reconciler) {
	e.rec = rec
}

// LoadPool rebuilds the in-memory question index from storage.
func (e *Engine) LoadPool(ctx context.Context) error {
	qs, err := e.questions.AllQuestions(ctx)
	if err != nil {
		return fmt.Errorf("load pool: %w", err)
	}
	e.idx.Load(qs)
	return nil
}

// Ingest adds one question to the pool.
func (e *Engine) Ingest(ctx context.Context, q pool.Question) error {
	return e.idx.Ingest(ctx, q)
}

// ImportPool validates and ingests a JSON question document.
func (e *Engine) ImportPool(ctx context.Context, r io.Reader) (pool.ImportResult, error) {
	return e.idx.ImportAll(ctx, r)
}

// PoolSize returns the number of indexed questions.
func (e *Engine) PoolSize() int {
	return e.idx.Len()
}

// Question looks up an indexed question by id.
func (e *Engine) Question(id string) (pool.Question, bool) {
	return e.idx.Get(id)
}

// userLock returns the serialization lock for one user, creating it on
// first use.
func (e *Engine) userLock(userID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.userLocks[userID] = l
	}
	return l
}

// hydrate loads the user's weight rows and applied event ids into the
// model on first touch. Caller holds the user lock.
func (e *Engine) hydrate(ctx context.Context, userID string) error {
	if e.model.Loaded(userID) {
		return nil
	}
	rows, err := e.weightRepo.WeightsFor(ctx, userID)
	if err != nil {
		return fmt.Errorf("hydrate weights: %w", err)
	}
	applied, err := e.events.AppliedEventIDs(ctx, userID)
	if err != nil {
		return fmt.Errorf("hydrate applied ids: %w", err)
	}
	e.model.Load(userID, rows, applied)
	return nil
}

// NeedMore extends the user's feed by count questions (BatchSize when
// count is zero) and records them as shown.
func (e *Engine) NeedMore(ctx context.Context, userID string, reason feed.Reason, count int) (*feed.Batch, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()
	if err := e.hydrate(ctx, userID); err != nil {
		return nil, err
	}
	return e.extendFeed(ctx, userID, reason, count)
}

// extendFeed is NeedMore without locking. Caller holds the user lock.
func (e *Engine) extendFeed(ctx context.Context, userID string, reason feed.Reason, count int) (*feed.Batch, error) {
	if count <= 0 {
		count = e.cfg.BatchSize
	}
	batch, err := e.assembler.NeedMore(ctx, userID, reason, count)
	if err != nil {
		return nil, err
	}
	if err := e.states.EnsureShown(ctx, userID, batch.QuestionIDs); err != nil {
		return nil, fmt.Errorf("record shown: %w", err)
	}
	return batch, nil
}

// RecordAnswer resolves a question as answered, applies the weight
// deltas, and returns the single-question replacement batch.
func (e *Engine) RecordAnswer(ctx context.Context, userID, questionID string, answerIndex int, correct bool) (*feed.Batch, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()
	if err := e.hydrate(ctx, userID); err != nil {
		return nil, err
	}

	q, ok := e.idx.Get(questionID)
	if !ok {
		return nil, &ErrUnknownQuestion{QuestionID: questionID}
	}

	evs, err := e.model.ApplyAnswer(userID, q.Topic, q.Subtopic, q.Branch, correct)
	if err != nil {
		return nil, err
	}
	if err := e.persistApplied(ctx, userID, evs); err != nil {
		return nil, err
	}

	if err := e.states.Resolve(ctx, userID, questionID, store.StatusAnswered, &answerIndex, e.now()); err != nil {
		return nil, err
	}

	st := e.assembler.StateFor(userID)
	st.MarkResolved(questionID)
	st.SetLastAnsweredTopic(q.Topic)

	e.log.Debugw("answer recorded",
		"user_id", userID,
		"question_id", questionID,
		"correct", correct,
		"events", len(evs),
	)
	return e.extendFeed(ctx, userID, feed.ReasonAnswer, 1)
}

// RecordSkip resolves a question as skipped, applies the compensated
// penalty, and returns the single-question replacement batch. Skips do
// not move the related-topic anchor.
func (e *Engine) RecordSkip(ctx context.Context, userID, questionID string) (*feed.Batch, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()
	if err := e.hydrate(ctx, userID); err != nil {
		return nil, err
	}

	q, ok := e.idx.Get(questionID)
	if !ok {
		return nil, &ErrUnknownQuestion{QuestionID: questionID}
	}

	evs, err := e.model.ApplySkip(userID, q.Topic, q.Subtopic, q.Branch)
	if err != nil {
		return nil, err
	}
	if err := e.persistApplied(ctx, userID, evs); err != nil {
		return nil, err
	}

	if err := e.states.Resolve(ctx, userID, questionID, store.StatusSkipped, nil, e.now()); err != nil {
		return nil, err
	}

	e.assembler.StateFor(userID).MarkResolved(questionID)

	e.log.Debugw("skip recorded",
		"user_id", userID,
		"question_id", questionID,
		"events", len(evs),
	)
	return e.extendFeed(ctx, userID, feed.ReasonSkip, 1)
}

// persistApplied writes freshly applied events to the outbox and their
// resulting weight rows to storage. Caller holds the user lock.
func (e *Engine) persistApplied(ctx context.Context, userID string, evs []weights.Event) error {
	for _, ev := range evs {
		if err := e.events.AppendEvent(ctx, ev); err != nil {
			return fmt.Errorf("append event: %w", err)
		}
		w, ok := e.model.WeightFor(userID, ev.Key())
		if !ok {
			return fmt.Errorf("missing weight row for %s", ev.Key())
		}
		if err := e.weightRepo.UpsertWeight(ctx, userID, w); err != nil {
			return fmt.Errorf("persist weight: %w", err)
		}
	}
	return nil
}

// CurrentWeights returns the user's weight snapshot keyed by hierarchy
// path.
func (e *Engine) CurrentWeights(ctx context.Context, userID string) (map[string]float64, error) {
	l := e.userLock(userID)
	l.Lock()
	defer l.Unlock()
	if err := e.hydrate(ctx, userID); err != nil {
		return nil, err
	}
	return e.model.CurrentWeights(userID), nil
}

// ApplyRemote applies one pulled event through the model's idempotent
// path and persists the outcome. Implements the sync applier.
func (e *Engine) ApplyRemote(ctx context.Context, ev weights.Event) error {
	l := e.userLock(ev.UserID)
	l.Lock()
	defer l.Unlock()
	if err := e.hydrate(ctx, ev.UserID); err != nil {
		return err
	}

	applied, err := e.model.ApplyEvent(ev)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}

	w, ok := e.model.WeightFor(ev.UserID, ev.Key())
	if !ok {
		return fmt.Errorf("missing weight row for %s", ev.Key())
	}
	if err := e.weightRepo.UpsertWeight(ctx, ev.UserID, w); err != nil {
		return fmt.Errorf("persist weight: %w", err)
	}
	if err := e.events.RecordRemote(ctx, ev); err != nil {
		return fmt.Errorf("record remote event: %w", err)
	}
	return nil
}

// Sync pushes unsynced local events and pulls the user's remote
// deltas. Requires an attached reconciler.
func (e *Engine) Sync(ctx context.Context, userID string) error {
	if e.rec == nil {
		return fmt.Errorf("sync: no remote configured")
	}
	if err := e.rec.Sync(ctx); err != nil {
		return err
	}
	pulled, err := e.rec.FetchRemoteDeltas(ctx, userID)
	if err != nil {
		return err
	}
	e.log.Infow("sync complete", "user_id", userID, "pulled", pulled)
	return nil
}
