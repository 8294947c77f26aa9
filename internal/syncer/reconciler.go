// Package syncer moves weight-change events between the local outbox
// and the remote store. Every event is an additive delta with its own
// idempotency key, so there is no write-ordering requirement and no
// last-writer-wins conflict: the only hazard is duplicate delivery,
// which both sides resolve by event id.
package syncer

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"

	"github.com/nvarma/quizfeed/internal/logging"
	"github.com/nvarma/quizfeed/internal/weights"
)

// Outbox is the local append-only event store.
type Outbox interface {
	// Unsynced returns local events not yet acknowledged by the remote,
	// oldest first.
	Unsynced(ctx context.Context) ([]weights.Event, error)

	// MarkSynced stamps synced_at after remote acknowledgment.
	MarkSynced(ctx context.Context, eventID string, at time.Time) error

	// RecordRemote persists a pulled event as already synced. Inserting
	// an id that already exists is a no-op.
	RecordRemote(ctx context.Context, ev weights.Event) error

	// LatestRemoteCreatedAt returns the newest created_at among pulled
	// events for the user, the cursor for the next pull.
	LatestRemoteCreatedAt(ctx context.Context, userID string) (time.Time, error)
}

// Applier applies pulled events through the weight model's idempotent
// path and persists the result.
type Applier interface {
	ApplyRemote(ctx context.Context, ev weights.Event) error
}

// Config tunes the reconciler.
type Config struct {
	// RequestTimeout bounds each individual remote call.
	RequestTimeout time.Duration

	Retry RetryConfig
}

// DefaultConfig returns the standard sync tuning.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: 10 * time.Second,
		Retry:          DefaultRetryConfig(),
	}
}

// Reconciler owns the sync protocol. Safe to cancel mid-batch:
// unacknowledged events keep a nil synced_at and are retried on the
// next call. Never blocks local operation; all failures here are
// reported, not fatal.
type Reconciler struct {
	cfg       Config
	outbox    Outbox
	remote    Remote
	applier   Applier
	reachable func() bool
	log       *zap.SugaredLogger
	now       func() time.Time
}

// NewReconciler wires a reconciler. reachable and log may be nil; a nil
// reachable signal means "always try".
func NewReconciler(cfg Config, outbox Outbox, remote Remote, applier Applier, reachable func() bool, log *zap.SugaredLogger) *Reconciler {
	if log == nil {
		log = logging.Nop()
	}
	return &Reconciler{
		cfg:       cfg,
		outbox:    outbox,
		remote:    remote,
		applier:   applier,
		reachable: reachable,
		log:       log,
		now:       time.Now,
	}
}

// Sync uploads every unsynced local event exactly once. Idempotent and
// safe to call redundantly: with nothing pending it performs zero
// remote writes. A disconnected reachability signal turns the call into
// a no-op rather than an error.
func (r *Reconciler) Sync(ctx context.Context) error {
	if r.reachable != nil && !r.reachable() {
		r.log.Debugw("sync skipped, offline")
		return nil
	}

	pending, err := r.outbox.Unsynced(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	reduced, err := r.negotiateShape(ctx)
	if err != nil {
		return err
	}

	synced := 0
	for _, ev := range pending {
		if err := ctx.Err(); err != nil {
			// Cancelled mid-batch: everything not yet acknowledged
			// stays unsynced and is retried next time.
			r.log.Infow("sync cancelled", "synced", synced, "pending", len(pending)-synced)
			return err
		}

		err := r.pushOne(ctx, ev, reduced)
		if err != nil {
			var mismatch *ErrSchemaMismatch
			if errors.As(err, &mismatch) && !reduced {
				// Remote can't take the full shape after all; degrade
				// for the rest of the batch rather than failing it.
				r.log.Warnw("degrading to reduced event shape", "event_id", ev.ID, "error", err)
				reduced = true
				err = r.pushOne(ctx, ev, true)
			}
			if err != nil {
				r.log.Warnw("sync stopped", "event_id", ev.ID, "synced", synced, "error", err)
				return err
			}
		}

		if err := r.outbox.MarkSynced(ctx, ev.ID, r.now()); err != nil {
			// The remote has the event; the local stamp failed. Next
			// sync resubmits and the remote's idempotency key makes
			// that a no-op.
			r.log.Warnw("mark synced failed", "event_id", ev.ID, "error", err)
			return err
		}
		synced++
	}

	r.log.Infow("sync complete", "synced", synced)
	return nil
}

// negotiateShape decides whether to send the reduced event shape based
// on the remote's advertised schema version.
func (r *Reconciler) negotiateShape(ctx context.Context) (bool, error) {
	var version string
	err := withRetry(ctx, r.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout)
		defer cancel()
		v, err := r.remote.SchemaVersion(callCtx)
		version = v
		return err
	})
	if err != nil {
		return false, err
	}

	if !semver.IsValid(version) {
		r.log.Warnw("remote schema version unparseable, sending reduced shape", "version", version)
		return true, nil
	}
	reduced := semver.Compare(version, minFullSchemaVer) < 0
	if reduced {
		r.log.Infow("remote runs an older schema, sending reduced shape",
			"remote", version, "min_full", minFullSchemaVer)
	}
	return reduced, nil
}

func (r *Reconciler) pushOne(ctx context.Context, ev weights.Event, reduced bool) error {
	return withRetry(ctx, r.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout)
		defer cancel()
		return r.remote.PushEvent(callCtx, ev, reduced)
	})
}

// FetchRemoteDeltas pulls events created on the user's other devices
// since the last successful pull and replays them through the weight
// model. Redelivered events are no-ops there, so an interrupted pull
// repeats safely. Returns the number of events applied.
func (r *Reconciler) FetchRemoteDeltas(ctx context.Context, userID string) (int, error) {
	if r.reachable != nil && !r.reachable() {
		r.log.Debugw("pull skipped, offline")
		return 0, nil
	}

	since, err := r.outbox.LatestRemoteCreatedAt(ctx, userID)
	if err != nil {
		return 0, err
	}

	var events []weights.Event
	err = withRetry(ctx, r.cfg.Retry, func(ctx context.Context) error {
		callCtx, cancel := context.WithTimeout(ctx, r.cfg.RequestTimeout)
		defer cancel()
		evs, err := r.remote.PullEvents(callCtx, userID, since)
		events = evs
		return err
	})
	if err != nil {
		return 0, err
	}

	// Apply oldest first regardless of delivery order. Recording an
	// event advances the pull cursor to its created_at, so if the
	// batch aborts mid-way every unapplied event must still lie after
	// the newest recorded one, or the remote would never redeliver it.
	sort.Slice(events, func(i, j int) bool {
		if events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].ID < events[j].ID
		}
		return events[i].CreatedAt.Before(events[j].CreatedAt)
	})

	applied := 0
	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			return applied, err
		}
		if err := r.applier.ApplyRemote(ctx, ev); err != nil {
			// A malformed remote event must not poison the batch; the
			// weight-update path stays fully functional.
			var invalid *weights.ErrInvalidWeightUpdate
			if errors.As(err, &invalid) {
				r.log.Warnw("skipping malformed remote event", "event_id", ev.ID, "error", err)
				continue
			}
			return applied, err
		}
		applied++
	}

	r.log.Infow("remote deltas applied", "user_id", userID, "pulled", len(events), "applied", applied)
	return applied, nil
}
