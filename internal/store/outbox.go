package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nvarma/quizfeed/ent"
	"github.com/nvarma/quizfeed/ent/weightchangeevent"
	"github.com/nvarma/quizfeed/internal/weights"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendEvent(ctx context.Context, ev weights.Event) error {
	return r.insert(ctx, ev, weights.OriginLocal, nil)
}

func (r *eventRepo) RecordRemote(ctx context.Context, ev weights.Event) error {
	at := ev.SyncedAt
	if at == nil {
		now := time.Now().UTC()
		at = &now
	}
	return r.insert(ctx, ev, weights.OriginRemote, at)
}

func (r *eventRepo) insert(ctx context.Context, ev weights.Event, origin string, syncedAt *time.Time) error {
	exists, err := r.client.WeightChangeEvent.Query().
		Where(weightchangeevent.EventIDEQ(ev.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check event %s: %w", ev.ID, err)
	}
	if exists {
		return nil
	}

	create := r.client.WeightChangeEvent.Create().
		SetEventID(ev.ID).
		SetUserID(ev.UserID).
		SetTopic(ev.Topic).
		SetSubtopic(ev.Subtopic).
		SetBranch(ev.Branch).
		SetDelta(ev.Delta).
		SetSkipCompensationApplied(ev.SkipCompensationApplied).
		SetSkipCompensationTopic(ev.SkipCompensationTopic).
		SetSkipCompensationSubtopic(ev.SkipCompensationSubtopic).
		SetSkipCompensationBranch(ev.SkipCompensationBranch).
		SetOrigin(origin).
		SetCreatedAt(ev.CreatedAt).
		SetNillableSyncedAt(syncedAt)
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with a concurrent insert of the same id.
			return nil
		}
		return fmt.Errorf("insert event %s: %w", ev.ID, err)
	}
	return nil
}

func (r *eventRepo) AppliedEventIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.WeightChangeEvent.Query().
		Where(weightchangeevent.UserIDEQ(userID)).
		Select(weightchangeevent.FieldEventID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query applied ids: %w", err)
	}
	return ids, nil
}

func (r *eventRepo) Unsynced(ctx context.Context) ([]weights.Event, error) {
	rows, err := r.client.WeightChangeEvent.Query().
		Where(
			weightchangeevent.OriginEQ(weights.OriginLocal),
			weightchangeevent.SyncedAtIsNil(),
		).
		Order(ent.Asc(weightchangeevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unsynced events: %w", err)
	}
	out := make([]weights.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, entEventToEvent(row))
	}
	return out, nil
}

func (r *eventRepo) MarkSynced(ctx context.Context, eventID string, at time.Time) error {
	n, err := r.client.WeightChangeEvent.Update().
		Where(weightchangeevent.EventIDEQ(eventID)).
		SetSyncedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark synced %s: %w", eventID, err)
	}
	if n == 0 {
		return fmt.Errorf("mark synced %s: event not found", eventID)
	}
	return nil
}

func (r *eventRepo) LatestRemoteCreatedAt(ctx context.Context, userID string) (time.Time, error) {
	row, err := r.client.WeightChangeEvent.Query().
		Where(
			weightchangeevent.UserIDEQ(userID),
			weightchangeevent.OriginEQ(weights.OriginRemote),
		).
		Order(ent.Desc(weightchangeevent.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query remote cursor: %w", err)
	}
	return row.CreatedAt, nil
}

// entEventToEvent converts an ent row to a weights.Event.
func entEventToEvent(row *ent.WeightChangeEvent) weights.Event {
	return weights.Event{
		ID:                       row.EventID,
		UserID:                   row.UserID,
		Topic:                    row.Topic,
		Subtopic:                 row.Subtopic,
		Branch:                   row.Branch,
		Delta:                    row.Delta,
		SkipCompensationApplied:  row.SkipCompensationApplied,
		SkipCompensationTopic:    row.SkipCompensationTopic,
		SkipCompensationSubtopic: row.SkipCompensationSubtopic,
		SkipCompensationBranch:   row.SkipCompensationBranch,
		Origin:                   row.Origin,
		CreatedAt:                row.CreatedAt,
		SyncedAt:                 row.SyncedAt,
	}
}
