package store

import (
	"context"
	"fmt"
	"time"

	"github.com/nvarma/quizfeed/ent"
	"github.com/nvarma/quizfeed/ent/questionstate"
)

// stateRepo implements StateRepo using the ent client.
type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) EnsureShown(ctx context.Context, userID string, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}

	existing, err := r.client.QuestionState.Query().
		Where(
			questionstate.UserIDEQ(userID),
			questionstate.QuestionIDIn(questionIDs...),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query shown states: %w", err)
	}
	seen := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		seen[row.QuestionID] = struct{}{}
	}

	var creates []*ent.QuestionStateCreate
	for _, qid := range questionIDs {
		if _, ok := seen[qid]; ok {
			continue
		}
		creates = append(creates, r.client.QuestionState.Create().
			SetUserID(userID).
			SetQuestionID(qid).
			SetStatus(StatusUnanswered))
	}
	if len(creates) == 0 {
		return nil
	}
	if _, err := r.client.QuestionState.CreateBulk(creates...).Save(ctx); err != nil {
		return fmt.Errorf("create shown states: %w", err)
	}
	return nil
}

func (r *stateRepo) Resolve(ctx context.Context, userID, questionID, status string, answerIndex *int, at time.Time) error {
	if status != StatusAnswered && status != StatusSkipped {
		return fmt.Errorf("resolve %s: invalid terminal status %q", questionID, status)
	}

	row, err := r.client.QuestionState.Query().
		Where(
			questionstate.UserIDEQ(userID),
			questionstate.QuestionIDEQ(questionID),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query state %s: %w", questionID, err)
		}
		// Resolved without a prior shown row: create it terminal.
		_, err := r.client.QuestionState.Create().
			SetUserID(userID).
			SetQuestionID(questionID).
			SetStatus(status).
			SetNillableAnswerIndex(answerIndex).
			SetResolvedAt(at).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create resolved state %s: %w", questionID, err)
		}
		return nil
	}

	if row.Status != StatusUnanswered {
		return nil
	}

	_, err = r.client.QuestionState.UpdateOne(row).
		SetStatus(status).
		SetNillableAnswerIndex(answerIndex).
		SetResolvedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("resolve state %s: %w", questionID, err)
	}
	return nil
}

func (r *stateRepo) ResolvedIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	ids, err := r.client.QuestionState.Query().
		Where(
			questionstate.UserIDEQ(userID),
			questionstate.StatusNEQ(StatusUnanswered),
		).
		Select(questionstate.FieldQuestionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resolved ids: %w", err)
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}
