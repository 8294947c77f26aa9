package store

import (
	"context"
	"fmt"

	"github.com/nvarma/quizfeed/ent"
	"github.com/nvarma/quizfeed/ent/topicweight"
	"github.com/nvarma/quizfeed/internal/weights"
)

// weightRepo implements WeightRepo using the ent client.
type weightRepo struct {
	client *ent.Client
}

func (r *weightRepo) UpsertWeight(ctx context.Context, userID string, w weights.TopicWeight) error {
	row, err := r.client.TopicWeight.Query().
		Where(
			topicweight.UserIDEQ(userID),
			topicweight.TopicEQ(w.Key.Topic),
			topicweight.SubtopicEQ(w.Key.Subtopic),
			topicweight.BranchEQ(w.Key.Branch),
		).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query weight %s: %w", w.Key, err)
		}
		_, err := r.client.TopicWeight.Create().
			SetUserID(userID).
			SetTopic(w.Key.Topic).
			SetSubtopic(w.Key.Subtopic).
			SetBranch(w.Key.Branch).
			SetScore(w.Score).
			SetSampleCount(w.SampleCount).
			SetRecent(w.Recent).
			SetLastUpdated(w.LastUpdated).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create weight %s: %w", w.Key, err)
		}
		return nil
	}

	_, err = r.client.TopicWeight.UpdateOne(row).
		SetScore(w.Score).
		SetSampleCount(w.SampleCount).
		SetRecent(w.Recent).
		SetLastUpdated(w.LastUpdated).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update weight %s: %w", w.Key, err)
	}
	return nil
}

func (r *weightRepo) WeightsFor(ctx context.Context, userID string) ([]weights.TopicWeight, error) {
	rows, err := r.client.TopicWeight.Query().
		Where(topicweight.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weights: %w", err)
	}
	out := make([]weights.TopicWeight, 0, len(rows))
	for _, row := range rows {
		out = append(out, weights.TopicWeight{
			Key: weights.Key{
				Topic:    row.Topic,
				Subtopic: row.Subtopic,
				Branch:   row.Branch,
			},
			Score:       row.Score,
			SampleCount: row.SampleCount,
			Recent:      row.Recent,
			LastUpdated: row.LastUpdated,
		})
	}
	return out, nil
}
