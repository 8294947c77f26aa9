package store

import (
	"context"
	"fmt"

	"github.com/nvarma/quizfeed/ent"
	"github.com/nvarma/quizfeed/ent/question"
	"github.com/nvarma/quizfeed/internal/pool"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) SaveQuestion(ctx context.Context, q pool.Question) error {
	_, err := r.client.Question.Create().
		SetQid(q.ID).
		SetText(q.Text).
		SetTags(q.Tags).
		SetTopic(q.Topic).
		SetSubtopic(q.Subtopic).
		SetBranch(q.Branch).
		SetDifficulty(q.Difficulty).
		SetFingerprint(q.Fingerprint).
		SetSeq(q.Seq).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// The index already rejected duplicates; a constraint hit
			// here means the row exists from a previous run.
			return nil
		}
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) AllQuestions(ctx context.Context) ([]pool.Question, error) {
	rows, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	out := make([]pool.Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, pool.Question{
			ID:          row.Qid,
			Text:        row.Text,
			Tags:        row.Tags,
			Topic:       row.Topic,
			Subtopic:    row.Subtopic,
			Branch:      row.Branch,
			Difficulty:  row.Difficulty,
			Fingerprint: row.Fingerprint,
			Seq:         row.Seq,
		})
	}
	return out, nil
}
