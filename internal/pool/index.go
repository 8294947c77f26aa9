package pool

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/nvarma/quizfeed/internal/fingerprint"
	"github.com/nvarma/quizfeed/internal/logging"
)

// Saver persists ingested questions. The index works without one for
// purely in-memory use (tests, previews).
type Saver interface {
	SaveQuestion(ctx context.Context, q Question) error
}

// Index is the in-memory question index. Safe for concurrent use:
// reads take the read lock, ingestion the write lock.
type Index struct {
	mu            sync.RWMutex
	ordered       []Question
	byID          map[string]int
	byFingerprint map[string]string
	nextSeq       int64

	saver Saver
	log   *zap.SugaredLogger
}

// NewIndex creates an empty index. saver and log may be nil.
func NewIndex(saver Saver, log *zap.SugaredLogger) *Index {
	if log == nil {
		log = logging.Nop()
	}
	return &Index{
		byID:          make(map[string]int),
		byFingerprint: make(map[string]string),
		nextSeq:       1,
		saver:         saver,
		log:           log,
	}
}

// Load hydrates the index from already-persisted questions, preserving
// their stored sequence. Questions are assumed deduplicated at write
// time; colliding rows are dropped with a warning rather than erroring
// a whole startup.
func (i *Index) Load(questions []Question) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, q := range questions {
		if _, dup := i.byFingerprint[q.Fingerprint]; dup {
			i.log.Warnw("dropping stored duplicate question", "question_id", q.ID)
			continue
		}
		if q.Seq >= i.nextSeq {
			i.nextSeq = q.Seq + 1
		}
		i.append(q)
	}
}

// Ingest validates, fingerprints, persists and indexes one question.
// A fingerprint collision returns *ErrDuplicateQuestion; the pool is
// unchanged and the caller may treat it as a non-fatal skip.
func (i *Index) Ingest(ctx context.Context, q Question) error {
	if q.ID == "" {
		return fingerprint.ErrInvalidQuestion
	}
	if q.Fingerprint == "" {
		fp, err := fingerprint.New(q.Text, q.Tags)
		if err != nil {
			return err
		}
		q.Fingerprint = fp
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.byID[q.ID]; exists {
		err := &ErrDuplicateQuestion{QuestionID: q.ID, ExistingID: q.ID}
		i.log.Warnw("duplicate question id", "question_id", q.ID)
		return err
	}
	if existing, exists := i.byFingerprint[q.Fingerprint]; exists {
		err := &ErrDuplicateQuestion{QuestionID: q.ID, ExistingID: existing}
		i.log.Warnw("duplicate question fingerprint",
			"question_id", q.ID, "existing_id", existing)
		return err
	}

	q.Seq = i.nextSeq
	i.nextSeq++

	if i.saver != nil {
		if err := i.saver.SaveQuestion(ctx, q); err != nil {
			i.nextSeq--
			return err
		}
	}
	i.append(q)
	return nil
}

// append assumes the write lock is held and the question is deduped.
func (i *Index) append(q Question) {
	i.ordered = append(i.ordered, q)
	i.byID[q.ID] = len(i.ordered) - 1
	i.byFingerprint[q.Fingerprint] = q.ID
}

// Candidates returns up to limit questions matching the topic filter
// whose id is not in exclude, in insertion order. An empty topic
// matches everything; subtopic narrows only when set. limit <= 0 means
// no limit. Ranking is the feed assembler's job, not the index's.
func (i *Index) Candidates(topic, subtopic string, exclude map[string]struct{}, limit int) []Question {
	i.mu.RLock()
	defer i.mu.RUnlock()

	var out []Question
	for _, q := range i.ordered {
		if topic != "" && q.Topic != topic {
			continue
		}
		if subtopic != "" && q.Subtopic != subtopic {
			continue
		}
		if _, excluded := exclude[q.ID]; excluded {
			continue
		}
		out = append(out, q)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Get returns the question with the given id.
func (i *Index) Get(id string) (Question, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	idx, ok := i.byID[id]
	if !ok {
		return Question{}, false
	}
	return i.ordered[idx], true
}

// Len returns the number of indexed questions.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.ordered)
}
