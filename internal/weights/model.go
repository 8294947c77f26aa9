// Package weights maintains per-user interest scores across the
// topic/subtopic/branch hierarchy and turns answers and skips into
// idempotent weight-change events.
package weights

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TopicWeight is the stored state for one (user, hierarchy level).
type TopicWeight struct {
	Key         Key
	Score       float64
	SampleCount int
	// Recent holds the latest answer outcomes at this level, newest
	// last, capped at Config.HistoryWindow. Feeds skip compensation.
	Recent      []bool
	LastUpdated time.Time
}

type userState struct {
	weights map[Key]*TopicWeight
	applied map[string]struct{}
}

// Model applies weight updates and answers weight queries. All methods
// are safe for concurrent use; each mutation is applied and published
// atomically under one lock, so readers always see a consistent
// snapshot.
type Model struct {
	cfg Config

	mu    sync.RWMutex
	users map[string]*userState

	now   func() time.Time
	newID func() string
}

// NewModel validates cfg and returns an empty model.
func NewModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		cfg:   cfg,
		users: make(map[string]*userState),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}, nil
}

// Config returns the model's tuning.
func (m *Model) Config() Config {
	return m.cfg
}

// Load hydrates a user's weights and the set of already-applied event
// IDs from persistent storage. Replaces any in-memory state for the
// user.
func (m *Model) Load(userID string, rows []TopicWeight, appliedIDs []string) {
	us := &userState{
		weights: make(map[Key]*TopicWeight, len(rows)),
		applied: make(map[string]struct{}, len(appliedIDs)),
	}
	for _, row := range rows {
		w := row
		if len(w.Recent) > m.cfg.HistoryWindow {
			w.Recent = w.Recent[len(w.Recent)-m.cfg.HistoryWindow:]
		}
		us.weights[w.Key] = &w
	}
	for _, id := range appliedIDs {
		us.applied[id] = struct{}{}
	}

	m.mu.Lock()
	m.users[userID] = us
	m.mu.Unlock()
}

// Loaded reports whether Load has run for userID.
func (m *Model) Loaded(userID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[userID]
	return ok
}

func (m *Model) user(userID string) *userState {
	us, ok := m.users[userID]
	if !ok {
		us = &userState{
			weights: make(map[Key]*TopicWeight),
			applied: make(map[string]struct{}),
		}
		m.users[userID] = us
	}
	return us
}

func (m *Model) weight(us *userState, k Key) *TopicWeight {
	w, ok := us.weights[k]
	if !ok {
		w = &TopicWeight{Key: k, Score: m.cfg.NeutralScore}
		us.weights[k] = w
	}
	return w
}

func validateHierarchy(topic, subtopic, branch string) error {
	if topic == "" {
		return &ErrInvalidWeightUpdate{Reason: "empty topic"}
	}
	if branch != "" && subtopic == "" {
		return &ErrInvalidWeightUpdate{Reason: "branch set without subtopic"}
	}
	return nil
}

// ApplyAnswer records an answer at every hierarchy level the question
// touches and returns the emitted events, coarsest level first. Correct
// answers earn the larger delta. The events are already applied when
// this returns.
func (m *Model) ApplyAnswer(userID, topic, subtopic, branch string, correct bool) ([]Event, error) {
	if err := validateHierarchy(topic, subtopic, branch); err != nil {
		return nil, err
	}

	delta := m.cfg.CorrectDelta
	if !correct {
		delta = m.cfg.IncorrectDelta
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	us := m.user(userID)
	now := m.now()

	levels := Levels(topic, subtopic, branch)
	events := make([]Event, 0, len(levels))
	for _, k := range levels {
		ev := Event{
			ID:        m.newID(),
			UserID:    userID,
			Topic:     k.Topic,
			Subtopic:  k.Subtopic,
			Branch:    k.Branch,
			Delta:     delta,
			Origin:    OriginLocal,
			CreatedAt: now,
		}
		m.applyLocked(us, ev)
		m.recordOutcome(us, k, correct)
		events = append(events, ev)
	}
	return events, nil
}

// ApplySkip records a skip with compensation. The penalty at each level
// is offset by the compensation earned from recent correct answers at
// that level; the applied compensation is stored on the event for audit
// and replay.
func (m *Model) ApplySkip(userID, topic, subtopic, branch string) ([]Event, error) {
	if err := validateHierarchy(topic, subtopic, branch); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	us := m.user(userID)
	now := m.now()

	levels := Levels(topic, subtopic, branch)
	events := make([]Event, 0, len(levels))
	for depth, k := range levels {
		comp := Compensation(m.recentCorrect(us, k), m.cfg)
		ev := Event{
			ID:                      m.newID(),
			UserID:                  userID,
			Topic:                   k.Topic,
			Subtopic:                k.Subtopic,
			Branch:                  k.Branch,
			Delta:                   -(m.cfg.SkipPenalty - comp),
			SkipCompensationApplied: comp > 0,
			Origin:                  OriginLocal,
			CreatedAt:               now,
		}
		switch depth {
		case 0:
			ev.SkipCompensationTopic = comp
		case 1:
			ev.SkipCompensationSubtopic = comp
		case 2:
			ev.SkipCompensationBranch = comp
		}
		m.applyLocked(us, ev)
		events = append(events, ev)
	}
	return events, nil
}

// ApplyEvent applies one event idempotently: an event whose ID has
// already been applied is a no-op returning (false, nil). Used for
// replays of remotely created events and redeliveries after a crash.
func (m *Model) ApplyEvent(ev Event) (bool, error) {
	if err := validateHierarchy(ev.Topic, ev.Subtopic, ev.Branch); err != nil {
		return false, err
	}
	if ev.ID == "" {
		return false, &ErrInvalidWeightUpdate{Reason: "missing event id"}
	}
	if math.IsNaN(ev.Delta) || math.IsInf(ev.Delta, 0) {
		return false, &ErrInvalidWeightUpdate{Reason: "delta is not a finite number"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	us := m.user(ev.UserID)
	if _, seen := us.applied[ev.ID]; seen {
		return false, nil
	}
	m.applyLocked(us, ev)
	return true, nil
}

// applyLocked mutates the weight cell for ev. Caller holds m.mu and has
// validated the event; the applied set is stamped here so double
// application is impossible on any path.
func (m *Model) applyLocked(us *userState, ev Event) {
	w := m.weight(us, ev.Key())

	score := w.Score + ev.Delta
	if score < m.cfg.MinScore {
		score = m.cfg.MinScore
	}
	if score > m.cfg.MaxScore {
		score = m.cfg.MaxScore
	}
	w.Score = score
	w.SampleCount++
	w.LastUpdated = m.now()

	us.applied[ev.ID] = struct{}{}
}

func (m *Model) recordOutcome(us *userState, k Key, correct bool) {
	w := m.weight(us, k)
	w.Recent = append(w.Recent, correct)
	if len(w.Recent) > m.cfg.HistoryWindow {
		w.Recent = w.Recent[len(w.Recent)-m.cfg.HistoryWindow:]
	}
}

func (m *Model) recentCorrect(us *userState, k Key) int {
	if w, ok := us.weights[k]; ok {
		return countCorrect(w.Recent)
	}
	return 0
}

// CurrentWeights returns a read-only snapshot of the user's scores,
// keyed by the string form of each hierarchy level.
func (m *Model) CurrentWeights(userID string) map[string]float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	us, ok := m.users[userID]
	if !ok {
		return map[string]float64{}
	}
	snap := make(map[string]float64, len(us.weights))
	for k, w := range us.weights {
		snap[k.String()] = w.Score
	}
	return snap
}

// WeightFor returns a copy of one weight cell, for persistence after an
// update.
func (m *Model) WeightFor(userID string, k Key) (TopicWeight, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	us, ok := m.users[userID]
	if !ok {
		return TopicWeight{}, false
	}
	w, ok := us.weights[k]
	if !ok {
		return TopicWeight{}, false
	}
	cp := *w
	cp.Recent = append([]bool(nil), w.Recent...)
	return cp, true
}
