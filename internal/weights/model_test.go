package weights

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	// Deterministic clock and IDs for assertions.
	seq := 0
	m.newID = func() string {
		seq++
		return fmt.Sprintf("ev-%03d", seq)
	}
	m.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return m
}

func TestApplyAnswer_EmitsEventPerLevel(t *testing.T) {
	m := testModel(t)

	events, err := m.ApplyAnswer("u1", "science", "physics", "optics", true)
	if err != nil {
		t.Fatalf("ApplyAnswer: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	wantKeys := []string{"science", "science/physics", "science/physics/optics"}
	for i, ev := range events {
		if got := ev.Key().String(); got != wantKeys[i] {
			t.Errorf("event %d key = %s, want %s", i, got, wantKeys[i])
		}
		if ev.Delta != m.cfg.CorrectDelta {
			t.Errorf("event %d delta = %v, want %v", i, ev.Delta, m.cfg.CorrectDelta)
		}
		if ev.ID == "" || ev.UserID != "u1" {
			t.Errorf("event %d missing identity fields: %+v", i, ev)
		}
	}

	snap := m.CurrentWeights("u1")
	for _, key := range wantKeys {
		want := m.cfg.NeutralScore + m.cfg.CorrectDelta
		if snap[key] != want {
			t.Errorf("weight[%s] = %v, want %v", key, snap[key], want)
		}
	}
}

func TestApplyAnswer_TopicOnlyQuestion(t *testing.T) {
	m := testModel(t)

	events, err := m.ApplyAnswer("u1", "history", "", "", false)
	if err != nil {
		t.Fatalf("ApplyAnswer: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Delta != m.cfg.IncorrectDelta {
		t.Errorf("delta = %v, want incorrect delta %v", events[0].Delta, m.cfg.IncorrectDelta)
	}
}

func TestApplyAnswer_CorrectOutweighsIncorrect(t *testing.T) {
	m := testModel(t)

	m.ApplyAnswer("right", "science", "", "", true)
	m.ApplyAnswer("wrong", "science", "", "", false)

	if m.CurrentWeights("right")["science"] <= m.CurrentWeights("wrong")["science"] {
		t.Error("correct answer should raise the score at least as much as incorrect")
	}
}

func TestApplyAnswer_InvalidInput(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		name                     string
		topic, subtopic, branch string
	}{
		{"empty topic", "", "physics", ""},
		{"branch without subtopic", "science", "", "optics"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := m.ApplyAnswer("u1", tt.topic, tt.subtopic, tt.branch, true)
			var inv *ErrInvalidWeightUpdate
			if !errors.As(err, &inv) {
				t.Fatalf("err = %v, want ErrInvalidWeightUpdate", err)
			}
			if events != nil {
				t.Error("no events should be emitted on rejection")
			}
			if len(m.CurrentWeights("u1")) != 0 {
				t.Error("nothing should partially apply on rejection")
			}
		})
	}
}

func TestApplyEvent_Idempotent(t *testing.T) {
	m := testModel(t)

	ev := Event{
		ID:     "dup-1",
		UserID: "u1",
		Topic:  "science",
		Delta:  2.5,
		Origin: OriginRemote,
	}

	applied, err := m.ApplyEvent(ev)
	if err != nil || !applied {
		t.Fatalf("first apply = (%v, %v), want (true, nil)", applied, err)
	}
	once := m.CurrentWeights("u1")

	applied, err = m.ApplyEvent(ev)
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if applied {
		t.Error("second apply of the same event should be a no-op")
	}
	if twice := m.CurrentWeights("u1"); !reflect.DeepEqual(once, twice) {
		t.Errorf("snapshot changed on replay: %v vs %v", once, twice)
	}
}

func TestApplyEvent_LocalEventsAlreadyApplied(t *testing.T) {
	m := testModel(t)

	events, err := m.ApplyAnswer("u1", "science", "", "", true)
	if err != nil {
		t.Fatalf("ApplyAnswer: %v", err)
	}
	once := m.CurrentWeights("u1")

	// Redelivery of a locally created event (e.g. after a crashed sync)
	// must not double-apply.
	applied, err := m.ApplyEvent(events[0])
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	if applied {
		t.Error("locally applied event replayed as new")
	}
	if twice := m.CurrentWeights("u1"); !reflect.DeepEqual(once, twice) {
		t.Error("replay changed the snapshot")
	}
}

func TestApplyEvent_RejectsNonFiniteDelta(t *testing.T) {
	m := testModel(t)

	for _, delta := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := m.ApplyEvent(Event{ID: "x", UserID: "u1", Topic: "science", Delta: delta})
		var inv *ErrInvalidWeightUpdate
		if !errors.As(err, &inv) {
			t.Errorf("delta %v: err = %v, want ErrInvalidWeightUpdate", delta, err)
		}
	}
	if len(m.CurrentWeights("u1")) != 0 {
		t.Error("rejected events must not touch state")
	}
}

func TestApplyEvent_ClampKeepsIntendedDelta(t *testing.T) {
	m := testModel(t)

	ev := Event{ID: "big", UserID: "u1", Topic: "science", Delta: 10_000}
	if _, err := m.ApplyEvent(ev); err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}

	if got := m.CurrentWeights("u1")["science"]; got != m.cfg.MaxScore {
		t.Errorf("score = %v, want clamped to %v", got, m.cfg.MaxScore)
	}
	// The event itself is immutable; the intended delta survives for
	// debugging even though the score clamped.
	if ev.Delta != 10_000 {
		t.Errorf("event delta mutated to %v", ev.Delta)
	}
}

func TestApplySkip_CompensationBound(t *testing.T) {
	const n = 5

	streak := func(correct bool) float64 {
		m := testModel(t)
		for range n {
			if _, err := m.ApplyAnswer("u1", "science", "", "", correct); err != nil {
				t.Fatalf("ApplyAnswer: %v", err)
			}
		}
		before := m.CurrentWeights("u1")["science"]
		events, err := m.ApplySkip("u1", "science", "", "")
		if err != nil {
			t.Fatalf("ApplySkip: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("got %d skip events, want 1", len(events))
		}
		if events[0].Delta >= 0 {
			t.Errorf("skip delta = %v, want negative", events[0].Delta)
		}
		return before - m.CurrentWeights("u1")["science"]
	}

	afterCorrect := streak(true)
	afterIncorrect := streak(false)
	if afterCorrect >= afterIncorrect {
		t.Errorf("skip after %d correct lost %v, want strictly less than %v (after %d incorrect)",
			n, afterCorrect, afterIncorrect, n)
	}
}

func TestApplySkip_RecordsCompensationOnEvent(t *testing.T) {
	m := testModel(t)

	for range 3 {
		m.ApplyAnswer("u1", "science", "physics", "", true)
	}
	events, err := m.ApplySkip("u1", "science", "physics", "")
	if err != nil {
		t.Fatalf("ApplySkip: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	topicEv, subEv := events[0], events[1]
	if !topicEv.SkipCompensationApplied || topicEv.SkipCompensationTopic <= 0 {
		t.Errorf("topic event compensation not recorded: %+v", topicEv)
	}
	if !subEv.SkipCompensationApplied || subEv.SkipCompensationSubtopic <= 0 {
		t.Errorf("subtopic event compensation not recorded: %+v", subEv)
	}
	if topicEv.SkipCompensationSubtopic != 0 || topicEv.SkipCompensationBranch != 0 {
		t.Errorf("topic event carries compensation for other levels: %+v", topicEv)
	}
}

func TestApplySkip_NoHistoryNoCompensation(t *testing.T) {
	m := testModel(t)

	events, err := m.ApplySkip("u1", "art", "", "")
	if err != nil {
		t.Fatalf("ApplySkip: %v", err)
	}
	ev := events[0]
	if ev.SkipCompensationApplied || ev.SkipCompensationTopic != 0 {
		t.Errorf("fresh topic should earn no compensation: %+v", ev)
	}
	if ev.Delta != -m.cfg.SkipPenalty {
		t.Errorf("delta = %v, want full penalty %v", ev.Delta, -m.cfg.SkipPenalty)
	}
}

func TestSampleCountMonotone(t *testing.T) {
	m := testModel(t)

	m.ApplyAnswer("u1", "science", "", "", true)
	m.ApplySkip("u1", "science", "", "")
	m.ApplyAnswer("u1", "science", "", "", false)

	w, ok := m.WeightFor("u1", Key{Topic: "science"})
	if !ok {
		t.Fatal("weight missing")
	}
	if w.SampleCount != 3 {
		t.Errorf("sample count = %d, want 3", w.SampleCount)
	}
}

func TestLoad_RestoresStateAndAppliedSet(t *testing.T) {
	m := testModel(t)

	m.Load("u1", []TopicWeight{
		{Key: Key{Topic: "science"}, Score: 72, SampleCount: 9, Recent: []bool{true, true, false}},
	}, []string{"old-event"})

	if got := m.CurrentWeights("u1")["science"]; got != 72 {
		t.Errorf("restored score = %v, want 72", got)
	}

	applied, err := m.ApplyEvent(Event{ID: "old-event", UserID: "u1", Topic: "science", Delta: 1})
	if err != nil {
		t.Fatalf("ApplyEvent: %v", err)
	}
	if applied {
		t.Error("event from the applied set must replay as a no-op")
	}
}

func TestCurrentWeights_IsACopy(t *testing.T) {
	m := testModel(t)

	m.ApplyAnswer("u1", "science", "", "", true)
	snap := m.CurrentWeights("u1")
	snap["science"] = -1

	if got := m.CurrentWeights("u1")["science"]; got == -1 {
		t.Error("snapshot mutation leaked into the model")
	}
}
