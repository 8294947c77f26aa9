package feed

import (
	"reflect"
	"testing"
)

func TestState_AppendSkipsPresent(t *testing.T) {
	st := NewState()

	appended := st.Append([]string{"q1", "q2"})
	if !reflect.DeepEqual(appended, []string{"q1", "q2"}) {
		t.Errorf("appended = %v", appended)
	}

	appended = st.Append([]string{"q2", "q3"})
	if !reflect.DeepEqual(appended, []string{"q3"}) {
		t.Errorf("re-append returned %v, want only q3", appended)
	}
	if !reflect.DeepEqual(st.IDs(), []string{"q1", "q2", "q3"}) {
		t.Errorf("order = %v", st.IDs())
	}
}

func TestState_MarkResolved(t *testing.T) {
	st := NewState()
	st.Append([]string{"q1", "q2", "q3"})

	st.MarkResolved("q2")
	if !reflect.DeepEqual(st.IDs(), []string{"q1", "q3"}) {
		t.Errorf("order after resolve = %v", st.IDs())
	}
	if _, present := st.Members()["q2"]; present {
		t.Error("resolved id still a member")
	}

	// Unknown id is a no-op.
	st.MarkResolved("q9")
	if st.Len() != 2 {
		t.Errorf("len = %d after no-op resolve", st.Len())
	}
}

func TestState_LastAnsweredTopic(t *testing.T) {
	st := NewState()
	if st.LastAnsweredTopic() != "" {
		t.Error("fresh state should have no last topic")
	}
	st.SetLastAnsweredTopic("science")
	if st.LastAnsweredTopic() != "science" {
		t.Error("last topic not recorded")
	}
}

func TestState_CopiesAreIndependent(t *testing.T) {
	st := NewState()
	st.Append([]string{"q1"})

	ids := st.IDs()
	ids[0] = "mutated"
	members := st.Members()
	delete(members, "q1")

	if st.IDs()[0] != "q1" || st.Len() != 1 {
		t.Error("caller mutation leaked into the feed state")
	}
}
