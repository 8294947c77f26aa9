package feed

import "sync"

// State is the single owned record of a user's in-flight feed: question
// ids that have been shown but not yet resolved. All mutation goes
// through the assembler; there is no other writer.
type State struct {
	mu        sync.Mutex
	order     []string
	members   map[string]struct{}
	lastTopic string
}

// NewState returns an empty feed state.
func NewState() *State {
	return &State{members: make(map[string]struct{})}
}

// IDs returns a copy of the in-flight ids in feed order.
func (s *State) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Members returns the in-flight ids as a set copy.
func (s *State) Members() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[string]struct{}, len(s.members))
	for id := range s.members {
		set[id] = struct{}{}
	}
	return set
}

// Append adds ids to the feed, skipping any already present. The
// membership check runs immediately before insertion, so concurrent
// assembler calls can at worst do redundant work, never duplicate an
// entry. Returns the ids actually appended.
func (s *State) Append(ids []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	appended := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, present := s.members[id]; present {
			continue
		}
		s.members[id] = struct{}{}
		s.order = append(s.order, id)
		appended = append(appended, id)
	}
	return appended
}

// MarkResolved removes a resolved question from the in-flight feed.
// The id is thereafter excluded via the resolved set instead.
func (s *State) MarkResolved(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, present := s.members[id]; !present {
		return
	}
	delete(s.members, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// SetLastAnsweredTopic records the topic of the most recently answered
// question, feeding the related-topic ranking bonus.
func (s *State) SetLastAnsweredTopic(topic string) {
	s.mu.Lock()
	s.lastTopic = topic
	s.mu.Unlock()
}

// LastAnsweredTopic returns the most recently answered topic, or "".
func (s *State) LastAnsweredTopic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTopic
}

// Len returns the number of in-flight ids.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
