package weights

import "strings"

// Key identifies one level of the topic hierarchy for a user's weight.
// Subtopic and Branch are empty at the coarser levels.
type Key struct {
	Topic    string
	Subtopic string
	Branch   string
}

// String renders the key as "topic", "topic/subtopic" or
// "topic/subtopic/branch". Used as the map key in weight snapshots.
func (k Key) String() string {
	parts := []string{k.Topic}
	if k.Subtopic != "" {
		parts = append(parts, k.Subtopic)
		if k.Branch != "" {
			parts = append(parts, k.Branch)
		}
	}
	return strings.Join(parts, "/")
}

// Levels expands a question's classification into the hierarchy keys it
// affects, coarsest first. A question with no subtopic touches only the
// topic level.
func Levels(topic, subtopic, branch string) []Key {
	keys := []Key{{Topic: topic}}
	if subtopic != "" {
		keys = append(keys, Key{Topic: topic, Subtopic: subtopic})
		if branch != "" {
			keys = append(keys, Key{Topic: topic, Subtopic: subtopic, Branch: branch})
		}
	}
	return keys
}
