package engine

import "fmt"

// ErrUnknownQuestion is returned when an answer or skip references a
// question id the pool has never seen.
type ErrUnknownQuestion struct {
	QuestionID string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("unknown question %q", e.QuestionID)
}
