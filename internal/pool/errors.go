package pool

import "fmt"

// ErrDuplicateQuestion indicates an ingested question fingerprints
// equal to one already in the index. Non-fatal: callers log it and move
// on.
type ErrDuplicateQuestion struct {
	QuestionID string
	ExistingID string
}

func (e *ErrDuplicateQuestion) Error() string {
	return fmt.Sprintf("duplicate question %s: fingerprint collides with %s", e.QuestionID, e.ExistingID)
}
