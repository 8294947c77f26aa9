package weights

import "fmt"

// ErrInvalidWeightUpdate indicates a rejected mutation. Nothing is
// applied and no event is emitted when this is returned.
type ErrInvalidWeightUpdate struct {
	Reason string
}

func (e *ErrInvalidWeightUpdate) Error() string {
	return fmt.Sprintf("invalid weight update: %s", e.Reason)
}
