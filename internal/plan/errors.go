package plan

import (
	"errors"
	"fmt"
)

// ErrDuplicateName is returned when creating a plan under a name that is
// already registered.
var ErrDuplicateName = errors.New("plan name already exists")

// ErrNotFound is returned for lookups and removals of unknown plan names.
var ErrNotFound = errors.New("plan not found")

// ValidationError describes a rejected field value. It is always recovered
// into a user-facing message, never propagated past the dialogue boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
