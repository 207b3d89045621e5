package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrCorrelationIDIsNotConstructed is returned when validating a zero-value CorrelationID.
var ErrCorrelationIDIsNotConstructed = errs.NewValueIsRequiredError(
	"CorrelationID must be created via NewCorrelationID or CorrelationIDFromString",
)

// CorrelationID identifies a single placement request. It wraps a random
// (version 4) UUID; the zero value is invalid.
//
// Example usage:
//
//	id, err := kernel.CorrelationIDFromString(req.Header.Get("X-Request-ID"))
//	if err != nil {
//	    id = kernel.NewCorrelationID()
//	}
type CorrelationID struct {
	id uuid.UUID
}

// NewCorrelationID generates a new random CorrelationID.
func NewCorrelationID() CorrelationID {
	return CorrelationID{id: uuid.New()}
}

// CorrelationIDFromString parses a CorrelationID from any UUID text form accepted
// by github.com/google/uuid. The nil UUID is rejected.
func CorrelationIDFromString(s string) (CorrelationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CorrelationID{}, errs.NewValueIsInvalidErrorWithCause(
			"correlation id", fmt.Errorf("invalid UUID format: %w", err))
	}

	correlationID := CorrelationID{id: id}
	if err = correlationID.Validate(); err != nil {
		return CorrelationID{}, err
	}

	return correlationID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (c CorrelationID) String() string {
	return c.id.String()
}

// IsEqual reports whether both ids hold the same value.
func (c CorrelationID) IsEqual(other CorrelationID) bool {
	return c.id == other.id
}

// Validate returns ErrCorrelationIDIsNotConstructed for the zero value.
func (c CorrelationID) Validate() error {
	if c.id == uuid.Nil {
		return ErrCorrelationIDIsNotConstructed
	}
	return nil
}
