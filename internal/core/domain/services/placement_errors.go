package services

import (
	"errors"
	"fmt"
)

// Placement failure kinds. They are flat: an ErrInsufficientCredit failure does
// not match ErrInvalidCustomer, so a caller can route a credit rejection to a
// different flow than a data correction.
var (
	// ErrInvalidOrder marks structural problems with the order itself.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrInvalidCustomer marks structural or business problems with the customer.
	ErrInvalidCustomer = errors.New("invalid customer")

	// ErrInsufficientCredit marks a customer whose credit rating is below the minimum.
	ErrInsufficientCredit = errors.New("insufficient credit")

	// ErrInvalidAddress marks a home address with a missing field.
	ErrInvalidAddress = errors.New("invalid address")
)

// PlacementError describes why OrderPlacementService rejected an order.
//
// Match the kind with errors.Is against one of the Err* sentinels above, and the
// detail with errors.Is against errs.ErrValueIsRequired or errs.ErrValueIsInvalid.
// Use errors.As to read ParamName and Message.
type PlacementError struct {
	// Kind is one of ErrInvalidOrder, ErrInvalidCustomer, ErrInsufficientCredit, ErrInvalidAddress.
	Kind error

	// ParamName names the offending field, e.g. "totalAmount" or "postalCode".
	ParamName string

	// Message is the human-readable rule that was broken.
	Message string

	// Cause is the detail error from package errs.
	Cause error
}

func newPlacementError(kind error, paramName, message string, cause error) *PlacementError {
	return &PlacementError{
		Kind:      kind,
		ParamName: paramName,
		Message:   message,
		Cause:     cause,
	}
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PlacementError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
