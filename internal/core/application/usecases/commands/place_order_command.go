package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderIsRequired = errors.New("order is required")
)

// PlaceOrderCommand represents a request to place one new order.
// It carries the order graph and the correlation id of the request that submitted it.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewCorrelationID(), o)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(services.NewOrderPlacementService(), logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("order expedited: %t\n", cmd.Order().IsExpedited())
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	correlationID kernel.CorrelationID
	order         *order.Order

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place o.
// Returns an error if the correlation id is invalid or o is nil; the order's own
// fields are checked by placement, not here.
func NewPlaceOrderCommand(correlationID kernel.CorrelationID, o *order.Order) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCorrelationID(correlationID),
		cmd.setOrder(o),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CorrelationID returns the id of the request that submitted the order.
func (c PlaceOrderCommand) CorrelationID() kernel.CorrelationID {
	return c.correlationID
}

// Order returns the order to place. Placement mutates it in place.
func (c PlaceOrderCommand) Order() *order.Order {
	return c.order
}

func (c *PlaceOrderCommand) setCorrelationID(correlationID kernel.CorrelationID) error {
	if err := correlationID.Validate(); err != nil {
		return err
	}

	c.correlationID = correlationID
	return nil
}

func (c *PlaceOrderCommand) setOrder(o *order.Order) error {
	if o == nil {
		return ErrOrderIsRequired
	}

	c.order = o
	return nil
}
