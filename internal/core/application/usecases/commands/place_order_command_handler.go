// Package commands contains business operations that modify system state.
// Every command follows the same pattern: a guarded command value built by its
// constructor, and a handler that validates it and runs the domain operation.
package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"go.uber.org/zap"
)

// OrderPlacer runs the placement workflow for one order.
// services.OrderPlacementService is the production implementation.
type OrderPlacer interface {
	PlaceOrder(o *order.Order) error
}

// PlaceOrderCommandHandler handles order placement requests.
// It validates the command, places the order, and logs the outcome.
// Placement errors are returned unchanged so callers can tell the kinds apart.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(services.NewOrderPlacementService(), logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    if errors.Is(err, services.ErrInsufficientCredit) {
//	        // start a credit review
//	    }
//	    return err
//	}
type PlaceOrderCommandHandler struct {
	placer OrderPlacer
	logger *zap.Logger
}

// NewPlaceOrderCommandHandler creates a handler that places orders with placer.
func NewPlaceOrderCommandHandler(placer OrderPlacer, logger *zap.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		placer: placer,
		logger: logger.With(zap.String("component", "place_order_handler")),
	}
}

// Handle places the command's order. On success the order's expedite flag and
// its customer's history reflect the placement.
func (h *PlaceOrderCommandHandler) Handle(_ context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o := cmd.Order()
	log := h.logger.With(zap.Stringer("correlation_id", cmd.CorrelationID()))

	if err := h.placer.PlaceOrder(o); err != nil {
		var placementErr *services.PlacementError
		if errors.As(err, &placementErr) {
			log.Warn("order rejected",
				zap.String("kind", placementErr.Kind.Error()),
				zap.String("param", placementErr.ParamName),
				zap.Error(err),
			)
		} else {
			log.Error("order placement failed", zap.Error(err))
		}
		return err
	}

	customer := o.Customer()
	log.Info("order placed",
		zap.Int("customer_id", customer.ID()),
		zap.Bool("expedited", o.IsExpedited()),
		zap.Stringer("total_purchases", customer.TotalPurchases()),
		zap.Int("order_history", len(customer.OrderHistory())),
	)

	return nil
}
