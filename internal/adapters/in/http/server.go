package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server exposes order placement over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	placeOrderHandler commands.PlaceOrderCommandHandler
	logger            *zap.Logger
}

// NewServer creates a new HTTP server with the required command handlers.
func NewServer(placeOrderHandler commands.PlaceOrderCommandHandler, logger *zap.Logger) *Server {
	return &Server{
		placeOrderHandler: placeOrderHandler,
		logger:            logger,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// PlaceOrder handles POST /api/v1/orders - validates and places one order.
//
// Responses:
//   - 201 with PlaceOrderResponse when the order is placed
//   - 400 when the body cannot be decoded
//   - 402 when the customer's credit rating is too low
//   - 422 when the order, customer or address is invalid
//   - 500 for anything else
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	correlationID := s.correlationID(ctx)
	o := req.toDomain()

	cmd, err := commands.NewPlaceOrderCommand(correlationID, o)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.placementFailed(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, fromDomain(correlationID.String(), o))
}

// correlationID reuses the request id set by the RequestID middleware when it is
// a UUID and generates a new one otherwise.
func (s *Server) correlationID(ctx echo.Context) kernel.CorrelationID {
	rid := ctx.Response().Header().Get(echo.HeaderXRequestID)
	if id, err := kernel.CorrelationIDFromString(rid); err == nil {
		return id
	}
	return kernel.NewCorrelationID()
}

func (s *Server) placementFailed(ctx echo.Context, err error) error {
	var placementErr *services.PlacementError
	if !errors.As(err, &placementErr) {
		s.logger.Error("failed to place order", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	code := http.StatusUnprocessableEntity
	if errors.Is(err, services.ErrInsufficientCredit) {
		code = http.StatusPaymentRequired
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Kind:    kindName(placementErr.Kind),
		Field:   placementErr.ParamName,
		Message: placementErr.Message,
	})
}

func kindName(kind error) string {
	switch {
	case errors.Is(kind, services.ErrInvalidOrder):
		return "invalid_order"
	case errors.Is(kind, services.ErrInvalidCustomer):
		return "invalid_customer"
	case errors.Is(kind, services.ErrInsufficientCredit):
		return "insufficient_credit"
	case errors.Is(kind, services.ErrInvalidAddress):
		return "invalid_address"
	default:
		return ""
	}
}
