package http

import (
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// AddressRequest is the JSON form of a home address.
type AddressRequest struct {
	Street1    string `json:"street1"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CustomerRequest is the JSON form of a customer. A null or missing
// homeAddress means the customer has no address.
type CustomerRequest struct {
	ID             int             `json:"id"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	HomeAddress    *AddressRequest `json:"homeAddress"`
	CreditRating   int             `json:"creditRating"`
	TotalPurchases decimal.Decimal `json:"totalPurchases"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders. Amounts may be sent as
// JSON numbers or strings. A null or missing customer means the order has none.
type PlaceOrderRequest struct {
	ID          int              `json:"id"`
	TotalAmount decimal.Decimal  `json:"totalAmount"`
	Customer    *CustomerRequest `json:"customer"`
}

// CustomerSummary reports the customer's state after placement.
type CustomerSummary struct {
	ID                int             `json:"id"`
	TotalPurchases    decimal.Decimal `json:"totalPurchases"`
	OrderHistoryCount int             `json:"orderHistoryCount"`
}

// PlaceOrderResponse is returned with 201 Created once an order is placed.
type PlaceOrderResponse struct {
	CorrelationID string          `json:"correlationId"`
	ID            int             `json:"id"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	IsExpedited   bool            `json:"isExpedited"`
	Customer      CustomerSummary `json:"customer"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// toDomain maps the request onto a new order graph without judging it.
func (r PlaceOrderRequest) toDomain() *order.Order {
	var customer *order.Customer
	if r.Customer != nil {
		customer = r.Customer.toDomain()
	}
	return order.NewOrder(r.ID, r.TotalAmount, customer)
}

func (r CustomerRequest) toDomain() *order.Customer {
	var address *order.Address
	if r.HomeAddress != nil {
		a := order.NewAddress(
			r.HomeAddress.Street1,
			r.HomeAddress.City,
			r.HomeAddress.State,
			r.HomeAddress.PostalCode,
			r.HomeAddress.Country,
		)
		address = &a
	}
	return order.NewCustomer(r.ID, r.FirstName, r.LastName, address, r.CreditRating, r.TotalPurchases)
}

func fromDomain(correlationID string, o *order.Order) PlaceOrderResponse {
	customer := o.Customer()
	return PlaceOrderResponse{
		CorrelationID: correlationID,
		ID:            o.ID(),
		TotalAmount:   o.TotalAmount(),
		IsExpedited:   o.IsExpedited(),
		Customer: CustomerSummary{
			ID:                customer.ID(),
			TotalPurchases:    customer.TotalPurchases(),
			OrderHistoryCount: len(customer.OrderHistory()),
		},
	}
}
