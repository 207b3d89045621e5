package order

import (
	"github.com/shopspring/decimal"
)

// NewOrderID is the ID of an order that has not been assigned an identity yet.
// Only such orders can be placed.
const NewOrderID = 0

// Order is a customer order submitted for placement.
//
// Order follows these conventions:
//   - ID is NewOrderID until the order is persisted elsewhere
//   - It references at most one Customer
//   - IsExpedited is computed during placement and overwritten on every attempt
type Order struct {
	id          int
	totalAmount decimal.Decimal

	// customer is the buyer; nil means the order has no customer
	customer *Customer

	isExpedited bool
}

// NewOrder creates an Order that is not expedited.
//
// Example:
//
//	address := order.NewAddress("1 The street", "Cityville", "Stateshire", "NN1 1NN", "UK")
//	customer := order.NewCustomer(123, "Joe", "Smith", &address, 200, decimal.NewFromInt(23))
//	o := order.NewOrder(order.NewOrderID, decimal.NewFromInt(100), customer)
//
// Validation is left to placement, so any combination of values is accepted.
func NewOrder(id int, totalAmount decimal.Decimal, customer *Customer) *Order {
	return &Order{
		id:          id,
		totalAmount: totalAmount,
		customer:    customer,
	}
}

// ID returns the order's identifier.
func (o *Order) ID() int {
	return o.id
}

// IsNew reports whether the order has not been assigned an identity yet.
func (o *Order) IsNew() bool {
	return o.id == NewOrderID
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Customer returns the customer placing the order, or nil.
func (o *Order) Customer() *Customer {
	return o.customer
}

// IsExpedited reports whether the order qualified for priority handling the
// last time it was placed.
func (o *Order) IsExpedited() bool {
	return o.isExpedited
}

// MarkExpedited sets the expedite flag. Placement calls it on every successful
// attempt, so a previous value is never carried over.
func (o *Order) MarkExpedited(expedited bool) {
	o.isExpedited = expedited
}
