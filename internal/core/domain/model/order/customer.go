package order

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Customer is the buyer referenced by an Order. It is the only long-lived state
// that order placement mutates.
//
// TotalPurchases carries two meanings: expedite eligibility compares it with a
// monetary threshold, while every successful placement adds exactly one to it.
// Both uses are kept as they are.
type Customer struct {
	// id identifies the customer and is fixed at construction
	id int

	firstName string
	lastName  string

	// homeAddress is owned by this customer; nil means absent
	homeAddress *Address

	creditRating   int
	totalPurchases decimal.Decimal

	// orderHistory is append-only and keeps insertion order
	orderHistory []*Order
}

// NewCustomer creates a Customer with an empty order history.
//
// Parameters:
//   - id: identity of the customer, expected to be positive
//   - firstName, lastName: the customer's name
//   - homeAddress: the customer's address; nil if unknown
//   - creditRating: integer credit score
//   - totalPurchases: lifetime purchases so far
//
// No rule is checked here; see services.OrderPlacementService.
func NewCustomer(
	id int,
	firstName, lastName string,
	homeAddress *Address,
	creditRating int,
	totalPurchases decimal.Decimal,
) *Customer {
	return &Customer{
		id:             id,
		firstName:      firstName,
		lastName:       lastName,
		homeAddress:    homeAddress,
		creditRating:   creditRating,
		totalPurchases: totalPurchases,
		orderHistory:   make([]*Order, 0),
	}
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return c != nil && other != nil && c.id == other.id
}

// ID returns the customer's identity.
func (c *Customer) ID() int {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// HomeAddress returns the customer's home address, or nil when absent.
func (c *Customer) HomeAddress() *Address {
	return c.homeAddress
}

// CreditRating returns the customer's credit score.
func (c *Customer) CreditRating() int {
	return c.creditRating
}

// TotalPurchases returns the customer's lifetime purchases.
func (c *Customer) TotalPurchases() decimal.Decimal {
	return c.totalPurchases
}

// OrderHistory returns the placed orders, oldest first. The returned slice is
// a copy; the history itself can only grow through RecordOrder.
func (c *Customer) OrderHistory() []*Order {
	return slices.Clone(c.orderHistory)
}

// RecordOrder appends o to the order history and adds one to TotalPurchases.
// The increment counts placed orders and does not depend on o's amount.
func (c *Customer) RecordOrder(o *Order) {
	c.orderHistory = append(c.orderHistory, o)
	c.totalPurchases = c.totalPurchases.Add(decimal.NewFromInt(1))
}
