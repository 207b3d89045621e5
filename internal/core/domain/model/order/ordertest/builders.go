// Package ordertest provides fixture builders for the order object graph.
//
// Every builder starts from a known-valid default, so a test only states the
// one field it wants to break:
//
//	customer := ordertest.NewCustomerBuilder().WithCreditRating(199).Build()
//	o := ordertest.NewOrderBuilder().WithCustomer(customer).Build()
//
// Builders carry no rules of their own; whatever they produce is ordinary,
// possibly invalid, input for placement.
package ordertest

import (
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Known-valid fixture values.
const (
	TestStreet1    = "1 The street"
	TestCity       = "Cityville"
	TestState      = "Stateshire"
	TestPostalCode = "NN1 1NN"
	TestCountry    = "UK"

	TestCustomerID       = 123
	TestFirstName        = "Joe"
	TestLastName         = "Smith"
	TestCreditRating     = 200
	TestTotalPurchases   = 23
	TestOrderTotalAmount = 100
)

// AddressBuilder builds order.Address values.
type AddressBuilder struct {
	street1    string
	city       string
	state      string
	postalCode string
	country    string
}

// NewAddressBuilder returns a builder populated with valid test values.
func NewAddressBuilder() *AddressBuilder {
	return (&AddressBuilder{}).WithTestValues()
}

// WithTestValues resets every field to its valid test value.
func (b *AddressBuilder) WithTestValues() *AddressBuilder {
	b.street1 = TestStreet1
	b.city = TestCity
	b.state = TestState
	b.postalCode = TestPostalCode
	b.country = TestCountry
	return b
}

func (b *AddressBuilder) WithStreet1(street1 string) *AddressBuilder {
	b.street1 = street1
	return b
}

func (b *AddressBuilder) WithCity(city string) *AddressBuilder {
	b.city = city
	return b
}

func (b *AddressBuilder) WithState(state string) *AddressBuilder {
	b.state = state
	return b
}

func (b *AddressBuilder) WithPostalCode(postalCode string) *AddressBuilder {
	b.postalCode = postalCode
	return b
}

func (b *AddressBuilder) WithCountry(country string) *AddressBuilder {
	b.country = country
	return b
}

// Build returns a pointer to a fresh Address, ready to hand to a customer.
func (b *AddressBuilder) Build() *order.Address {
	address := order.NewAddress(b.street1, b.city, b.state, b.postalCode, b.country)
	return &address
}

// CustomerBuilder builds order.Customer values.
type CustomerBuilder struct {
	id             int
	firstName      string
	lastName       string
	homeAddress    *order.Address
	creditRating   int
	totalPurchases decimal.Decimal
}

// NewCustomerBuilder returns a builder populated with valid test values.
func NewCustomerBuilder() *CustomerBuilder {
	return (&CustomerBuilder{}).WithTestValues()
}

// WithTestValues resets every field to its valid test value, including a new
// valid home address.
func (b *CustomerBuilder) WithTestValues() *CustomerBuilder {
	b.id = TestCustomerID
	b.firstName = TestFirstName
	b.lastName = TestLastName
	b.homeAddress = NewAddressBuilder().Build()
	b.creditRating = TestCreditRating
	b.totalPurchases = decimal.NewFromInt(TestTotalPurchases)
	return b
}

func (b *CustomerBuilder) WithID(id int) *CustomerBuilder {
	b.id = id
	return b
}

func (b *CustomerBuilder) WithName(firstName, lastName string) *CustomerBuilder {
	b.firstName = firstName
	b.lastName = lastName
	return b
}

// WithAddress sets the home address; nil builds a customer without one.
func (b *CustomerBuilder) WithAddress(address *order.Address) *CustomerBuilder {
	b.homeAddress = address
	return b
}

func (b *CustomerBuilder) WithCreditRating(rating int) *CustomerBuilder {
	b.creditRating = rating
	return b
}

func (b *CustomerBuilder) WithTotalPurchases(purchases decimal.Decimal) *CustomerBuilder {
	b.totalPurchases = purchases
	return b
}

// Build returns a new Customer with an empty order history.
func (b *CustomerBuilder) Build() *order.Customer {
	return order.NewCustomer(
		b.id,
		b.firstName,
		b.lastName,
		b.homeAddress,
		b.creditRating,
		b.totalPurchases,
	)
}

// OrderBuilder builds order.Order values.
type OrderBuilder struct {
	id          int
	totalAmount decimal.Decimal
	customer    *order.Customer
}

// NewOrderBuilder returns a builder for a new order of 100 placed by the
// default test customer.
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		id:          order.NewOrderID,
		totalAmount: decimal.NewFromInt(TestOrderTotalAmount),
		customer:    NewCustomerBuilder().Build(),
	}
}

func (b *OrderBuilder) WithID(id int) *OrderBuilder {
	b.id = id
	return b
}

func (b *OrderBuilder) WithAmount(amount decimal.Decimal) *OrderBuilder {
	b.totalAmount = amount
	return b
}

// WithCustomer sets the customer; nil builds an order without one.
func (b *OrderBuilder) WithCustomer(customer *order.Customer) *OrderBuilder {
	b.customer = customer
	return b
}

// Build returns a new, not expedited Order.
func (b *OrderBuilder) Build() *order.Order {
	return order.NewOrder(b.id, b.totalAmount, b.customer)
}
