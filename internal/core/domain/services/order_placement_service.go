package services

import (
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	// MinimumCreditRating is the lowest credit rating allowed to place an order.
	MinimumCreditRating = 200

	// ExpediteCreditRating must be exceeded for an order to be expedited.
	ExpediteCreditRating = 500

	// ExpeditePurchasesThreshold must be exceeded by the customer's total
	// purchases for an order to be expedited.
	ExpeditePurchasesThreshold = 5000
)

// OrderPlacementService places new orders for customers.
//
// Placement runs in three steps within one synchronous call:
//   - Validation of the order, then its customer, then the customer's address.
//     Checks run in a fixed order and the first failure is returned.
//   - The expedite decision, recomputed on every successful placement.
//   - The history update: the order is appended to the customer's history and
//     the customer's total purchases grow by one.
//
// Nothing is mutated unless every check passes.
//
// Example usage:
//
//	service := services.NewOrderPlacementService()
//	if err := service.PlaceOrder(o); err != nil {
//	    if errors.Is(err, services.ErrInsufficientCredit) {
//	        // offer a credit review
//	    }
//	    return err
//	}
//	fmt.Println(o.IsExpedited())
type OrderPlacementService struct{}

// NewOrderPlacementService creates a new OrderPlacementService instance.
func NewOrderPlacementService() OrderPlacementService {
	return OrderPlacementService{}
}

// PlaceOrder validates o and, when it is valid, marks its expedite flag and
// records it in its customer's history.
//
// Returns:
//   - nil when the order was placed
//   - *PlacementError describing the first rule o breaks
func (s OrderPlacementService) PlaceOrder(o *order.Order) error {
	if err := s.validateOrder(o); err != nil {
		return err
	}

	customer := o.Customer()
	o.MarkExpedited(s.isExpedited(customer))
	customer.RecordOrder(o)

	return nil
}

// validateOrder checks the order, then hands over to its customer.
func (s OrderPlacementService) validateOrder(o *order.Order) error {
	if o == nil {
		return newPlacementError(ErrInvalidOrder, "order", "Order is required.",
			errs.NewValueIsRequiredError("order"))
	}

	if !o.IsNew() {
		return newPlacementError(ErrInvalidOrder, "id", "Order ID must be 0.",
			errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not %d", o.ID(), order.NewOrderID)))
	}

	if !o.TotalAmount().IsPositive() {
		return newPlacementError(ErrInvalidOrder, "totalAmount", "Order Total Amount must be greater than 0.",
			errs.NewValueIsInvalidErrorWithCause("totalAmount", fmt.Errorf("%s is not greater than 0", o.TotalAmount())))
	}

	if o.Customer() == nil {
		return newPlacementError(ErrInvalidOrder, "customer", "Order must have a customer associated with it.",
			errs.NewValueIsRequiredError("customer"))
	}

	return s.validateCustomer(o.Customer())
}

// validateCustomer checks the customer, then hands over to the home address.
// The credit check comes after identity, address presence and name so that an
// incomplete customer is never reported as a credit problem.
func (s OrderPlacementService) validateCustomer(c *order.Customer) error {
	if c.ID() <= 0 {
		return newPlacementError(ErrInvalidCustomer, "id", "Customer Id must be greater than 0!",
			errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", c.ID())))
	}

	if c.HomeAddress() == nil {
		return newPlacementError(ErrInvalidCustomer, "homeAddress", "Customer Address cannot be null!",
			errs.NewValueIsRequiredError("homeAddress"))
	}

	if c.FirstName() == "" || c.LastName() == "" {
		paramName := "firstName"
		if c.FirstName() != "" {
			paramName = "lastName"
		}
		return newPlacementError(ErrInvalidCustomer, paramName, "Customer must have first and last name!",
			errs.NewValueIsRequiredError(paramName))
	}

	if c.CreditRating() < MinimumCreditRating {
		return newPlacementError(ErrInsufficientCredit, "creditRating", "Customer has insufficient credit rating!",
			errs.NewValueIsInvalidErrorWithCause("creditRating",
				fmt.Errorf("%d is less than %d", c.CreditRating(), MinimumCreditRating)))
	}

	if !c.TotalPurchases().IsPositive() {
		return newPlacementError(ErrInvalidCustomer, "totalPurchases", "Customer must have total purchases greater than 0!",
			errs.NewValueIsInvalidErrorWithCause("totalPurchases",
				fmt.Errorf("%s is not greater than 0", c.TotalPurchases())))
	}

	return s.validateAddress(c.HomeAddress())
}

// addressField pairs an address field with the label used in its message.
type addressField struct {
	paramName string
	label     string
	value     func(*order.Address) string
}

// addressFields lists the required address fields in the order they are checked.
var addressFields = []addressField{
	{paramName: "street1", label: "Street1", value: (*order.Address).Street1},
	{paramName: "city", label: "City", value: (*order.Address).City},
	{paramName: "state", label: "State", value: (*order.Address).State},
	{paramName: "postalCode", label: "Postcode", value: (*order.Address).PostalCode},
	{paramName: "country", label: "Country", value: (*order.Address).Country},
}

func (s OrderPlacementService) validateAddress(a *order.Address) error {
	for _, field := range addressFields {
		if field.value(a) == "" {
			return newPlacementError(ErrInvalidAddress, field.paramName,
				fmt.Sprintf("Customer must have Address, %s!", field.label),
				errs.NewValueIsRequiredError(field.paramName))
		}
	}

	return nil
}

// isExpedited applies the expedite rule: both total purchases and credit rating
// must be strictly above their thresholds.
func (s OrderPlacementService) isExpedited(c *order.Customer) bool {
	return c.TotalPurchases().GreaterThan(decimal.NewFromInt(ExpeditePurchasesThreshold)) &&
		c.CreditRating() > ExpediteCreditRating
}
