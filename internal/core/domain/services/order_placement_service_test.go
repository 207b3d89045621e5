package services_test

import (
	"errors"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/order/ordertest"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderFor(customer *order.Customer) *order.Order {
	return ordertest.NewOrderBuilder().WithCustomer(customer).Build()
}

func requirePlacementError(t *testing.T, err error, kind error, paramName string) *services.PlacementError {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, kind)

	var placementErr *services.PlacementError
	require.ErrorAs(t, err, &placementErr)
	assert.Equal(t, paramName, placementErr.ParamName)
	return placementErr
}

func TestOrderPlacementService_PlaceOrder_InvalidOrder(t *testing.T) {
	service := services.NewOrderPlacementService()

	testCases := []struct {
		name      string
		order     *order.Order
		paramName string
		message   string
	}{
		{
			name:      "existing id",
			order:     ordertest.NewOrderBuilder().WithID(123).Build(),
			paramName: "id",
			message:   "invalid order: Order ID must be 0.",
		},
		{
			name:      "zero amount",
			order:     ordertest.NewOrderBuilder().WithAmount(decimal.Zero).Build(),
			paramName: "totalAmount",
			message:   "invalid order: Order Total Amount must be greater than 0.",
		},
		{
			name:      "negative amount",
			order:     ordertest.NewOrderBuilder().WithAmount(decimal.NewFromInt(-10)).Build(),
			paramName: "totalAmount",
			message:   "invalid order: Order Total Amount must be greater than 0.",
		},
		{
			name:      "missing customer",
			order:     ordertest.NewOrderBuilder().WithAmount(decimal.NewFromInt(10)).WithCustomer(nil).Build(),
			paramName: "customer",
			message:   "invalid order: Order must have a customer associated with it.",
		},
		{
			name:      "nil order",
			order:     nil,
			paramName: "order",
			message:   "invalid order: Order is required.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.PlaceOrder(tc.order)

			requirePlacementError(t, err, services.ErrInvalidOrder, tc.paramName)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestOrderPlacementService_PlaceOrder_InvalidOrderWinsOverEverythingElse(t *testing.T) {
	service := services.NewOrderPlacementService()
	brokenCustomer := ordertest.NewCustomerBuilder().
		WithID(0).
		WithAddress(nil).
		WithCreditRating(1).
		Build()

	t.Run("non zero id is reported before a bad amount", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().
			WithID(5).
			WithAmount(decimal.NewFromInt(-1)).
			WithCustomer(brokenCustomer).
			Build()

		err := service.PlaceOrder(o)

		requirePlacementError(t, err, services.ErrInvalidOrder, "id")
	})

	t.Run("bad amount is reported before a missing customer", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().WithAmount(decimal.Zero).WithCustomer(nil).Build()

		err := service.PlaceOrder(o)

		requirePlacementError(t, err, services.ErrInvalidOrder, "totalAmount")
	})

	t.Run("order checks run before customer checks", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().WithID(1).WithCustomer(brokenCustomer).Build()

		err := service.PlaceOrder(o)

		requirePlacementError(t, err, services.ErrInvalidOrder, "id")
		assert.NotErrorIs(t, err, services.ErrInvalidCustomer)
	})
}

func TestOrderPlacementService_PlaceOrder_InvalidCustomer(t *testing.T) {
	service := services.NewOrderPlacementService()

	testCases := []struct {
		name      string
		customer  *order.Customer
		paramName string
		message   string
		detail    error
	}{
		{
			name:      "zero id",
			customer:  ordertest.NewCustomerBuilder().WithID(0).Build(),
			paramName: "id",
			message:   "invalid customer: Customer Id must be greater than 0!",
			detail:    errs.ErrValueIsInvalid,
		},
		{
			name:      "negative id",
			customer:  ordertest.NewCustomerBuilder().WithID(-3).Build(),
			paramName: "id",
			message:   "invalid customer: Customer Id must be greater than 0!",
			detail:    errs.ErrValueIsInvalid,
		},
		{
			name:      "missing address",
			customer:  ordertest.NewCustomerBuilder().WithAddress(nil).Build(),
			paramName: "homeAddress",
			message:   "invalid customer: Customer Address cannot be null!",
			detail:    errs.ErrValueIsRequired,
		},
		{
			name:      "missing first and last name",
			customer:  ordertest.NewCustomerBuilder().WithName("", "").Build(),
			paramName: "firstName",
			message:   "invalid customer: Customer must have first and last name!",
			detail:    errs.ErrValueIsRequired,
		},
		{
			name:      "missing last name",
			customer:  ordertest.NewCustomerBuilder().WithName("Joe", "").Build(),
			paramName: "lastName",
			message:   "invalid customer: Customer must have first and last name!",
			detail:    errs.ErrValueIsRequired,
		},
		{
			name:      "zero purchases",
			customer:  ordertest.NewCustomerBuilder().WithTotalPurchases(decimal.Zero).Build(),
			paramName: "totalPurchases",
			message:   "invalid customer: Customer must have total purchases greater than 0!",
			detail:    errs.ErrValueIsInvalid,
		},
		{
			name:      "negative purchases",
			customer:  ordertest.NewCustomerBuilder().WithTotalPurchases(decimal.NewFromInt(-10)).Build(),
			paramName: "totalPurchases",
			message:   "invalid customer: Customer must have total purchases greater than 0!",
			detail:    errs.ErrValueIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.PlaceOrder(orderFor(tc.customer))

			requirePlacementError(t, err, services.ErrInvalidCustomer, tc.paramName)
			require.ErrorIs(t, err, tc.detail)
			assert.NotErrorIs(t, err, services.ErrInsufficientCredit)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestOrderPlacementService_PlaceOrder_CustomerCheckOrder(t *testing.T) {
	service := services.NewOrderPlacementService()

	t.Run("missing address is reported before missing name", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().WithAddress(nil).WithName("", "").Build()

		err := service.PlaceOrder(orderFor(c))

		requirePlacementError(t, err, services.ErrInvalidCustomer, "homeAddress")
	})

	t.Run("missing name is reported before low credit", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().WithName("", "Smith").WithCreditRating(10).Build()

		err := service.PlaceOrder(orderFor(c))

		requirePlacementError(t, err, services.ErrInvalidCustomer, "firstName")
	})

	t.Run("low credit is reported before non positive purchases", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().WithCreditRating(10).WithTotalPurchases(decimal.Zero).Build()

		err := service.PlaceOrder(orderFor(c))

		requirePlacementError(t, err, services.ErrInsufficientCredit, "creditRating")
	})

	t.Run("customer checks run before address checks", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().
			WithTotalPurchases(decimal.Zero).
			WithAddress(ordertest.NewAddressBuilder().WithCity("").Build()).
			Build()

		err := service.PlaceOrder(orderFor(c))

		requirePlacementError(t, err, services.ErrInvalidCustomer, "totalPurchases")
	})
}

func TestOrderPlacementService_PlaceOrder_InsufficientCredit(t *testing.T) {
	service := services.NewOrderPlacementService()

	t.Run("rating of 199 is rejected", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().WithCreditRating(199).Build()

		err := service.PlaceOrder(orderFor(c))

		requirePlacementError(t, err, services.ErrInsufficientCredit, "creditRating")
		assert.NotErrorIs(t, err, services.ErrInvalidCustomer)
		assert.Equal(t, "insufficient credit: Customer has insufficient credit rating!", err.Error())
	})

	t.Run("rating of 200 is accepted", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().WithCreditRating(services.MinimumCreditRating).Build()

		require.NoError(t, service.PlaceOrder(orderFor(c)))
	})
}

func TestOrderPlacementService_PlaceOrder_InvalidAddress(t *testing.T) {
	service := services.NewOrderPlacementService()

	testCases := []struct {
		name      string
		address   *order.Address
		paramName string
		message   string
	}{
		{
			name:      "missing street1",
			address:   ordertest.NewAddressBuilder().WithStreet1("").Build(),
			paramName: "street1",
			message:   "invalid address: Customer must have Address, Street1!",
		},
		{
			name:      "missing city",
			address:   ordertest.NewAddressBuilder().WithCity("").Build(),
			paramName: "city",
			message:   "invalid address: Customer must have Address, City!",
		},
		{
			name:      "missing state",
			address:   ordertest.NewAddressBuilder().WithState("").Build(),
			paramName: "state",
			message:   "invalid address: Customer must have Address, State!",
		},
		{
			name:      "missing postal code",
			address:   ordertest.NewAddressBuilder().WithPostalCode("").Build(),
			paramName: "postalCode",
			message:   "invalid address: Customer must have Address, Postcode!",
		},
		{
			name:      "missing country",
			address:   ordertest.NewAddressBuilder().WithCountry("").Build(),
			paramName: "country",
			message:   "invalid address: Customer must have Address, Country!",
		},
		{
			name:      "first missing field wins",
			address:   ordertest.NewAddressBuilder().WithState("").WithCity("").WithCountry("").Build(),
			paramName: "city",
			message:   "invalid address: Customer must have Address, City!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ordertest.NewCustomerBuilder().WithAddress(tc.address).Build()

			err := service.PlaceOrder(orderFor(c))

			requirePlacementError(t, err, services.ErrInvalidAddress, tc.paramName)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestOrderPlacementService_PlaceOrder_Expedite(t *testing.T) {
	service := services.NewOrderPlacementService()

	testCases := []struct {
		name      string
		purchases int64
		rating    int
		expected  bool
	}{
		{name: "default customer", purchases: 23, rating: 200, expected: false},
		{name: "both above thresholds", purchases: 5001, rating: 501, expected: true},
		{name: "purchases exactly at threshold", purchases: 5000, rating: 501, expected: false},
		{name: "rating exactly at threshold", purchases: 5001, rating: 500, expected: false},
		{name: "only purchases above threshold", purchases: 9000, rating: 300, expected: false},
		{name: "only rating above threshold", purchases: 100, rating: 800, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := ordertest.NewCustomerBuilder().
				WithTotalPurchases(decimal.NewFromInt(tc.purchases)).
				WithCreditRating(tc.rating).
				Build()
			o := orderFor(c)

			require.NoError(t, service.PlaceOrder(o))

			assert.Equal(t, tc.expected, o.IsExpedited())
		})
	}

	t.Run("fractional purchases just above threshold", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().
			WithTotalPurchases(decimal.RequireFromString("5000.01")).
			WithCreditRating(501).
			Build()
		o := orderFor(c)

		require.NoError(t, service.PlaceOrder(o))

		assert.True(t, o.IsExpedited())
	})

	t.Run("flag is recomputed on resubmission", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().Build()
		o.MarkExpedited(true)

		require.NoError(t, service.PlaceOrder(o))

		assert.False(t, o.IsExpedited())
	})
}

func TestOrderPlacementService_PlaceOrder_History(t *testing.T) {
	service := services.NewOrderPlacementService()

	t.Run("default order is placed", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().Build()

		err := service.PlaceOrder(o)

		require.NoError(t, err)
		assert.False(t, o.IsExpedited())
		assert.True(t, o.Customer().TotalPurchases().Equal(decimal.NewFromInt(24)))
		history := o.Customer().OrderHistory()
		require.Len(t, history, 1)
		assert.Same(t, o, history[0])
	})

	t.Run("expedited order is placed", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().
			WithTotalPurchases(decimal.NewFromInt(5001)).
			WithCreditRating(501).
			Build()
		o := orderFor(c)

		require.NoError(t, service.PlaceOrder(o))

		assert.True(t, o.IsExpedited())
		assert.True(t, c.TotalPurchases().Equal(decimal.NewFromInt(5002)))
		assert.Len(t, c.OrderHistory(), 1)
	})

	t.Run("total purchases counts orders rather than amounts", func(t *testing.T) {
		// TotalPurchases is compared with a monetary threshold for expediting,
		// yet placement increments it by one per order. Both meanings are kept.
		o := ordertest.NewOrderBuilder().WithAmount(decimal.NewFromInt(750)).Build()

		require.NoError(t, service.PlaceOrder(o))

		assert.True(t, o.Customer().TotalPurchases().Equal(decimal.NewFromInt(24)))
	})

	t.Run("history keeps insertion order across placements", func(t *testing.T) {
		c := ordertest.NewCustomerBuilder().Build()
		first := orderFor(c)
		second := orderFor(c)

		require.NoError(t, service.PlaceOrder(first))
		require.NoError(t, service.PlaceOrder(second))

		history := c.OrderHistory()
		require.Len(t, history, 2)
		assert.Same(t, first, history[0])
		assert.Same(t, second, history[1])
		assert.True(t, c.TotalPurchases().Equal(decimal.NewFromInt(25)))
	})

	t.Run("same order placed twice appears once per placement", func(t *testing.T) {
		o := ordertest.NewOrderBuilder().Build()

		require.NoError(t, service.PlaceOrder(o))
		require.NoError(t, service.PlaceOrder(o))

		assert.Len(t, o.Customer().OrderHistory(), 2)
	})
}

func TestOrderPlacementService_PlaceOrder_NoMutationOnFailure(t *testing.T) {
	service := services.NewOrderPlacementService()

	testCases := []struct {
		name  string
		build func(c *order.Customer) *order.Order
		kind  error
	}{
		{
			name: "invalid order",
			build: func(c *order.Customer) *order.Order {
				return ordertest.NewOrderBuilder().WithID(1).WithCustomer(c).Build()
			},
			kind: services.ErrInvalidOrder,
		},
		{
			name: "insufficient credit",
			build: func(_ *order.Customer) *order.Order {
				return orderFor(ordertest.NewCustomerBuilder().
					WithCreditRating(150).
					WithTotalPurchases(decimal.NewFromInt(6000)).
					Build())
			},
			kind: services.ErrInsufficientCredit,
		},
		{
			name: "invalid address",
			build: func(_ *order.Customer) *order.Order {
				return orderFor(ordertest.NewCustomerBuilder().
					WithAddress(ordertest.NewAddressBuilder().WithCountry("").Build()).
					WithTotalPurchases(decimal.NewFromInt(6000)).
					WithCreditRating(600).
					Build())
			},
			kind: services.ErrInvalidAddress,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := tc.build(ordertest.NewCustomerBuilder().Build())
			o.MarkExpedited(true)
			customer := o.Customer()
			purchasesBefore := customer.TotalPurchases()

			err := service.PlaceOrder(o)

			require.ErrorIs(t, err, tc.kind)
			assert.True(t, o.IsExpedited(), "expedite flag must keep its pre-call value")
			assert.True(t, customer.TotalPurchases().Equal(purchasesBefore))
			assert.Empty(t, customer.OrderHistory())
		})
	}
}

func TestPlacementError(t *testing.T) {
	t.Run("unwraps to kind and cause", func(t *testing.T) {
		cause := errs.NewValueIsRequiredError("city")
		err := &services.PlacementError{
			Kind:      services.ErrInvalidAddress,
			ParamName: "city",
			Message:   "Customer must have Address, City!",
			Cause:     cause,
		}

		assert.Equal(t, []error{services.ErrInvalidAddress, cause}, err.Unwrap())
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("unwraps to kind only without cause", func(t *testing.T) {
		err := &services.PlacementError{Kind: services.ErrInvalidOrder, Message: "x"}

		assert.Equal(t, []error{services.ErrInvalidOrder}, err.Unwrap())
		assert.Equal(t, "invalid order: x", err.Error())
	})
}
