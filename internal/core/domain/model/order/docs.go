// Package order provides the in-memory object graph that order placement works on:
// an Order that references one Customer, who owns an optional home Address.
//
// The package includes:
//   - Order: a new order awaiting placement and its computed expedite flag
//   - Customer: the buyer, their credit standing, and their purchase history
//   - Address: the customer's home address value object
//
// Key rules:
//   - Constructors never validate; an invalid graph must be representable so
//     that placement can reject it with the right error
//   - An order with ID 0 has not been assigned an identity yet
//   - A customer's order history only grows by appending, and only through
//     Customer.RecordOrder
//   - The expedite flag is computed during placement, never supplied by callers
package order
