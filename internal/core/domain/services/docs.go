// Package services provides domain services that run business operations over
// the order object graph.
//
// The package includes:
//   - OrderPlacementService: validates an order, its customer and the customer's
//     address, decides whether the order is expedited, and records it in the
//     customer's history
//   - PlacementError: the failure returned when placement rejects an order
package services
