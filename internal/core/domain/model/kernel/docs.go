// Package kernel provides shared domain primitives for the ordering system.
//
// The package includes:
//   - CorrelationID: a value object identifying one placement request, used to
//     tie together the log lines and responses that belong to it
//
// Primitives are immutable and safe for concurrent use.
package kernel
