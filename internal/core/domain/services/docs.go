// Package services provides domain services that operate on shop aggregates
// without belonging to a single one.
//
// The package includes:
//   - PaymentProcessor: reads and writes an order's payment status under the
//     one-way Pending -> Paid rule
package services
