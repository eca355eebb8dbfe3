// Package order provides the Order aggregate of the shop: a user, an ordered
// list of line items, and a payment status.
//
// The package includes:
//   - Product: the "can compute a total price" capability shared by Item and Order
//   - Item: an immutable purchasable line (label, quantity, unit price)
//   - Order: the aggregate root owning its items and payment status
//   - PaymentStatus: a two-state, one-way state machine (Pending -> Paid)
//
// Key business rules:
//   - Prices are integer minor units; totals are derived, never stored
//   - A new order is Pending
//   - Once Paid, the status can never change again
//   - Items may only be appended while the order is Pending
package order
