// Package queries holds the read side of the shop application layer.
// Query handlers never mutate orders.
package queries
