// Package commands contains the shop operations that modify order state.
// Every command follows the same steps: constructor validation, loading the
// aggregate through ports.OrderRepository, applying domain behavior, storing.
package commands
