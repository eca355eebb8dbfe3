package commands

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrPayOrdersCommandIsNotConstructed = errors.New(
	"PayOrdersCommand must be created via NewPayOrdersCommand constructor",
)

// PayOrdersCommand represents a request to pay several orders in one batch.
// A failure on one order does not stop the others.
type PayOrdersCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrdersCommand requires at least one order id, and every id must be valid.
func NewPayOrdersCommand(orderIDs []kernel.UUID) (PayOrdersCommand, error) {
	if len(orderIDs) == 0 {
		return PayOrdersCommand{}, errs.NewValueIsRequiredError("order ids")
	}

	var errList []error
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return PayOrdersCommand{}, err
	}

	return PayOrdersCommand{
		orderIDs: slices.Clone(orderIDs),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPayOrdersCommandIsNotConstructed)
}

// OrderIDs returns the ids in the order they will be processed.
func (c PayOrdersCommand) OrderIDs() []kernel.UUID {
	return slices.Clone(c.orderIDs)
}
