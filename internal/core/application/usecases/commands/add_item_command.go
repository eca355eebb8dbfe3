package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to append a line to a pending order.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    order.Item

	guard guard.ConstructorGuard
}

// NewAddItemCommand validates the order id and the item.
func NewAddItemCommand(orderID kernel.UUID, item order.Item) (AddItemCommand, error) {
	command := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setItem(item),
	); err != nil {
		return AddItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddItemCommand) Item() order.Item {
	return c.item
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItem(item order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}
