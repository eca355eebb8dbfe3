package commands

import (
	"errors"
	"slices"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a new order for a user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), marco, []order.Item{apple, cherry})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(repo)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	user    *user.User
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id and the user.
// Items are validated when the order is built.
func NewCreateOrderCommand(orderID kernel.UUID, u *user.User, items []order.Item) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		items: slices.Clone(items),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUser(u),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) User() *user.User {
	return c.user
}

// Items returns a copy of the requested lines.
func (c CreateOrderCommand) Items() []order.Item {
	return slices.Clone(c.items)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUser(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	c.user = u
	return nil
}
