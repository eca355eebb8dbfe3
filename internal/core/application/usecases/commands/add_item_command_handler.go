package commands

import (
	"context"

	"shop/internal/core/ports"
)

// AddItemCommandHandler appends an item to a stored order.
// Paid orders refuse new items with order.ErrOrderIsAlreadyPaid.
type AddItemCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewAddItemCommandHandler creates a handler for item appends.
func NewAddItemCommandHandler(orderRepo ports.OrderRepository) AddItemCommandHandler {
	return AddItemCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle loads the order, appends the item and stores the order.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AddItem(cmd.Item()); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, o)
}
