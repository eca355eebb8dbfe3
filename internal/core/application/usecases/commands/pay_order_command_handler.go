package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// PayOrderCommandHandler moves a stored order from Pending to Paid.
type PayOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	processor services.PaymentProcessor
}

// NewPayOrderCommandHandler creates a handler for order payments.
func NewPayOrderCommandHandler(
	orderRepo ports.OrderRepository,
	processor services.PaymentProcessor,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		orderRepo: orderRepo,
		processor: processor,
	}
}

// Handle loads the order and sets its payment status to Paid.
// An already-paid order fails with order.ErrFailedPayment and is not stored again.
func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.processor.SetStatus(o, order.Paid); err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, o)
}
