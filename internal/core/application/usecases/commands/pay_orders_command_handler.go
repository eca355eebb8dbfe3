package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shop/internal/core/domain/model/kernel"
)

// OrderPayer pays a single order. PayOrderCommandHandler implements it.
type OrderPayer interface {
	Handle(ctx context.Context, cmd PayOrderCommand) error
}

// OrderPaymentFailure records why one order of a batch was not paid.
type OrderPaymentFailure struct {
	OrderID kernel.UUID
	Err     error
}

// PayOrdersResult lists the outcome of a batch in processing order.
type PayOrdersResult struct {
	Paid   []kernel.UUID
	Failed []OrderPaymentFailure
}

// PayOrdersCommandHandler pays every order of a batch, logging and collecting
// per-order failures instead of stopping at the first one.
type PayOrdersCommandHandler struct {
	payer  OrderPayer
	logger *slog.Logger
}

// NewPayOrdersCommandHandler creates a batch payment handler on top of a single-order payer.
func NewPayOrdersCommandHandler(payer OrderPayer, logger *slog.Logger) PayOrdersCommandHandler {
	return PayOrdersCommandHandler{
		payer:  payer,
		logger: logger.With("component", "pay_orders_handler"),
	}
}

// Handle pays each order in turn. The returned error joins all per-order
// failures and is nil when every order was paid. A cancelled context stops
// the batch; the orders not reached are reported as failed with ctx.Err().
func (h PayOrdersCommandHandler) Handle(ctx context.Context, cmd PayOrdersCommand) (PayOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return PayOrdersResult{}, err
	}

	var (
		result  PayOrdersResult
		errList []error
	)
	for _, id := range cmd.OrderIDs() {
		err := ctx.Err()
		if err == nil {
			err = h.payOne(ctx, id)
		}

		if err != nil {
			h.logger.WarnContext(ctx, "order payment failed", "order_id", id.String(), "error", err)
			result.Failed = append(result.Failed, OrderPaymentFailure{OrderID: id, Err: err})
			errList = append(errList, fmt.Errorf("order %s: %w", id, err))
			continue
		}

		result.Paid = append(result.Paid, id)
	}

	h.logger.InfoContext(ctx, "order batch processed", "paid", len(result.Paid), "failed", len(result.Failed))
	return result, errors.Join(errList...)
}

func (h PayOrdersCommandHandler) payOne(ctx context.Context, id kernel.UUID) error {
	cmd, err := NewPayOrderCommand(id)
	if err != nil {
		return err
	}

	return h.payer.Handle(ctx, cmd)
}
