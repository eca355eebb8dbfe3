package queries

import (
	"context"

	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// GetOrderReportQueryHandler reads an order from the repository. The payment
// status is read through the PaymentProcessor so the report shows what the
// payment side sees.
type GetOrderReportQueryHandler struct {
	orderRepo ports.OrderRepository
	processor services.PaymentProcessor
}

// NewGetOrderReportQueryHandler creates a handler for order report queries.
func NewGetOrderReportQueryHandler(
	orderRepo ports.OrderRepository,
	processor services.PaymentProcessor,
) GetOrderReportQueryHandler {
	return GetOrderReportQueryHandler{
		orderRepo: orderRepo,
		processor: processor,
	}
}

// Handle returns the report of the requested order.
// A missing order yields *errs.ObjectNotFoundError.
func (h GetOrderReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReportQuery,
) (GetOrderReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	return GetOrderReportQueryResponse{
		Order:         o,
		PaymentStatus: h.processor.Status(o),
	}, nil
}
