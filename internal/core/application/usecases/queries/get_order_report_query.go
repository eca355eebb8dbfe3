package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var (
	ErrGetOrderReportQueryIsNotConstructed = errors.New(
		"GetOrderReportQuery must be created via NewGetOrderReportQuery constructor",
	)
)

// GetOrderReportQuery retrieves everything needed to print an order checkout.
//
// Example:
//
//	query, err := NewGetOrderReportQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build order report: %w", err)
//	}
//
//	fmt.Printf("%s owes %d (%s)\n",
//	    report.Order.User().Name(), report.Order.TotalPrice(), report.PaymentStatus)
type GetOrderReportQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderReportQuery creates a report query for one order.
func NewGetOrderReportQuery(orderID kernel.UUID) (GetOrderReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderReportQuery{}, err
	}

	return GetOrderReportQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderReportQueryIsNotConstructed if validation fails.
func (q GetOrderReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReportQueryIsNotConstructed)
}

func (q GetOrderReportQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderReportQueryResponse pairs the stored order with the payment status
// reported for it. Reporters render item rows and totals from Order.
type GetOrderReportQueryResponse struct {
	Order         *order.Order
	PaymentStatus order.PaymentStatus
}
