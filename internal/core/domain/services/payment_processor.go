package services

import (
	"shop/internal/core/domain/model/order"
)

// PaymentProcessor reads and changes the payment status of orders.
type PaymentProcessor interface {
	// Status returns the order's current payment status without side effects.
	// It never fails; an unconstructed order reports order.Unknown.
	Status(o *order.Order) order.PaymentStatus

	// SetStatus changes the order's payment status. It fails with
	// order.ErrFailedPayment when the order is already paid.
	SetStatus(o *order.Order, status order.PaymentStatus) error
}

// OrderPaymentProcessor is the PaymentProcessor backed by the order's own
// transition rule.
//
// Example usage:
//
//	processor := services.NewOrderPaymentProcessor()
//	if err := processor.SetStatus(o, order.Paid); errors.Is(err, order.ErrFailedPayment) {
//	    // order was already paid
//	}
//	fmt.Println(processor.Status(o)) // PAID
type OrderPaymentProcessor struct{}

var _ PaymentProcessor = OrderPaymentProcessor{}

// NewOrderPaymentProcessor creates a new OrderPaymentProcessor instance.
func NewOrderPaymentProcessor() OrderPaymentProcessor {
	return OrderPaymentProcessor{}
}

// Status returns the payment status of o, or order.Unknown when o was not
// created by order.NewOrder.
func (p OrderPaymentProcessor) Status(o *order.Order) order.PaymentStatus {
	if err := o.Validate(); err != nil {
		return order.Unknown
	}
	return o.PaymentStatus()
}

// SetStatus validates o and overwrites its payment status.
//
// Returns:
//   - nil on success, including re-setting Pending on a pending order
//   - order.ErrFailedPayment if o is already paid; the status stays Paid
//   - a validation error if o was not constructed or status is invalid
func (p OrderPaymentProcessor) SetStatus(o *order.Order, status order.PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.SetPaymentStatus(status)
}
