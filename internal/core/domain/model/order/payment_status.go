package order

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

// ErrFailedPayment is returned when changing the status of an order that is already paid.
var ErrFailedPayment = errors.New("cannot change status of an already-paid order")

// PaymentStatus is the payment state of an order.
//
// State transitions:
//
//	Pending ──┬──> Paid
//	   ^      │
//	   └──────┘
//	(re-setting Pending is allowed, nothing leaves Paid)
type PaymentStatus int

const (
	// Unknown catches uninitialized values.
	Unknown PaymentStatus = iota

	// Pending is the status of every new order.
	Pending

	// Paid is terminal.
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		Unknown: "UNKNOWN",
		Pending: "PENDING",
		Paid:    "PAID",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s PaymentStatus) Validate() error {
	if s != Pending && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns "PENDING", "PAID" or "UNKNOWN".
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsFinal reports whether no transition may leave s.
func (s PaymentStatus) IsFinal() bool {
	return s == Paid
}

// ValidateChange returns ErrFailedPayment when s is Paid.
func (s PaymentStatus) ValidateChange() error {
	if s.IsFinal() {
		return ErrFailedPayment
	}
	return nil
}

// ChangeTo returns next when the transition from s is allowed.
//
// Valid transitions:
//   - Pending -> Pending
//   - Pending -> Paid
//
// Invalid transitions:
//   - Paid -> anything (ErrFailedPayment)
//   - anything -> Unknown or an out-of-range value (*errs.ValueIsInvalidError)
func (s PaymentStatus) ChangeTo(next PaymentStatus) (PaymentStatus, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if err := s.ValidateChange(); err != nil {
		return 0, err
	}

	return next, nil
}
