package order

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsAlreadyPaid is returned when appending items to a paid order.
	ErrOrderIsAlreadyPaid = errors.New("cannot add items to an already-paid order")
)

// Order is the aggregate root of a purchase. It owns its items, references its
// user, and holds the payment status.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a constructed user
//   - Every item is a constructed Item
//   - Payment status starts Pending and never leaves Paid
//   - Items are appended only while Pending
//
// Status changes and item appends are serialized per order, so the
// check-then-set of the payment rule is atomic. Orders must not be copied.
type Order struct {
	mu sync.Mutex

	// id is the unique identifier for the order
	id kernel.UUID

	// user placed the order; not owned by it
	user *user.User

	// items in insertion order
	items []Item

	// paymentStatus changes only through SetPaymentStatus
	paymentStatus PaymentStatus

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order for u with the given items.
// The items slice is copied.
//
// Example:
//
//	apple, _ := order.NewItem("Apple", 5, 1_000)
//	cherry, _ := order.NewItem("Cherry", 2, 1_500)
//	o, err := order.NewOrder(kernel.NewUUID(), marco, []order.Item{apple, cherry})
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(o.TotalPrice()) // 8000
func NewOrder(id kernel.UUID, u *user.User, items []Item) (*Order, error) {
	o := &Order{
		paymentStatus: Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUser(u),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// User returns the user who placed the order.
func (o *Order) User() *user.User {
	return o.user
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.items)
}

// PaymentStatus returns the current payment status. It never mutates the order.
func (o *Order) PaymentStatus() PaymentStatus {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.paymentStatus
}

// IsPaid reports whether the order reached the Paid status.
func (o *Order) IsPaid() bool {
	return o.PaymentStatus() == Paid
}

// TotalPrice returns the sum of the item totals; an order without items totals 0.
func (o *Order) TotalPrice() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	var total int64
	for _, item := range o.items {
		total += item.TotalPrice()
	}
	return total
}

// SetPaymentStatus overwrites the payment status.
//
// This method enforces the following business rules:
//   - status must be Pending or Paid
//   - an order that is already Paid cannot change (ErrFailedPayment)
//
// On error the stored status is left unchanged.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	next, err := o.paymentStatus.ChangeTo(status)
	if err != nil {
		return err
	}

	o.paymentStatus = next
	return nil
}

// AddItem appends item to a Pending order.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.paymentStatus.IsFinal() {
		return ErrOrderIsAlreadyPaid
	}

	o.items = append(o.items, item)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUser(u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	o.user = u
	return nil
}

func (o *Order) setItems(items []Item) error {
	var errList []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", i, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.items = slices.Clone(items)
	return nil
}
