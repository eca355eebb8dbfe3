package order

import (
	"errors"
	"math"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable order line: quantity units of label at price each.
type Item struct { //nolint:recvcheck //using for validation
	label    string
	quantity int64
	price    int64
	guard    guard.ConstructorGuard
}

// NewItem creates an Item. Label is required; quantity and price must not be negative.
//
// Example:
//
//	apple, err := order.NewItem("Apple", 5, 1_000)
//	fmt.Println(apple.TotalPrice()) // 5000
func NewItem(label string, quantity int64, price int64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setLabel(label),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created by NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Label() string {
	return i.label
}

func (i Item) Quantity() int64 {
	return i.quantity
}

// Price returns the unit price in minor units.
func (i Item) Price() int64 {
	return i.price
}

// TotalPrice returns quantity * price.
func (i Item) TotalPrice() int64 {
	return i.quantity * i.price
}

func (i *Item) setLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return errs.NewValueIsRequiredError("label")
	}
	i.label = label
	return nil
}

func (i *Item) setQuantity(quantity int64) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, int64(math.MaxInt64))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("price", price, 0, int64(math.MaxInt64))
	}
	i.price = price
	return nil
}
