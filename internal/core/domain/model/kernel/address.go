package kernel

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is an immutable postal address.
//
// Example:
//
//	addr, err := kernel.NewAddress("New York", "Broadway", 69)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(addr) // Broadway 69, New York
type Address struct { //nolint:recvcheck //using for validation
	city   string
	street string
	number int
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. City and street are required and the
// house number must be positive; every failing field is reported.
func NewAddress(city string, street string, number int) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setCity(city),
		addr.setStreet(street),
		addr.setNumber(number),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate returns ErrAddressIsNotConstructed for the zero value.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Number() int {
	return a.number
}

// IsEqual compares two constructed addresses field by field.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a Address) String() string {
	return fmt.Sprintf("%s %d, %s", a.street, a.number, a.city)
}

func (a *Address) setCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if strings.TrimSpace(street) == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsOutOfRangeError("number", number, 1, math.MaxInt)
	}

	a.number = number
	return nil
}
