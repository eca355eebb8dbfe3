package kernel

import (
	"fmt"
	"regexp"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrEmailIsNotConstructed is returned when validating a zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// emailPattern accepts a local part of at least two word characters followed by
// one of the supported mail domains. Word characters are Unicode letters, digits
// and underscore, so "josé" and "用户" are valid local parts. The match is anchored
// only at the start and the dot before "com" matches any character.
var emailPattern = regexp.MustCompile(`^[\p{L}\p{N}_]+[\p{L}\p{N}_]@((g|e)mail|icloud|marco).com`)

// ValidateEmail reports whether address is accepted by the shop.
// A rejected address yields false and an *errs.ValueIsInvalidError.
func ValidateEmail(address string) (bool, error) {
	if !emailPattern.MatchString(address) {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"email",
			fmt.Errorf("%q does not match the accepted pattern", address),
		)
	}
	return true, nil
}

// Email is a validated email address.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

// NewEmail validates address with ValidateEmail.
func NewEmail(address string) (Email, error) {
	if _, err := ValidateEmail(address); err != nil {
		return Email{}, err
	}

	return Email{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate returns ErrEmailIsNotConstructed for the zero value.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.address
}
