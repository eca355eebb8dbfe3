package user

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User was not created through NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is an immutable customer. Orders reference a User without owning it,
// so the same User may place many orders.
type User struct {
	name    string
	email   kernel.Email
	address kernel.Address
	guard   guard.ConstructorGuard
}

// NewUser creates a User. The email is checked with kernel.ValidateEmail; a
// rejected address fails with *errs.ValueIsInvalidError and no User is returned.
//
// Example:
//
//	addr, _ := kernel.NewAddress("New York", "Broadway", 69)
//	u, err := user.NewUser("Marco", "aunglynn@marco.com", addr)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // rejected email
//	}
func NewUser(name string, email string, address kernel.Address) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
		u.setAddress(address),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created by NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() kernel.Email {
	return u.email
}

// Address returns a copy of the user's address.
func (u *User) Address() kernel.Address {
	return u.address
}

func (u *User) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(address string) error {
	email, err := kernel.NewEmail(address)
	if err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	u.address = address
	return nil
}
