// Package user provides the User value object: a named customer with a
// validated email and a postal address. A User cannot exist with an email
// rejected by kernel.ValidateEmail.
package user
