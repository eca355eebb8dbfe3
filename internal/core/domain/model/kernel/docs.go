// Package kernel provides the shared value objects of the shop domain.
//
// The package includes:
//   - UUID: identifier for aggregates, wrapping github.com/google/uuid
//   - Email: an address accepted by ValidateEmail
//   - Address: a postal address (city, street, house number)
//
// All values are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel
