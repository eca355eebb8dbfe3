// Package orderrepo provides an in-process implementation of ports.OrderRepository.
// Orders live only as long as the process; nothing is written to disk.
package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned by Add for an id that is already stored.
// The returned error also matches errs.ErrValueIsInvalid.
var ErrOrderAlreadyExists = errors.New("order already exists")

// MemoryOrderRepository implements OrderRepository over a map keyed by order id.
// It is safe for concurrent use.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
}

var _ ports.OrderRepository = (*MemoryOrderRepository)(nil)

// NewMemoryOrderRepository creates an empty repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[kernel.UUID]*order.Order),
	}
}

// Add stores a new order.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; ok {
		return fmt.Errorf("%w: %w", ErrOrderAlreadyExists, errs.NewValueIsInvalidError("order"))
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Update replaces a stored order.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.orders[aggregate.ID()] = aggregate
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return o, nil
}

// Len returns the number of stored orders.
func (r *MemoryOrderRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders)
}
