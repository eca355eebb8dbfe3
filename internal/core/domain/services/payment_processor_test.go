package services_test

import (
	"testing"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	address, err := kernel.NewAddress("New York", "Broadway", 69)
	require.NoError(t, err)
	marco, err := user.NewUser("Marco", "aunglynn@marco.com", address)
	require.NoError(t, err)
	apple, err := order.NewItem("Apple", 5, 1_000)
	require.NoError(t, err)
	cherry, err := order.NewItem("Cherry", 2, 1_500)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), marco, []order.Item{apple, cherry})
	require.NoError(t, err)

	return o
}

func TestOrderPaymentProcessor_Status(t *testing.T) {
	t.Run("should report pending for a fresh order", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)

		assert.Equal(t, order.Pending, processor.Status(o))
	})

	t.Run("should report unknown for nil order", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()

		assert.NotPanics(t, func() {
			assert.Equal(t, order.Unknown, processor.Status(nil))
		})
	})

	t.Run("should report unknown for zero value order", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()

		assert.Equal(t, order.Unknown, processor.Status(&order.Order{}))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)

		for range 5 {
			assert.Equal(t, order.Pending, processor.Status(o))
		}
		require.NoError(t, processor.SetStatus(o, order.Paid))
		for range 5 {
			assert.Equal(t, order.Paid, processor.Status(o))
		}
	})
}

func TestOrderPaymentProcessor_SetStatus(t *testing.T) {
	t.Run("should mark order as paid", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)

		err := processor.SetStatus(o, order.Paid)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, processor.Status(o))
	})

	t.Run("should allow re-setting pending", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)

		require.NoError(t, processor.SetStatus(o, order.Pending))
		assert.Equal(t, order.Pending, processor.Status(o))
	})

	t.Run("should fail second change of a paid order", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)
		require.NoError(t, processor.SetStatus(o, order.Paid))

		for _, status := range []order.PaymentStatus{order.Paid, order.Pending} {
			err := processor.SetStatus(o, status)

			require.ErrorIs(t, err, order.ErrFailedPayment)
			assert.Equal(t, "cannot change status of an already-paid order", err.Error())
			assert.Equal(t, order.Paid, processor.Status(o))
		}
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()
		o := newTestOrder(t)

		err := processor.SetStatus(o, order.PaymentStatus(9))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, processor.Status(o))
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		processor := services.NewOrderPaymentProcessor()

		err := processor.SetStatus(&order.Order{}, order.Paid)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
