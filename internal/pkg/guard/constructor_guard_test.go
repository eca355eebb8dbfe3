package guard_test

import (
	"errors"
	"testing"

	"shop/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("item not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		guardCopy := g

		// Then
		require.NoError(t, g.Validate(nil))
		require.NoError(t, guardCopy.Validate(nil))
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a line-item value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Line struct {
		label string
		qty   int
		guard guard.ConstructorGuard
	}

	errLineNotConstructed := errors.New("Line must be created via NewLine")

	newLine := func(label string, qty int) (Line, error) {
		if label == "" {
			return Line{}, errors.New("label is required")
		}
		return Line{label: label, qty: qty, guard: guard.NewConstructorGuard()}, nil
	}

	validateLine := func(l Line) error {
		return l.guard.Validate(errLineNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		line, err := newLine("Apple", 5)

		require.NoError(t, err)
		require.NoError(t, validateLine(line))
		assert.Equal(t, "Apple", line.label)
		assert.Equal(t, 5, line.qty)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var line Line

		err := validateLine(line)

		require.Error(t, err)
		assert.Equal(t, errLineNotConstructed, err)
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var g guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
