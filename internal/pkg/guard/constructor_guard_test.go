package guard_test

import (
	"errors"
	"testing"

	"pos/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates the pattern the domain model
// relies on: value objects fail validation unless built by their constructor.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		productID string
		quantity  int
		guard     guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("line item must be created via its constructor")

	newLineItem := func(productID string, quantity int) (lineItem, error) {
		if productID == "" {
			return lineItem{}, errors.New("product ID is required")
		}
		if quantity < 1 {
			return lineItem{}, errors.New("quantity must be at least 1")
		}
		return lineItem{
			productID: productID,
			quantity:  quantity,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem("prod-1", 2)

		require.NoError(t, err)
		require.NoError(t, item.guard.Validate(errLineItemNotConstructed))
		assert.Equal(t, "prod-1", item.productID)
		assert.Equal(t, 2, item.quantity)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item lineItem // zero value

		err := item.guard.Validate(errLineItemNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 1)
		require.Error(t, err)

		_, err = newLineItem("prod-1", 0)
		require.Error(t, err)
	})
}

// TestConstructorGuardConcurrency verifies that a constructed guard can be
// read from multiple goroutines.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}
