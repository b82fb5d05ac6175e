package errs_test

import (
	"errors"
	"testing"

	"packline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("taskId", "123")

		assert.Equal(t, "taskId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("taskId", "123", cause)

		assert.Equal(t, "taskId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: taskId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with non-string ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("intakeId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("containerSize")

		assert.Equal(t, "containerSize", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: containerSize", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("5 is not an enumerated size")
		err := errs.NewValueIsInvalidErrorWithCause("containerSize", cause)

		assert.Equal(t, "containerSize", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: containerSize (cause: 5 is not an enumerated size)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("staged", -3, 0, 10000)

		assert.Equal(t, "staged", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: -3 is staged, min value is 0, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("filled", -5, 0, 100, cause)

		assert.Equal(t, "filled", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: -5 is filled, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("sku")

		assert.Equal(t, "sku", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: sku", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("sku", cause)

		assert.Equal(t, "sku", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: sku (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInsufficientInventoryError(t *testing.T) {
	t.Run("NewInsufficientInventoryError", func(t *testing.T) {
		err := errs.NewInsufficientInventoryError("CR", "staged", 5, 2)

		assert.Equal(t, "CR", err.SKU)
		assert.Equal(t, "staged", err.Stage)
		assert.Equal(t, 5, err.Requested)
		assert.Equal(t, 2, err.Available)
		assert.Equal(t, "insufficient inventory: CR staged, requested 5, available 2", err.Error())
		assert.Equal(t, errs.ErrInsufficientInventory, err.Unwrap())
	})

	t.Run("classifiable via errors.Is", func(t *testing.T) {
		var err error = errs.NewInsufficientInventoryError("BG", "filled", 6, 0)
		require.ErrorIs(t, err, errs.ErrInsufficientInventory)
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("inventory_levels")

		assert.Equal(t, "inventory_levels", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "concurrency conflict: inventory_levels", err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("could not serialize access")
		err := errs.NewConflictErrorWithCause("tasks", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "concurrency conflict: tasks (cause: could not serialize access)", err.Error())
		require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInsufficientInventory)
		require.Error(t, errs.ErrConcurrencyConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "insufficient inventory", errs.ErrInsufficientInventory.Error())
		assert.Equal(t, "concurrency conflict", errs.ErrConcurrencyConflict.Error())
	})
}
