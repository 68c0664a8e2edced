package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"photoflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with non-string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("dropboxUrl")

		assert.Equal(t, "dropboxUrl", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: dropboxUrl", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("scheme must be http or https")
		err := errs.NewValueIsInvalidErrorWithCause("dropboxUrl", cause)

		assert.Equal(t, "value is invalid: dropboxUrl (cause: scheme must be http or https)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("photoCount", -1, 0, 10000)

		assert.Equal(t, "photoCount", err.ParamName)
		assert.Equal(t, -1, err.Value)
		assert.Equal(t, "value is invalid: -1 is photoCount, min value is 0, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("value with newlines is flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("cancelReason")

	assert.Equal(t, "value is required: cancelReason", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("cancelReason", errors.New("blank"))
	assert.Equal(t, "value is required: cancelReason (cause: blank)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidErrorWithCause("order", errors.New("expected version 3"))

	assert.Equal(t, "version is invalid: order (cause: expected version 3)", err.Error())
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	assert.Equal(t, "version is invalid: order", errs.NewVersionIsInvalidError("order").Error())
}

func TestNotAuthorizedError(t *testing.T) {
	err := errs.NewNotAuthorizedErrorWithCause("accept order", errors.New("role EDITOR"))

	assert.Equal(t, "not authorized: accept order (cause: role EDITOR)", err.Error())
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestStateIsInvalidError(t *testing.T) {
	err := errs.NewStateIsInvalidErrorWithCause("order", errors.New("order already has an editor"))

	assert.Equal(t, "state is invalid: order (cause: order already has an editor)", err.Error())
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
	assert.Equal(t, "not authorized", errs.ErrNotAuthorized.Error())
	assert.Equal(t, "state is invalid", errs.ErrStateIsInvalid.Error())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, errs.IsValidation(errs.NewValueIsRequiredError("a")))
	assert.True(t, errs.IsValidation(errs.NewValueIsInvalidError("a")))
	assert.True(t, errs.IsValidation(errs.NewValueIsOutOfRangeError("a", 1, 2, 3)))
	assert.True(t, errs.IsValidation(fmt.Errorf("wrapped: %w", errs.NewValueIsInvalidError("a"))))
	assert.False(t, errs.IsValidation(errs.NewStateIsInvalidError("a")))
	assert.False(t, errs.IsValidation(errs.NewNotAuthorizedError("a")))
}

func TestFields(t *testing.T) {
	t.Run("collects joined and wrapped failures", func(t *testing.T) {
		err := errors.Join(
			errs.NewValueIsRequiredError("location"),
			fmt.Errorf("counts: %w", errs.NewValueIsOutOfRangeError("photoCount", -1, 0, 10000)),
			errs.NewStateIsInvalidError("order"),
		)

		fields := errs.Fields(err)

		require.Len(t, fields, 2)
		assert.Equal(t, "value is required: location", fields["location"])
		assert.Contains(t, fields["photoCount"], "photoCount")
	})

	t.Run("first failure per field wins", func(t *testing.T) {
		err := errors.Join(
			errs.NewValueIsRequiredError("reviewUrl"),
			errs.NewValueIsInvalidError("reviewUrl"),
		)

		assert.Equal(t, "value is required: reviewUrl", errs.Fields(err)["reviewUrl"])
	})

	t.Run("nil error yields no fields", func(t *testing.T) {
		assert.Empty(t, errs.Fields(nil))
	})
}
