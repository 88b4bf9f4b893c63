package errs_test

import (
	"errors"
	"testing"
	"time"

	"fieldops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("jobId", "550e8400")

		assert.Equal(t, "jobId", err.ParamName)
		assert.Equal(t, "550e8400", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 550e8400", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewObjectNotFoundErrorWithCause("workerId", "42", cause)

		assert.Equal(t, "workerId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: workerId, ID is: 42 (cause: connection refused)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status string")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown status string)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("hour", 23, 7, 20)

		assert.Equal(t, "hour", err.ParamName)
		assert.Equal(t, 23, err.Value)
		assert.Equal(t, 7, err.Min)
		assert.Equal(t, 20, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 23 is hour, min value is 7, max value is 20", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("parsed from request")
		err := errs.NewValueIsOutOfRangeErrorWithCause("minute", 75, 0, 59, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: 75 is minute, min value is 0, max value is 59 (cause: parsed from request)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("newlines in values are sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("reason", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("firstName")

		assert.Equal(t, "firstName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: firstName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("field absent in payload")
		err := errs.NewValueIsRequiredErrorWithCause("workerId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: workerId (cause: field absent in payload)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestIntervalIsInvalidError(t *testing.T) {
	start := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	t.Run("NewIntervalIsInvalidError", func(t *testing.T) {
		err := errs.NewIntervalIsInvalidError("window", start, end)

		assert.Equal(t, "window", err.ParamName)
		assert.Equal(t, start, err.Start)
		assert.Equal(t, end, err.End)
		require.NoError(t, err.Cause)
		assert.Equal(t,
			"interval is invalid: window, start is: 2025-06-02T12:00:00Z, end is: 2025-06-02T10:00:00Z",
			err.Error())
		assert.Equal(t, errs.ErrIntervalIsInvalid, err.Unwrap())
	})

	t.Run("NewIntervalIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("upstream data corruption")
		err := errs.NewIntervalIsInvalidErrorWithCause("window", start, end, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: upstream data corruption)")
		assert.Equal(t, errs.ErrIntervalIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "interval is invalid", errs.ErrIntervalIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("jobId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("hour", 23, 7, 20), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("firstName"), errs.ErrValueIsRequired)
		require.ErrorIs(t,
			errs.NewIntervalIsInvalidError("window", time.Now().Add(time.Hour), time.Now()),
			errs.ErrIntervalIsInvalid)
	})
}
