package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("offer", "123")

		assert.Equal(t, "offer", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("offer", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: offer, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("cannot change status"))

	assert.Equal(t, "status", err.ParamName)
	assert.Equal(t, "value is invalid: status (cause: cannot change status)", err.Error())
	assert.Equal(t, "value is invalid: title", errs.NewValueIsInvalidError("title").Error())
	assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("formats bounds", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("keeps value on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("title", errors.New("empty"))

	assert.Equal(t, "value is required: title (cause: empty)", err.Error())
	assert.Equal(t, "value is required: title", errs.NewValueIsRequiredError("title").Error())
}

func TestAccessErrors(t *testing.T) {
	authErr := errs.NewAuthenticationRequiredError("offer.create")
	assert.Equal(t, "authentication required: offer.create", authErr.Error())
	require.ErrorIs(t, authErr, errs.ErrAuthenticationRequired)

	forbidden := errs.NewForbiddenError("order.delete", "staff only")
	assert.Equal(t, "forbidden: order.delete (staff only)", forbidden.Error())
	require.ErrorIs(t, forbidden, errs.ErrForbidden)
	require.NotErrorIs(t, forbidden, errs.ErrAuthenticationRequired)
}

func TestIsValidation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"required", errs.NewValueIsRequiredError("title"), true},
		{"invalid", errs.NewValueIsInvalidError("tier"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("rating", 0, 1, 5), true},
		{"joined", errors.Join(errs.NewValueIsRequiredError("a"), errs.NewValueIsInvalidError("b")), true},
		{"wrapped", fmt.Errorf("create offer: %w", errs.NewValueIsInvalidError("details")), true},
		{"not found", errs.NewObjectNotFoundError("offer", "1"), false},
		{"forbidden", errs.NewForbiddenError("offer.update", "not the owner"), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.IsValidation(tc.err))
		})
	}
}
