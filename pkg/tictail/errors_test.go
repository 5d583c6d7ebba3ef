package tictail_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tictail/tictail-go/pkg/tictail"
)

func TestKindForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   error
	}{
		{400, tictail.ErrBadRequest},
		{403, tictail.ErrForbidden},
		{404, tictail.ErrNotFound},
		{422, tictail.ErrValidationFailed},
		{409, tictail.ErrServerError},
		{500, tictail.ErrServerError},
		{502, tictail.ErrServerError},
	}

	for _, testCase := range tests {
		t.Run(fmt.Sprint(testCase.status), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, tictail.KindForStatus(testCase.status))
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("message with status", func(t *testing.T) {
		t.Parallel()

		err := &tictail.Error{Kind: tictail.ErrForbidden, Message: "Forbidden", Status: 403}
		assert.Equal(t, "forbidden: Forbidden (status: 403)", err.Error())
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("dial tcp: connection refused")
		err := &tictail.Error{Kind: tictail.ErrConnectionFailure, Message: cause.Error(), Cause: cause}
		assert.Equal(t, "connection failure: dial tcp: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.True(t, tictail.IsConnectionFailure(err))
	})

	t.Run("params", func(t *testing.T) {
		t.Parallel()

		err := &tictail.Error{
			Kind: tictail.ErrBadRequest,
			JSON: map[string]interface{}{"params": map[string]interface{}{"id": "malformed"}},
		}
		assert.Equal(t, map[string]interface{}{"id": "malformed"}, err.Params())

		assert.Nil(t, (&tictail.Error{Kind: tictail.ErrServerError}).Params())
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  error
		check func(error) bool
	}{
		{"not found", tictail.ErrNotFound, tictail.IsNotFound},
		{"forbidden", tictail.ErrForbidden, tictail.IsForbidden},
		{"bad request", tictail.ErrBadRequest, tictail.IsBadRequest},
		{"validation failed", tictail.ErrValidationFailed, tictail.IsValidationFailed},
		{"server error", tictail.ErrServerError, tictail.IsServerError},
		{"connection failure", tictail.ErrConnectionFailure, tictail.IsConnectionFailure},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := fmt.Errorf("getting store: %w", &tictail.Error{Kind: testCase.kind, Message: "x"})
			assert.True(t, testCase.check(err))
			assert.False(t, testCase.check(errors.New("other")))

			apiErr, ok := tictail.AsError(err)
			require.True(t, ok)
			assert.Equal(t, testCase.kind, apiErr.Kind)
		})
	}

	_, ok := tictail.AsError(errors.New("plain"))
	assert.False(t, ok)
}
