package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[int]int{
		ErrCodeMissingFields:      http.StatusBadRequest,
		ErrCodeInvalidOrderStatus: http.StatusBadRequest,
		ErrCodeUnauthorized:       http.StatusUnauthorized,
		ErrCodeInvalidCredentials: http.StatusUnauthorized,
		ErrCodeForbidden:          http.StatusUnauthorized,
		ErrCodeBookNotFound:       http.StatusNotFound,
		ErrCodeInternal:           http.StatusInternalServerError,
		ErrCodeDatabaseError:      http.StatusInternalServerError,
		12345:                     http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(code), "code %d", code)
	}
}

func TestGetAppError(t *testing.T) {
	t.Run("普通错误包装为内部错误", func(t *testing.T) {
		appErr := GetAppError(errors.New("connection refused"))
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "Server error", appErr.Message)
		assert.EqualError(t, appErr.Err, "connection refused")
	})

	t.Run("被fmt包装的AppError可以提取", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", ErrBookNotFound)
		appErr := GetAppError(err)
		assert.Same(t, ErrBookNotFound, appErr)
	})
}

func TestAppError_Is(t *testing.T) {
	derived := ErrInvalidCredentials.WithCause(errors.New("bcrypt mismatch"))

	assert.ErrorIs(t, derived, ErrInvalidCredentials)
	assert.NotErrorIs(t, derived, ErrInvalidToken)
	assert.Contains(t, derived.Error(), "bcrypt mismatch")
}
