package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err  error
		cat  Category
		code int
	}{
		{BadRequestError(cause, "bad"), CategoryDataError, http.StatusBadRequest},
		{UnAuthorizedError(cause, "who"), CategoryUnauthorized, http.StatusUnauthorized},
		{ForbiddenError(cause, "no"), CategoryForbidden, http.StatusForbidden},
		{ResourceNotFoundError(cause, "gone"), CategoryResourceNotFound, http.StatusNotFound},
		{TooManyRequestsError(cause, "wait", time.Minute), CategoryTooManyRequests, http.StatusTooManyRequests},
		{DependencyError(cause, "node"), CategoryDependencyFailure, http.StatusBadGateway},
		{TimeoutError(cause, "slow"), CategoryConnectionTimeout, http.StatusGatewayTimeout},
		{GeneralError(cause), CategoryGeneralError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			var svcErr *ServiceError
			require.True(t, errors.As(tt.err, &svcErr))
			assert.Equal(t, tt.code, svcErr.StatusCode())
			assert.True(t, Is(tt.err, tt.cat))
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}

func TestIsInternalError(t *testing.T) {
	assert.False(t, IsInternalError(BadRequestError(nil, "bad")))
	assert.False(t, IsInternalError(TooManyRequestsError(nil, "wait", time.Second)))
	assert.True(t, IsInternalError(DependencyError(nil, "node")))
	assert.True(t, IsInternalError(GeneralError(nil)))
	assert.True(t, IsInternalError(errors.New("plain")))
}

func TestIs_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("claim: %w", ResourceNotFoundError(nil, "missing"))
	assert.True(t, Is(err, CategoryResourceNotFound))
	assert.False(t, Is(err, CategoryDataError))
}

func TestAsPlainText(t *testing.T) {
	orig := BadRequestError(nil, "Username is required")
	plain := AsPlainText(orig)

	var svcErr *ServiceError
	require.True(t, errors.As(plain, &svcErr))
	assert.True(t, svcErr.PlainText)
	assert.Equal(t, "Username is required", svcErr.Message)

	// The original is left untouched.
	require.True(t, errors.As(orig, &svcErr))
	assert.False(t, svcErr.PlainText)

	other := errors.New("plain")
	assert.Same(t, other, AsPlainText(other))
}

func TestTooManyRequestsError_RetryAfter(t *testing.T) {
	var svcErr *ServiceError
	require.True(t, errors.As(TooManyRequestsError(nil, "wait", 90*time.Second), &svcErr))
	assert.Equal(t, 90*time.Second, svcErr.RetryAfter)
	assert.Equal(t, "too many requests", svcErr.Error())
}
