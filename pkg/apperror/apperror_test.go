package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewNotFound("user", "jeffri"), http.StatusNotFound},
		{NewInvalidInput("bad birthday", nil), http.StatusBadRequest},
		{NewUnauthorized("bad credentials", nil), http.StatusUnauthorized},
		{NewPermissionDenied("not yours"), http.StatusForbidden},
		{NewConflict("user", "email", "a@b.com"), http.StatusConflict},
		{NewInternal("boom", nil), http.StatusInternalServerError},
		{errors.New("some plain error"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
	}
}

func Test_ErrorsIs_ThroughWrapping(t *testing.T) {
	cause := errors.New("row not found")
	err := NewAppError(ErrNotFound, "user not found", "details", cause)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(wrapped))
}

func Test_ToJSON_OmitsInternals(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewInternal("db down", cause)

	body := err.ToJSON()
	assert.Equal(t, ErrInternal.Error(), body["error"])
	assert.NotContains(t, fmt.Sprint(body["message"]), "connection refused")
}
