package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrKindNotFound, "no object at /foo"),
			want: "[not_found] no object at /foo",
		},
		{
			name: "with cause",
			err:  Wrap(ErrKindConnectionFailed, "dial bus API", errors.New("connection refused")),
			want: "[connection_failed] dial bus API: connection refused",
		},
		{
			name: "http status",
			err:  NewHTTP(500, "internal error"),
			want: "[http_error] server responded with status 500: internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"auth failed", New(ErrKindAuthFailed, "bad password"), IsAuthFailed, true},
		{"not found", New(ErrKindNotFound, "missing"), IsNotFound, true},
		{"not seekable", New(ErrKindNotSeekable, "no ranges"), IsNotSeekable, true},
		{"unsupported", New(ErrKindUnsupported, "no presign"), IsUnsupported, true},
		{"wrapped once more", fmt.Errorf("outer: %w", New(ErrKindTimeout, "deadline")), IsTimeout, true},
		{"kind mismatch", New(ErrKindInvalidData, "bad json"), IsNotFound, false},
		{"plain error", errors.New("plain"), IsInvalidData, false},
		{"nil", nil, IsHTTPError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestStatusOf(t *testing.T) {
	err := NewHTTP(503, "try again later")
	require.Equal(t, 503, StatusOf(err))
	require.Equal(t, 503, StatusOf(fmt.Errorf("request failed: %w", err)))
	require.Zero(t, StatusOf(New(ErrKindInvalidInput, "empty path")))
	require.Zero(t, StatusOf(errors.New("plain")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrKindHTTPError, "request failed", cause)
	require.ErrorIs(t, err, cause)
}
