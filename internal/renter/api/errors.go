package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/koustreak/SiaRi/internal/errs"
)

// statusError maps a non-2xx status to the unified error. The body is the
// trimmed text the daemon sent with the status.
func (c *Client) statusError(status int, body string) error {
	if status == http.StatusUnauthorized {
		return errs.New(errs.ErrKindAuthFailed, "API password rejected")
	}
	return errs.NewHTTP(status, strings.TrimSpace(body))
}

// mapTransportErr classifies errors raised before a response arrived.
func mapTransportErr(err error, msg string) error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	case errors.Is(err, context.Canceled):
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	case errors.As(err, &nerr) && nerr.Timeout():
		return errs.Wrap(errs.ErrKindTimeout, msg, err)
	default:
		return errs.Wrap(errs.ErrKindConnectionFailed, msg, err)
	}
}
