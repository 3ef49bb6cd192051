package bus

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Severity classifies an alert.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Alert is a condition the daemon wants an operator to see. Data carries
// free-form context such as the contract or host the alert concerns.
type Alert struct {
	ID        types.Hash256          `json:"id"`
	Severity  Severity               `json:"severity"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
}

// AlertTotals counts registered alerts per severity.
type AlertTotals struct {
	Info     uint64 `json:"info"`
	Warning  uint64 `json:"warning"`
	Error    uint64 `json:"error"`
	Critical uint64 `json:"critical"`
}

// AlertsOptions narrow an Alerts listing. Zero values are omitted.
type AlertsOptions struct {
	Offset int
	Limit  int
}

// AlertsResponse is one page of alerts.
type AlertsResponse struct {
	Alerts  []Alert     `json:"alerts"`
	HasMore bool        `json:"hasMore"`
	Totals  AlertTotals `json:"totals"`
}

// Alerts returns registered alerts, newest first. A nil alert list from the
// daemon comes back as an empty slice.
func (c *Client) Alerts(ctx context.Context, opts AlertsOptions) (AlertsResponse, error) {
	query := url.Values{}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	var out AlertsResponse
	if err := c.api.Get(ctx, "/bus/alerts", query, &out); err != nil {
		return AlertsResponse{}, err
	}
	if out.Alerts == nil {
		out.Alerts = []Alert{}
	}
	return out, nil
}

// DismissAlerts dismisses the alerts with the given ids. With no ids it
// dismisses everything.
func (c *Client) DismissAlerts(ctx context.Context, ids ...types.Hash256) error {
	if len(ids) == 0 {
		query := url.Values{}
		query.Set("all", "true")
		return c.api.Post(ctx, "/bus/alerts/dismiss", query, nil, nil)
	}
	return c.api.Post(ctx, "/bus/alerts/dismiss", nil, ids, nil)
}

// RegisterAlert registers alert with the daemon.
func (c *Client) RegisterAlert(ctx context.Context, alert Alert) error {
	return c.api.Post(ctx, "/bus/alerts/register", nil, &alert, nil)
}
