// Package bus provides the typed client for a renterd daemon's bus API:
// object listing and lookup, buckets, accounts, alerts, contracts, hosts,
// settings, wallet state, webhooks and the metric series.
//
// Calls follow one absence convention throughout. Lookups that may
// legitimately miss (an object path, a bucket name) return a nil value
// with a nil error; everything else surfaces a typed not-found error.
package bus

import (
	"context"

	"github.com/koustreak/SiaRi/internal/renter/api"
	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Client accesses the bus API.
type Client struct {
	api *api.Client
}

// NewClient builds a bus client on top of transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

// State reports the daemon build backing the bus.
func (c *Client) State(ctx context.Context) (*types.BuildState, error) {
	var out types.BuildState
	if err := c.api.Get(ctx, "/bus/state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
