// Package renter is the umbrella client for a renterd daemon. It wires the
// bus, worker and autopilot sub-API clients over one shared authenticated
// transport, so a single password and base URL serve all three.
//
// Construct a client from a Config, then reach the sub-APIs through the
// exported fields:
//
//	cli, err := renter.New(renter.DefaultConfig("http://localhost:9980/api", pw))
//	...
//	state, err := cli.Bus.State(ctx)
package renter

import (
	"github.com/koustreak/SiaRi/internal/errs"
	"github.com/koustreak/SiaRi/internal/renter/api"
	"github.com/koustreak/SiaRi/internal/renter/autopilot"
	"github.com/koustreak/SiaRi/internal/renter/bus"
	"github.com/koustreak/SiaRi/internal/renter/worker"
)

// Client bundles the three sub-API clients of one renterd daemon.
type Client struct {
	Bus       *bus.Client
	Worker    *worker.Client
	Autopilot *autopilot.Client

	api *api.Client
}

// New validates cfg and builds the client. All three sub-clients share one
// transport, so closing the client releases every connection at once.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errs.New(errs.ErrKindInvalidInput, "renter config is required")
	}
	transport, err := api.New(api.Options{
		BaseURL:            cfg.APIAddr,
		Password:           cfg.Password,
		Timeout:            cfg.Timeout,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Debug:              cfg.Debug,
		Log:                cfg.Log,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		Bus:       bus.NewClient(transport),
		Worker:    worker.NewClient(transport),
		Autopilot: autopilot.NewClient(transport),
		api:       transport,
	}, nil
}

// Close releases the shared transport's idle connections.
func (c *Client) Close() error {
	return c.api.Close()
}
