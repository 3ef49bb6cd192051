// Package autopilot provides the typed client for a renterd daemon's
// autopilot API: the contract-forming policy, the loop state and the
// manual trigger.
package autopilot

import (
	"context"
	"time"

	"github.com/koustreak/SiaRi/internal/renter/api"
	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Client accesses the autopilot API.
type Client struct {
	api *api.Client
}

// NewClient builds an autopilot client on top of transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

// State reports what the autopilot loops are doing and the daemon build
// backing them.
type State struct {
	Configured         bool             `json:"configured"`
	Migrating          bool             `json:"migrating"`
	MigratingLastStart time.Time        `json:"migratingLastStart"`
	Pruning            bool             `json:"pruning"`
	PruningLastStart   time.Time        `json:"pruningLastStart"`
	Scanning           bool             `json:"scanning"`
	ScanningLastStart  time.Time        `json:"scanningLastStart"`
	Uptime             types.DurationMS `json:"uptimeMs"`
	types.BuildState
}

// Config returns the autopilot's configuration.
func (c *Client) Config(ctx context.Context) (*types.AutopilotConfig, error) {
	var out types.AutopilotConfig
	if err := c.api.Get(ctx, "/autopilot/config", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateConfig replaces the autopilot's configuration.
func (c *Client) UpdateConfig(ctx context.Context, config types.AutopilotConfig) error {
	return c.api.Put(ctx, "/autopilot/config", nil, &config)
}

// State returns the autopilot's state.
func (c *Client) State(ctx context.Context) (*State, error) {
	var out State
	if err := c.api.Get(ctx, "/autopilot/state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type triggerRequest struct {
	ForceScan bool `json:"forceScan"`
}

type triggerResponse struct {
	Triggered bool `json:"triggered"`
}

// Trigger kicks the autopilot's main loop. With forceScan set the next
// iteration rescans all hosts. The result reports whether a new iteration
// actually started.
func (c *Client) Trigger(ctx context.Context, forceScan bool) (bool, error) {
	var out triggerResponse
	if err := c.api.Post(ctx, "/autopilot/trigger", nil, &triggerRequest{ForceScan: forceScan}, &out); err != nil {
		return false, err
	}
	return out.Triggered, nil
}
