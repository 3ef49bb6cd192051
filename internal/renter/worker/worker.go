// Package worker provides the typed client for a renterd daemon's worker
// API: streamed object downloads with range support, streamed uploads and
// the worker's transfer statistics.
package worker

import (
	"context"

	"github.com/koustreak/SiaRi/internal/renter/api"
	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Client accesses the worker API.
type Client struct {
	api *api.Client
}

// NewClient builds a worker client on top of transport.
func NewClient(transport *api.Client) *Client {
	return &Client{api: transport}
}

// State reports the worker's id and the daemon build backing it.
type State struct {
	ID string `json:"id"`
	types.BuildState
}

// MemoryStatus reports one transfer pool's memory, in bytes.
type MemoryStatus struct {
	Available uint64 `json:"available"`
	Total     uint64 `json:"total"`
}

// Memory reports the worker's download and upload memory pools.
type Memory struct {
	Download MemoryStatus `json:"download"`
	Upload   MemoryStatus `json:"upload"`
}

// ID returns the worker's configured id.
func (c *Client) ID(ctx context.Context) (string, error) {
	var out string
	if err := c.api.Get(ctx, "/worker/id", nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

// State returns the worker's state.
func (c *Client) State(ctx context.Context) (*State, error) {
	var out State
	if err := c.api.Get(ctx, "/worker/state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Memory returns the worker's memory pool usage.
func (c *Client) Memory(ctx context.Context) (*Memory, error) {
	var out Memory
	if err := c.api.Get(ctx, "/worker/memory", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
