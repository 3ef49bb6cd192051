package bus

import (
	"context"
	"time"
)

// ConsensusState reports how far the daemon's view of the chain has come.
type ConsensusState struct {
	BlockHeight   uint64    `json:"blockHeight"`
	LastBlockTime time.Time `json:"lastBlockTime"`
	Synced        bool      `json:"synced"`
}

// ConsensusState returns the current consensus state.
func (c *Client) ConsensusState(ctx context.Context) (*ConsensusState, error) {
	var out ConsensusState
	if err := c.api.Get(ctx, "/bus/consensus/state", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
