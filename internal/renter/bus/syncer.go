package bus

import "context"

// SyncerAddress returns the address the syncer listens on.
func (c *Client) SyncerAddress(ctx context.Context) (string, error) {
	var out string
	if err := c.api.Get(ctx, "/bus/syncer/address", nil, &out); err != nil {
		return "", err
	}
	return out, nil
}

// SyncerPeers returns the addresses of the syncer's connected peers.
func (c *Client) SyncerPeers(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.api.Get(ctx, "/bus/syncer/peers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SyncerConnect tells the syncer to connect to the peer at address.
func (c *Client) SyncerConnect(ctx context.Context, address string) error {
	return c.api.Post(ctx, "/bus/syncer/connect", nil, address, nil)
}
