package bus

import (
	"context"
	"encoding/json"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// RecommendedFee returns the recommended transaction fee in hastings per
// byte.
func (c *Client) RecommendedFee(ctx context.Context) (types.Currency, error) {
	var out types.Currency
	if err := c.api.Get(ctx, "/bus/txpool/recommendedfee", nil, &out); err != nil {
		return types.Currency{}, err
	}
	return out, nil
}

// TxpoolTransactions returns the raw transactions sitting in the pool.
func (c *Client) TxpoolTransactions(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	if err := c.api.Get(ctx, "/bus/txpool/transactions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
