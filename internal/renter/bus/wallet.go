package bus

import (
	"context"

	"github.com/shopspring/decimal"
)

// Wallet reports the daemon wallet's address and balances. The balances
// arrive as decimal strings of hastings.
type Wallet struct {
	ScanHeight  uint64          `json:"scanHeight"`
	Address     string          `json:"address"`
	Spendable   decimal.Decimal `json:"spendable"`
	Confirmed   decimal.Decimal `json:"confirmed"`
	Unconfirmed decimal.Decimal `json:"unconfirmed"`
}

// Wallet returns the daemon's wallet state.
func (c *Client) Wallet(ctx context.Context) (*Wallet, error) {
	var out Wallet
	if err := c.api.Get(ctx, "/bus/wallet", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
