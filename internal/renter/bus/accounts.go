package bus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Account is a host's ephemeral account as the bus tracks it. Balance and
// drift arrive as JSON numbers that grow into scientific notation, so they
// decode into exact decimals.
type Account struct {
	ID            types.PublicKey `json:"id"`
	CleanShutdown bool            `json:"cleanShutdown"`
	HostKey       types.PublicKey `json:"hostKey"`
	Balance       decimal.Decimal `json:"balance"`
	Drift         decimal.Decimal `json:"drift"`
	RequiresSync  bool            `json:"requiresSync"`
}

// Accounts lists every ephemeral account the bus knows about.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var out []Account
	if err := c.api.Get(ctx, "/bus/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Account fetches the account with id, creating it against hostKey when it
// does not exist yet.
func (c *Client) Account(ctx context.Context, id, hostKey types.PublicKey) (*Account, error) {
	body := struct {
		HostKey types.PublicKey `json:"hostKey"`
	}{HostKey: hostKey}

	var out Account
	if err := c.api.Post(ctx, "/bus/account/"+id.String(), nil, &body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LockAccount locks the account with id on behalf of hostKey for at most
// duration, exclusively when asked. The returned lock id releases it.
func (c *Client) LockAccount(ctx context.Context, id, hostKey types.PublicKey, exclusive bool, duration time.Duration) (*Account, uint64, error) {
	body := struct {
		HostKey   types.PublicKey  `json:"hostKey"`
		Exclusive bool             `json:"exclusive"`
		Duration  types.DurationMS `json:"duration"`
	}{HostKey: hostKey, Exclusive: exclusive, Duration: types.DurationMS(duration)}

	// Lock ids exceed int64, hence uint64 end to end.
	var out struct {
		Account Account `json:"account"`
		LockID  uint64  `json:"lockID"`
	}
	if err := c.api.Post(ctx, "/bus/account/"+id.String()+"/lock", nil, &body, &out); err != nil {
		return nil, 0, err
	}
	return &out.Account, out.LockID, nil
}

// UnlockAccount releases a lock taken by LockAccount.
func (c *Client) UnlockAccount(ctx context.Context, id types.PublicKey, lockID uint64) error {
	body := struct {
		LockID uint64 `json:"lockID"`
	}{LockID: lockID}
	return c.api.Post(ctx, "/bus/account/"+id.String()+"/unlock", nil, &body, nil)
}

// AddBalance deposits amount into the account with id.
func (c *Client) AddBalance(ctx context.Context, id, hostKey types.PublicKey, amount types.Currency) error {
	return c.api.Post(ctx, "/bus/account/"+id.String()+"/add", nil, balanceRequest(hostKey, amount), nil)
}

// UpdateBalance overwrites the balance of the account with id.
func (c *Client) UpdateBalance(ctx context.Context, id, hostKey types.PublicKey, amount types.Currency) error {
	return c.api.Post(ctx, "/bus/account/"+id.String()+"/update", nil, balanceRequest(hostKey, amount), nil)
}

// RequiresSync marks the account as needing a balance sync with its host.
func (c *Client) RequiresSync(ctx context.Context, id, hostKey types.PublicKey) error {
	body := struct {
		HostKey types.PublicKey `json:"hostKey"`
	}{HostKey: hostKey}
	return c.api.Post(ctx, "/bus/account/"+id.String()+"/requiressync", nil, &body, nil)
}

// ResetDrift zeroes the recorded drift of the account with id.
func (c *Client) ResetDrift(ctx context.Context, id types.PublicKey) error {
	return c.api.Post(ctx, "/bus/account/"+id.String()+"/resetdrift", nil, nil, nil)
}

// balanceRequest renders the amount as a bare JSON number, which is what
// the balance endpoints expect even above 64 bits.
func balanceRequest(hostKey types.PublicKey, amount types.Currency) interface{} {
	return struct {
		HostKey types.PublicKey `json:"hostKey"`
		Amount  json.Number     `json:"amount"`
	}{HostKey: hostKey, Amount: json.Number(amount.String())}
}
