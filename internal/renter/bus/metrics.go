package bus

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// ContractMetric samples one contract's finances at a point in time.
type ContractMetric struct {
	Timestamp           time.Time            `json:"timestamp"`
	ContractID          types.FileContractID `json:"contractID"`
	HostKey             types.PublicKey      `json:"hostKey"`
	RemainingCollateral types.Currency       `json:"remainingCollateral"`
	RemainingFunds      types.Currency       `json:"remainingFunds"`
	RevisionNumber      uint64               `json:"revisionNumber"`
	UploadSpending      types.Currency       `json:"uploadSpending"`
	DownloadSpending    types.Currency       `json:"downloadSpending"`
	FundAccountSpending types.Currency       `json:"fundAccountSpending"`
	DeleteSpending      types.Currency       `json:"deleteSpending"`
	ListSpending        types.Currency       `json:"listSpending"`
}

// ChurnMetric records one contract entering or leaving a contract set.
// Reason is empty when none was recorded.
type ChurnMetric struct {
	Direction  string               `json:"direction"`
	ContractID types.FileContractID `json:"contractID"`
	Name       string               `json:"name"`
	Reason     string               `json:"reason"`
	Timestamp  time.Time            `json:"timestamp"`
}

// ContractSetMetric samples the size of a contract set.
type ContractSetMetric struct {
	Contracts int64     `json:"contracts"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// ContractPruneMetric records one pruning pass against a contract.
type ContractPruneMetric struct {
	Timestamp   time.Time            `json:"timestamp"`
	ContractID  types.FileContractID `json:"contractID"`
	HostKey     types.PublicKey      `json:"hostKey"`
	HostVersion string               `json:"hostVersion"`
	Pruned      uint64               `json:"pruned"`
	Remaining   uint64               `json:"remaining"`
	Duration    types.DurationNS     `json:"duration"`
}

// WalletMetric samples the wallet's balances at a point in time.
type WalletMetric struct {
	Timestamp   time.Time      `json:"timestamp"`
	Confirmed   types.Currency `json:"confirmed"`
	Spendable   types.Currency `json:"spendable"`
	Unconfirmed types.Currency `json:"unconfirmed"`
}

// ContractMetricsOptions filter contract metrics. Zero values are omitted.
type ContractMetricsOptions struct {
	ContractID types.FileContractID
	HostKey    types.PublicKey
}

// ChurnMetricsOptions filter churn metrics. Zero values are omitted.
type ChurnMetricsOptions struct {
	Name      string
	Direction string
	Reason    string
}

// ContractPruneMetricsOptions filter prune metrics. Zero values are omitted.
type ContractPruneMetricsOptions struct {
	ContractID  types.FileContractID
	HostKey     types.PublicKey
	HostVersion string
}

// metricsQuery carries the window every metric listing shares: n buckets of
// interval length starting at start.
func metricsQuery(start time.Time, n int, interval time.Duration) url.Values {
	query := url.Values{}
	query.Set("start", start.Format(time.RFC3339Nano))
	query.Set("interval", strconv.FormatInt(interval.Milliseconds(), 10))
	query.Set("n", strconv.Itoa(n))
	return query
}

// ContractMetrics returns contract metrics for the requested window.
func (c *Client) ContractMetrics(ctx context.Context, start time.Time, n int, interval time.Duration, opts ContractMetricsOptions) ([]ContractMetric, error) {
	query := metricsQuery(start, n, interval)
	var zeroID types.FileContractID
	if opts.ContractID != zeroID {
		query.Set("contractID", opts.ContractID.String())
	}
	var zeroKey types.PublicKey
	if opts.HostKey != zeroKey {
		query.Set("hostKey", opts.HostKey.String())
	}
	var out []ContractMetric
	if err := c.api.Get(ctx, "/bus/metric/contract", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ChurnMetrics returns contract set churn metrics for the requested window.
func (c *Client) ChurnMetrics(ctx context.Context, start time.Time, n int, interval time.Duration, opts ChurnMetricsOptions) ([]ChurnMetric, error) {
	query := metricsQuery(start, n, interval)
	if opts.Name != "" {
		query.Set("name", opts.Name)
	}
	if opts.Direction != "" {
		query.Set("direction", opts.Direction)
	}
	if opts.Reason != "" {
		query.Set("reason", opts.Reason)
	}
	var out []ChurnMetric
	if err := c.api.Get(ctx, "/bus/metric/churn", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractSetMetrics returns contract set size metrics for the requested
// window, optionally for one set only.
func (c *Client) ContractSetMetrics(ctx context.Context, start time.Time, n int, interval time.Duration, name string) ([]ContractSetMetric, error) {
	query := metricsQuery(start, n, interval)
	if name != "" {
		query.Set("name", name)
	}
	var out []ContractSetMetric
	if err := c.api.Get(ctx, "/bus/metric/contractset", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractPruneMetrics returns pruning metrics for the requested window.
func (c *Client) ContractPruneMetrics(ctx context.Context, start time.Time, n int, interval time.Duration, opts ContractPruneMetricsOptions) ([]ContractPruneMetric, error) {
	query := metricsQuery(start, n, interval)
	var zeroID types.FileContractID
	if opts.ContractID != zeroID {
		query.Set("contractID", opts.ContractID.String())
	}
	var zeroKey types.PublicKey
	if opts.HostKey != zeroKey {
		query.Set("hostKey", opts.HostKey.String())
	}
	if opts.HostVersion != "" {
		query.Set("hostVersion", opts.HostVersion)
	}
	var out []ContractPruneMetric
	if err := c.api.Get(ctx, "/bus/metric/contractprune", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContractPruneMetrics drops prune metrics recorded before cutoff.
func (c *Client) DeleteContractPruneMetrics(ctx context.Context, cutoff time.Time) error {
	query := url.Values{}
	query.Set("cutoff", cutoff.Format(time.RFC3339Nano))
	return c.api.Delete(ctx, "/bus/metric/contractprune", query)
}

// WalletMetrics returns wallet balance metrics for the requested window.
func (c *Client) WalletMetrics(ctx context.Context, start time.Time, n int, interval time.Duration) ([]WalletMetric, error) {
	var out []WalletMetric
	if err := c.api.Get(ctx, "/bus/metric/wallet", metricsQuery(start, n, interval), &out); err != nil {
		return nil, err
	}
	return out, nil
}
