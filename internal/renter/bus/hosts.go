package bus

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Host is everything the bus knows about one storage host. Subnets is nil
// when the daemon has not resolved any.
type Host struct {
	KnownSince       time.Time            `json:"knownSince"`
	LastAnnouncement time.Time            `json:"lastAnnouncement"`
	PublicKey        types.PublicKey      `json:"publicKey"`
	NetAddress       string               `json:"netAddress"`
	PriceTable       HostPriceTable       `json:"priceTable"`
	Settings         HostSettings         `json:"settings"`
	Interactions     HostInteractions     `json:"interactions"`
	Scanned          bool                 `json:"scanned"`
	Blocked          bool                 `json:"blocked"`
	Checks           map[string]HostCheck `json:"checks"`
	StoredData       uint64               `json:"storedData"`
	Subnets          []string             `json:"subnets"`
}

// HostAddress pairs a host key with its announced network address.
type HostAddress struct {
	PublicKey  types.PublicKey `json:"publicKey"`
	NetAddress string          `json:"netAddress"`
}

// HostPriceTable is the RHPv3 price table a host handed out. The keys on
// the wire are all lowercase, matching the host protocol.
type HostPriceTable struct {
	UID                          types.SettingsID `json:"uid"`
	Validity                     types.DurationNS `json:"validity"`
	HostBlockHeight              uint64           `json:"hostblockheight"`
	UpdatePriceTableCost         types.Currency   `json:"updatepricetablecost"`
	AccountBalanceCost           types.Currency   `json:"accountbalancecost"`
	FundAccountCost              types.Currency   `json:"fundaccountcost"`
	LatestRevisionCost           types.Currency   `json:"latestrevisioncost"`
	SubscriptionMemoryCost       types.Currency   `json:"subscriptionmemorycost"`
	SubscriptionNotificationCost types.Currency   `json:"subscriptionnotificationcost"`
	InitBaseCost                 types.Currency   `json:"initbasecost"`
	MemoryTimeCost               types.Currency   `json:"memorytimecost"`
	DownloadBandwidthCost        types.Currency   `json:"downloadbandwidthcost"`
	UploadBandwidthCost          types.Currency   `json:"uploadbandwidthcost"`
	DropSectorsBaseCost          types.Currency   `json:"dropsectorsbasecost"`
	DropSectorsUnitCost          types.Currency   `json:"dropsectorsunitcost"`
	HasSectorBaseCost            types.Currency   `json:"hassectorbasecost"`
	ReadBaseCost                 types.Currency   `json:"readbasecost"`
	ReadLengthCost               types.Currency   `json:"readlengthcost"`
	RenewContractCost            types.Currency   `json:"renewcontractcost"`
	RevisionBaseCost             types.Currency   `json:"revisionbasecost"`
	SwapSectorCost               types.Currency   `json:"swapsectorcost"`
	WriteBaseCost                types.Currency   `json:"writebasecost"`
	WriteLengthCost              types.Currency   `json:"writelengthcost"`
	WriteStoreCost               types.Currency   `json:"writestorecost"`
	TxnFeeMinRecommended         types.Currency   `json:"txnfeeminrecommended"`
	TxnFeeMaxRecommended         types.Currency   `json:"txnfeemaxrecommended"`
	ContractPrice                types.Currency   `json:"contractprice"`
	CollateralCost               types.Currency   `json:"collateralcost"`
	MaxCollateral                types.Currency   `json:"maxcollateral"`
	MaxDuration                  uint64           `json:"maxduration"`
	WindowSize                   uint64           `json:"windowsize"`
	RegistryEntriesLeft          uint64           `json:"registryentriesleft"`
	RegistryEntriesTotal         uint64           `json:"registryentriestotal"`
	Expiry                       time.Time        `json:"expiry"`
}

// HostSettings is the RHPv2 settings blob a host announced.
type HostSettings struct {
	AcceptingContracts         bool             `json:"acceptingcontracts"`
	MaxDownloadBatchSize       uint64           `json:"maxdownloadbatchsize"`
	MaxDuration                uint64           `json:"maxduration"`
	MaxReviseBatchSize         uint64           `json:"maxrevisebatchsize"`
	NetAddress                 string           `json:"netaddress"`
	RemainingStorage           uint64           `json:"remainingstorage"`
	SectorSize                 uint64           `json:"sectorsize"`
	TotalStorage               uint64           `json:"totalstorage"`
	Address                    string           `json:"unlockhash"`
	WindowSize                 uint64           `json:"windowsize"`
	Collateral                 types.Currency   `json:"collateral"`
	MaxCollateral              types.Currency   `json:"maxcollateral"`
	BaseRPCPrice               types.Currency   `json:"baserpcprice"`
	ContractPrice              types.Currency   `json:"contractprice"`
	DownloadBandwidthPrice     types.Currency   `json:"downloadbandwidthprice"`
	SectorAccessPrice          types.Currency   `json:"sectoraccessprice"`
	StoragePrice               types.Currency   `json:"storageprice"`
	UploadBandwidthPrice       types.Currency   `json:"uploadbandwidthprice"`
	EphemeralAccountExpiry     types.DurationNS `json:"ephemeralaccountexpiry"`
	MaxEphemeralAccountBalance types.Currency   `json:"maxephemeralaccountbalance"`
	RevisionNumber             uint64           `json:"revisionnumber"`
	Version                    string           `json:"version"`
	Release                    string           `json:"release"`
	SiaMuxPort                 string           `json:"siamuxport"`
}

// HostInteractions tallies the daemon's history with a host.
type HostInteractions struct {
	TotalScans              uint64           `json:"totalScans"`
	LastScan                time.Time        `json:"lastScan"`
	LastScanSuccess         bool             `json:"lastScanSuccess"`
	LostSectors             uint64           `json:"lostSectors"`
	SecondToLastScanSuccess bool             `json:"secondToLastScanSuccess"`
	Uptime                  types.DurationNS `json:"uptime"`
	Downtime                types.DurationNS `json:"downtime"`
	SuccessfulInteractions  uint64           `json:"successfulInteractions"`
	FailedInteractions      uint64           `json:"failedInteractions"`
}

// HostCheck is one autopilot's verdict on a host, keyed by autopilot id in
// Host.Checks.
type HostCheck struct {
	Gouging   HostGougingBreakdown   `json:"gouging"`
	Score     HostScoreBreakdown     `json:"score"`
	Usability HostUsabilityBreakdown `json:"usability"`
}

// HostGougingBreakdown lists per-operation gouging complaints. An empty
// string means the check passed.
type HostGougingBreakdown struct {
	ContractErr string `json:"contractErr"`
	DownloadErr string `json:"downloadErr"`
	GougingErr  string `json:"gougingErr"`
	PruneErr    string `json:"pruneErr"`
	UploadErr   string `json:"uploadErr"`
}

// HostScoreBreakdown splits a host's score into its factors.
type HostScoreBreakdown struct {
	Age              decimal.Decimal `json:"age"`
	Collateral       decimal.Decimal `json:"collateral"`
	Interactions     decimal.Decimal `json:"interactions"`
	StorageRemaining decimal.Decimal `json:"storageRemaining"`
	Uptime           decimal.Decimal `json:"uptime"`
	Version          decimal.Decimal `json:"version"`
	Prices           decimal.Decimal `json:"prices"`
}

// HostUsabilityBreakdown flags the reasons a host is not usable.
type HostUsabilityBreakdown struct {
	Blocked               bool `json:"blocked"`
	Offline               bool `json:"offline"`
	LowScore              bool `json:"lowScore"`
	RedundantIP           bool `json:"redundantIP"`
	Gouging               bool `json:"gouging"`
	NotAcceptingContracts bool `json:"notAcceptingContracts"`
	NotAnnounced          bool `json:"notAnnounced"`
	NotCompletingScan     bool `json:"notCompletingScan"`
}

// HostsOptions narrow a Hosts listing. Zero values are omitted.
type HostsOptions struct {
	Offset int
	Limit  int
}

// Hosts lists known hosts.
func (c *Client) Hosts(ctx context.Context, opts HostsOptions) ([]Host, error) {
	query := url.Values{}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	var out []Host
	if err := c.api.Get(ctx, "/bus/hosts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Host fetches a host by public key.
func (c *Client) Host(ctx context.Context, hostKey types.PublicKey) (*Host, error) {
	var out Host
	if err := c.api.Get(ctx, "/bus/host/"+hostKey.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HostAllowlist returns the allowlisted host keys.
func (c *Client) HostAllowlist(ctx context.Context) ([]types.PublicKey, error) {
	var out []types.PublicKey
	if err := c.api.Get(ctx, "/bus/hosts/allowlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHostAllowlist adds and removes host keys from the allowlist, or
// wipes it entirely when clear is set.
func (c *Client) UpdateHostAllowlist(ctx context.Context, add, remove []types.PublicKey, clear bool) error {
	if add == nil {
		add = []types.PublicKey{}
	}
	if remove == nil {
		remove = []types.PublicKey{}
	}
	body := struct {
		Add    []types.PublicKey `json:"add"`
		Remove []types.PublicKey `json:"remove"`
		Clear  bool              `json:"clear"`
	}{Add: add, Remove: remove, Clear: clear}
	return c.api.Put(ctx, "/bus/hosts/allowlist", nil, &body)
}

// HostBlocklist returns the blocklisted host addresses.
func (c *Client) HostBlocklist(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.api.Get(ctx, "/bus/hosts/blocklist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHostBlocklist adds and removes addresses from the blocklist, or
// wipes it entirely when clear is set.
func (c *Client) UpdateHostBlocklist(ctx context.Context, add, remove []string, clear bool) error {
	if add == nil {
		add = []string{}
	}
	if remove == nil {
		remove = []string{}
	}
	body := struct {
		Add    []string `json:"add"`
		Remove []string `json:"remove"`
		Clear  bool     `json:"clear"`
	}{Add: add, Remove: remove, Clear: clear}
	return c.api.Put(ctx, "/bus/hosts/blocklist", nil, &body)
}

// RemoveOfflineHosts drops hosts that failed at least minRecentScanFailures
// scans and have been down for maxDowntimeHours, reporting how many were
// removed.
func (c *Client) RemoveOfflineHosts(ctx context.Context, minRecentScanFailures, maxDowntimeHours uint64) (uint64, error) {
	body := struct {
		MinRecentScanFailures uint64 `json:"minRecentScanFailures"`
		MaxDowntimeHours      uint64 `json:"maxDowntimeHours"`
	}{MinRecentScanFailures: minRecentScanFailures, MaxDowntimeHours: maxDowntimeHours}

	var removed uint64
	if err := c.api.Post(ctx, "/bus/hosts/remove", nil, &body, &removed); err != nil {
		return 0, err
	}
	return removed, nil
}

// ScanningOptions narrow a HostsScanning listing. Zero values are omitted.
type ScanningOptions struct {
	Offset   int
	Limit    int
	LastScan time.Time
}

// HostsScanning lists hosts due for a scan, oldest scan first.
func (c *Client) HostsScanning(ctx context.Context, opts ScanningOptions) ([]HostAddress, error) {
	query := url.Values{}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if !opts.LastScan.IsZero() {
		query.Set("lastScan", opts.LastScan.Format(time.RFC3339Nano))
	}
	var out []HostAddress
	if err := c.api.Get(ctx, "/bus/hosts/scanning", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ResetLostSectors resets the lost sector count recorded for a host.
func (c *Client) ResetLostSectors(ctx context.Context, hostKey types.PublicKey) error {
	return c.api.Post(ctx, "/bus/host/"+hostKey.String()+"/resetlostsectors", nil, nil, nil)
}
