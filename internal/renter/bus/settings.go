package bus

import (
	"context"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// ContractSetSettings name the contract set uploads go to by default.
type ContractSetSettings struct {
	Default string `json:"default"`
}

// GougingSettings cap what the daemon is willing to pay hosts.
type GougingSettings struct {
	MaxRPCPrice                   types.Currency   `json:"maxRPCPrice"`
	MaxContractPrice              types.Currency   `json:"maxContractPrice"`
	MaxDownloadPrice              types.Currency   `json:"maxDownloadPrice"`
	MaxUploadPrice                types.Currency   `json:"maxUploadPrice"`
	MaxStoragePrice               types.Currency   `json:"maxStoragePrice"`
	HostBlockHeightLeeway         uint32           `json:"hostBlockHeightLeeway"`
	MinPriceTableValidity         types.DurationNS `json:"minPriceTableValidity"`
	MinAccountExpiry              types.DurationNS `json:"minAccountExpiry"`
	MinMaxEphemeralAccountBalance types.Currency   `json:"minMaxEphemeralAccountBalance"`
	MigrationSurchargeMultiplier  uint64           `json:"migrationSurchargeMultiplier"`
}

// RedundancySettings pick the erasure coding parameters for uploads.
type RedundancySettings struct {
	MinShards   uint64 `json:"minShards"`
	TotalShards uint64 `json:"totalShards"`
}

// S3AuthenticationSettings hold the v4 keypairs the S3 gateway accepts,
// access key to secret key.
type S3AuthenticationSettings struct {
	V4Keypairs map[string]string `json:"v4Keypairs"`
}

// UploadPackingSettings toggle packing small objects into shared slabs.
type UploadPackingSettings struct {
	Enabled               bool  `json:"enabled"`
	SlabBufferMaxSizeSoft int64 `json:"slabBufferMaxSizeSoft"`
}

func (c *Client) getSetting(ctx context.Context, key string, out interface{}) error {
	return c.api.Get(ctx, "/bus/setting/"+key, nil, out)
}

func (c *Client) updateSetting(ctx context.Context, key string, settings interface{}) error {
	return c.api.Put(ctx, "/bus/setting/"+key, nil, settings)
}

func (c *Client) deleteSetting(ctx context.Context, key string) error {
	return c.api.Delete(ctx, "/bus/setting/"+key, nil)
}

// ContractSetSettings returns the default contract set setting.
func (c *Client) ContractSetSettings(ctx context.Context) (ContractSetSettings, error) {
	var out ContractSetSettings
	err := c.getSetting(ctx, "contractset", &out)
	return out, err
}

// UpdateContractSetSettings replaces the default contract set setting.
func (c *Client) UpdateContractSetSettings(ctx context.Context, settings ContractSetSettings) error {
	return c.updateSetting(ctx, "contractset", &settings)
}

// DeleteContractSetSettings removes the contract set setting.
func (c *Client) DeleteContractSetSettings(ctx context.Context) error {
	return c.deleteSetting(ctx, "contractset")
}

// GougingSettings returns the gouging settings.
func (c *Client) GougingSettings(ctx context.Context) (GougingSettings, error) {
	var out GougingSettings
	err := c.getSetting(ctx, "gouging", &out)
	return out, err
}

// UpdateGougingSettings replaces the gouging settings.
func (c *Client) UpdateGougingSettings(ctx context.Context, settings GougingSettings) error {
	return c.updateSetting(ctx, "gouging", &settings)
}

// DeleteGougingSettings removes the gouging settings.
func (c *Client) DeleteGougingSettings(ctx context.Context) error {
	return c.deleteSetting(ctx, "gouging")
}

// RedundancySettings returns the redundancy settings.
func (c *Client) RedundancySettings(ctx context.Context) (RedundancySettings, error) {
	var out RedundancySettings
	err := c.getSetting(ctx, "redundancy", &out)
	return out, err
}

// UpdateRedundancySettings replaces the redundancy settings.
func (c *Client) UpdateRedundancySettings(ctx context.Context, settings RedundancySettings) error {
	return c.updateSetting(ctx, "redundancy", &settings)
}

// DeleteRedundancySettings removes the redundancy settings.
func (c *Client) DeleteRedundancySettings(ctx context.Context) error {
	return c.deleteSetting(ctx, "redundancy")
}

// S3AuthenticationSettings returns the S3 gateway keypairs.
func (c *Client) S3AuthenticationSettings(ctx context.Context) (S3AuthenticationSettings, error) {
	var out S3AuthenticationSettings
	err := c.getSetting(ctx, "s3authentication", &out)
	return out, err
}

// UpdateS3AuthenticationSettings replaces the S3 gateway keypairs.
func (c *Client) UpdateS3AuthenticationSettings(ctx context.Context, settings S3AuthenticationSettings) error {
	return c.updateSetting(ctx, "s3authentication", &settings)
}

// DeleteS3AuthenticationSettings removes the S3 gateway keypairs.
func (c *Client) DeleteS3AuthenticationSettings(ctx context.Context) error {
	return c.deleteSetting(ctx, "s3authentication")
}

// UploadPackingSettings returns the upload packing settings.
func (c *Client) UploadPackingSettings(ctx context.Context) (UploadPackingSettings, error) {
	var out UploadPackingSettings
	err := c.getSetting(ctx, "uploadpacking", &out)
	return out, err
}

// UpdateUploadPackingSettings replaces the upload packing settings.
func (c *Client) UpdateUploadPackingSettings(ctx context.Context, settings UploadPackingSettings) error {
	return c.updateSetting(ctx, "uploadpacking", &settings)
}

// DeleteUploadPackingSettings removes the upload packing settings.
func (c *Client) DeleteUploadPackingSettings(ctx context.Context) error {
	return c.deleteSetting(ctx, "uploadpacking")
}
