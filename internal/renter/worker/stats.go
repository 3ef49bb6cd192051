package worker

import (
	"context"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// DownloadStats reports the worker's download performance.
type DownloadStats struct {
	AvgDownloadSpeed   types.Bandwidth       `json:"avgDownloadSpeedMbps"`
	AvgOverdrive       types.WholePercentage `json:"avgOverdrivePct"`
	HealthyDownloaders uint64                `json:"healthyDownloaders"`
	NumDownloaders     uint64                `json:"numDownloaders"`
	Downloaders        []DownloaderStats     `json:"downloadersStats"`
}

// DownloaderStats reports one host's share of the download work.
type DownloaderStats struct {
	AvgSectorDownloadSpeed types.Bandwidth `json:"avgSectorDownloadSpeedMbps"`
	HostKey                types.PublicKey `json:"hostKey"`
	NumDownloads           uint64          `json:"numDownloads"`
}

// UploadStats reports the worker's upload performance.
type UploadStats struct {
	AvgUploadSpeed   types.Bandwidth       `json:"avgSlabUploadSpeedMbps"`
	AvgOverdrive     types.WholePercentage `json:"avgOverdrivePct"`
	HealthyUploaders uint64                `json:"healthyUploaders"`
	NumUploaders     uint64                `json:"numUploaders"`
	Uploaders        []UploaderStats       `json:"uploadersStats"`
}

// UploaderStats reports one host's share of the upload work.
type UploaderStats struct {
	AvgSectorUploadSpeed types.Bandwidth `json:"avgSectorUploadSpeedMbps"`
	HostKey              types.PublicKey `json:"hostKey"`
}

// DownloadStats returns the worker's download statistics.
func (c *Client) DownloadStats(ctx context.Context) (*DownloadStats, error) {
	var out DownloadStats
	if err := c.api.Get(ctx, "/worker/stats/downloads", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadStats returns the worker's upload statistics.
func (c *Client) UploadStats(ctx context.Context) (*UploadStats, error) {
	var out UploadStats
	if err := c.api.Get(ctx, "/worker/stats/uploads", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
