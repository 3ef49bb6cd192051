package bus

import (
	"context"
	"net/url"

	"github.com/shopspring/decimal"
)

// ObjectsStats summarizes the object store. MinHealth is the health of the
// worst-off object.
type ObjectsStats struct {
	NumObjects                 uint64          `json:"numObjects"`
	NumUnfinishedObjects       uint64          `json:"numUnfinishedObjects"`
	MinHealth                  decimal.Decimal `json:"minHealth"`
	TotalObjectsSize           uint64          `json:"totalObjectsSize"`
	TotalUnfinishedObjectsSize uint64          `json:"totalUnfinishedObjectsSize"`
	TotalSectorsSize           uint64          `json:"totalSectorsSize"`
	TotalUploadedSize          uint64          `json:"totalUploadedSize"`
}

// ObjectsStats returns object store statistics, for one bucket or all of
// them when bucket is empty.
func (c *Client) ObjectsStats(ctx context.Context, bucket string) (*ObjectsStats, error) {
	query := url.Values{}
	if bucket != "" {
		query.Set("bucket", bucket)
	}
	var out ObjectsStats
	if err := c.api.Get(ctx, "/bus/stats/objects", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
