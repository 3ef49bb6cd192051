package bus

import (
	"context"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// Autopilot is one autopilot instance registered with the bus.
type Autopilot struct {
	ID            string                `json:"id"`
	Config        types.AutopilotConfig `json:"config"`
	CurrentPeriod uint64                `json:"currentPeriod"`
}

// Autopilots lists the autopilots registered with the bus.
func (c *Client) Autopilots(ctx context.Context) ([]Autopilot, error) {
	var out []Autopilot
	if err := c.api.Get(ctx, "/bus/autopilots", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
