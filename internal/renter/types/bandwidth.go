package types

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/koustreak/SiaRi/internal/errs"
)

// Bandwidth is a transfer rate in bits per second. The worker stats
// endpoints report rates as megabit-per-second numbers; decoding converts
// them to an exact bit count.
type Bandwidth uint64

// BandwidthFromMbps converts a megabit-per-second reading.
func BandwidthFromMbps(mbps float64) Bandwidth {
	return Bandwidth(math.Round(mbps * 1e6))
}

// Bps returns the rate in bits per second.
func (b Bandwidth) Bps() uint64 {
	return uint64(b)
}

// Mbps returns the rate in megabits per second.
func (b Bandwidth) Mbps() float64 {
	return float64(b) / 1e6
}

// Gbps returns the rate in gigabits per second.
func (b Bandwidth) Gbps() float64 {
	return float64(b) / 1e9
}

func (b Bandwidth) String() string {
	return strconv.FormatFloat(b.Mbps(), 'f', -1, 64) + " Mbps"
}

// MarshalJSON implements json.Marshaler, emitting megabits per second.
func (b Bandwidth) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Mbps())
}

// UnmarshalJSON implements json.Unmarshaler, reading a megabit-per-second
// number in integer or float form.
func (b *Bandwidth) UnmarshalJSON(data []byte) error {
	var mbps float64
	if err := json.Unmarshal(data, &mbps); err != nil {
		return errs.Wrap(errs.ErrKindInvalidData, "bandwidth", err)
	}
	if mbps < 0 {
		return errs.Newf(errs.ErrKindInvalidData, "bandwidth %s: negative rate", string(data))
	}
	*b = BandwidthFromMbps(mbps)
	return nil
}
