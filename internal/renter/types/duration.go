package types

import (
	"encoding/json"
	"time"

	"github.com/koustreak/SiaRi/internal/errs"
)

// DurationMS is a time.Duration that travels as an integer count of
// milliseconds. Lock durations and the autopilot uptime use it.
type DurationMS time.Duration

// Duration returns the value as a time.Duration.
func (d DurationMS) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d DurationMS) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Milliseconds())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DurationMS) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return errs.Wrap(errs.ErrKindInvalidData, "millisecond duration", err)
	}
	*d = DurationMS(time.Duration(ms) * time.Millisecond)
	return nil
}

// DurationNS is a time.Duration that travels as an integer count of
// nanoseconds. Price table validities and host uptime counters use it.
type DurationNS time.Duration

// Duration returns the value as a time.Duration.
func (d DurationNS) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d DurationNS) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Nanoseconds())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DurationNS) UnmarshalJSON(data []byte) error {
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return errs.Wrap(errs.ErrKindInvalidData, "nanosecond duration", err)
	}
	*d = DurationNS(ns)
	return nil
}
