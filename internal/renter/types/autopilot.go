package types

// AutopilotConfig is the contract-forming and host-scoring policy an
// autopilot runs with. The same shape travels through the bus listing and
// the autopilot config endpoints.
type AutopilotConfig struct {
	Contracts ContractsConfig `json:"contracts"`
	Hosts     HostsConfig     `json:"hosts"`
}

// ContractsConfig governs contract formation. Allowance is hastings for a
// full period, the traffic fields are bytes and the heights are blocks.
type ContractsConfig struct {
	Set         string   `json:"set"`
	Amount      uint64   `json:"amount"`
	Allowance   Currency `json:"allowance"`
	Period      uint64   `json:"period"`
	RenewWindow uint64   `json:"renewWindow"`
	Download    uint64   `json:"download"`
	Upload      uint64   `json:"upload"`
	Storage     uint64   `json:"storage"`
	Prune       bool     `json:"prune"`
}

// HostsConfig governs host selection. ScoreOverrides pins per-host scores
// and may be nil.
type HostsConfig struct {
	AllowRedundantIPs     bool                  `json:"allowRedundantIPs"`
	MaxDowntimeHours      uint64                `json:"maxDowntimeHours"`
	MinProtocolVersion    string                `json:"minProtocolVersion"`
	MinRecentScanFailures uint64                `json:"minRecentScanFailures"`
	ScoreOverrides        map[PublicKey]float64 `json:"scoreOverrides"`
}
