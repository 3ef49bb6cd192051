package types

import "time"

// BuildState describes the daemon build. The bus, worker and autopilot
// state endpoints all report it alongside their own fields.
type BuildState struct {
	StartTime time.Time `json:"startTime"`
	Network   string    `json:"network"`
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	OS        string    `json:"os"`
	BuildTime time.Time `json:"buildTime"`
}
