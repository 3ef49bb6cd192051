package bus

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutopilots(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/bus/autopilots", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{
				"id": "autopilot",
				"config": {
					"contracts": {
						"set": "autopilot",
						"amount": 300,
						"allowance": "150000000000000000000000000000",
						"period": 6048,
						"renewWindow": 2016,
						"download": 1000000000000,
						"upload": 100000000000000,
						"storage": 101000000000000,
						"prune": false
					},
					"hosts": {
						"allowRedundantIPs": false,
						"maxDowntimeHours": 1440,
						"minProtocolVersion": "1.6.0",
						"minRecentScanFailures": 10,
						"scoreOverrides": null
					},
					"wallet": {
						"defragThreshold": 1000
					}
				},
				"currentPeriod": 428982
			}
		]`))
	})
	c := newTestClient(t, r)

	autopilots, err := c.Autopilots(context.Background())
	require.NoError(t, err)
	require.Len(t, autopilots, 1)

	ap := autopilots[0]
	assert.Equal(t, "autopilot", ap.ID)
	assert.Equal(t, uint64(428982), ap.CurrentPeriod)

	contracts := ap.Config.Contracts
	assert.Equal(t, "autopilot", contracts.Set)
	assert.Equal(t, uint64(300), contracts.Amount)
	assert.Equal(t, "150000000000000000000000000000", contracts.Allowance.String())
	assert.Equal(t, uint64(6048), contracts.Period)
	assert.Equal(t, uint64(2016), contracts.RenewWindow)
	assert.False(t, contracts.Prune)

	hosts := ap.Config.Hosts
	assert.False(t, hosts.AllowRedundantIPs)
	assert.Equal(t, uint64(1440), hosts.MaxDowntimeHours)
	assert.Equal(t, "1.6.0", hosts.MinProtocolVersion)
	assert.Equal(t, uint64(10), hosts.MinRecentScanFailures)
	assert.Nil(t, hosts.ScoreOverrides)
}
