package autopilot

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/SiaRi/internal/renter/api"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	transport, err := api.New(api.Options{BaseURL: srv.URL + "/api", Password: "test-password"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = transport.Close() })
	return NewClient(transport)
}

func parseTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, s)
	require.NoError(t, err)
	return ts
}

const configFixture = `{
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
	}
}`

func TestConfig(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/autopilot/config", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(configFixture))
	})
	c := newTestClient(t, r)

	config, err := c.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "autopilot", config.Contracts.Set)
	assert.Equal(t, uint64(300), config.Contracts.Amount)
	assert.Equal(t, "150000000000000000000000000000", config.Contracts.Allowance.String())
	assert.Equal(t, uint64(6048), config.Contracts.Period)
	assert.Equal(t, uint64(2016), config.Contracts.RenewWindow)
	assert.Equal(t, uint64(1000000000000), config.Contracts.Download)
	assert.False(t, config.Contracts.Prune)

	assert.False(t, config.Hosts.AllowRedundantIPs)
	assert.Equal(t, uint64(1440), config.Hosts.MaxDowntimeHours)
	assert.Equal(t, "1.6.0", config.Hosts.MinProtocolVersion)
	assert.Equal(t, uint64(10), config.Hosts.MinRecentScanFailures)
	assert.Nil(t, config.Hosts.ScoreOverrides)
}

func TestUpdateConfig(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/autopilot/config", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(configFixture))
	})
	r.Put("/api/autopilot/config", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, configFixture, string(body))
	})
	c := newTestClient(t, r)

	config, err := c.Config(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.UpdateConfig(context.Background(), *config))
}

func TestState(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/autopilot/state", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{
			"configured": true,
			"migrating": true,
			"migratingLastStart": "2023-09-21T08:31:01Z",
			"pruning": false,
			"pruningLastStart": "2023-09-20T11:09:58Z",
			"scanning": false,
			"scanningLastStart": "2023-09-21T12:09:58Z",
			"uptimeMs": 17297166,
			"startTime": "2023-09-21T08:25:18.542303234Z",
			"network": "Mainnet",
			"version": "v0.5.0-166-gaaf22529",
			"commit": "aaf22529",
			"os": "linux",
			"buildTime": "2023-09-20T14:03:05Z"
		}`))
	})
	c := newTestClient(t, r)

	state, err := c.State(context.Background())
	require.NoError(t, err)
	assert.True(t, state.Configured)
	assert.True(t, state.Migrating)
	assert.Equal(t, parseTime(t, "2023-09-21T08:31:01Z"), state.MigratingLastStart.UTC())
	assert.False(t, state.Pruning)
	assert.Equal(t, parseTime(t, "2023-09-20T11:09:58Z"), state.PruningLastStart.UTC())
	assert.False(t, state.Scanning)
	assert.Equal(t, 17297166*time.Millisecond, state.Uptime.Duration())
	assert.Equal(t, parseTime(t, "2023-09-21T08:25:18.542303234Z"), state.StartTime.UTC())
	assert.Equal(t, "Mainnet", state.Network)
	assert.Equal(t, "aaf22529", state.Commit)
}

func TestTrigger(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/autopilot/trigger", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"forceScan": true}`, string(body))
		w.Write([]byte(`{"triggered": false}`))
	})
	c := newTestClient(t, r)

	triggered, err := c.Trigger(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, triggered)
}
