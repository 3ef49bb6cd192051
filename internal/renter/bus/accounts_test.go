package bus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/SiaRi/internal/renter/types"
)

// decodeBody parses a request body without converting numbers to float64,
// so tests can tell bare numbers from strings and keep 64-bit precision.
func decodeBody(t *testing.T, req *http.Request) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(req.Body)
	dec.UseNumber()
	var body map[string]interface{}
	require.NoError(t, dec.Decode(&body))
	return body
}

func mustPublicKey(t *testing.T, s string) types.PublicKey {
	t.Helper()
	var pk types.PublicKey
	require.NoError(t, pk.UnmarshalText([]byte(s)))
	return pk
}

const (
	testAccountID = "ed25519:99611c808ccb74402f0c80ea0b22cefe3b46a73abe1072c90687658d44dead75"
	testHostKey   = "ed25519:0c920d0254011f1065eeb99aa909c644b991780c1155ce0aa34cce09e6eabdc9"
)

func TestAccounts(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/bus/accounts", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`[
			{
				"id": "ed25519:99611c808ccb74402f0c80ea0b22cefe3b46a73abe1072c90687658d44dead75",
				"hostKey": "ed25519:0c920d0254011f1065eeb99aa909c644b991780c1155ce0aa34cce09e6eabdc9",
				"balance": 1e+24,
				"drift": 1e+24,
				"requiresSync": false,
				"cleanShutdown": true
			},
			{
				"id": "ed25519:ac4c45c00fec02272f6f63aa015606d7fdd7a6c91669b6bb06930796d68ea293",
				"hostKey": "ed25519:70b75b1acff1f80f9ace0c048ce8651586254e23d19ba405dc6f226e81d08ca2",
				"balance": 9.353633845598274e+23,
				"drift": 9.3538858455984e+23,
				"requiresSync": false,
				"cleanShutdown": false
			},
			{
				"id": "ed25519:24c36bd8c237827a467d06ba616df3fa9a22e111c33f4803059f80719f22efc0",
				"hostKey": "ed25519:fe9cee676b1a6c92ebe430e88f10bd97fef7bf444d8519b5f23a34cee808447b",
				"balance": 5.7933767945738696e+23,
				"drift": 5.7947627945745646e+23,
				"requiresSync": false,
				"cleanShutdown": true
			}
		]`))
	})
	c := newTestClient(t, r)

	accounts, err := c.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	assert.Equal(t, mustPublicKey(t, testAccountID), accounts[0].ID)
	assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("1e+24")),
		"balance %s", accounts[0].Balance)
	assert.False(t, accounts[0].RequiresSync)
	assert.True(t, accounts[0].CleanShutdown)

	assert.Equal(t,
		mustPublicKey(t, "ed25519:fe9cee676b1a6c92ebe430e88f10bd97fef7bf444d8519b5f23a34cee808447b"),
		accounts[2].HostKey)
	assert.True(t, accounts[2].Drift.Equal(decimal.RequireFromString("5.7947627945745646e+23")),
		"drift %s", accounts[2].Drift)
}

func TestAccountGetOrAdd(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/bus/account/"+testAccountID, func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		assert.Equal(t, map[string]interface{}{"hostKey": testHostKey}, body)
		w.Write([]byte(`{
			"id": "` + testAccountID + `",
			"hostKey": "` + testHostKey + `",
			"balance": 1e+24,
			"drift": 1e+24,
			"requiresSync": false,
			"cleanShutdown": true
		}`))
	})
	c := newTestClient(t, r)

	account, err := c.Account(context.Background(),
		mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey))
	require.NoError(t, err)
	assert.Equal(t, mustPublicKey(t, testAccountID), account.ID)
	assert.Equal(t, mustPublicKey(t, testHostKey), account.HostKey)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1e+24")))
}

func TestLockAccount(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/bus/account/"+testAccountID+"/lock", func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		assert.Equal(t, map[string]interface{}{
			"hostKey":   testHostKey,
			"exclusive": false,
			"duration":  json.Number("1000"),
		}, body)
		w.Write([]byte(`{
			"account": {
				"id": "` + testAccountID + `",
				"hostKey": "` + testHostKey + `",
				"balance": 1e+24,
				"drift": 1e+24,
				"requiresSync": false,
				"cleanShutdown": true
			},
			"lockID": 13874228167312386000
		}`))
	})
	c := newTestClient(t, r)

	account, lockID, err := c.LockAccount(context.Background(),
		mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey), false, time.Second)
	require.NoError(t, err)
	assert.Equal(t, mustPublicKey(t, testAccountID), account.ID)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("1e+24")))

	// Lock ids use the full uint64 range.
	assert.Equal(t, uint64(13874228167312386000), lockID)
}

func TestUnlockAccount(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/bus/account/"+testAccountID+"/unlock", func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		assert.Equal(t, map[string]interface{}{
			"lockID": json.Number("13874228167312385374"),
		}, body)
	})
	c := newTestClient(t, r)

	err := c.UnlockAccount(context.Background(),
		mustPublicKey(t, testAccountID), 13874228167312385374)
	require.NoError(t, err)
}

func TestBalanceAmountsAreBareNumbers(t *testing.T) {
	// The balance endpoints take the amount as a JSON number even when it
	// does not fit in 64 bits.
	tests := []struct {
		name   string
		path   string
		amount string
		call   func(c *Client, amount types.Currency) error
	}{
		{
			name:   "add",
			path:   "/add",
			amount: "1000000",
			call: func(c *Client, amount types.Currency) error {
				return c.AddBalance(context.Background(),
					mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey), amount)
			},
		},
		{
			name:   "update",
			path:   "/update",
			amount: "22221111",
			call: func(c *Client, amount types.Currency) error {
				return c.UpdateBalance(context.Background(),
					mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey), amount)
			},
		},
		{
			name:   "update beyond uint64",
			path:   "/update",
			amount: "340282366920938463463374607431768211455",
			call: func(c *Client, amount types.Currency) error {
				return c.UpdateBalance(context.Background(),
					mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey), amount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/api/bus/account/"+testAccountID+tt.path, func(w http.ResponseWriter, req *http.Request) {
				body := decodeBody(t, req)
				assert.Equal(t, map[string]interface{}{
					"hostKey": testHostKey,
					"amount":  json.Number(tt.amount),
				}, body)
			})
			c := newTestClient(t, r)

			amount, err := types.ParseCurrency(tt.amount)
			require.NoError(t, err)
			require.NoError(t, tt.call(c, amount))
		})
	}
}

func TestRequiresSync(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/bus/account/"+testAccountID+"/requiressync", func(w http.ResponseWriter, req *http.Request) {
		body := decodeBody(t, req)
		assert.Equal(t, map[string]interface{}{"hostKey": testHostKey}, body)
	})
	c := newTestClient(t, r)

	err := c.RequiresSync(context.Background(),
		mustPublicKey(t, testAccountID), mustPublicKey(t, testHostKey))
	require.NoError(t, err)
}

func TestResetDrift(t *testing.T) {
	var gotBody bool
	r := chi.NewRouter()
	r.Post("/api/bus/account/"+testAccountID+"/resetdrift", func(w http.ResponseWriter, req *http.Request) {
		data, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		gotBody = len(data) > 0
	})
	c := newTestClient(t, r)

	err := c.ResetDrift(context.Background(), mustPublicKey(t, testAccountID))
	require.NoError(t, err)
	assert.False(t, gotBody)
}
