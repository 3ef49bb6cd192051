package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koustreak/SiaRi/internal/errs"
)

func TestCurrencyDecode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"quoted string", `"150000000000000000000000000000"`, "150000000000000000000000000000", false},
		{"bare number", `1000000`, "1000000", false},
		{"number above int64", `18446744073709551615`, "18446744073709551615", false},
		{"zero", `"0"`, "0", false},
		{"negative", `"-5"`, "", true},
		{"fractional", `1.5`, "", true},
		{"garbage", `"12three"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Currency
			err := json.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsInvalidData(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestCurrencyEncode(t *testing.T) {
	c, err := ParseCurrency("78424071338002381489614636705")
	require.NoError(t, err)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"78424071338002381489614636705"`, string(out))

	// Zero value marshals as "0", not as an empty string.
	out, err = json.Marshal(Currency{})
	require.NoError(t, err)
	assert.Equal(t, `"0"`, string(out))
}

func TestCurrencyCompare(t *testing.T) {
	a := CurrencyFromUint64(10)
	b := CurrencyFromUint64(20)

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(CurrencyFromUint64(10)))
	assert.True(t, Currency{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestPercentageDecode(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantFraction string
	}{
		{"fraction number", `0.5`, "0.5"},
		{"fraction above one", `1.2`, "1.2"},
		{"whole suffixed string", `"25%"`, "0.25"},
		{"fractional percent string", `"2.5%"`, "0.025"},
		{"plain numeric string", `"0.75"`, "0.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Percentage
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.wantFraction, p.Fraction().String())
		})
	}
}

func TestPercentageDisplay(t *testing.T) {
	p := PercentageFromWhole(decimal.RequireFromString("25"))
	assert.Equal(t, "25%", p.String())
	assert.Equal(t, "0.25", p.Fraction().String())
	assert.Equal(t, "25", p.Whole().String())
}

func TestWholePercentageDecode(t *testing.T) {
	// The worker stats endpoints serialize overdrive in whole percent:
	// a bare 2 on the wire means 2%.
	var p WholePercentage
	require.NoError(t, json.Unmarshal([]byte(`2`), &p))
	assert.Equal(t, "0.02", p.Fraction().String())

	require.NoError(t, json.Unmarshal([]byte(`47.09`), &p))
	assert.Equal(t, "0.4709", p.Fraction().String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `47.09`, string(out))
}

func TestBandwidthDecode(t *testing.T) {
	var b Bandwidth
	require.NoError(t, json.Unmarshal([]byte(`277.89`), &b))
	assert.Equal(t, uint64(277890000), b.Bps())
	assert.InDelta(t, 0.27789, b.Gbps(), 1e-9)

	require.NoError(t, json.Unmarshal([]byte(`0`), &b))
	assert.Zero(t, b.Bps())

	err := json.Unmarshal([]byte(`"fast"`), &b)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidData(err))
}

func TestBandwidthDisplay(t *testing.T) {
	b := BandwidthFromMbps(277.89)
	assert.Equal(t, "277.89 Mbps", b.String())
}

func TestDurationRoundTrip(t *testing.T) {
	type wrapper struct {
		MS DurationMS `json:"ms"`
		NS DurationNS `json:"ns"`
	}

	var w wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"ms":2000,"ns":3600000000000}`), &w))
	assert.Equal(t, 2*time.Second, w.MS.Duration())
	assert.Equal(t, time.Hour, w.NS.Duration())

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ms":2000,"ns":3600000000000}`, string(out))
}

func TestDecimalScientificNotation(t *testing.T) {
	// Account balances arrive in scientific notation once they get large.
	d, err := decimal.NewFromString("9.353633845598274e+23")
	require.NoError(t, err)
	assert.Equal(t, "935363384559827400000000", d.String())
}
