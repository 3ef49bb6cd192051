package types

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/koustreak/SiaRi/internal/errs"
)

// Percentage is a share of a whole, stored as a fraction: 0.25 means 25%.
// The API serializes these as bare fractions (object health, host scores),
// but percent-suffixed strings such as "25%" are accepted too.
type Percentage struct {
	frac decimal.Decimal
}

// PercentageFromFraction builds a Percentage from its fractional value.
func PercentageFromFraction(d decimal.Decimal) Percentage {
	return Percentage{frac: d}
}

// PercentageFromWhole builds a Percentage from a whole-percent value,
// so 25 becomes 0.25.
func PercentageFromWhole(d decimal.Decimal) Percentage {
	return Percentage{frac: d.Shift(-2)}
}

// Fraction returns the fractional value, 0.25 for 25%.
func (p Percentage) Fraction() decimal.Decimal {
	return p.frac
}

// Whole returns the whole-percent value, 25 for 0.25.
func (p Percentage) Whole() decimal.Decimal {
	return p.frac.Shift(2)
}

func (p Percentage) String() string {
	return p.Whole().String() + "%"
}

// MarshalJSON implements json.Marshaler, emitting the fraction as a number.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return []byte(p.frac.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler. Numbers and plain numeric
// strings carry the fraction; strings ending in "%" carry whole percent.
func (p *Percentage) UnmarshalJSON(data []byte) error {
	d, wholeForm, err := decodePercent(data)
	if err != nil {
		return err
	}
	if wholeForm {
		*p = PercentageFromWhole(d)
	} else {
		*p = Percentage{frac: d}
	}
	return nil
}

// WholePercentage decodes fields the API serializes in whole-percent form:
// a bare 2 on the wire means 2%. The worker stats endpoints use this for
// their overdrive readings. Values print and compare like Percentage.
type WholePercentage struct {
	Percentage
}

// MarshalJSON implements json.Marshaler, emitting whole percent as a number.
func (p WholePercentage) MarshalJSON() ([]byte, error) {
	return []byte(p.Whole().String()), nil
}

// UnmarshalJSON implements json.Unmarshaler, reading numbers and numeric
// strings as whole percent.
func (p *WholePercentage) UnmarshalJSON(data []byte) error {
	d, _, err := decodePercent(data)
	if err != nil {
		return err
	}
	p.Percentage = PercentageFromWhole(d)
	return nil
}

// decodePercent extracts the decimal behind a percentage field. A trailing
// "%" in string form marks the value as whole percent.
func decodePercent(data []byte) (decimal.Decimal, bool, error) {
	raw := string(data)
	wholeForm := false
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return decimal.Decimal{}, false, errs.Wrap(errs.ErrKindInvalidData, "percentage", err)
		}
		if rest, ok := strings.CutSuffix(s, "%"); ok {
			wholeForm = true
			s = strings.TrimSpace(rest)
		}
		raw = s
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false, errs.Wrap(errs.ErrKindInvalidData, "percentage "+raw, err)
	}
	return d, wholeForm, nil
}
