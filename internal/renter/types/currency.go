package types

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/koustreak/SiaRi/internal/errs"
)

// Currency is an exact, unsigned integer amount of hastings. The API
// serializes these values as decimal strings because they routinely exceed
// 64 bits, but some endpoints still emit bare numbers; decoding accepts
// both forms.
type Currency struct {
	i big.Int
}

// NewCurrency returns the Currency for i. Nil counts as zero.
func NewCurrency(i *big.Int) Currency {
	var c Currency
	if i != nil {
		c.i.Set(i)
	}
	return c
}

// CurrencyFromUint64 returns the Currency for v.
func CurrencyFromUint64(v uint64) Currency {
	var c Currency
	c.i.SetUint64(v)
	return c
}

// ParseCurrency parses a decimal string.
func ParseCurrency(s string) (Currency, error) {
	var c Currency
	if _, ok := c.i.SetString(s, 10); !ok {
		return Currency{}, errs.Newf(errs.ErrKindInvalidData, "currency %q: not a decimal integer", s)
	}
	if c.i.Sign() < 0 {
		return Currency{}, errs.Newf(errs.ErrKindInvalidData, "currency %q: negative amount", s)
	}
	return c, nil
}

// Big returns a copy of the underlying integer.
func (c Currency) Big() *big.Int {
	return new(big.Int).Set(&c.i)
}

// IsZero reports whether the amount is zero.
func (c Currency) IsZero() bool {
	return c.i.Sign() == 0
}

// Cmp compares c and other, returning -1, 0 or 1.
func (c Currency) Cmp(other Currency) int {
	return c.i.Cmp(&other.i)
}

func (c Currency) String() string {
	return c.i.String()
}

// MarshalJSON implements json.Marshaler, always emitting the string form.
func (c Currency) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.i.String())), nil
}

// UnmarshalJSON implements json.Unmarshaler, accepting a quoted decimal
// string or a bare integer number.
func (c *Currency) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errs.Wrap(errs.ErrKindInvalidData, "currency", err)
		}
		parsed, err := ParseCurrency(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	parsed, err := ParseCurrency(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
