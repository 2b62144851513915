// internal/models/price.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a non-negative decimal amount. It is decoded once from its
// display form ("12,500") and encoded back to it; nothing else parses
// price strings.
type Price struct {
	value decimal.Decimal
}

var groupingSeparators = strings.NewReplacer(",", "", "_", "", " ", "", "\u00a0", "", "\u202f", "")

// ParsePrice strips grouping separators and parses the remainder.
// Empty, malformed or negative input yields zero.
func ParsePrice(s string) Price {
	s = groupingSeparators.Replace(strings.TrimSpace(s))
	if s == "" {
		return Price{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return Price{}
	}
	return Price{value: d}
}

func NewPrice(d decimal.Decimal) Price {
	if d.IsNegative() {
		return Price{}
	}
	return Price{value: d}
}

func PriceFromInt(v int64) Price {
	return NewPrice(decimal.NewFromInt(v))
}

func (p Price) Decimal() decimal.Decimal { return p.value }

func (p Price) Float64() float64 {
	return p.value.InexactFloat64()
}

func (p Price) IsZero() bool { return p.value.IsZero() }

func (p Price) Cmp(other Price) int { return p.value.Cmp(other.value) }

func (p Price) Equal(other Price) bool { return p.value.Equal(other.value) }

func (p Price) Add(other Price) Price { return Price{value: p.value.Add(other.value)} }

// String renders the grouped display form, e.g. "1,000" or "1,234.5". It is
// exact: ParsePrice(p.String()) equals p.
func (p Price) String() string {
	return FormatAmount(p.value)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON accepts the display string, a bare JSON number or null.
// Unparsable values decode to zero rather than failing the whole record.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = Price{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*p = Price{}
			return nil
		}
		*p = ParsePrice(s)
		return nil
	}
	*p = ParsePrice(string(data))
	return nil
}

// FormatAmount groups the integer digits in thousands and keeps every
// fraction digit, so the display form parses back to the same value.
func FormatAmount(d decimal.Decimal) string {
	digits := d.String()
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	whole, frac, hasFrac := strings.Cut(digits, ".")
	if hasFrac {
		return sign + groupThousands(whole) + "." + frac
	}
	return sign + groupThousands(whole)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
