package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

const CurrencySymbol = "R"

// FormatMoney renders an amount as "R 1,150.00".
func FormatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := CurrencySymbol + " " + b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
