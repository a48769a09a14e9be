package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR renders a rupiah amount with dot thousands separators, the
// way prices are shown to Indonesian users ("IDR 1.250.000").
func FormatIDR(amount decimal.Decimal) string {
	rounded := amount.Round(0)

	negative := rounded.IsNegative()
	if negative {
		rounded = rounded.Neg()
	}

	intStr := rounded.StringFixed(0)
	formatted := addThousandsSeparator(intStr, ".")

	result := "IDR " + formatted
	if negative {
		result = "-" + result
	}

	return result
}

// FormatTotal formats a provider price-total string; malformed totals
// come back unchanged.
func FormatTotal(total string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(total))
	if err != nil {
		return total
	}
	return FormatIDR(d)
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
