package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatWholeMoney renders an amount rounded to whole currency with thousand
// grouping, e.g. 12500 -> "12 500".
func FormatWholeMoney(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + groupThousands(n)
}

// FormatExactMoney renders an amount with two decimals and thousand grouping
// on the integer part, e.g. 1512.5 -> "1 512.50". Used where fractional VAT
// amounts are shown.
func FormatExactMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := int64(amount)
	frac := fmt.Sprintf("%.2f", amount-float64(whole))
	// frac is "0.xx"; rounding may carry into the integer part
	if strings.HasPrefix(frac, "1") {
		whole++
		frac = "0.00"
	}
	return sign + groupThousands(whole) + frac[1:]
}

func groupThousands(n int64) string {
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(c)
	}
	return out.String()
}
