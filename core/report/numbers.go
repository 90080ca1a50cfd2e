package report

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats v as US dollars with thousands separators and two decimals,
// e.g. 16288.946 -> "$16,288.95".
func Money(v float64) string {
	if v < 0 {
		return "-$" + printer.Sprintf("%.2f", math.Abs(v))
	}
	return "$" + printer.Sprintf("%.2f", v)
}

// Percent formats v (already in percent units) with the given number of decimals.
func Percent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// Finite reports whether every value is neither NaN nor ±Inf.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
