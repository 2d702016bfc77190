package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := printer.Sprintf("%.2f", math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// WholeCurrency rounds to the nearest unit and formats without decimals (e.g., "$1,530").
func WholeCurrency(amount float64) string {
	rounded := math.Round(amount)
	formatted := printer.Sprintf("%.0f", math.Abs(rounded))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent formats a percentage with one decimal place (e.g., "14.0%").
func Percent(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", value)
}
