package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits the English way.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and adds thousand separators:
// FormatFloat(1234.567, 2) -> "1,234.57". A negative precision is treated as 0.
func FormatFloat(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return s
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	if !hasFrac {
		return grouped
	}
	return grouped + "." + frac
}

// FormatLarge abbreviates millions and billions: 1.5e9 -> "~1.5 billion".
// Smaller values are rounded and grouped.
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

// FormatCarbon renders a footprint with its unit, switching from kilograms to
// tonnes at TonneDisplayThresholdKg: 530 -> "530.0 kg CO2e", 12500 -> "12.50 t CO2e".
func FormatCarbon(kg float64) string {
	if math.Abs(kg) >= TonneDisplayThresholdKg {
		return FormatFloat(kg/TonnesToKg, 2) + " t CO2e"
	}
	return FormatFloat(kg, 1) + " kg CO2e"
}
