// Package format renders currency amounts and dates for display.
package format

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "₹"

// MissingDate is shown for an absent date.
const MissingDate = "Not available"

const displayDateLayout = "02 Jan 2006"

// dateLayouts lists the upstream timestamp formats, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Formatter carries the display settings shared by every view.
type Formatter struct {
	symbol string
}

// New returns a Formatter using symbol, or the default symbol when blank.
func New(symbol string) Formatter {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return Formatter{symbol: symbol}
}

// Currency rounds v to whole units and groups thousands: 18250.5 → ₹18,251.
func (f Formatter) Currency(v float64) string {
	symbol := f.symbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	rounded := math.Round(v)
	if rounded < 0 {
		return "-" + symbol + humanize.Comma(int64(-rounded))
	}
	return symbol + humanize.Comma(int64(rounded))
}

// Date is Date bound to the formatter so views can take one collaborator.
func (f Formatter) Date(value string) string {
	return Date(value)
}

// Date formats an upstream timestamp as "02 Jan 2006". Blank input yields
// MissingDate; input in an unknown layout is returned trimmed.
func Date(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return MissingDate
	}
	if t := ParseDate(trimmed); !t.IsZero() {
		return t.Format(displayDateLayout)
	}
	return trimmed
}

// ParseDate tries each known layout and returns the zero time on failure.
func ParseDate(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}
