package util

import (
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Missing is the placeholder rendered for absent or unparseable values.
const Missing = "--"

// FormatNumber renders v with a fixed number of decimal places.
// nil and NaN render as Missing. Rounding follows strconv.FormatFloat
// ('f' format): correctly rounded from the binary value, ties to even.
func FormatNumber(v *float64, decimals int) string {
	if v == nil || math.IsNaN(*v) {
		return Missing
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// FormatFloat is FormatNumber for a plain float64.
func FormatFloat(v float64, decimals int) string {
	return FormatNumber(&v, decimals)
}

// FormatDate renders t as "Jan 2, 2006, 15:04" in local time.
// The zero time renders as Missing.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return t.Local().Format("Jan 2, 2006, 15:04")
}

// FormatAge renders t as a relative age ("3 hours ago").
// The zero time renders as Missing.
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return Missing
	}
	return humanize.Time(t)
}
