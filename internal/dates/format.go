// Package dates provides the shared date formatting used by every resume
// template. Centralizing it here keeps the "current role overrides end date"
// rule in one place instead of scattered across renderers.
package dates

import (
	"fmt"
	"time"
)

// presentLabel is the display label for an ongoing role or course
const presentLabel = "Present"

// inputLayouts are the accepted raw date formats, tried in order.
// Form inputs produce full dates; older saved documents may carry
// month-only values.
var inputLayouts = []string{"2006-01-02", "2006-01"}

// FormatDate converts a raw date string into its short display form
// ("Jan 2006"). Empty or unparsable input is returned unchanged; this
// function never fails.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return raw
}

// FormatDateRange builds the display string for a start/end date pair.
// When current is true the end label is always "Present", irrespective of
// the stored end date. If both labels are empty the result is empty; if
// only one is present it is returned alone, without a dash.
func FormatDateRange(startDate, endDate string, current bool) string {
	start := FormatDate(startDate)
	end := FormatDate(endDate)
	if current {
		end = presentLabel
	}

	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	default:
		return fmt.Sprintf("%s - %s", start, end)
	}
}
