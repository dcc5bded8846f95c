package query

import (
	"fmt"
	"strings"
)

// ViewtimeRange is one named interval of the viewtime metric. Max == 0 marks
// the catch-all bucket.
type ViewtimeRange struct {
	Label    string
	Min, Max int64
}

var ViewtimeRanges = []ViewtimeRange{
	{Label: "Range 1 (1-100)", Min: 1, Max: 100},
	{Label: "Range 2 (101-200)", Min: 101, Max: 200},
	{Label: "Range 3 (201-300)", Min: 201, Max: 300},
	{Label: "Range 4 (301-400)", Min: 301, Max: 400},
	{Label: "Range 5 (401-500)", Min: 401, Max: 500},
	{Label: "Range 6 (501-600)", Min: 501, Max: 600},
	{Label: "Range 7 (601-700)", Min: 601, Max: 700},
	{Label: "Range 8+ (701 and above)"},
}

// Weekdays is indexed by MOD(epoch day, 7).
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const msPerDay = 86400000

// ViewtimeLabels returns all bucket labels in range order.
func ViewtimeLabels() []string {
	labels := make([]string, len(ViewtimeRanges))
	for i, r := range ViewtimeRanges {
		labels[i] = r.Label
	}
	return labels
}

// ViewtimeBucket classifies v the way the CASE expression does.
func ViewtimeBucket(v int64) string {
	for _, r := range ViewtimeRanges {
		if r.Max == 0 {
			return r.Label
		}
		if v >= r.Min && v <= r.Max {
			return r.Label
		}
	}
	return ViewtimeRanges[len(ViewtimeRanges)-1].Label
}

// WeekdayOf maps a registration timestamp in epoch milliseconds to its label.
// Negative remainders match no branch and yield "".
func WeekdayOf(registerMillis int64) string {
	day := registerMillis / msPerDay
	mod := day % 7
	if mod < 0 {
		return ""
	}
	return Weekdays[mod]
}

// ViewtimeCaseSQL renders the bucketing CASE expression over column.
func ViewtimeCaseSQL(column string) string {
	var b strings.Builder
	b.WriteString("CASE")
	for _, r := range ViewtimeRanges {
		if r.Max == 0 {
			fmt.Fprintf(&b, "\n    ELSE '%s'", r.Label)
			continue
		}
		fmt.Fprintf(&b, "\n    WHEN %s BETWEEN %d AND %d THEN '%s'", column, r.Min, r.Max, r.Label)
	}
	b.WriteString("\n  END")
	return b.String()
}

// WeekdayCaseSQL renders the weekday CASE expression over an epoch-millis column.
func WeekdayCaseSQL(column string) string {
	var b strings.Builder
	b.WriteString("CASE")
	for i, d := range Weekdays {
		fmt.Fprintf(&b, "\n    WHEN MOD(CAST(%s / %d AS INT), 7) = %d THEN '%s'", column, msPerDay, i, d)
	}
	b.WriteString("\n  END")
	return b.String()
}
