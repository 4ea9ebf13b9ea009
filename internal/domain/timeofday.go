package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// timeBuckets maps descriptive time-of-day phrases to fixed clock times.
// Lookup is exact (after trim and lowercase), never by substring: "afternoon"
// is a bucket, "afternoon-ish" is not and must fall through to the sentinel.
var timeBuckets = map[string]string{
	"before dawn":    "06:00",
	"dawn":           "06:00",
	"early morning":  "06:00",
	"early":          "06:00",
	"morning":        "09:00",
	"mid morning":    "09:00",
	"midday":         "12:00",
	"noon":           "12:00",
	"lunchtime":      "12:00",
	"afternoon":      "15:00",
	"late afternoon": "16:00",
	"evening":        "18:00",
	"dusk":           "18:00",
	"sunset":         "18:00",
	"night":          "23:00",
	"late night":     "23:00",
	"midnight":       "23:00",
}

// timeScrubber strips GSAF clock quirks before numeric parsing: "h" is the
// hour separator ("14h00"), stray "j" and quote characters are data-entry
// noise, and spaces are irrelevant once the bucket lookup has failed.
var timeScrubber = strings.NewReplacer("h", ":", "j", "", `"`, "", " ", "")

// NormalizeTime converts one time-of-day cell to a 24-hour "HH:MM" string.
// Descriptive phrases resolve through [timeBuckets]; clock forms accept
// "14h00", "14:00", "1400", "930", bare hours, am/pm suffixes, and ranges
// (lower bound kept). Anything else, including blanks, yields the Unknown
// sentinel; malformed input never produces an error.
func NormalizeTime(cell string) string {
	if Missing(cell) {
		return SentinelUnknown
	}

	t := strings.ToLower(strings.TrimSpace(cell))
	if bucket, ok := timeBuckets[t]; ok {
		return bucket
	}

	t = timeScrubber.Replace(t)
	if i := strings.IndexAny(t, "-/"); i >= 0 {
		t = t[:i]
	}

	meridiem := ""
	for _, m := range []string{"am", "pm"} {
		if strings.HasSuffix(t, m) {
			meridiem = m
			t = strings.TrimSuffix(t, m)
		}
	}

	hour, minute, ok := splitClock(t)
	if !ok {
		return SentinelUnknown
	}
	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return SentinelUnknown
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// splitClock parses a scrubbed clock string into hour and minute. Accepted
// shapes: "HH:MM", "HH:" (minute zero), "HHMM", "HMM", and bare "H"/"HH".
func splitClock(t string) (int, int, bool) {
	if t == "" {
		return 0, 0, false
	}

	if h, m, found := strings.Cut(t, ":"); found {
		hour, err := strconv.Atoi(h)
		if err != nil || hour < 0 {
			return 0, 0, false
		}
		minute := 0
		if m != "" {
			minute, err = strconv.Atoi(m)
			if err != nil || minute < 0 {
				return 0, 0, false
			}
		}
		return hour, minute, true
	}

	if _, err := strconv.Atoi(t); err != nil {
		return 0, 0, false
	}
	switch len(t) {
	case 4:
		hour, _ := strconv.Atoi(t[:2])
		minute, _ := strconv.Atoi(t[2:])
		return hour, minute, true
	case 3:
		hour, _ := strconv.Atoi(t[:1])
		minute, _ := strconv.Atoi(t[1:])
		return hour, minute, true
	case 1, 2:
		hour, _ := strconv.Atoi(t)
		return hour, 0, true
	}
	return 0, 0, false
}

// CleanTime rewrites the time column through [NormalizeTime], returning the
// new frame and the number of cells that fell back to the sentinel.
func CleanTime(df dataframe.DataFrame) (dataframe.DataFrame, int) {
	return mapColumn(df, ColTime, NormalizeTime)
}
