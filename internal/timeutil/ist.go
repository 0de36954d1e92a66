package timeutil

import (
	"fmt"
	"time"
)

// IST is the Indian Standard Time location (UTC+5:30)
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// Fallback: create fixed zone if Asia/Kolkata not available
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// Now returns the current time in IST
func Now() time.Time {
	return time.Now().In(IST)
}

// ToIST converts any time to IST
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// Today returns today's date in IST formatted as YYYY-MM-DD
func Today() string {
	return Now().Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date string in IST
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, IST)
}

// MonthRange returns the first and last calendar day of a YYYY-MM month.
// The last day uses the month's actual length, not a fixed 30/31.
func MonthRange(month string) (start, end string, err error) {
	t, err := time.ParseInLocation(MonthLayout, month, IST)
	if err != nil {
		return "", "", fmt.Errorf("invalid month %q: %w", month, err)
	}
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, IST)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout), nil
}

// MonthOf extracts the YYYY-MM month from a YYYY-MM-DD date string.
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// Common layouts for IST formatting
const (
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
