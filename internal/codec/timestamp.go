package codec

import (
	"strings"
	"time"
)

// All venue timestamps are in the Chinese interbank trading timezone.
var chinaTZ = loadChinaTZ()

func loadChinaTZ() *time.Location {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		// No tzdata on the host; CST has no DST so a fixed offset is exact.
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// TradingTZ returns the fixed trading timezone.
func TradingTZ() *time.Location { return chinaTZ }

const (
	layoutSeconds = "20060102 15:04:05"
	layoutMicros  = "20060102 15:04:05.000000"
)

// ParseTimestamp parses a venue timestamp string. An empty string falls
// back to the current time (push-time fallback). Unparsable input also
// degrades to the current time rather than propagating an error.
func ParseTimestamp(s string) time.Time {
	if s == "" {
		return time.Now().In(chinaTZ)
	}

	layout := layoutSeconds
	if strings.Contains(s, ".") {
		layout = layoutMicros
		// Pad short fractions; time.Parse demands the full six digits.
		if idx := strings.Index(s, "."); len(s)-idx-1 < 6 {
			s += strings.Repeat("0", 6-(len(s)-idx-1))
		}
	}

	dt, err := time.ParseInLocation(layout, s, chinaTZ)
	if err != nil {
		return time.Now().In(chinaTZ)
	}
	return dt
}

// GenerateTimestamp builds an instant from a time-only string like
// "15:04:05.000" by prefixing today's local calendar date. A push just
// after midnight referencing yesterday will be misdated; accepted
// limitation of the venue's time-only fields.
func GenerateTimestamp(timeOnly string) time.Time {
	today := time.Now().In(chinaTZ).Format("20060102")
	return ParseTimestamp(today + " " + timeOnly)
}
