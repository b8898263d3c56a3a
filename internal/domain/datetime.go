package domain

import (
	"strings"
	"time"
)

// bulletinTimeLayout matches PHIVOLCS bulletin timestamps,
// e.g. "09 March 2025 - 11:42 PM".
const bulletinTimeLayout = "2 January 2006 - 3:04 PM"

// phTime is Philippine Standard Time (UTC+8, no daylight saving).
var phTime = time.FixedZone("PST", 8*60*60)

// ParseBulletinTime parses a PHIVOLCS bulletin timestamp into a UTC instant.
// Parsing is best-effort: on malformed input it returns the current clock
// reading and ok=false so one bad timestamp never aborts a fetch cycle.
// Callers must treat ok=false as an estimated time, not a real one.
func ParseBulletinTime(raw string) (t time.Time, ok bool) {
	cleaned := strings.Join(strings.Fields(strings.TrimSpace(raw)), " ")
	parsed, err := time.ParseInLocation(bulletinTimeLayout, cleaned, phTime)
	if err != nil {
		return clock.Now().UTC(), false
	}
	return parsed.UTC(), true
}
