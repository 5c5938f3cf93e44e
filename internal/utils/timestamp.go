package utils

import (
	"fmt"
	"time"
)

// ParseTimestamp parses an RFC3339 timestamp with optional fractional
// seconds, as reported by ledger nodes.
func ParseTimestamp(timestamp string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		// Some nodes report the Go default layout instead of RFC3339
		layout := "2006-01-02 15:04:05.999999999 -0700 MST"
		tInMST, errMstTime := time.Parse(layout, timestamp)
		if errMstTime != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
		}
		return tInMST, nil
	}
	return t, nil
}
