package storage

import (
	"fmt"
	"time"
)

// timeLayout is the canonical on-disk timestamp format. It is fixed-width and
// UTC-normalized so SQLite's text comparison orders values chronologically,
// which the range predicates in the list queries rely on.
const timeLayout = "2006-01-02 15:04:05.000000000"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode timestamp %q: %w", s, err)
	}
	return t, nil
}
