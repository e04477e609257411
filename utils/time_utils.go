package utils

import (
	"fmt"
	"strings"
	"time"
)

// ParseDeadline accepts an RFC 3339 timestamp or a plain YYYY-MM-DD date,
// the latter interpreted as midnight UTC
func ParseDeadline(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("deadline is empty")
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q: use RFC 3339 or YYYY-MM-DD", raw)
	}
	return t, nil
}
