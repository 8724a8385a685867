package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// ISODateLayout is the canonical storage format for dates
	ISODateLayout = "2006-01-02"
	// LocalDateLayout is the Dominican local input format
	LocalDateLayout = "02/01/2006"
)

var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// CoerceDate normalizes a user-entered date to the canonical ISO form.
// ISO input (YYYY-MM-DD) passes through unchanged; local input (DD/MM/YYYY)
// is converted. Anything else fails with a message naming the local format.
// Coercion is idempotent: an already-ISO date coerces to itself.
func CoerceDate(dateStr string) (string, error) {
	dateStr = strings.TrimSpace(dateStr)

	if t, err := time.Parse(ISODateLayout, dateStr); err == nil {
		return t.Format(ISODateLayout), nil
	}

	if t, err := time.Parse(LocalDateLayout, dateStr); err == nil {
		return t.Format(ISODateLayout), nil
	}

	return "", fmt.Errorf("invalid date: expected DD/MM/AAAA")
}

// CoerceTime normalizes loosely-formatted H:M input to zero-padded HH:mm.
// Input that does not split into two integers passes through unmodified so
// the final format check rejects it.
func CoerceTime(timeStr string) (string, error) {
	coerced := strings.TrimSpace(timeStr)

	parts := strings.Split(coerced, ":")
	if len(parts) == 2 {
		var h, m int
		if _, err := fmt.Sscanf(coerced, "%d:%d", &h, &m); err == nil {
			coerced = fmt.Sprintf("%02d:%02d", h, m)
		}
	}

	if !timeRegex.MatchString(coerced) {
		return "", fmt.Errorf("invalid time: expected HH:mm")
	}

	return coerced, nil
}

// ParseDate parses a canonical ISO date string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(ISODateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}
