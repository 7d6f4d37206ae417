// Package timeutil normalizes the wall-clock time strings reception types in
// for timed busy statuses. Input may be 24-hour "HH:MM" or 12-hour "h:mm AM/PM";
// output is always zero-padded 24-hour "HH:MM".
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sabaipos/pos_backend/internal/apperrors"
)

// Normalize converts a time-of-day string to 24-hour "HH:MM" form.
// 12-hour conversion: 12 PM stays 12, 12 AM becomes 0, other PM hours add 12.
func Normalize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty time string", apperrors.ErrValidation)
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: malformed time %q", apperrors.ErrValidation, raw)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "", fmt.Errorf("%w: malformed hour in %q", apperrors.ErrValidation, raw)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "", fmt.Errorf("%w: malformed minute in %q", apperrors.ErrValidation, raw)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: minute out of range in %q", apperrors.ErrValidation, raw)
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: hour out of range in %q", apperrors.ErrValidation, raw)
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return "", fmt.Errorf("%w: hour out of range in %q", apperrors.ErrValidation, raw)
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return "", fmt.Errorf("%w: hour out of range in %q", apperrors.ErrValidation, raw)
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// ResolveOnDay anchors a normalized "HH:MM" time-of-day to the calendar day of
// anchor in loc, producing the absolute instant it names. Storing the instant
// rather than the bare time-of-day keeps expiry comparisons valid across a
// midnight boundary.
func ResolveOnDay(hhmm string, anchor time.Time, loc *time.Location) (time.Time, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("%w: expected HH:MM, got %q", apperrors.ErrValidation, hhmm)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: expected HH:MM, got %q", apperrors.ErrValidation, hhmm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: expected HH:MM, got %q", apperrors.ErrValidation, hhmm)
	}

	day := anchor.In(loc)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// FormatClock renders an instant as "HH:MM" in loc, the inverse of ResolveOnDay
// for display purposes.
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}
