package utils

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var errBadDate = errors.New("must be a date (YYYY-MM-DD) or an RFC3339 timestamp")

// ParseDate accepts "2006-01-02" or an RFC3339 timestamp and returns UTC midnight of that calendar day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errBadDate
	}
	return StartOfDay(t), nil
}

// ParseDateTime accepts an RFC3339 timestamp and normalizes it to UTC.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("must be an RFC3339 timestamp (e.g. 2024-06-01T09:00:00Z)")
	}
	return t.UTC(), nil
}

func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey is the calendar date of t in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return DateKey(t)
}
