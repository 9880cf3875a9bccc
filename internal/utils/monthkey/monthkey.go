package monthkey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Normalize canonicalises heterogeneous month representations into a YYYY-MM key.
//
// Precedence matches the stored data: the denormalised month field wins over
// the transaction date. A two-part month key gets its month component
// zero-padded ("2025-1" -> "2025-01"); any other non-empty month value is
// passed through unchanged so that malformed keys still land in a bucket of
// their own instead of aborting the aggregation. With no month, the date is
// truncated to its YYYY-MM prefix. With neither, the empty string is returned
// and the caller must treat the record as unbucketable.
//
// Normalize is pure and total, and idempotent on canonical keys.
func Normalize(month, date string) string {
	if month != "" {
		parts := strings.Split(month, "-")
		if len(parts) == 2 {
			return parts[0] + "-" + padMonth(parts[1])
		}
		return month
	}
	if date != "" {
		if len(date) < 7 {
			return date
		}
		return date[:7]
	}
	return ""
}

func padMonth(m string) string {
	if len(m) == 1 {
		return "0" + m
	}
	return m
}

// FromTime returns the canonical key for the month containing t.
func FromTime(t time.Time) string {
	return t.Format("2006-01")
}

// Prev returns the key for the calendar month before the given canonical key.
// It returns an error for keys that do not parse as YYYY-MM.
func Prev(key string) (string, error) {
	year, month, err := parse(key)
	if err != nil {
		return "", err
	}
	month--
	if month < 1 {
		month = 12
		year--
	}
	return format(year, month), nil
}

// Window returns n consecutive canonical keys in chronological ascending
// order, ending at (and including) the given key.
func Window(end string, n int) ([]string, error) {
	year, month, err := parse(end)
	if err != nil {
		return nil, err
	}
	keys := make([]string, n)
	for i := n - 1; i >= 0; i-- {
		keys[i] = format(year, month)
		month--
		if month < 1 {
			month = 12
			year--
		}
	}
	return keys, nil
}

// Year extracts the calendar year from a canonical key. The boolean is false
// for keys that do not carry a parseable year prefix.
func Year(key string) (int, bool) {
	if len(key) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(key[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

func parse(key string) (year, month int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	return year, month, nil
}

func format(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
