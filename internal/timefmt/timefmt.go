// Package timefmt converts stored instants to the workshop's civil time and
// back. The workshop runs on a fixed UTC+8 offset with no daylight saving.
package timefmt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DisplayLayout renders e.g. "05 Mar 2024, 05:15 PM".
	DisplayLayout = "02 Jan 2006, 03:04 PM"
	// InputLayout matches an HTML datetime-local control.
	InputLayout = "2006-01-02T15:04"

	// Missing is shown when an instant is absent.
	Missing = "-"
)

// Civil is the fixed zone used for everything a human reads or types.
var Civil = time.FixedZone("UTC+8", 8*60*60)

// ErrInvalidLocalTime is returned when a local date-time cannot be parsed.
var ErrInvalidLocalTime = errors.New("invalid local date-time")

// accepted naive ISO layouts, most specific first
var inputLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Instant reports the time held by a stored value, if it is an instant.
func Instant(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case primitive.DateTime:
		return t.Time(), true
	case *primitive.DateTime:
		if t == nil {
			return time.Time{}, false
		}
		return t.Time(), true
	case primitive.Timestamp:
		return timestampTime(t)
	case *primitive.Timestamp:
		if t == nil {
			return time.Time{}, false
		}
		return timestampTime(*t)
	default:
		return time.Time{}, false
	}
}

func absent(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case *time.Time:
		return t == nil || t.IsZero()
	case time.Time:
		return t.IsZero()
	case *primitive.DateTime:
		return t == nil
	case primitive.Timestamp:
		return t.T == 0
	case *primitive.Timestamp:
		return t == nil || t.T == 0
	}
	return false
}

// timestampTime converts a BSON timestamp; T holds seconds since the epoch
// and I only orders events within that second.
func timestampTime(ts primitive.Timestamp) (time.Time, bool) {
	if ts.T == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(ts.T), 0).UTC(), true
}

// Display formats v for humans. Absent values render as Missing and values
// that are not instants are returned in their literal string form.
func Display(v interface{}) string {
	if absent(v) {
		return Missing
	}
	t, ok := Instant(v)
	if !ok {
		return fmt.Sprint(v)
	}
	return t.In(Civil).Format(DisplayLayout)
}

// LocalInput formats v for a datetime-local control, or returns "" when v is
// not an instant.
func LocalInput(v interface{}) string {
	t, ok := Instant(v)
	if !ok {
		return ""
	}
	return t.In(Civil).Format(InputLayout)
}

// ParseLocalInput reads a naive date-time as civil wall-clock time and
// returns the UTC instant.
func ParseLocalInput(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, Civil); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLocalTime, s)
}
