package model

import (
	"fmt"
	"time"
)

// RecordKind names an admin collection. The value doubles as the URL segment
// of the remote admin API.
type RecordKind string

const (
	KindSubscriptions RecordKind = "subscriptions"
	KindBookings      RecordKind = "bookings"
	KindFeedback      RecordKind = "feedback"
)

// RecordKinds lists every admin collection.
var RecordKinds = []RecordKind{KindSubscriptions, KindBookings, KindFeedback}

// ParseRecordKind validates a collection name coming from user input.
func ParseRecordKind(s string) (RecordKind, error) {
	switch k := RecordKind(s); k {
	case KindSubscriptions, KindBookings, KindFeedback:
		return k, nil
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}

// Singular is the human name of one record of this kind.
func (k RecordKind) Singular() string {
	switch k {
	case KindSubscriptions:
		return "subscription"
	case KindBookings:
		return "booking"
	default:
		return string(k)
	}
}

const displayLayout = "Jan 2, 2006"

// displayDate formats an ISO-8601 timestamp for listings. Unparseable
// values are shown as received.
func displayDate(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayLayout)
		}
	}
	return raw
}
