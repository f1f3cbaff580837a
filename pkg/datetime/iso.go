// Package datetime renders and parses the ISO-8601 text used for date/time
// fields in JSON documents.
//
// Values without a zone ("naive" values) are carried as time.Time in time.UTC.
// Any other location is rendered with its numeric offset.
package datetime

import "time"

const (
	secondsLayout = "2006-01-02T15:04:05"
	microLayout   = "2006-01-02T15:04:05.000000"
	offsetLayout  = "-07:00"

	// ISOLayout is the layout handed to non-time values that expose a Format method.
	ISOLayout = microLayout
)

// ISOFormat renders t as YYYY-MM-DDTHH:MM:SS[.ffffff][+HH:MM].
// The fraction is dropped when the microsecond is zero and the offset is
// dropped for naive values.
func ISOFormat(t time.Time) string {
	layout := secondsLayout
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		layout = microLayout
	}
	if !IsNaive(t) {
		layout += offsetLayout
	}
	return t.Format(layout)
}

// Naive keeps the wall clock of t and drops its zone.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond()/int(time.Microsecond)*int(time.Microsecond),
		time.UTC)
}

func IsNaive(t time.Time) bool {
	return t.Location() == time.UTC
}
