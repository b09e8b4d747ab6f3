// Package dto defines the wire shapes exchanged between gateway, server and
// clients, plus the mapping from persistence models. Timestamps travel as
// ISO-8601 local strings without a zone offset and are interpreted in
// server-local time.
package dto

import "time"

// TimeLayout is the wire format for all booking and comment timestamps.
const TimeLayout = "2006-01-02T15:04:05"

// ParseTime parses a wire timestamp in server-local time.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(TimeLayout, s, time.Local)
}

// FormatTime renders a timestamp in the wire format.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
