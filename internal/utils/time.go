package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutDateDMY = "02-01-2006"
)

// NowLocal returns current time in the local timezone.
func NowLocal() time.Time {
	return time.Now().Local()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateDMY formats time to DD-MM-YYYY, the convention used for
// generated report filenames.
func FormatDateDMY(t time.Time) string {
	return t.In(time.Local).Format(layoutDateDMY)
}

// FormatDateDisplay formats time to DD/MM/YYYY for rendered documents.
func FormatDateDisplay(t time.Time) string {
	return t.In(time.Local).Format("02/01/2006")
}
