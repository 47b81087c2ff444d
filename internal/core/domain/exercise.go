package domain

import (
	"errors"
	"time"
)

var ErrInvalidDate = errors.New("invalid date")

// Exercise is a single logged activity. UserID is a weak reference to a
// User's ID: the service layer checks existence before inserting, storage
// does not enforce it.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int // minutes
	Date        time.Time
}

// dateLayout is the calendar rendering used in every API response:
// day-of-week, month, zero-padded day, year.
const dateLayout = "Mon Jan 02 2006"

// dateInputLayouts are the accepted formats for caller-supplied dates,
// tried in order.
var dateInputLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// FormatDate renders t as a human-readable calendar string, e.g.
// "Sun Jan 15 2023".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate parses a caller-supplied date string. It returns ErrInvalidDate
// when none of the accepted layouts match.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
