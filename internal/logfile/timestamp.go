package logfile

import (
	"regexp"
	"time"
)

// DateLayout is the fixed-width date token that opens every head line.
const DateLayout = "2006-01-02"

var (
	// datePrefix matches a date-shaped token at the start of a line.
	datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	// dateToken matches a date-shaped token anywhere in a buffer.
	dateToken = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// ParseDate extracts the leading YYYY-MM-DD token from a line and validates
// it as a calendar date. The second return value is false when the line has
// no date-shaped prefix or the token is not a real date (e.g. month 13).
func ParseDate(line []byte) (time.Time, bool) {
	tok := datePrefix.Find(line)
	if tok == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, string(tok))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
