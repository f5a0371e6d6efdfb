package request

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseDate parses an optional YYYY-MM-DD value. Blank input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
