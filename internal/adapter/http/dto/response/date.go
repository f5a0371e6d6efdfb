package response

import (
	"encoding/json"
	"time"
)

// Date marshals as a bare YYYY-MM-DD calendar date.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(time.DateOnly))
}

func DateOf(t time.Time) Date {
	return Date(t)
}

func DatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := Date(*t)
	return &d
}
