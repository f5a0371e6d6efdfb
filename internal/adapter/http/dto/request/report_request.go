package request

import "time"

// ReportWindowQuery carries the optional from/to bounds of the quotes report.
type ReportWindowQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q ReportWindowQuery) Resolve() (from, to *time.Time, err error) {
	if from, err = ParseDate(q.From); err != nil {
		return nil, nil, err
	}
	if to, err = ParseDate(q.To); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
