package entities

import "time"

type ClientRef struct {
	ClientID   int64  `json:"client_id"`
	ClientName string `json:"client_name"`
}

type BigClient struct {
	ClientRef
	TotalOrders int64 `json:"total_orders"`
}

type WindowQuote struct {
	QuoteID         int64     `json:"quote_id"`
	PropertyAddress string    `json:"property_address"`
	InitialPrice    float64   `json:"initial_price"`
	ProposedPrice   float64   `json:"proposed_price"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"timestamp"`
}

type LargestDriveway struct {
	PropertyAddress   string `json:"property_address"`
	LargestSquareFeet int64  `json:"largest_square_feet"`
}

type OverdueBill struct {
	BillID      int64     `json:"bill_id"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status"`
	OverdueDays int64     `json:"overdue_days"`
}

type Revenue struct {
	TotalRevenue float64 `json:"total_revenue"`
}

// TimeWindow is a half-open [From, To) interval.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// MonthWindow returns the calendar month containing t.
func MonthWindow(t time.Time) TimeWindow {
	from := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return TimeWindow{From: from, To: from.AddDate(0, 1, 0)}
}
