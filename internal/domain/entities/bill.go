package entities

import "time"

type BillStatus string

const (
	BillStatusPending   BillStatus = "Pending"
	BillStatusPaid      BillStatus = "Paid"
	BillStatusDisputed  BillStatus = "Disputed"
	BillStatusCancelled BillStatus = "Cancelled"
)

// Bill is what the client owes for a work order. FinalAmount stays nil until
// the bill is settled.
type Bill struct {
	ID            int64      `json:"bill_id"`
	OrderID       int64      `json:"order_id"`
	InitialAmount float64    `json:"initial_amount"`
	FinalAmount   *float64   `json:"final_amount"`
	Status        BillStatus `json:"status"`
	DueDate       time.Time  `json:"due_date"`
	ClientNote    string     `json:"client_note"`
	CreatedAt     time.Time  `json:"timestamp"`
}

// BillNegotiation mirrors QuoteNegotiation for bills.
type BillNegotiation struct {
	ID             int64     `json:"negotiation_id"`
	BillID         int64     `json:"bill_id"`
	Version        int64     `json:"version"`
	ClientNote     string    `json:"client_note"`
	ContractorNote string    `json:"contractor_note"`
	FinalAmount    *float64  `json:"final_amount"`
	CreatedAt      time.Time `json:"timestamp"`
}
