package response

import (
	"time"

	"driveway_xpto/internal/domain/entities"
)

type BillResponse struct {
	BillID        int64     `json:"bill_id"`
	OrderID       int64     `json:"order_id"`
	InitialAmount float64   `json:"initial_amount"`
	FinalAmount   *float64  `json:"final_amount"`
	Status        string    `json:"status"`
	DueDate       Date      `json:"due_date"`
	ClientNote    string    `json:"client_note"`
	CreatedAt     time.Time `json:"timestamp"`
}

type BillNegotiationResponse struct {
	NegotiationID  int64     `json:"negotiation_id"`
	BillID         int64     `json:"bill_id"`
	Version        int64     `json:"version"`
	ClientNote     string    `json:"client_note"`
	ContractorNote string    `json:"contractor_note"`
	FinalAmount    *float64  `json:"final_amount"`
	CreatedAt      time.Time `json:"timestamp"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		BillID:        b.ID,
		OrderID:       b.OrderID,
		InitialAmount: b.InitialAmount,
		FinalAmount:   b.FinalAmount,
		Status:        string(b.Status),
		DueDate:       DateOf(b.DueDate),
		ClientNote:    b.ClientNote,
		CreatedAt:     b.CreatedAt,
	}
}

func FromBills(bs []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, FromBill(b))
	}
	return out
}

func FromBillNegotiation(n entities.BillNegotiation) BillNegotiationResponse {
	return BillNegotiationResponse{
		NegotiationID:  n.ID,
		BillID:         n.BillID,
		Version:        n.Version,
		ClientNote:     n.ClientNote,
		ContractorNote: n.ContractorNote,
		FinalAmount:    n.FinalAmount,
		CreatedAt:      n.CreatedAt,
	}
}

func FromBillNegotiations(ns []entities.BillNegotiation) []BillNegotiationResponse {
	out := make([]BillNegotiationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromBillNegotiation(n))
	}
	return out
}
