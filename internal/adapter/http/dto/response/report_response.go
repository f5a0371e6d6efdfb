package response

import "driveway_xpto/internal/domain/entities"

type OverdueBillResponse struct {
	BillID      int64  `json:"bill_id"`
	DueDate     Date   `json:"due_date"`
	Status      string `json:"status"`
	OverdueDays int64  `json:"overdue_days"`
}

func FromOverdueBills(bs []entities.OverdueBill) []OverdueBillResponse {
	out := make([]OverdueBillResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, OverdueBillResponse{
			BillID:      b.BillID,
			DueDate:     DateOf(b.DueDate),
			Status:      b.Status,
			OverdueDays: b.OverdueDays,
		})
	}
	return out
}
