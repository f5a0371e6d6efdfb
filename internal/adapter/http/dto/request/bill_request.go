package request

import "driveway_xpto/internal/domain/entities"

type BillActionRequest struct {
	BillID int64  `json:"bill_id"`
	Action string `json:"action"`
}

type BillNegotiationRequest struct {
	BillID         int64    `json:"bill_id"`
	ClientNote     string   `json:"client_note"`
	ContractorNote string   `json:"contractor_note"`
	FinalAmount    *float64 `json:"final_amount"`
}

func (r BillNegotiationRequest) ToEntity() entities.BillNegotiation {
	return entities.BillNegotiation{
		BillID:         r.BillID,
		ClientNote:     r.ClientNote,
		ContractorNote: r.ContractorNote,
		FinalAmount:    r.FinalAmount,
	}
}
