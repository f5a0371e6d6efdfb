package request

import "driveway_xpto/internal/domain/entities"

// SubmitRequestRequest keeps ImageURLs nil when the field is absent so the
// use case can reject it; an empty list is a valid submission.
type SubmitRequestRequest struct {
	ClientID        int64    `json:"client_id"`
	PropertyAddress string   `json:"property_address"`
	SquareFeet      int64    `json:"square_feet"`
	ProposedPrice   float64  `json:"proposed_price"`
	Note            string   `json:"note"`
	ImageURLs       []string `json:"image_urls"`
}

func (r SubmitRequestRequest) ToEntity() entities.Request {
	return entities.Request{
		ClientID:        r.ClientID,
		PropertyAddress: r.PropertyAddress,
		SquareFeet:      r.SquareFeet,
		ProposedPrice:   r.ProposedPrice,
		Note:            r.Note,
		ImageURLs:       r.ImageURLs,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
