package response

import (
	"time"

	"driveway_xpto/internal/domain/entities"
)

type RequestResponse struct {
	RequestID       int64     `json:"request_id"`
	ClientID        int64     `json:"client_id"`
	PropertyAddress string    `json:"property_address"`
	SquareFeet      int64     `json:"square_feet"`
	ProposedPrice   float64   `json:"proposed_price"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
	SubmissionDate  time.Time `json:"submission_date"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
}

type RequestDetailResponse struct {
	RequestResponse
	ImageURLs   []string `json:"image_urls"`
	ClientName  string   `json:"client_name"`
	ClientEmail string   `json:"client_email"`
}

type AddressLookupResponse struct {
	Success  bool              `json:"success"`
	Requests []RequestResponse `json:"requests"`
}

type StatusLookupResponse struct {
	Data  []entities.ClientRequestHistory `json:"data"`
	Found bool                            `json:"found"`
}

func FromRequest(r entities.Request) RequestResponse {
	return RequestResponse{
		RequestID:       r.ID,
		ClientID:        r.ClientID,
		PropertyAddress: r.PropertyAddress,
		SquareFeet:      r.SquareFeet,
		ProposedPrice:   r.ProposedPrice,
		Note:            r.Note,
		Status:          r.Status,
		SubmissionDate:  r.SubmissionDate,
		ImageURLs:       r.ImageURLs,
	}
}

func FromRequests(rs []entities.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequest(r))
	}
	return out
}

func FromRequestDetail(d entities.RequestDetail) RequestDetailResponse {
	urls := d.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return RequestDetailResponse{
		RequestResponse: FromRequest(d.Request),
		ImageURLs:       urls,
		ClientName:      d.ClientName,
		ClientEmail:     d.ClientEmail,
	}
}
