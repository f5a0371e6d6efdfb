package response

import (
	"time"

	"driveway_xpto/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID              int64     `json:"quote_id"`
	RequestID            int64     `json:"request_id"`
	InitialPrice         float64   `json:"initial_price"`
	ProposedPrice        float64   `json:"proposed_price"`
	WorkStartDate        *Date     `json:"work_start_date"`
	WorkEndDate          *Date     `json:"work_end_date"`
	Status               string    `json:"status"`
	LatestClientNote     string    `json:"latest_client_note"`
	LatestContractorNote string    `json:"latest_contractor_note"`
	CreatedAt            time.Time `json:"timestamp"`
}

type QuoteNegotiationResponse struct {
	NegotiationID  int64     `json:"negotiation_id"`
	QuoteID        int64     `json:"quote_id"`
	Version        int64     `json:"version"`
	ClientNote     string    `json:"client_note"`
	ContractorNote string    `json:"contractor_note"`
	PriceOffer     *float64  `json:"price_offer"`
	WorkStartDate  *Date     `json:"work_start_date"`
	WorkEndDate    *Date     `json:"work_end_date"`
	CreatedAt      time.Time `json:"timestamp"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:              q.ID,
		RequestID:            q.RequestID,
		InitialPrice:         q.InitialPrice,
		ProposedPrice:        q.ProposedPrice,
		WorkStartDate:        DatePtr(q.WorkStartDate),
		WorkEndDate:          DatePtr(q.WorkEndDate),
		Status:               string(q.Status),
		LatestClientNote:     q.LatestClientNote,
		LatestContractorNote: q.LatestContractorNote,
		CreatedAt:            q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromQuoteNegotiation(n entities.QuoteNegotiation) QuoteNegotiationResponse {
	return QuoteNegotiationResponse{
		NegotiationID:  n.ID,
		QuoteID:        n.QuoteID,
		Version:        n.Version,
		ClientNote:     n.ClientNote,
		ContractorNote: n.ContractorNote,
		PriceOffer:     n.PriceOffer,
		WorkStartDate:  DatePtr(n.WorkStartDate),
		WorkEndDate:    DatePtr(n.WorkEndDate),
		CreatedAt:      n.CreatedAt,
	}
}

func FromQuoteNegotiations(ns []entities.QuoteNegotiation) []QuoteNegotiationResponse {
	out := make([]QuoteNegotiationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromQuoteNegotiation(n))
	}
	return out
}
