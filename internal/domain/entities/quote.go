package entities

import "time"

// QuoteStatus is the lifecycle of a quote. Quotes start pending and move to
// whatever the last applied action was.
type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusNegotiating QuoteStatus = "negotiating"
	QuoteStatusCancelled   QuoteStatus = "cancelled"
)

// Quote is the contractor's priced proposal against a Request.
type Quote struct {
	ID                   int64       `json:"quote_id"`
	RequestID            int64       `json:"request_id"`
	InitialPrice         float64     `json:"initial_price"`
	ProposedPrice        float64     `json:"proposed_price"`
	WorkStartDate        *time.Time  `json:"work_start_date"`
	WorkEndDate          *time.Time  `json:"work_end_date"`
	Status               QuoteStatus `json:"status"`
	LatestClientNote     string      `json:"latest_client_note"`
	LatestContractorNote string      `json:"latest_contractor_note"`
	CreatedAt            time.Time   `json:"timestamp"`
}

// QuoteNegotiation is one append-only counter-offer on a quote. Version is
// unique per quote and starts at 1.
type QuoteNegotiation struct {
	ID             int64      `json:"negotiation_id"`
	QuoteID        int64      `json:"quote_id"`
	Version        int64      `json:"version"`
	ClientNote     string     `json:"client_note"`
	ContractorNote string     `json:"contractor_note"`
	PriceOffer     *float64   `json:"price_offer"`
	WorkStartDate  *time.Time `json:"work_start_date"`
	WorkEndDate    *time.Time `json:"work_end_date"`
	CreatedAt      time.Time  `json:"timestamp"`
}
