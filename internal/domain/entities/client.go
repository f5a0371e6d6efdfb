package entities

import "time"

// Client is a registered customer of the contractor.
//
// Payment fields are stored as given; nothing in this service charges cards.
type Client struct {
	ID               int64     `json:"client_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	PhoneNumber      string    `json:"phone_number"`
	CreditCardNumber string    `json:"credit_card_number,omitempty"`
	ExpirationDate   string    `json:"expiration_date,omitempty"`
	SecurityCode     string    `json:"security_code,omitempty"`
	Address          string    `json:"address"`
	Email            string    `json:"email"`
	CreatedAt        time.Time `json:"timestamp"`
}

// FullName joins first and last name the way reports and request details show it.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ClientRequestHistory is one row of the phone-number status lookup:
// client LEFT JOIN requests LEFT JOIN quotes. Request and quote columns are
// nil when the client has no request (or the request has no quote).
type ClientRequestHistory struct {
	ClientID             int64      `json:"client_id"`
	FirstName            string     `json:"first_name"`
	LastName             string     `json:"last_name"`
	RequestID            *int64     `json:"request_id"`
	PropertyAddress      *string    `json:"property_address"`
	SquareFeet           *int64     `json:"square_feet"`
	Status               *string    `json:"status"`
	SubmissionDate       *time.Time `json:"submission_date"`
	QuoteID              *int64     `json:"quote_id"`
	ProposedPrice        *float64   `json:"proposed_price"`
	LatestContractorNote *string    `json:"latest_contractor_note"`
	QuoteStatus          *string    `json:"quote_status"`
}
