package entities

import "time"

// RequestStatusPending is the status every request starts with. Contractors
// may later overwrite it with any non-empty string.
const RequestStatusPending = "Pending"

// Request is a client's ask for driveway work at a property.
type Request struct {
	ID              int64     `json:"request_id"`
	ClientID        int64     `json:"client_id"`
	PropertyAddress string    `json:"property_address"`
	SquareFeet      int64     `json:"square_feet"`
	ProposedPrice   float64   `json:"proposed_price"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
	SubmissionDate  time.Time `json:"submission_date"`
	ImageURLs       []string  `json:"image_urls,omitempty"`
}

// RequestImage is owned by exactly one Request and created in the same
// transaction as it.
type RequestImage struct {
	ID        int64     `json:"image_id"`
	RequestID int64     `json:"request_id"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"timestamp"`
}

// RequestDetail enriches a Request with its owner's name and email.
type RequestDetail struct {
	Request
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}
