package entities

// RequestAggregate is everything attached to one request, assembled by the
// comprehensive lookup.
type RequestAggregate struct {
	Request
	Quotes            []Quote            `json:"quotes"`
	QuoteNegotiations []QuoteNegotiation `json:"quote_negotiations"`
	Orders            []Order            `json:"orders"`
	Bills             []Bill             `json:"bills"`
	BillNegotiations  []BillNegotiation  `json:"bill_negotiations"`
}
