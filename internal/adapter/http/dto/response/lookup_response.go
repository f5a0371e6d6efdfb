package response

import "driveway_xpto/internal/domain/entities"

// RequestAggregateResponse flattens the request fields next to its children.
type RequestAggregateResponse struct {
	RequestResponse
	Quotes            []QuoteResponse            `json:"quotes"`
	QuoteNegotiations []QuoteNegotiationResponse `json:"quote_negotiations"`
	Orders            []OrderResponse            `json:"orders"`
	Bills             []BillResponse             `json:"bills"`
	BillNegotiations  []BillNegotiationResponse  `json:"bill_negotiations"`
}

func FromAggregates(aggs []entities.RequestAggregate) []RequestAggregateResponse {
	out := make([]RequestAggregateResponse, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, RequestAggregateResponse{
			RequestResponse:   FromRequest(a.Request),
			Quotes:            FromQuotes(a.Quotes),
			QuoteNegotiations: FromQuoteNegotiations(a.QuoteNegotiations),
			Orders:            FromOrders(a.Orders),
			Bills:             FromBills(a.Bills),
			BillNegotiations:  FromBillNegotiations(a.BillNegotiations),
		})
	}
	return out
}
