package request

// CreateWorkOrderRequest accepts a quote. ProposedPrice becomes the bill's
// initial amount.
type CreateWorkOrderRequest struct {
	QuoteID       int64   `json:"quote_id"`
	ProposedPrice float64 `json:"proposed_price"`
}

type OrderIDRequest struct {
	OrderID int64 `json:"order_id"`
}

type QuoteIDRequest struct {
	QuoteID int64 `json:"quote_id"`
}
