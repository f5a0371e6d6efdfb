package response

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterClientResponse struct {
	Success  bool  `json:"success"`
	ClientID int64 `json:"clientId"`
}

type SubmitRequestResponse struct {
	Success   bool  `json:"success"`
	RequestID int64 `json:"requestId"`
}

type QuoteCreatedResponse struct {
	QuoteID int64 `json:"quoteId"`
}

type WorkOrderCreatedResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
	BillID  int64  `json:"bill_id"`
}

type NegotiationCreatedResponse struct {
	Message       string `json:"message"`
	NegotiationID int64  `json:"negotiation_id"`
	Version       int64  `json:"version"`
}

type PingResponse struct {
	Message string `json:"message"`
}
