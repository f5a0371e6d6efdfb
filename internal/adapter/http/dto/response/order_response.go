package response

import "driveway_xpto/internal/domain/entities"

type OrderResponse struct {
	OrderID   int64  `json:"order_id"`
	QuoteID   int64  `json:"quote_id"`
	Status    string `json:"status"`
	OrderDate Date   `json:"order_date"`
}

type WorkOrderDetails struct {
	OrderID        int64    `json:"order_id"`
	OrderStatus    string   `json:"order_status"`
	OrderDate      Date     `json:"order_date"`
	BillID         *int64   `json:"bill_id"`
	InitialAmount  *float64 `json:"initial_amount"`
	BillStatus     *string  `json:"bill_status"`
	DueDate        *Date    `json:"due_date"`
	BillClientNote *string  `json:"bill_client_note"`
}

// WorkOrderDetailsResponse carries null details for a quote not yet accepted.
type WorkOrderDetailsResponse struct {
	WorkOrderDetails *WorkOrderDetails `json:"workOrderDetails"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:   o.ID,
		QuoteID:   o.QuoteID,
		Status:    string(o.Status),
		OrderDate: DateOf(o.OrderDate),
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromWorkOrderDetails(d *entities.WorkOrderDetails) WorkOrderDetailsResponse {
	if d == nil {
		return WorkOrderDetailsResponse{}
	}
	return WorkOrderDetailsResponse{WorkOrderDetails: &WorkOrderDetails{
		OrderID:        d.OrderID,
		OrderStatus:    string(d.OrderStatus),
		OrderDate:      DateOf(d.OrderDate),
		BillID:         d.BillID,
		InitialAmount:  d.InitialAmount,
		BillStatus:     d.BillStatus,
		DueDate:        DatePtr(d.DueDate),
		BillClientNote: d.BillClientNote,
	}}
}
