package entities

import "time"

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusCompleted  OrderStatus = "Completed"
)

// Order is the work order spawned by an accepted quote.
type Order struct {
	ID        int64       `json:"order_id"`
	QuoteID   int64       `json:"quote_id"`
	Status    OrderStatus `json:"status"`
	OrderDate time.Time   `json:"order_date"`
}

// WorkOrderCreation holds the ids written by accepting a quote.
type WorkOrderCreation struct {
	OrderID int64
	BillID  int64
}

// WorkOrderDetails is an order LEFT JOIN its bill. Bill columns are nil when
// no bill exists for the order.
type WorkOrderDetails struct {
	OrderID        int64       `json:"order_id"`
	OrderStatus    OrderStatus `json:"order_status"`
	OrderDate      time.Time   `json:"order_date"`
	BillID         *int64      `json:"bill_id"`
	InitialAmount  *float64    `json:"initial_amount"`
	BillStatus     *string     `json:"bill_status"`
	DueDate        *time.Time  `json:"due_date"`
	BillClientNote *string     `json:"bill_client_note"`
}
