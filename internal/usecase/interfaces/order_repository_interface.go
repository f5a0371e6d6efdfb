package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"time"
)

// IOrderRepository abstracts MySQL persistence for work orders.
//
// CreateWithBill writes the order and its initial bill in one transaction and
// returns ErrAlreadyExists when the quote already has an order.

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mocks

type IOrderRepository interface {
	CreateWithBill(ctx context.Context, quoteID int64, initialAmount float64, dueDate time.Time) (entities.WorkOrderCreation, error)
	Complete(ctx context.Context, orderID int64) (bool, error)
	GetDetailsByQuoteID(ctx context.Context, quoteID int64) (*entities.WorkOrderDetails, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Order, error)
}
