package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"errors"
	"log"
	"time"
)

// DefaultBillDueDays is how long a client has to pay a new bill.
const DefaultBillDueDays = 30

// IOrderUseCase covers accepting a quote into a work order (with its bill),
// completing it, and the order read paths.

type IOrderUseCase interface {
	CreateWorkOrder(ctx context.Context, quoteID int64, initialAmount float64) (entities.WorkOrderCreation, error)
	Complete(ctx context.Context, orderID int64) error
	GetDetails(ctx context.Context, quoteID int64) (*entities.WorkOrderDetails, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
}

type OrderUseCase struct {
	repo      interfaces.IOrderRepository
	quoteRepo interfaces.IQuoteRepository
	dueDays   int
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, quoteRepo interfaces.IQuoteRepository, dueDays int) *OrderUseCase {
	if dueDays <= 0 {
		dueDays = DefaultBillDueDays
	}
	return &OrderUseCase{repo: repo, quoteRepo: quoteRepo, dueDays: dueDays, now: time.Now}
}

// CreateWorkOrder accepts a quote: the order and its pending bill are written
// in one transaction, so an order never exists without its bill.
func (u *OrderUseCase) CreateWorkOrder(ctx context.Context, quoteID int64, initialAmount float64) (entities.WorkOrderCreation, error) {
	if quoteID <= 0 {
		return entities.WorkOrderCreation{}, ErrInvalidQuoteID
	}
	if initialAmount <= 0 {
		return entities.WorkOrderCreation{}, ErrInvalidAmount
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.WorkOrderCreation{}, persistenceError("load quote", err)
	}
	if q.ID == 0 {
		return entities.WorkOrderCreation{}, ErrQuoteNotFound
	}

	today := u.now().UTC().Truncate(24 * time.Hour)
	due := today.AddDate(0, 0, u.dueDays)

	created, err := u.repo.CreateWithBill(ctx, quoteID, initialAmount, due)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.WorkOrderCreation{}, ErrOrderAlreadyOpen
		}
		log.Printf("[order][usecase] create failed quote_id=%d err=%v", quoteID, err)
		return entities.WorkOrderCreation{}, persistenceError("create work order", err)
	}
	log.Printf("[order][usecase] work order created quote_id=%d order_id=%d bill_id=%d due=%s",
		quoteID, created.OrderID, created.BillID, due.Format(time.DateOnly))
	return created, nil
}

// Complete flips the order to Completed regardless of its current status.
func (u *OrderUseCase) Complete(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return ErrInvalidOrderID
	}
	updated, err := u.repo.Complete(ctx, orderID)
	if err != nil {
		return persistenceError("complete work order", err)
	}
	if !updated {
		return ErrOrderNotFound
	}
	log.Printf("[order][usecase] work order completed order_id=%d", orderID)
	return nil
}

// GetDetails returns nil, nil when the quote has not been accepted yet.
func (u *OrderUseCase) GetDetails(ctx context.Context, quoteID int64) (*entities.WorkOrderDetails, error) {
	if quoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}
	d, err := u.repo.GetDetailsByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, persistenceError("get work order details", err)
	}
	return d, nil
}

func (u *OrderUseCase) ListAll(ctx context.Context) ([]entities.Order, error) {
	orders, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list orders", err)
	}
	return nonNil(orders), nil
}
