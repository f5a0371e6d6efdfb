package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
)

const (
	orderColumns = `o.order_id, o.quote_id, o.status, o.order_date`

	insertOrderSQL = `
INSERT INTO orders (quote_id, status, order_date)
VALUES (?, ?, CURDATE())`

	insertBillSQL = `
INSERT INTO bills (order_id, initial_amount, status, due_date, client_note)
VALUES (?, ?, ?, ?, '')`

	completeOrderSQL = `UPDATE orders SET status = ? WHERE order_id = ?`

	selectWorkOrderDetailsSQL = `
SELECT o.order_id, o.status AS order_status, o.order_date,
	b.bill_id, b.initial_amount, b.status AS bill_status, b.due_date,
	b.client_note AS bill_client_note
FROM orders o
LEFT JOIN bills b ON b.order_id = o.order_id
WHERE o.quote_id = ?
ORDER BY b.bill_id
LIMIT 1`

	selectOrdersSQL = `
SELECT ` + orderColumns + `
FROM orders o
ORDER BY o.order_id`

	selectOrdersByRequestSQL = `
SELECT ` + orderColumns + `
FROM orders o
JOIN quotes q ON q.quote_id = o.quote_id
WHERE q.request_id = ?
ORDER BY o.order_id`
)

type OrderMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IOrderRepository = (*OrderMySQLRepository)(nil)

func NewOrderMySQLRepository(db *sql.DB) *OrderMySQLRepository {
	return &OrderMySQLRepository{db: db}
}

// CreateWithBill writes an In Progress order dated today and its Pending bill
// in one transaction. A second order for the same quote trips the unique key
// on orders.quote_id and comes back as ErrAlreadyExists.
func (r *OrderMySQLRepository) CreateWithBill(ctx context.Context, quoteID int64, initialAmount float64, dueDate time.Time) (entities.WorkOrderCreation, error) {
	var out entities.WorkOrderCreation
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertOrderSQL, quoteID, string(entities.OrderStatusInProgress))
		if err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("insert order: %w", interfaces.ErrAlreadyExists)
			}
			return fmt.Errorf("insert order: %w", err)
		}
		if out.OrderID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("order id: %w", err)
		}

		res, err = tx.ExecContext(ctx, insertBillSQL, out.OrderID, initialAmount, string(entities.BillStatusPending), dueDate)
		if err != nil {
			return fmt.Errorf("insert bill: %w", err)
		}
		if out.BillID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("bill id: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.WorkOrderCreation{}, err
	}
	return out, nil
}

func (r *OrderMySQLRepository) Complete(ctx context.Context, orderID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, completeOrderSQL, string(entities.OrderStatusCompleted), orderID)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// GetDetailsByQuoteID returns nil when the quote has no order.
func (r *OrderMySQLRepository) GetDetailsByQuoteID(ctx context.Context, quoteID int64) (*entities.WorkOrderDetails, error) {
	var (
		d             entities.WorkOrderDetails
		orderStatus   string
		billID        sql.NullInt64
		initialAmount sql.NullFloat64
		billStatus    sql.NullString
		dueDate       sql.NullTime
		clientNote    sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectWorkOrderDetailsSQL, quoteID).Scan(
		&d.OrderID, &orderStatus, &d.OrderDate,
		&billID, &initialAmount, &billStatus, &dueDate, &clientNote,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d.OrderStatus = entities.OrderStatus(orderStatus)
	d.BillID = int64Ptr(billID)
	d.InitialAmount = floatPtr(initialAmount)
	d.BillStatus = stringPtr(billStatus)
	d.DueDate = timePtr(dueDate)
	d.BillClientNote = stringPtr(clientNote)
	return &d, nil
}

func (r *OrderMySQLRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	return queryRows(ctx, r.db, selectOrdersSQL, scanOrder)
}

func (r *OrderMySQLRepository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Order, error) {
	return queryRows(ctx, r.db, selectOrdersByRequestSQL, scanOrder, requestID)
}

func scanOrder(s scanner) (entities.Order, error) {
	var (
		o      entities.Order
		status string
	)
	if err := s.Scan(&o.ID, &o.QuoteID, &status, &o.OrderDate); err != nil {
		return entities.Order{}, err
	}
	o.Status = entities.OrderStatus(status)
	return o, nil
}
