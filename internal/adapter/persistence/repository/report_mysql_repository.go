package repository

import (
	"context"
	"database/sql"

	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
)

const (
	clientNameExpr = `CONCAT(c.first_name, ' ', c.last_name) AS client_name`

	bigClientsSQL = `
SELECT c.client_id, ` + clientNameExpr + `, COUNT(o.order_id) AS total_orders
FROM clients c
JOIN requests r ON r.client_id = c.client_id
JOIN quotes q ON q.request_id = r.request_id
JOIN orders o ON o.quote_id = q.quote_id
GROUP BY c.client_id, c.first_name, c.last_name
ORDER BY total_orders DESC
LIMIT 1`

	difficultClientsSQL = `
SELECT c.client_id, ` + clientNameExpr + `
FROM clients c
JOIN requests r ON r.client_id = c.client_id
LEFT JOIN quotes q ON q.request_id = r.request_id
GROUP BY c.client_id, c.first_name, c.last_name
HAVING COUNT(DISTINCT r.request_id) >= ? AND COUNT(q.quote_id) = 0`

	quotesInWindowSQL = `
SELECT q.quote_id, r.property_address, q.initial_price, q.proposed_price, q.status, q.` + "`timestamp`" + `
FROM quotes q
JOIN requests r ON r.request_id = q.request_id
WHERE q.` + "`timestamp`" + ` >= ? AND q.` + "`timestamp`" + ` < ?
ORDER BY q.` + "`timestamp`" + `, q.quote_id`

	prospectiveClientsSQL = `
SELECT c.client_id, ` + clientNameExpr + `
FROM clients c
LEFT JOIN requests r ON r.client_id = c.client_id
WHERE r.request_id IS NULL
ORDER BY c.client_id`

	largestDrivewaySQL = `
SELECT r.property_address, MAX(r.square_feet) AS largest_square_feet
FROM requests r
JOIN quotes q ON q.request_id = r.request_id
JOIN orders o ON o.quote_id = q.quote_id
GROUP BY r.property_address
ORDER BY largest_square_feet DESC
LIMIT 1`

	overdueBillsSQL = `
SELECT b.bill_id, b.due_date, b.status, DATEDIFF(CURRENT_DATE(), b.due_date) AS overdue_days
FROM bills b
WHERE b.due_date < CURRENT_DATE() - INTERVAL ? DAY
	AND b.status <> 'Paid'
ORDER BY overdue_days DESC, b.bill_id`

	badClientsSQL = `
SELECT c.client_id, ` + clientNameExpr + `
FROM clients c
JOIN requests r ON r.client_id = c.client_id
JOIN quotes q ON q.request_id = r.request_id
JOIN orders o ON o.quote_id = q.quote_id
JOIN bills b ON b.order_id = o.order_id
WHERE b.due_date < CURRENT_DATE() AND b.status <> 'Paid'
GROUP BY c.client_id, c.first_name, c.last_name
ORDER BY c.client_id`

	goodClientsSQL = `
SELECT c.client_id, ` + clientNameExpr + `
FROM clients c
JOIN requests r ON r.client_id = c.client_id
JOIN quotes q ON q.request_id = r.request_id
JOIN orders o ON o.quote_id = q.quote_id
JOIN bills b ON b.order_id = o.order_id
WHERE b.status = 'Paid'
GROUP BY c.client_id, c.first_name, c.last_name
ORDER BY c.client_id`

	revenueSQL = `
SELECT COALESCE(SUM(final_amount), 0) AS total_revenue
FROM bills
WHERE status = 'Paid'`
)

// ReportMySQLRepository runs the contractor reports. Status comparisons rely
// on the column's case-insensitive collation.
type ReportMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IReportRepository = (*ReportMySQLRepository)(nil)

func NewReportMySQLRepository(db *sql.DB) *ReportMySQLRepository {
	return &ReportMySQLRepository{db: db}
}

func (r *ReportMySQLRepository) BigClients(ctx context.Context) ([]entities.BigClient, error) {
	return queryRows(ctx, r.db, bigClientsSQL, func(s scanner) (entities.BigClient, error) {
		var b entities.BigClient
		err := s.Scan(&b.ClientID, &b.ClientName, &b.TotalOrders)
		return b, err
	})
}

func (r *ReportMySQLRepository) DifficultClients(ctx context.Context, minRequests int) ([]entities.ClientRef, error) {
	return queryRows(ctx, r.db, difficultClientsSQL, scanClientRef, minRequests)
}

func (r *ReportMySQLRepository) QuotesInWindow(ctx context.Context, w entities.TimeWindow) ([]entities.WindowQuote, error) {
	return queryRows(ctx, r.db, quotesInWindowSQL, func(s scanner) (entities.WindowQuote, error) {
		var q entities.WindowQuote
		err := s.Scan(&q.QuoteID, &q.PropertyAddress, &q.InitialPrice, &q.ProposedPrice, &q.Status, &q.CreatedAt)
		return q, err
	}, w.From, w.To)
}

func (r *ReportMySQLRepository) ProspectiveClients(ctx context.Context) ([]entities.ClientRef, error) {
	return queryRows(ctx, r.db, prospectiveClientsSQL, scanClientRef)
}

func (r *ReportMySQLRepository) LargestDriveway(ctx context.Context) ([]entities.LargestDriveway, error) {
	return queryRows(ctx, r.db, largestDrivewaySQL, func(s scanner) (entities.LargestDriveway, error) {
		var d entities.LargestDriveway
		err := s.Scan(&d.PropertyAddress, &d.LargestSquareFeet)
		return d, err
	})
}

func (r *ReportMySQLRepository) OverdueBills(ctx context.Context, graceDays int) ([]entities.OverdueBill, error) {
	return queryRows(ctx, r.db, overdueBillsSQL, func(s scanner) (entities.OverdueBill, error) {
		var b entities.OverdueBill
		err := s.Scan(&b.BillID, &b.DueDate, &b.Status, &b.OverdueDays)
		return b, err
	}, graceDays)
}

func (r *ReportMySQLRepository) BadClients(ctx context.Context) ([]entities.ClientRef, error) {
	return queryRows(ctx, r.db, badClientsSQL, scanClientRef)
}

func (r *ReportMySQLRepository) GoodClients(ctx context.Context) ([]entities.ClientRef, error) {
	return queryRows(ctx, r.db, goodClientsSQL, scanClientRef)
}

func (r *ReportMySQLRepository) Revenue(ctx context.Context) (entities.Revenue, error) {
	var rev entities.Revenue
	if err := r.db.QueryRowContext(ctx, revenueSQL).Scan(&rev.TotalRevenue); err != nil {
		return entities.Revenue{}, err
	}
	return rev, nil
}

func scanClientRef(s scanner) (entities.ClientRef, error) {
	var c entities.ClientRef
	err := s.Scan(&c.ClientID, &c.ClientName)
	return c, err
}
