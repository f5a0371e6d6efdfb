package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
)

const (
	billColumns = `b.bill_id, b.order_id, b.initial_amount, b.final_amount,
	b.status, b.due_date, b.client_note, b.` + "`timestamp`"

	billNegotiationColumns = `bn.negotiation_id, bn.bill_id, bn.version, bn.client_note,
	bn.contractor_note, bn.final_amount, bn.` + "`timestamp`"

	selectBillByIDSQL = `
SELECT ` + billColumns + `
FROM bills b
WHERE b.bill_id = ?`

	selectBillsSQL = `
SELECT ` + billColumns + `
FROM bills b
ORDER BY b.bill_id`

	selectBillsByRequestSQL = `
SELECT ` + billColumns + `
FROM bills b
JOIN orders o ON o.order_id = b.order_id
JOIN quotes q ON q.quote_id = o.quote_id
WHERE q.request_id = ?
ORDER BY b.bill_id`

	updateBillStatusSQL = `UPDATE bills SET status = ? WHERE bill_id = ?`

	settleBillSQL = `
UPDATE bills b
SET b.status = ?,
	b.final_amount = COALESCE(
		b.final_amount,
		(SELECT bn.final_amount FROM bill_negotiations bn
		 WHERE bn.bill_id = b.bill_id AND bn.final_amount IS NOT NULL
		 ORDER BY bn.version DESC LIMIT 1),
		b.initial_amount)
WHERE b.bill_id = ?`

	lockBillSQL = `SELECT bill_id FROM bills WHERE bill_id = ? FOR UPDATE`

	insertBillNegotiationSQL = `
INSERT INTO bill_negotiations (bill_id, client_note, contractor_note, final_amount,
	` + "`timestamp`" + `, version)
SELECT ?, ?, ?, ?, ?, COALESCE(MAX(version), 0) + 1
FROM bill_negotiations
WHERE bill_id = ?`

	selectBillNegotiationVersionSQL = `SELECT version FROM bill_negotiations WHERE negotiation_id = ?`

	updateBillClientNoteSQL = `UPDATE bills SET client_note = ? WHERE bill_id = ?`

	selectBillNegotiationsSQL = `
SELECT ` + billNegotiationColumns + `
FROM bill_negotiations bn
WHERE bn.bill_id = ?
ORDER BY bn.version`

	selectBillNegotiationsByRequestSQL = `
SELECT ` + billNegotiationColumns + `
FROM bill_negotiations bn
JOIN bills b ON b.bill_id = bn.bill_id
JOIN orders o ON o.order_id = b.order_id
JOIN quotes q ON q.quote_id = o.quote_id
WHERE q.request_id = ?
ORDER BY bn.bill_id, bn.version`
)

type BillMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IBillRepository = (*BillMySQLRepository)(nil)

func NewBillMySQLRepository(db *sql.DB) *BillMySQLRepository {
	return &BillMySQLRepository{db: db}
}

func (r *BillMySQLRepository) GetByID(ctx context.Context, id int64) (entities.Bill, error) {
	b, err := scanBill(r.db.QueryRowContext(ctx, selectBillByIDSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Bill{}, nil
	}
	return b, err
}

func (r *BillMySQLRepository) ListAll(ctx context.Context) ([]entities.Bill, error) {
	return queryRows(ctx, r.db, selectBillsSQL, scanBill)
}

func (r *BillMySQLRepository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Bill, error) {
	return queryRows(ctx, r.db, selectBillsByRequestSQL, scanBill, requestID)
}

// UpdateStatus writes status. With settle, an empty final_amount is filled
// from the latest negotiated amount, falling back to the initial amount.
func (r *BillMySQLRepository) UpdateStatus(ctx context.Context, id int64, status entities.BillStatus, settle bool) (bool, error) {
	query := updateBillStatusSQL
	if settle {
		query = settleBillSQL
	}
	res, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// AppendNegotiation follows the same lock-then-insert scheme as quote
// negotiations. A non-empty client note is copied onto the bill.
func (r *BillMySQLRepository) AppendNegotiation(ctx context.Context, n entities.BillNegotiation) (entities.BillNegotiation, error) {
	var out entities.BillNegotiation
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var locked int64
		err := tx.QueryRowContext(ctx, lockBillSQL, n.BillID).Scan(&locked)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock bill: %w", err)
		}

		res, err := tx.ExecContext(ctx, insertBillNegotiationSQL,
			n.BillID, n.ClientNote, n.ContractorNote, nullableFloat(n.FinalAmount), n.CreatedAt,
			n.BillID,
		)
		if err != nil {
			return fmt.Errorf("insert bill negotiation: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("bill negotiation id: %w", err)
		}

		var version int64
		if err := tx.QueryRowContext(ctx, selectBillNegotiationVersionSQL, id).Scan(&version); err != nil {
			return fmt.Errorf("bill negotiation version: %w", err)
		}

		if n.ClientNote != "" {
			if _, err := tx.ExecContext(ctx, updateBillClientNoteSQL, n.ClientNote, n.BillID); err != nil {
				return fmt.Errorf("update bill note: %w", err)
			}
		}

		out = n
		out.ID = id
		out.Version = version
		return nil
	})
	if err != nil {
		return entities.BillNegotiation{}, err
	}
	return out, nil
}

func (r *BillMySQLRepository) ListNegotiations(ctx context.Context, billID int64) ([]entities.BillNegotiation, error) {
	return queryRows(ctx, r.db, selectBillNegotiationsSQL, scanBillNegotiation, billID)
}

func (r *BillMySQLRepository) ListNegotiationsByRequestID(ctx context.Context, requestID int64) ([]entities.BillNegotiation, error) {
	return queryRows(ctx, r.db, selectBillNegotiationsByRequestSQL, scanBillNegotiation, requestID)
}

func scanBill(s scanner) (entities.Bill, error) {
	var (
		b          entities.Bill
		final      sql.NullFloat64
		status     string
		clientNote sql.NullString
	)
	if err := s.Scan(&b.ID, &b.OrderID, &b.InitialAmount, &final,
		&status, &b.DueDate, &clientNote, &b.CreatedAt,
	); err != nil {
		return entities.Bill{}, err
	}
	b.FinalAmount = floatPtr(final)
	b.Status = entities.BillStatus(status)
	b.ClientNote = clientNote.String
	return b, nil
}

func scanBillNegotiation(s scanner) (entities.BillNegotiation, error) {
	var (
		n                          entities.BillNegotiation
		clientNote, contractorNote sql.NullString
		final                      sql.NullFloat64
	)
	if err := s.Scan(&n.ID, &n.BillID, &n.Version, &clientNote,
		&contractorNote, &final, &n.CreatedAt,
	); err != nil {
		return entities.BillNegotiation{}, err
	}
	n.ClientNote = clientNote.String
	n.ContractorNote = contractorNote.String
	n.FinalAmount = floatPtr(final)
	return n, nil
}
