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
	quoteColumns = `q.quote_id, q.request_id, q.initial_price, q.proposed_price,
	q.work_start_date, q.work_end_date, q.status, q.latest_client_note,
	q.latest_contractor_note, q.` + "`timestamp`"

	quoteNegotiationColumns = `qn.negotiation_id, qn.quote_id, qn.version, qn.client_note,
	qn.contractor_note, qn.price_offer, qn.work_start_date, qn.work_end_date, qn.` + "`timestamp`"

	insertQuoteSQL = `
INSERT INTO quotes (request_id, initial_price, proposed_price, work_start_date,
	work_end_date, status, latest_contractor_note, ` + "`timestamp`" + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	selectQuoteByIDSQL = `
SELECT ` + quoteColumns + `
FROM quotes q
WHERE q.quote_id = ?`

	selectQuotesSQL = `
SELECT ` + quoteColumns + `
FROM quotes q
ORDER BY q.quote_id`

	selectQuotesByRequestSQL = `
SELECT ` + quoteColumns + `
FROM quotes q
WHERE q.request_id = ?
ORDER BY q.quote_id`

	updateQuoteStatusSQL = `UPDATE quotes SET status = ? WHERE quote_id = ?`

	lockQuoteSQL = `SELECT quote_id FROM quotes WHERE quote_id = ? FOR UPDATE`

	insertQuoteNegotiationSQL = `
INSERT INTO quote_negotiations (quote_id, client_note, contractor_note, price_offer,
	work_start_date, work_end_date, ` + "`timestamp`" + `, version)
SELECT ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(version), 0) + 1
FROM quote_negotiations
WHERE quote_id = ?`

	selectQuoteNegotiationVersionSQL = `SELECT version FROM quote_negotiations WHERE negotiation_id = ?`

	updateQuoteNotesSQL = `
UPDATE quotes
SET latest_client_note = COALESCE(NULLIF(?, ''), latest_client_note),
	latest_contractor_note = COALESCE(NULLIF(?, ''), latest_contractor_note)
WHERE quote_id = ?`

	selectQuoteNegotiationsSQL = `
SELECT ` + quoteNegotiationColumns + `
FROM quote_negotiations qn
WHERE qn.quote_id = ?
ORDER BY qn.version`

	selectQuoteNegotiationsByRequestSQL = `
SELECT ` + quoteNegotiationColumns + `
FROM quote_negotiations qn
JOIN quotes q ON q.quote_id = qn.quote_id
WHERE q.request_id = ?
ORDER BY qn.quote_id, qn.version`
)

type QuoteMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRepository = (*QuoteMySQLRepository)(nil)

func NewQuoteMySQLRepository(db *sql.DB) *QuoteMySQLRepository {
	return &QuoteMySQLRepository{db: db}
}

func (r *QuoteMySQLRepository) Create(ctx context.Context, q entities.Quote) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertQuoteSQL,
		q.RequestID, q.InitialPrice, q.ProposedPrice,
		nullableTime(q.WorkStartDate), nullableTime(q.WorkEndDate),
		string(q.Status), q.LatestContractorNote, q.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *QuoteMySQLRepository) GetByID(ctx context.Context, id int64) (entities.Quote, error) {
	q, err := scanQuote(r.db.QueryRowContext(ctx, selectQuoteByIDSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	return q, err
}

func (r *QuoteMySQLRepository) ListAll(ctx context.Context) ([]entities.Quote, error) {
	return queryRows(ctx, r.db, selectQuotesSQL, scanQuote)
}

func (r *QuoteMySQLRepository) ListByRequestID(ctx context.Context, requestID int64) ([]entities.Quote, error) {
	return queryRows(ctx, r.db, selectQuotesByRequestSQL, scanQuote, requestID)
}

func (r *QuoteMySQLRepository) UpdateStatus(ctx context.Context, id int64, status entities.QuoteStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateQuoteStatusSQL, string(status), id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// AppendNegotiation locks the parent quote row, then derives the next version
// inside the INSERT itself. Concurrent appends for one quote queue on the row
// lock, so versions stay contiguous. A missing quote yields a zero value.
func (r *QuoteMySQLRepository) AppendNegotiation(ctx context.Context, n entities.QuoteNegotiation) (entities.QuoteNegotiation, error) {
	var out entities.QuoteNegotiation
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var locked int64
		err := tx.QueryRowContext(ctx, lockQuoteSQL, n.QuoteID).Scan(&locked)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock quote: %w", err)
		}

		res, err := tx.ExecContext(ctx, insertQuoteNegotiationSQL,
			n.QuoteID, n.ClientNote, n.ContractorNote, nullableFloat(n.PriceOffer),
			nullableTime(n.WorkStartDate), nullableTime(n.WorkEndDate), n.CreatedAt,
			n.QuoteID,
		)
		if err != nil {
			return fmt.Errorf("insert quote negotiation: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("quote negotiation id: %w", err)
		}

		var version int64
		if err := tx.QueryRowContext(ctx, selectQuoteNegotiationVersionSQL, id).Scan(&version); err != nil {
			return fmt.Errorf("quote negotiation version: %w", err)
		}

		if _, err := tx.ExecContext(ctx, updateQuoteNotesSQL, n.ClientNote, n.ContractorNote, n.QuoteID); err != nil {
			return fmt.Errorf("refresh quote notes: %w", err)
		}

		out = n
		out.ID = id
		out.Version = version
		return nil
	})
	if err != nil {
		return entities.QuoteNegotiation{}, err
	}
	return out, nil
}

func (r *QuoteMySQLRepository) ListNegotiations(ctx context.Context, quoteID int64) ([]entities.QuoteNegotiation, error) {
	return queryRows(ctx, r.db, selectQuoteNegotiationsSQL, scanQuoteNegotiation, quoteID)
}

func (r *QuoteMySQLRepository) ListNegotiationsByRequestID(ctx context.Context, requestID int64) ([]entities.QuoteNegotiation, error) {
	return queryRows(ctx, r.db, selectQuoteNegotiationsByRequestSQL, scanQuoteNegotiation, requestID)
}

func scanQuote(s scanner) (entities.Quote, error) {
	var (
		q                          entities.Quote
		status                     string
		start, end                 sql.NullTime
		clientNote, contractorNote sql.NullString
	)
	if err := s.Scan(&q.ID, &q.RequestID, &q.InitialPrice, &q.ProposedPrice,
		&start, &end, &status, &clientNote, &contractorNote, &q.CreatedAt,
	); err != nil {
		return entities.Quote{}, err
	}
	q.WorkStartDate = timePtr(start)
	q.WorkEndDate = timePtr(end)
	q.Status = entities.QuoteStatus(status)
	q.LatestClientNote = clientNote.String
	q.LatestContractorNote = contractorNote.String
	return q, nil
}

func scanQuoteNegotiation(s scanner) (entities.QuoteNegotiation, error) {
	var (
		n                          entities.QuoteNegotiation
		clientNote, contractorNote sql.NullString
		price                      sql.NullFloat64
		start, end                 sql.NullTime
	)
	if err := s.Scan(&n.ID, &n.QuoteID, &n.Version, &clientNote,
		&contractorNote, &price, &start, &end, &n.CreatedAt,
	); err != nil {
		return entities.QuoteNegotiation{}, err
	}
	n.ClientNote = clientNote.String
	n.ContractorNote = contractorNote.String
	n.PriceOffer = floatPtr(price)
	n.WorkStartDate = timePtr(start)
	n.WorkEndDate = timePtr(end)
	return n, nil
}
