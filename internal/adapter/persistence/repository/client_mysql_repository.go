package repository

import (
	"context"
	"database/sql"
	"errors"

	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
)

const (
	insertClientSQL = `
INSERT INTO clients (first_name, last_name, phone_number, credit_card_number,
	expiration_date, security_code, address, email, ` + "`timestamp`" + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectClientByPhoneSQL = `
SELECT client_id, first_name, last_name, phone_number, address, email, ` + "`timestamp`" + `
FROM clients
WHERE phone_number = ?
ORDER BY client_id
LIMIT 1`

	selectRequestHistorySQL = `
SELECT c.client_id, c.first_name, c.last_name,
	r.request_id, r.property_address, r.square_feet, r.status, r.submission_date,
	q.quote_id, q.proposed_price, q.latest_contractor_note, q.status AS quote_status
FROM clients c
LEFT JOIN requests r ON r.client_id = c.client_id
LEFT JOIN quotes q ON q.request_id = r.request_id
WHERE c.phone_number = ?`
)

// ClientMySQLRepository persists clients. Card fields are written but never
// read back by any query here.
type ClientMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IClientRepository = (*ClientMySQLRepository)(nil)

func NewClientMySQLRepository(db *sql.DB) *ClientMySQLRepository {
	return &ClientMySQLRepository{db: db}
}

func (r *ClientMySQLRepository) Create(ctx context.Context, c entities.Client) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertClientSQL,
		c.FirstName, c.LastName, c.PhoneNumber, c.CreditCardNumber,
		c.ExpirationDate, c.SecurityCode, c.Address, c.Email, c.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ClientMySQLRepository) GetByPhone(ctx context.Context, phone string) (entities.Client, error) {
	var c entities.Client
	err := r.db.QueryRowContext(ctx, selectClientByPhoneSQL, phone).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Address, &c.Email, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientMySQLRepository) ListRequestHistoryByPhone(ctx context.Context, phone string) ([]entities.ClientRequestHistory, error) {
	return queryRows(ctx, r.db, selectRequestHistorySQL, scanRequestHistory, phone)
}

func scanRequestHistory(s scanner) (entities.ClientRequestHistory, error) {
	var (
		h              entities.ClientRequestHistory
		requestID      sql.NullInt64
		address        sql.NullString
		squareFeet     sql.NullInt64
		status         sql.NullString
		submitted      sql.NullTime
		quoteID        sql.NullInt64
		proposedPrice  sql.NullFloat64
		contractorNote sql.NullString
		quoteStatus    sql.NullString
	)
	if err := s.Scan(&h.ClientID, &h.FirstName, &h.LastName,
		&requestID, &address, &squareFeet, &status, &submitted,
		&quoteID, &proposedPrice, &contractorNote, &quoteStatus,
	); err != nil {
		return entities.ClientRequestHistory{}, err
	}
	h.RequestID = int64Ptr(requestID)
	h.PropertyAddress = stringPtr(address)
	h.SquareFeet = int64Ptr(squareFeet)
	h.Status = stringPtr(status)
	h.SubmissionDate = timePtr(submitted)
	h.QuoteID = int64Ptr(quoteID)
	h.ProposedPrice = floatPtr(proposedPrice)
	h.LatestContractorNote = stringPtr(contractorNote)
	h.QuoteStatus = stringPtr(quoteStatus)
	return h, nil
}
