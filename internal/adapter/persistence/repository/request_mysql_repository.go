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
	requestColumns = `r.request_id, r.client_id, r.property_address, r.square_feet,
	r.proposed_price, r.note, r.status, r.submission_date`

	insertRequestSQL = `
INSERT INTO requests (client_id, property_address, square_feet, proposed_price, note, status, submission_date)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertRequestImageSQL = `
INSERT INTO request_images (request_id, image_url, ` + "`timestamp`" + `)
VALUES (?, ?, ?)`

	selectRequestDetailSQL = `
SELECT ` + requestColumns + `, c.first_name, c.last_name, c.email
FROM requests r
JOIN clients c ON c.client_id = r.client_id
WHERE r.request_id = ?`

	selectRequestImagesSQL = `
SELECT image_url FROM request_images WHERE request_id = ? ORDER BY image_id`

	selectRequestsSQL = `
SELECT ` + requestColumns + `
FROM requests r
ORDER BY r.request_id`

	selectRequestsByAddressSQL = `
SELECT ` + requestColumns + `
FROM requests r
WHERE r.property_address = ?
ORDER BY r.request_id`

	selectRequestsByClientSQL = `
SELECT ` + requestColumns + `
FROM requests r
WHERE r.client_id = ?
ORDER BY r.submission_date DESC, r.request_id DESC`

	updateRequestStatusSQL = `UPDATE requests SET status = ? WHERE request_id = ?`
)

type RequestMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IRequestRepository = (*RequestMySQLRepository)(nil)

func NewRequestMySQLRepository(db *sql.DB) *RequestMySQLRepository {
	return &RequestMySQLRepository{db: db}
}

// CreateWithImages inserts the request and all of its image rows in one
// transaction. Any failed insert rolls back the request as well.
func (r *RequestMySQLRepository) CreateWithImages(ctx context.Context, req entities.Request) (int64, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertRequestSQL,
			req.ClientID, req.PropertyAddress, req.SquareFeet, req.ProposedPrice,
			req.Note, req.Status, req.SubmissionDate,
		)
		if err != nil {
			return fmt.Errorf("insert request: %w", err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("request id: %w", err)
		}
		for _, url := range req.ImageURLs {
			if _, err := tx.ExecContext(ctx, insertRequestImageSQL, id, url, req.SubmissionDate); err != nil {
				return fmt.Errorf("insert request image: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RequestMySQLRepository) GetDetails(ctx context.Context, id int64) (entities.RequestDetail, error) {
	var (
		d                   entities.RequestDetail
		note                sql.NullString
		firstName, lastName string
	)
	err := r.db.QueryRowContext(ctx, selectRequestDetailSQL, id).Scan(
		&d.ID, &d.ClientID, &d.PropertyAddress, &d.SquareFeet,
		&d.ProposedPrice, &note, &d.Status, &d.SubmissionDate,
		&firstName, &lastName, &d.ClientEmail,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.RequestDetail{}, nil
	}
	if err != nil {
		return entities.RequestDetail{}, err
	}
	d.Note = note.String
	d.ClientName = entities.Client{FirstName: firstName, LastName: lastName}.FullName()

	urls, err := queryRows(ctx, r.db, selectRequestImagesSQL, func(s scanner) (string, error) {
		var u string
		err := s.Scan(&u)
		return u, err
	}, id)
	if err != nil {
		return entities.RequestDetail{}, fmt.Errorf("request images: %w", err)
	}
	d.ImageURLs = urls
	return d, nil
}

func (r *RequestMySQLRepository) ListAll(ctx context.Context) ([]entities.Request, error) {
	return queryRows(ctx, r.db, selectRequestsSQL, scanRequest)
}

func (r *RequestMySQLRepository) ListByAddress(ctx context.Context, address string) ([]entities.Request, error) {
	return queryRows(ctx, r.db, selectRequestsByAddressSQL, scanRequest, address)
}

// ListByClientID returns the client's requests newest first.
func (r *RequestMySQLRepository) ListByClientID(ctx context.Context, clientID int64) ([]entities.Request, error) {
	return queryRows(ctx, r.db, selectRequestsByClientSQL, scanRequest, clientID)
}

func (r *RequestMySQLRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateRequestStatusSQL, status, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func scanRequest(s scanner) (entities.Request, error) {
	var (
		req  entities.Request
		note sql.NullString
	)
	if err := s.Scan(&req.ID, &req.ClientID, &req.PropertyAddress, &req.SquareFeet,
		&req.ProposedPrice, &note, &req.Status, &req.SubmissionDate,
	); err != nil {
		return entities.Request{}, err
	}
	req.Note = note.String
	return req, nil
}
