package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below matches exactly one of them through
// errors.Is, which is what the HTTP adapters map to status codes.
var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence error")
)

var (
	ErrMissingClientField  = newKindError(ErrValidation, "missing required client field")
	ErrInvalidClientID     = newKindError(ErrValidation, "invalid client_id")
	ErrInvalidAddress      = newKindError(ErrValidation, "invalid property address")
	ErrInvalidImageURLs    = newKindError(ErrValidation, "invalid image_urls")
	ErrInvalidPhone        = newKindError(ErrValidation, "invalid phone number")
	ErrInvalidRequestID    = newKindError(ErrValidation, "invalid request id")
	ErrInvalidStatus       = newKindError(ErrValidation, "invalid status")
	ErrInvalidQuoteID      = newKindError(ErrValidation, "invalid quote id")
	ErrInvalidQuotePrice   = newKindError(ErrValidation, "invalid quote price")
	ErrInvalidWorkWindow   = newKindError(ErrValidation, "work end date before start date")
	ErrInvalidAction       = newKindError(ErrValidation, "invalid action")
	ErrInvalidOrderID      = newKindError(ErrValidation, "invalid order id")
	ErrInvalidBillID       = newKindError(ErrValidation, "invalid bill id")
	ErrInvalidAmount       = newKindError(ErrValidation, "invalid amount")
	ErrInvalidReportWindow = newKindError(ErrValidation, "invalid report window")

	ErrRequestNotFound  = newKindError(ErrNotFound, "request not found")
	ErrNoRequestsFound  = newKindError(ErrNotFound, "no requests found for this address")
	ErrQuoteNotFound    = newKindError(ErrNotFound, "quote not found")
	ErrOrderNotFound    = newKindError(ErrNotFound, "order not found")
	ErrBillNotFound     = newKindError(ErrNotFound, "bill not found")
	ErrOrderAlreadyOpen = newKindError(ErrConflict, "work order already exists for this quote")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// persistenceError tags a repository failure so callers can tell it apart
// from domain errors while keeping the driver error reachable.
func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
