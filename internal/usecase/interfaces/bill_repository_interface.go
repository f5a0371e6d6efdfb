package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
)

// IBillRepository abstracts MySQL persistence for bills and the bill
// negotiation ledger.
//
// UpdateStatus with settle=true also fixes final_amount (latest negotiated
// amount, else the initial amount) when it is still empty.

//go:generate mockgen -source=bill_repository_interface.go -destination=mocks/bill_repository_mock.go -package=mocks

type IBillRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Bill, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BillStatus, settle bool) (bool, error)
	AppendNegotiation(ctx context.Context, n entities.BillNegotiation) (entities.BillNegotiation, error)
	ListNegotiations(ctx context.Context, billID int64) ([]entities.BillNegotiation, error)
	ListNegotiationsByRequestID(ctx context.Context, requestID int64) ([]entities.BillNegotiation, error)
}
