package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
)

// IQuoteRepository abstracts MySQL persistence for quotes and the quote
// negotiation ledger.
//
// AppendNegotiation assigns the next version for the quote atomically and
// returns a zero-value negotiation when the quote does not exist.

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mocks

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (int64, error)
	GetByID(ctx context.Context, id int64) (entities.Quote, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id int64, status entities.QuoteStatus) (bool, error)
	AppendNegotiation(ctx context.Context, n entities.QuoteNegotiation) (entities.QuoteNegotiation, error)
	ListNegotiations(ctx context.Context, quoteID int64) ([]entities.QuoteNegotiation, error)
	ListNegotiationsByRequestID(ctx context.Context, requestID int64) ([]entities.QuoteNegotiation, error)
}
