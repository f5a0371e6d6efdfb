package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// IQuoteUseCase is the quote side of the workflow:
//   - contractor creates a quote (always pending)
//   - either side applies an action, which becomes the quote status
//   - either side appends a counter-offer to the negotiation ledger

type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (int64, error)
	ApplyAction(ctx context.Context, quoteID int64, action string) (entities.QuoteStatus, error)
	Negotiate(ctx context.Context, n entities.QuoteNegotiation) (entities.QuoteNegotiation, error)
	ListAll(ctx context.Context) ([]entities.Quote, error)
	History(ctx context.Context, quoteID int64) ([]entities.QuoteNegotiation, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	policy entities.StatusPolicy
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, policy entities.StatusPolicy) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, policy: policy}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (int64, error) {
	if q.RequestID <= 0 {
		return 0, ErrInvalidRequestID
	}
	if q.InitialPrice <= 0 || q.ProposedPrice <= 0 {
		return 0, ErrInvalidQuotePrice
	}
	if !validWindow(q.WorkStartDate, q.WorkEndDate) {
		return 0, ErrInvalidWorkWindow
	}
	q.Status = entities.QuoteStatusPending
	q.LatestContractorNote = strings.TrimSpace(q.LatestContractorNote)
	q.CreatedAt = time.Now().UTC()

	id, err := u.repo.Create(ctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed request_id=%d err=%v", q.RequestID, err)
		return 0, persistenceError("create quote", err)
	}
	log.Printf("[quote][usecase] created quote_id=%d request_id=%d proposed=%.2f", id, q.RequestID, q.ProposedPrice)
	return id, nil
}

// ApplyAction writes the action as the quote's new status. Under the
// permissive policy there is no transition guard: any non-blank action from
// any state is accepted.
func (u *QuoteUseCase) ApplyAction(ctx context.Context, quoteID int64, action string) (entities.QuoteStatus, error) {
	if quoteID <= 0 {
		return "", ErrInvalidQuoteID
	}
	status, ok := u.policy.QuoteStatus(action)
	if !ok {
		return "", ErrInvalidAction
	}
	updated, err := u.repo.UpdateStatus(ctx, quoteID, status)
	if err != nil {
		return "", persistenceError("update quote status", err)
	}
	if !updated {
		return "", ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] action applied quote_id=%d status=%q", quoteID, status)
	return status, nil
}

func (u *QuoteUseCase) Negotiate(ctx context.Context, n entities.QuoteNegotiation) (entities.QuoteNegotiation, error) {
	if n.QuoteID <= 0 {
		return entities.QuoteNegotiation{}, ErrInvalidQuoteID
	}
	if n.PriceOffer != nil && *n.PriceOffer <= 0 {
		return entities.QuoteNegotiation{}, ErrInvalidAmount
	}
	if !validWindow(n.WorkStartDate, n.WorkEndDate) {
		return entities.QuoteNegotiation{}, ErrInvalidWorkWindow
	}
	n.ClientNote = strings.TrimSpace(n.ClientNote)
	n.ContractorNote = strings.TrimSpace(n.ContractorNote)
	n.CreatedAt = time.Now().UTC()

	created, err := u.repo.AppendNegotiation(ctx, n)
	if err != nil {
		log.Printf("[quote][usecase] negotiate failed quote_id=%d err=%v", n.QuoteID, err)
		return entities.QuoteNegotiation{}, persistenceError("append quote negotiation", err)
	}
	if created.ID == 0 {
		return entities.QuoteNegotiation{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] negotiation appended quote_id=%d negotiation_id=%d version=%d", n.QuoteID, created.ID, created.Version)
	return created, nil
}

func (u *QuoteUseCase) ListAll(ctx context.Context) ([]entities.Quote, error) {
	qs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list quotes", err)
	}
	return nonNil(qs), nil
}

// History returns the negotiation ledger of a quote ordered by version.
func (u *QuoteUseCase) History(ctx context.Context, quoteID int64) ([]entities.QuoteNegotiation, error) {
	if quoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}
	ns, err := u.repo.ListNegotiations(ctx, quoteID)
	if err != nil {
		return nil, persistenceError("list quote negotiations", err)
	}
	return nonNil(ns), nil
}

func validWindow(start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !end.Before(*start)
}
