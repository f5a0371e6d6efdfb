package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"log"
	"strings"

	"github.com/sourcegraph/conc/pool"
)

// ILookupUseCase assembles everything a client owns, keyed by phone number.

type ILookupUseCase interface {
	Comprehensive(ctx context.Context, phone string) ([]entities.RequestAggregate, error)
}

type LookupUseCase struct {
	clients  interfaces.IClientRepository
	requests interfaces.IRequestRepository
	quotes   interfaces.IQuoteRepository
	orders   interfaces.IOrderRepository
	bills    interfaces.IBillRepository
}

var _ ILookupUseCase = (*LookupUseCase)(nil)

func NewLookupUseCase(
	clients interfaces.IClientRepository,
	requests interfaces.IRequestRepository,
	quotes interfaces.IQuoteRepository,
	orders interfaces.IOrderRepository,
	bills interfaces.IBillRepository,
) *LookupUseCase {
	return &LookupUseCase{clients: clients, requests: requests, quotes: quotes, orders: orders, bills: bills}
}

// Comprehensive resolves the client by phone and builds one aggregate per
// request. Requests are aggregated in parallel and each aggregate runs its
// five sub-fetches in parallel; the first failure cancels the rest and fails
// the whole lookup. The result keeps the repository's request order.
func (u *LookupUseCase) Comprehensive(ctx context.Context, phone string) ([]entities.RequestAggregate, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrInvalidPhone
	}

	client, err := u.clients.GetByPhone(ctx, phone)
	if err != nil {
		return nil, persistenceError("resolve client by phone", err)
	}
	if client.ID == 0 {
		return []entities.RequestAggregate{}, nil
	}

	requests, err := u.requests.ListByClientID(ctx, client.ID)
	if err != nil {
		return nil, persistenceError("list client requests", err)
	}

	out := make([]entities.RequestAggregate, len(requests))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, r := range requests {
		i, r := i, r
		p.Go(func(ctx context.Context) error {
			agg, err := u.aggregate(ctx, r)
			if err != nil {
				return err
			}
			out[i] = agg
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		log.Printf("[lookup][usecase] comprehensive lookup failed client_id=%d err=%v", client.ID, err)
		return nil, err
	}
	log.Printf("[lookup][usecase] comprehensive lookup client_id=%d requests=%d", client.ID, len(out))
	return out, nil
}

func (u *LookupUseCase) aggregate(ctx context.Context, r entities.Request) (entities.RequestAggregate, error) {
	agg := entities.RequestAggregate{Request: r}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		qs, err := u.quotes.ListByRequestID(ctx, r.ID)
		if err != nil {
			return persistenceError("fetch quotes", err)
		}
		agg.Quotes = nonNil(qs)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		ns, err := u.quotes.ListNegotiationsByRequestID(ctx, r.ID)
		if err != nil {
			return persistenceError("fetch quote negotiations", err)
		}
		agg.QuoteNegotiations = nonNil(ns)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		orders, err := u.orders.ListByRequestID(ctx, r.ID)
		if err != nil {
			return persistenceError("fetch orders", err)
		}
		agg.Orders = nonNil(orders)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		bs, err := u.bills.ListByRequestID(ctx, r.ID)
		if err != nil {
			return persistenceError("fetch bills", err)
		}
		agg.Bills = nonNil(bs)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		ns, err := u.bills.ListNegotiationsByRequestID(ctx, r.ID)
		if err != nil {
			return persistenceError("fetch bill negotiations", err)
		}
		agg.BillNegotiations = nonNil(ns)
		return nil
	})

	if err := p.Wait(); err != nil {
		return entities.RequestAggregate{}, err
	}
	return agg, nil
}
