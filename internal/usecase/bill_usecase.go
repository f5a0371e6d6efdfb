package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// IBillUseCase covers bill reads, bill actions (Paid and friends) and the
// bill negotiation ledger.

type IBillUseCase interface {
	GetByID(ctx context.Context, id int64) (entities.Bill, error)
	ListAll(ctx context.Context) ([]entities.Bill, error)
	ApplyAction(ctx context.Context, billID int64, action string) (entities.BillStatus, error)
	Negotiate(ctx context.Context, n entities.BillNegotiation) (entities.BillNegotiation, error)
	History(ctx context.Context, billID int64) ([]entities.BillNegotiation, error)
}

type BillUseCase struct {
	repo   interfaces.IBillRepository
	policy entities.StatusPolicy
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(repo interfaces.IBillRepository, policy entities.StatusPolicy) *BillUseCase {
	return &BillUseCase{repo: repo, policy: policy}
}

func (u *BillUseCase) GetByID(ctx context.Context, id int64) (entities.Bill, error) {
	if id <= 0 {
		return entities.Bill{}, ErrInvalidBillID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Bill{}, persistenceError("get bill", err)
	}
	if b.ID == 0 {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}

func (u *BillUseCase) ListAll(ctx context.Context) ([]entities.Bill, error) {
	bs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list bills", err)
	}
	return nonNil(bs), nil
}

// ApplyAction writes the action as the bill status. Paying a bill also
// settles its final amount when it is still empty.
func (u *BillUseCase) ApplyAction(ctx context.Context, billID int64, action string) (entities.BillStatus, error) {
	if billID <= 0 {
		return "", ErrInvalidBillID
	}
	status, ok := u.policy.BillStatus(action)
	if !ok {
		return "", ErrInvalidAction
	}
	settle := strings.EqualFold(string(status), string(entities.BillStatusPaid))

	updated, err := u.repo.UpdateStatus(ctx, billID, status, settle)
	if err != nil {
		return "", persistenceError("update bill status", err)
	}
	if !updated {
		return "", ErrBillNotFound
	}
	log.Printf("[bill][usecase] action applied bill_id=%d status=%q settled=%t", billID, status, settle)
	return status, nil
}

func (u *BillUseCase) Negotiate(ctx context.Context, n entities.BillNegotiation) (entities.BillNegotiation, error) {
	if n.BillID <= 0 {
		return entities.BillNegotiation{}, ErrInvalidBillID
	}
	if n.FinalAmount != nil && *n.FinalAmount <= 0 {
		return entities.BillNegotiation{}, ErrInvalidAmount
	}
	n.ClientNote = strings.TrimSpace(n.ClientNote)
	n.ContractorNote = strings.TrimSpace(n.ContractorNote)
	n.CreatedAt = time.Now().UTC()

	created, err := u.repo.AppendNegotiation(ctx, n)
	if err != nil {
		log.Printf("[bill][usecase] negotiate failed bill_id=%d err=%v", n.BillID, err)
		return entities.BillNegotiation{}, persistenceError("append bill negotiation", err)
	}
	if created.ID == 0 {
		return entities.BillNegotiation{}, ErrBillNotFound
	}
	log.Printf("[bill][usecase] negotiation appended bill_id=%d negotiation_id=%d version=%d", n.BillID, created.ID, created.Version)
	return created, nil
}

func (u *BillUseCase) History(ctx context.Context, billID int64) ([]entities.BillNegotiation, error) {
	if billID <= 0 {
		return nil, ErrInvalidBillID
	}
	ns, err := u.repo.ListNegotiations(ctx, billID)
	if err != nil {
		return nil, persistenceError("list bill negotiations", err)
	}
	return nonNil(ns), nil
}
