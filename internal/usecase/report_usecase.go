package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"time"
)

const (
	// DifficultClientMinRequests is how many unquoted requests make a client difficult.
	DifficultClientMinRequests = 3
	// DefaultOverdueGraceDays is how far past due a bill must be to show as overdue.
	DefaultOverdueGraceDays = 7
)

// IReportUseCase exposes the fixed contractor reports. None of them write.

type IReportUseCase interface {
	BigClients(ctx context.Context) ([]entities.BigClient, error)
	DifficultClients(ctx context.Context) ([]entities.ClientRef, error)
	QuotesInWindow(ctx context.Context, from, to *time.Time) ([]entities.WindowQuote, error)
	ProspectiveClients(ctx context.Context) ([]entities.ClientRef, error)
	LargestDriveway(ctx context.Context) ([]entities.LargestDriveway, error)
	OverdueBills(ctx context.Context) ([]entities.OverdueBill, error)
	BadClients(ctx context.Context) ([]entities.ClientRef, error)
	GoodClients(ctx context.Context) ([]entities.ClientRef, error)
	Revenue(ctx context.Context) (entities.Revenue, error)
}

type ReportUseCase struct {
	repo      interfaces.IReportRepository
	graceDays int
	now       func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository, graceDays int) *ReportUseCase {
	if graceDays < 0 {
		graceDays = DefaultOverdueGraceDays
	}
	return &ReportUseCase{repo: repo, graceDays: graceDays, now: time.Now}
}

func (u *ReportUseCase) BigClients(ctx context.Context) ([]entities.BigClient, error) {
	rows, err := u.repo.BigClients(ctx)
	if err != nil {
		return nil, persistenceError("report big clients", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) DifficultClients(ctx context.Context) ([]entities.ClientRef, error) {
	rows, err := u.repo.DifficultClients(ctx, DifficultClientMinRequests)
	if err != nil {
		return nil, persistenceError("report difficult clients", err)
	}
	return nonNil(rows), nil
}

// QuotesInWindow defaults to the current calendar month. A missing bound is
// taken from that month.
func (u *ReportUseCase) QuotesInWindow(ctx context.Context, from, to *time.Time) ([]entities.WindowQuote, error) {
	w := entities.MonthWindow(u.now().UTC())
	if from != nil {
		w.From = *from
	}
	if to != nil {
		w.To = *to
	}
	if !w.To.After(w.From) {
		return nil, ErrInvalidReportWindow
	}
	rows, err := u.repo.QuotesInWindow(ctx, w)
	if err != nil {
		return nil, persistenceError("report quotes in window", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) ProspectiveClients(ctx context.Context) ([]entities.ClientRef, error) {
	rows, err := u.repo.ProspectiveClients(ctx)
	if err != nil {
		return nil, persistenceError("report prospective clients", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) LargestDriveway(ctx context.Context) ([]entities.LargestDriveway, error) {
	rows, err := u.repo.LargestDriveway(ctx)
	if err != nil {
		return nil, persistenceError("report largest driveway", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) OverdueBills(ctx context.Context) ([]entities.OverdueBill, error) {
	rows, err := u.repo.OverdueBills(ctx, u.graceDays)
	if err != nil {
		return nil, persistenceError("report overdue bills", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) BadClients(ctx context.Context) ([]entities.ClientRef, error) {
	rows, err := u.repo.BadClients(ctx)
	if err != nil {
		return nil, persistenceError("report bad clients", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) GoodClients(ctx context.Context) ([]entities.ClientRef, error) {
	rows, err := u.repo.GoodClients(ctx)
	if err != nil {
		return nil, persistenceError("report good clients", err)
	}
	return nonNil(rows), nil
}

func (u *ReportUseCase) Revenue(ctx context.Context) (entities.Revenue, error) {
	r, err := u.repo.Revenue(ctx)
	if err != nil {
		return entities.Revenue{}, persistenceError("report revenue", err)
	}
	return r, nil
}
