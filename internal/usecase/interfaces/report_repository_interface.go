package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
)

// IReportRepository runs the fixed read-only analytical queries.

//go:generate mockgen -source=report_repository_interface.go -destination=mocks/report_repository_mock.go -package=mocks

type IReportRepository interface {
	BigClients(ctx context.Context) ([]entities.BigClient, error)
	DifficultClients(ctx context.Context, minRequests int) ([]entities.ClientRef, error)
	QuotesInWindow(ctx context.Context, w entities.TimeWindow) ([]entities.WindowQuote, error)
	ProspectiveClients(ctx context.Context) ([]entities.ClientRef, error)
	LargestDriveway(ctx context.Context) ([]entities.LargestDriveway, error)
	OverdueBills(ctx context.Context, graceDays int) ([]entities.OverdueBill, error)
	BadClients(ctx context.Context) ([]entities.ClientRef, error)
	GoodClients(ctx context.Context) ([]entities.ClientRef, error)
	Revenue(ctx context.Context) (entities.Revenue, error)
}
