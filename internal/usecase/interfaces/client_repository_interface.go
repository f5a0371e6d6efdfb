package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
)

// IClientRepository abstracts MySQL persistence for Client.
//
// Lookups return a zero-value Client (ID == 0) when nothing matches.

//go:generate mockgen -source=client_repository_interface.go -destination=mocks/client_repository_mock.go -package=mocks

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (int64, error)
	GetByPhone(ctx context.Context, phone string) (entities.Client, error)
	ListRequestHistoryByPhone(ctx context.Context, phone string) ([]entities.ClientRequestHistory, error)
}
