package interfaces

import (
	"context"
	"driveway_xpto/internal/domain/entities"
)

// IRequestRepository abstracts MySQL persistence for Request and its images.
//
// CreateWithImages must insert the request and every image row in a single
// transaction: either all rows exist afterwards or none do.

//go:generate mockgen -source=request_repository_interface.go -destination=mocks/request_repository_mock.go -package=mocks

type IRequestRepository interface {
	CreateWithImages(ctx context.Context, r entities.Request) (int64, error)
	GetDetails(ctx context.Context, id int64) (entities.RequestDetail, error)
	ListAll(ctx context.Context) ([]entities.Request, error)
	ListByAddress(ctx context.Context, address string) ([]entities.Request, error)
	ListByClientID(ctx context.Context, clientID int64) ([]entities.Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
}
