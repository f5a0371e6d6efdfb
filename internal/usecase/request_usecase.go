package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// IRequestUseCase covers request intake, contractor status updates and the
// request read paths.

type IRequestUseCase interface {
	Submit(ctx context.Context, r entities.Request) (int64, error)
	GetDetails(ctx context.Context, id int64) (entities.RequestDetail, error)
	ListAll(ctx context.Context) ([]entities.Request, error)
	LookupByAddress(ctx context.Context, address string) ([]entities.Request, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type RequestUseCase struct {
	repo interfaces.IRequestRepository
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(repo interfaces.IRequestRepository) *RequestUseCase {
	return &RequestUseCase{repo: repo}
}

// Submit stores the request and its images atomically. ImageURLs must be a
// list (possibly empty); a nil slice means the caller never sent one.
func (u *RequestUseCase) Submit(ctx context.Context, r entities.Request) (int64, error) {
	if r.ClientID <= 0 {
		return 0, ErrInvalidClientID
	}
	r.PropertyAddress = strings.TrimSpace(r.PropertyAddress)
	if r.PropertyAddress == "" {
		return 0, ErrInvalidAddress
	}
	if r.ImageURLs == nil {
		return 0, ErrInvalidImageURLs
	}
	urls := make([]string, 0, len(r.ImageURLs))
	for _, raw := range r.ImageURLs {
		url := strings.TrimSpace(raw)
		if url == "" {
			return 0, ErrInvalidImageURLs
		}
		urls = append(urls, url)
	}
	r.ImageURLs = urls
	r.Status = entities.RequestStatusPending
	r.SubmissionDate = time.Now().UTC()

	id, err := u.repo.CreateWithImages(ctx, r)
	if err != nil {
		log.Printf("[request][usecase] submit failed client_id=%d images=%d err=%v", r.ClientID, len(urls), err)
		return 0, persistenceError("submit request", err)
	}
	log.Printf("[request][usecase] submitted request_id=%d client_id=%d images=%d", id, r.ClientID, len(urls))
	return id, nil
}

func (u *RequestUseCase) GetDetails(ctx context.Context, id int64) (entities.RequestDetail, error) {
	if id <= 0 {
		return entities.RequestDetail{}, ErrInvalidRequestID
	}
	d, err := u.repo.GetDetails(ctx, id)
	if err != nil {
		return entities.RequestDetail{}, persistenceError("get request details", err)
	}
	if d.ID == 0 {
		return entities.RequestDetail{}, ErrRequestNotFound
	}
	return d, nil
}

func (u *RequestUseCase) ListAll(ctx context.Context) ([]entities.Request, error) {
	rs, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, persistenceError("list requests", err)
	}
	return nonNil(rs), nil
}

func (u *RequestUseCase) LookupByAddress(ctx context.Context, address string) ([]entities.Request, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrInvalidAddress
	}
	rs, err := u.repo.ListByAddress(ctx, address)
	if err != nil {
		return nil, persistenceError("lookup requests by address", err)
	}
	if len(rs) == 0 {
		return nil, ErrNoRequestsFound
	}
	return rs, nil
}

func (u *RequestUseCase) UpdateStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return ErrInvalidRequestID
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return ErrInvalidStatus
	}
	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return persistenceError("update request status", err)
	}
	if !updated {
		return ErrRequestNotFound
	}
	log.Printf("[request][usecase] status updated request_id=%d status=%q", id, status)
	return nil
}

// nonNil keeps JSON list responses as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
