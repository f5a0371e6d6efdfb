package usecase

import (
	"context"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase/interfaces"
	"log"
	"strings"
	"time"
)

// IClientUseCase covers client registration and the phone-number status lookup.

type IClientUseCase interface {
	Register(ctx context.Context, c entities.Client) (int64, error)
	LookupStatus(ctx context.Context, phone string) ([]entities.ClientRequestHistory, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Register validates every required field before touching the store, so an
// incomplete registration never creates a row.
func (u *ClientUseCase) Register(ctx context.Context, c entities.Client) (int64, error) {
	c = trimClient(c)
	for _, v := range []string{
		c.FirstName, c.LastName, c.PhoneNumber,
		c.CreditCardNumber, c.ExpirationDate, c.SecurityCode,
		c.Address, c.Email,
	} {
		if v == "" {
			return 0, ErrMissingClientField
		}
	}
	c.CreatedAt = time.Now().UTC()

	id, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] register failed phone=%s err=%v", c.PhoneNumber, err)
		return 0, persistenceError("register client", err)
	}
	log.Printf("[client][usecase] registered client_id=%d", id)
	return id, nil
}

func (u *ClientUseCase) LookupStatus(ctx context.Context, phone string) ([]entities.ClientRequestHistory, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return []entities.ClientRequestHistory{}, nil
	}
	rows, err := u.repo.ListRequestHistoryByPhone(ctx, phone)
	if err != nil {
		return nil, persistenceError("lookup request history", err)
	}
	if rows == nil {
		rows = []entities.ClientRequestHistory{}
	}
	return rows, nil
}

func trimClient(c entities.Client) entities.Client {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	c.CreditCardNumber = strings.TrimSpace(c.CreditCardNumber)
	c.ExpirationDate = strings.TrimSpace(c.ExpirationDate)
	c.SecurityCode = strings.TrimSpace(c.SecurityCode)
	c.Address = strings.TrimSpace(c.Address)
	c.Email = strings.TrimSpace(c.Email)
	return c
}
