package request

import "driveway_xpto/internal/domain/entities"

type RegisterClientRequest struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	PhoneNumber      string `json:"phone_number"`
	CreditCardNumber string `json:"credit_card_number"`
	ExpirationDate   string `json:"expiration_date"`
	SecurityCode     string `json:"security_code"`
	Address          string `json:"address"`
	Email            string `json:"email"`
}

func (r RegisterClientRequest) ToEntity() entities.Client {
	return entities.Client{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		PhoneNumber:      r.PhoneNumber,
		CreditCardNumber: r.CreditCardNumber,
		ExpirationDate:   r.ExpirationDate,
		SecurityCode:     r.SecurityCode,
		Address:          r.Address,
		Email:            r.Email,
	}
}

// PhoneRequest is the body of both phone-keyed lookups.
type PhoneRequest struct {
	PhoneNumber string `json:"phone_number"`
}
