package request

import "driveway_xpto/internal/domain/entities"

type CreateQuoteRequest struct {
	RequestID            int64   `json:"requestId"`
	InitialPrice         float64 `json:"initialPrice"`
	ProposedPrice        float64 `json:"proposedPrice"`
	WorkStartDate        string  `json:"workStartDate"`
	WorkEndDate          string  `json:"workEndDate"`
	LatestContractorNote string  `json:"latestContractorNote"`
}

func (r CreateQuoteRequest) ToEntity() (entities.Quote, error) {
	start, err := ParseDate(r.WorkStartDate)
	if err != nil {
		return entities.Quote{}, err
	}
	end, err := ParseDate(r.WorkEndDate)
	if err != nil {
		return entities.Quote{}, err
	}
	return entities.Quote{
		RequestID:            r.RequestID,
		InitialPrice:         r.InitialPrice,
		ProposedPrice:        r.ProposedPrice,
		WorkStartDate:        start,
		WorkEndDate:          end,
		LatestContractorNote: r.LatestContractorNote,
	}, nil
}

type QuoteActionRequest struct {
	QuoteID int64  `json:"quote_id"`
	Action  string `json:"action"`
}

type QuoteNegotiationRequest struct {
	QuoteID        int64    `json:"quote_id"`
	ClientNote     string   `json:"client_note"`
	ContractorNote string   `json:"contractor_note"`
	PriceOffer     *float64 `json:"price_offer"`
	WorkStartDate  string   `json:"work_start_date"`
	WorkEndDate    string   `json:"work_end_date"`
}

func (r QuoteNegotiationRequest) ToEntity() (entities.QuoteNegotiation, error) {
	start, err := ParseDate(r.WorkStartDate)
	if err != nil {
		return entities.QuoteNegotiation{}, err
	}
	end, err := ParseDate(r.WorkEndDate)
	if err != nil {
		return entities.QuoteNegotiation{}, err
	}
	return entities.QuoteNegotiation{
		QuoteID:        r.QuoteID,
		ClientNote:     r.ClientNote,
		ContractorNote: r.ContractorNote,
		PriceOffer:     r.PriceOffer,
		WorkStartDate:  start,
		WorkEndDate:    end,
	}, nil
}
