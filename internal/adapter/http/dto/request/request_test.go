package request

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate(" 2024-12-10 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	got, err = ParseDate("")
	if err != nil || got != nil {
		t.Fatalf("expected nil date for blank input, got %v err=%v", got, err)
	}

	if _, err := ParseDate("12/10/2024"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCreateQuoteRequest_ToEntity(t *testing.T) {
	r := CreateQuoteRequest{
		RequestID: 1, InitialPrice: 1000, ProposedPrice: 900,
		WorkStartDate: "2024-12-10", WorkEndDate: "2024-12-12", LatestContractorNote: "ok",
	}
	q, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.RequestID != 1 || q.WorkStartDate == nil || q.WorkEndDate == nil || q.LatestContractorNote != "ok" {
		t.Fatalf("unexpected quote: %+v", q)
	}

	r.WorkEndDate = "tomorrow"
	if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestQuoteNegotiationRequest_ToEntity(t *testing.T) {
	price := 850.0
	n, err := QuoteNegotiationRequest{QuoteID: 4, ClientNote: "lower?", PriceOffer: &price}.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.QuoteID != 4 || n.PriceOffer == nil || *n.PriceOffer != 850 || n.WorkStartDate != nil {
		t.Fatalf("unexpected negotiation: %+v", n)
	}
}

func TestReportWindowQuery_Resolve(t *testing.T) {
	from, to, err := ReportWindowQuery{}.Resolve()
	if err != nil || from != nil || to != nil {
		t.Fatalf("expected open window, got %v %v err=%v", from, to, err)
	}

	from, to, err = ReportWindowQuery{From: "2024-12-01", To: "2025-01-01"}.Resolve()
	if err != nil || from == nil || to == nil {
		t.Fatalf("unexpected window %v %v err=%v", from, to, err)
	}

	if _, _, err := (ReportWindowQuery{To: "2025-13-01"}).Resolve(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestSubmitRequestRequest_ToEntity(t *testing.T) {
	r := SubmitRequestRequest{ClientID: 1, PropertyAddress: "1 Oak Ave", ImageURLs: []string{"a"}}
	e := r.ToEntity()
	if e.ClientID != 1 || len(e.ImageURLs) != 1 {
		t.Fatalf("unexpected request: %+v", e)
	}
	if (SubmitRequestRequest{}).ToEntity().ImageURLs != nil {
		t.Fatalf("absent image_urls must stay nil")
	}
}
