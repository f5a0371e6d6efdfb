package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"driveway_xpto/internal/adapter/http/handlers/mocks"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(t *testing.T) (*gin.Engine, *mocks.MockIQuoteUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.POST("/quotes", h.CreateQuote)
	r.POST("/quote-action", h.QuoteAction)
	r.POST("/create-quote-negotiation", h.CreateQuoteNegotiation)
	r.GET("/getquotes", h.ListQuotes)
	r.GET("/quotes/:id/negotiations", h.QuoteNegotiations)
	return r, uc
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad date", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := perform(r, http.MethodPost, "/quotes", `{"requestId":1,"initialPrice":100,"proposedPrice":90,"workStartDate":"01/02/2025"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_DATE" {
			t.Fatalf("expected INVALID_DATE, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q entities.Quote) (int64, error) {
			if q.RequestID != 1 || q.ProposedPrice != 90 || q.WorkStartDate == nil || q.WorkStartDate.Day() != 2 || q.WorkEndDate != nil {
				t.Fatalf("unexpected quote %+v", q)
			}
			return 5, nil
		})

		w := perform(r, http.MethodPost, "/quotes", `{"requestId":1,"initialPrice":100,"proposedPrice":90,"workStartDate":"2025-01-02","latestContractorNote":"hi"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"quoteId":5}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("inverted window", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), usecase.ErrInvalidWorkWindow)

		w := perform(r, http.MethodPost, "/quotes", `{"requestId":1,"workStartDate":"2025-02-01","workEndDate":"2025-01-01"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_QuoteAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approved", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ApplyAction(gomock.Any(), int64(5), "approved").Return(entities.QuoteStatusApproved, nil)

		w := perform(r, http.MethodPost, "/quote-action", `{"quote_id":5,"action":"approved"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"message":"Quote approved successfully"}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ApplyAction(gomock.Any(), int64(99), "approved").Return(entities.QuoteStatus(""), usecase.ErrQuoteNotFound)

		w := perform(r, http.MethodPost, "/quote-action", `{"quote_id":99,"action":"approved"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "QUOTE_NOT_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("rejected by strict policy", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().ApplyAction(gomock.Any(), int64(5), "bogus").Return(entities.QuoteStatus(""), usecase.ErrInvalidAction)

		w := perform(r, http.MethodPost, "/quote-action", `{"quote_id":5,"action":"bogus"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_ACTION" {
			t.Fatalf("unexpected code %s", code)
		}
	})
}

func TestQuoteHandler_CreateQuoteNegotiation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Negotiate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.QuoteNegotiation) (entities.QuoteNegotiation, error) {
			if n.QuoteID != 5 || n.PriceOffer == nil || *n.PriceOffer != 850 {
				t.Fatalf("unexpected negotiation %+v", n)
			}
			n.ID = 11
			n.Version = 2
			return n, nil
		})

		w := perform(r, http.MethodPost, "/create-quote-negotiation", `{"quote_id":5,"client_note":"lower?","price_offer":850,"work_start_date":"2025-03-01","work_end_date":"2025-03-05"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Message       string `json:"message"`
			NegotiationID int64  `json:"negotiation_id"`
			Version       int64  `json:"version"`
		}
		decode(t, w, &body)
		if body.NegotiationID != 11 || body.Version != 2 || body.Message == "" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().Negotiate(gomock.Any(), gomock.Any()).Return(entities.QuoteNegotiation{}, usecase.ErrQuoteNotFound)

		w := perform(r, http.MethodPost, "/create-quote-negotiation", `{"quote_id":77}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := perform(r, http.MethodPost, "/create-quote-negotiation", `{"quote_id":5,"work_end_date":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list quotes", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		start := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().ListAll(gomock.Any()).Return([]entities.Quote{
			{ID: 5, RequestID: 1, ProposedPrice: 90, WorkStartDate: &start, Status: entities.QuoteStatusPending},
		}, nil)

		w := perform(r, http.MethodGet, "/getquotes", "")
		var body []map[string]any
		decode(t, w, &body)
		if len(body) != 1 || body[0]["work_start_date"] != "2025-01-02" || body[0]["work_end_date"] != nil {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("negotiations invalid id", func(t *testing.T) {
		r, _ := newQuoteRouter(t)
		w := perform(r, http.MethodGet, "/quotes/0/negotiations", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negotiations failure", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().History(gomock.Any(), int64(5)).Return(nil, errors.New("db down"))

		w := perform(r, http.MethodGet, "/quotes/5/negotiations", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("negotiations empty", func(t *testing.T) {
		r, uc := newQuoteRouter(t)
		uc.EXPECT().History(gomock.Any(), int64(5)).Return(nil, nil)

		w := perform(r, http.MethodGet, "/quotes/5/negotiations", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})
}
