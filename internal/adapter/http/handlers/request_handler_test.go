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

func newRequestRouter(t *testing.T) (*gin.Engine, *mocks.MockIRequestUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIRequestUseCase(ctrl)
	h := NewRequestHandler(uc)
	r := gin.New()
	r.POST("/submit-request", h.SubmitRequest)
	r.GET("/lookup", h.LookupByAddress)
	r.GET("/requests", h.ListRequests)
	r.GET("/requests/:id", h.GetRequestDetails)
	r.PATCH("/requests/:id/status", h.UpdateRequestStatus)
	return r, uc
}

func TestRequestHandler_SubmitRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("image_urls not a list", func(t *testing.T) {
		r, _ := newRequestRouter(t)
		w := perform(r, http.MethodPost, "/submit-request", `{"client_id":1,"image_urls":"http://x/1.jpg"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid client", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(int64(0), usecase.ErrInvalidClientID)

		w := perform(r, http.MethodPost, "/submit-request", `{"client_id":0,"property_address":"1 Main St"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %s", code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.Request) (int64, error) {
			if req.ClientID != 1 || req.SquareFeet != 500 || len(req.ImageURLs) != 2 {
				t.Fatalf("unexpected request %+v", req)
			}
			return 10, nil
		})

		w := perform(r, http.MethodPost, "/submit-request", `{"client_id":1,"property_address":"1 Main St","square_feet":500,"proposed_price":1000,"note":"n","image_urls":["http://x/1.jpg","http://x/2.jpg"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"success":true,"requestId":10}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestRequestHandler_LookupByAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no requests", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().LookupByAddress(gomock.Any(), "9 Nowhere").Return(nil, usecase.ErrNoRequestsFound)

		w := perform(r, http.MethodGet, "/lookup?address=9+Nowhere", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "NO_REQUESTS_FOUND" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("blank address", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().LookupByAddress(gomock.Any(), "").Return(nil, usecase.ErrInvalidAddress)

		w := perform(r, http.MethodGet, "/lookup", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().LookupByAddress(gomock.Any(), "1 Main St").Return([]entities.Request{
			{ID: 3, ClientID: 1, PropertyAddress: "1 Main St", Status: "Pending", SubmissionDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		}, nil)

		w := perform(r, http.MethodGet, "/lookup?address=1+Main+St", "")
		var body struct {
			Success  bool `json:"success"`
			Requests []struct {
				RequestID      int64  `json:"request_id"`
				SubmissionDate string `json:"submission_date"`
			} `json:"requests"`
		}
		decode(t, w, &body)
		if !body.Success || len(body.Requests) != 1 || body.Requests[0].RequestID != 3 || body.Requests[0].SubmissionDate != "2024-12-01T00:00:00Z" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestRequestHandler_GetRequestDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		r, _ := newRequestRouter(t)
		w := perform(r, http.MethodGet, "/requests/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().GetDetails(gomock.Any(), int64(9)).Return(entities.RequestDetail{}, usecase.ErrRequestNotFound)

		w := perform(r, http.MethodGet, "/requests/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found without images", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().GetDetails(gomock.Any(), int64(3)).Return(entities.RequestDetail{
			Request:     entities.Request{ID: 3, ClientID: 1, PropertyAddress: "1 Main St"},
			ClientName:  "David Smith",
			ClientEmail: "d@x.com",
		}, nil)

		w := perform(r, http.MethodGet, "/requests/3", "")
		var body map[string]any
		decode(t, w, &body)
		if body["client_name"] != "David Smith" {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
		urls, ok := body["image_urls"].([]any)
		if !ok || len(urls) != 0 {
			t.Fatalf("expected empty image_urls list, got %s", w.Body.String())
		}
	})
}

func TestRequestHandler_ListAndUpdate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list failure", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))

		w := perform(r, http.MethodGet, "/requests", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("list empty", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		w := perform(r, http.MethodGet, "/requests", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("update status", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(3), "Reviewed").Return(nil)

		w := perform(r, http.MethodPatch, "/requests/3/status", `{"status":"Reviewed"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update unknown request", func(t *testing.T) {
		r, uc := newRequestRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), int64(4), "Reviewed").Return(usecase.ErrRequestNotFound)

		w := perform(r, http.MethodPatch, "/requests/4/status", `{"status":"Reviewed"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
