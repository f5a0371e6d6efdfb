package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"driveway_xpto/internal/adapter/http/handlers/mocks"
	"driveway_xpto/internal/domain/entities"
	"driveway_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_RegisterClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := gin.New()
		r.POST("/register-client", NewClientHandler(uc).RegisterClient)
		return r, uc
	}

	t.Run("invalid json", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/register-client", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_PAYLOAD" {
			t.Fatalf("expected INVALID_PAYLOAD, got %s", code)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(int64(0), usecase.ErrMissingClientField)

		w := perform(r, http.MethodPost, "/register-client", `{"first_name":"David"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (int64, error) {
			if c.FirstName != "David" || c.PhoneNumber != "555-1234" || c.Email != "d@x.com" {
				t.Fatalf("unexpected client %+v", c)
			}
			return 42, nil
		})

		w := perform(r, http.MethodPost, "/register-client", `{"first_name":"David","last_name":"Smith","phone_number":"555-1234","address":"1 Main St","email":"d@x.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Success  bool  `json:"success"`
			ClientID int64 `json:"clientId"`
		}
		decode(t, w, &body)
		if !body.Success || body.ClientID != 42 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("persistence failure", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

		w := perform(r, http.MethodPost, "/register-client", `{"first_name":"David"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestClientHandler_LookupStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIClientUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIClientUseCase(ctrl)
		r := gin.New()
		r.POST("/lookup-status", NewClientHandler(uc).LookupStatus)
		return r, uc
	}

	t.Run("unknown phone", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().LookupStatus(gomock.Any(), "000").Return([]entities.ClientRequestHistory{}, nil)

		w := perform(r, http.MethodPost, "/lookup-status", `{"phone_number":"000"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"data":[],"found":false}` {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("found", func(t *testing.T) {
		r, uc := setup(t)
		reqID := int64(7)
		uc.EXPECT().LookupStatus(gomock.Any(), "555").Return([]entities.ClientRequestHistory{
			{ClientID: 1, FirstName: "David", LastName: "Smith", RequestID: &reqID},
		}, nil)

		w := perform(r, http.MethodPost, "/lookup-status", `{"phone_number":"555"}`)
		var body struct {
			Data  []entities.ClientRequestHistory `json:"data"`
			Found bool                            `json:"found"`
		}
		decode(t, w, &body)
		if !body.Found || len(body.Data) != 1 || *body.Data[0].RequestID != 7 {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("usecase error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().LookupStatus(gomock.Any(), "555").Return(nil, errors.New("db down"))

		w := perform(r, http.MethodPost, "/lookup-status", `{"phone_number":"555"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
