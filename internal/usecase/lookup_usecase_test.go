package usecase

import (
	"context"
	"errors"
	"testing"

	"driveway_xpto/internal/domain/entities"
	mock_interfaces "driveway_xpto/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type lookupMocks struct {
	clients  *mock_interfaces.MockIClientRepository
	requests *mock_interfaces.MockIRequestRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	orders   *mock_interfaces.MockIOrderRepository
	bills    *mock_interfaces.MockIBillRepository
}

func newLookupUseCase(ctrl *gomock.Controller) (*LookupUseCase, lookupMocks) {
	m := lookupMocks{
		clients:  mock_interfaces.NewMockIClientRepository(ctrl),
		requests: mock_interfaces.NewMockIRequestRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		bills:    mock_interfaces.NewMockIBillRepository(ctrl),
	}
	return NewLookupUseCase(m.clients, m.requests, m.quotes, m.orders, m.bills), m
}

func TestLookupUseCase_Comprehensive(t *testing.T) {
	t.Run("blank phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newLookupUseCase(ctrl)

		_, err := uc.Comprehensive(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrInvalidPhone)
	})

	t.Run("unknown client yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLookupUseCase(ctrl)
		m.clients.EXPECT().GetByPhone(gomock.Any(), "555-0199").Return(entities.Client{}, nil)

		got, err := uc.Comprehensive(context.Background(), "555-0199")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("two requests keep their order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLookupUseCase(ctrl)

		m.clients.EXPECT().GetByPhone(gomock.Any(), "555-0100").Return(entities.Client{ID: 1}, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), int64(1)).Return([]entities.Request{
			{ID: 20, ClientID: 1, PropertyAddress: "2 Elm St"},
			{ID: 10, ClientID: 1, PropertyAddress: "1 Oak Ave"},
		}, nil)

		m.quotes.EXPECT().ListByRequestID(gomock.Any(), int64(20)).Return(nil, nil)
		m.quotes.EXPECT().ListNegotiationsByRequestID(gomock.Any(), int64(20)).Return(nil, nil)
		m.orders.EXPECT().ListByRequestID(gomock.Any(), int64(20)).Return(nil, nil)
		m.bills.EXPECT().ListByRequestID(gomock.Any(), int64(20)).Return(nil, nil)
		m.bills.EXPECT().ListNegotiationsByRequestID(gomock.Any(), int64(20)).Return(nil, nil)

		m.quotes.EXPECT().ListByRequestID(gomock.Any(), int64(10)).Return([]entities.Quote{{ID: 5, RequestID: 10}}, nil)
		m.quotes.EXPECT().ListNegotiationsByRequestID(gomock.Any(), int64(10)).Return([]entities.QuoteNegotiation{{ID: 8, QuoteID: 5, Version: 1}}, nil)
		m.orders.EXPECT().ListByRequestID(gomock.Any(), int64(10)).Return(nil, nil)
		m.bills.EXPECT().ListByRequestID(gomock.Any(), int64(10)).Return(nil, nil)
		m.bills.EXPECT().ListNegotiationsByRequestID(gomock.Any(), int64(10)).Return(nil, nil)

		got, err := uc.Comprehensive(context.Background(), " 555-0100 ")
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, int64(20), got[0].ID)
		assert.Empty(t, got[0].Quotes)
		assert.NotNil(t, got[0].Quotes)
		assert.NotNil(t, got[0].BillNegotiations)

		assert.Equal(t, int64(10), got[1].ID)
		require.Len(t, got[1].Quotes, 1)
		require.Len(t, got[1].QuoteNegotiations, 1)
		assert.Equal(t, int64(1), got[1].QuoteNegotiations[0].Version)
		assert.Empty(t, got[1].Orders)
	})

	t.Run("sub-fetch failure fails the lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLookupUseCase(ctrl)

		m.clients.EXPECT().GetByPhone(gomock.Any(), "555-0100").Return(entities.Client{ID: 1}, nil)
		m.requests.EXPECT().ListByClientID(gomock.Any(), int64(1)).Return([]entities.Request{{ID: 10}}, nil)

		m.quotes.EXPECT().ListByRequestID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.quotes.EXPECT().ListNegotiationsByRequestID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.orders.EXPECT().ListByRequestID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
		m.bills.EXPECT().ListByRequestID(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).AnyTimes()
		m.bills.EXPECT().ListNegotiationsByRequestID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		got, err := uc.Comprehensive(context.Background(), "555-0100")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrPersistence)
		assert.Contains(t, err.Error(), "fetch bills")
	})

	t.Run("client resolution failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newLookupUseCase(ctrl)
		m.clients.EXPECT().GetByPhone(gomock.Any(), "555-0100").Return(entities.Client{}, errors.New("db down"))

		_, err := uc.Comprehensive(context.Background(), "555-0100")
		assert.ErrorIs(t, err, ErrPersistence)
	})
}
