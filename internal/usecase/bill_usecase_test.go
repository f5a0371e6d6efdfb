package usecase

import (
	"context"
	"errors"
	"testing"

	"driveway_xpto/internal/domain/entities"
	mock_interfaces "driveway_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBillUseCase_ApplyAction(t *testing.T) {
	t.Run("paid settles the final amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, entities.StatusPolicy{})
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), entities.BillStatus("paid"), true).Return(true, nil)

		status, err := uc.ApplyAction(context.Background(), 2, "paid")
		if err != nil || status != "paid" {
			t.Fatalf("unexpected status %q err=%v", status, err)
		}
	})

	t.Run("disputed does not settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, entities.StatusPolicy{Strict: true})
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(2), entities.BillStatusDisputed, false).Return(true, nil)

		if _, err := uc.ApplyAction(context.Background(), 2, "disputed"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("strict rejects unknown", func(t *testing.T) {
		uc := NewBillUseCase(nil, entities.StatusPolicy{Strict: true})
		if _, err := uc.ApplyAction(context.Background(), 2, "forgiven"); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("expected ErrInvalidAction, got %v", err)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := NewBillUseCase(nil, entities.StatusPolicy{})
		if _, err := uc.ApplyAction(context.Background(), 0, "Paid"); !errors.Is(err, ErrInvalidBillID) {
			t.Fatalf("expected ErrInvalidBillID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, entities.StatusPolicy{})
		repo.EXPECT().UpdateStatus(gomock.Any(), int64(99), entities.BillStatusPaid, true).Return(false, nil)

		if _, err := uc.ApplyAction(context.Background(), 99, "Paid"); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})
}

func TestBillUseCase_Negotiate(t *testing.T) {
	amount := 750.0

	t.Run("validations", func(t *testing.T) {
		uc := NewBillUseCase(nil, entities.StatusPolicy{})
		if _, err := uc.Negotiate(context.Background(), entities.BillNegotiation{}); !errors.Is(err, ErrInvalidBillID) {
			t.Fatalf("expected ErrInvalidBillID, got %v", err)
		}
		zero := 0.0
		if _, err := uc.Negotiate(context.Background(), entities.BillNegotiation{BillID: 1, FinalAmount: &zero}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("bill missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, entities.StatusPolicy{})
		repo.EXPECT().AppendNegotiation(gomock.Any(), gomock.Any()).Return(entities.BillNegotiation{}, nil)

		if _, err := uc.Negotiate(context.Background(), entities.BillNegotiation{BillID: 3, FinalAmount: &amount}); !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, entities.StatusPolicy{})
		repo.EXPECT().AppendNegotiation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.BillNegotiation) (entities.BillNegotiation, error) {
				n.ID = 7
				n.Version = 1
				return n, nil
			},
		)

		got, err := uc.Negotiate(context.Background(), entities.BillNegotiation{BillID: 3, ClientNote: "discount?", FinalAmount: &amount})
		if err != nil || got.Version != 1 || got.ClientNote != "discount?" {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})
}

func TestBillUseCase_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillRepository(ctrl)
	uc := NewBillUseCase(repo, entities.StatusPolicy{})

	repo.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Bill{}, nil)
	if _, err := uc.GetByID(context.Background(), 5); !errors.Is(err, ErrBillNotFound) {
		t.Fatalf("expected ErrBillNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), int64(6)).Return(entities.Bill{ID: 6, InitialAmount: 900}, nil)
	b, err := uc.GetByID(context.Background(), 6)
	if err != nil || b.ID != 6 {
		t.Fatalf("unexpected bill %+v err=%v", b, err)
	}

	repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	bs, err := uc.ListAll(context.Background())
	if err != nil || bs == nil || len(bs) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v err=%v", bs, err)
	}

	repo.EXPECT().ListNegotiations(gomock.Any(), int64(6)).Return([]entities.BillNegotiation{{Version: 1}}, nil)
	ns, err := uc.History(context.Background(), 6)
	if err != nil || len(ns) != 1 {
		t.Fatalf("unexpected history %v err=%v", ns, err)
	}
}
