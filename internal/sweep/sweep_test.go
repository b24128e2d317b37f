package sweep

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/earningservice"
)

type mocks struct {
	earningRepo *earningservice.MockRepo
	ledgerRepo  *balanceservice.MockLedgerRepo
	txManager   *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		earningRepo: earningservice.NewMockRepo(ctrl),
		ledgerRepo:  balanceservice.NewMockLedgerRepo(ctrl),
		txManager:   pg.NewMockTXManager(ctrl),
	}
	service := &Service{
		earningRepo: m.earningRepo,
		ledgerRepo:  m.ledgerRepo,
		txManager:   m.txManager,
		limit:       100,
		workerPool:  NewWorkerPool(2),
		interval:    time.Minute,
	}
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) *gomock.Call {
	return m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func matured(id, instructorID int, net int64) domain.Earning {
	return domain.Earning{
		ID:           id,
		InstructorID: instructorID,
		NetAmount:    decimal.NewFromInt(net),
		Status:       domain.PendingEarningStatus,
	}
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Promotes every matured earning", func(t *testing.T) {
		service, m := NewMock(t)
		earnings := []domain.Earning{matured(101, 7, 700), matured(102, 8, 350)}

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).Return(earnings, nil)
		passthroughTx(m).Times(2)
		m.earningRepo.EXPECT().MarkAvailable(gomock.Any(), 101).Return(true, nil)
		m.earningRepo.EXPECT().MarkAvailable(gomock.Any(), 102).Return(true, nil)
		m.ledgerRepo.EXPECT().PromoteToAvailable(gomock.Any(), 7, decimal.NewFromInt(700)).
			Return(&domain.Balance{InstructorID: 7}, nil)
		m.ledgerRepo.EXPECT().PromoteToAvailable(gomock.Any(), 8, decimal.NewFromInt(350)).
			Return(&domain.Balance{InstructorID: 8}, nil)

		promoted, err := service.RunOnce(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, 2, promoted)
	})

	t.Run("Already promoted earning is a no-op", func(t *testing.T) {
		service, m := NewMock(t)

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).
			Return([]domain.Earning{matured(103, 7, 700)}, nil)
		passthroughTx(m)
		m.earningRepo.EXPECT().MarkAvailable(gomock.Any(), 103).Return(false, nil)

		promoted, err := service.RunOnce(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, 0, promoted)
	})

	t.Run("Persistent ledger guard failure surfaces after retries", func(t *testing.T) {
		service, m := NewMock(t)

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).
			Return([]domain.Earning{matured(104, 7, 700)}, nil)
		passthroughTx(m).Times(3)
		m.earningRepo.EXPECT().MarkAvailable(gomock.Any(), 104).Return(true, nil).Times(3)
		m.ledgerRepo.EXPECT().PromoteToAvailable(gomock.Any(), 7, decimal.NewFromInt(700)).
			Return(nil, nil).Times(3)

		promoted, err := service.RunOnce(context.Background(), now)
		assert.ErrorIs(t, err, balanceservice.ErrLedgerConflict)
		assert.Equal(t, 0, promoted)
	})

	t.Run("Returns only after dispatched promotions finish", func(t *testing.T) {
		service, m := NewMock(t)
		var finished atomic.Bool

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).
			Return([]domain.Earning{matured(106, 9, 120)}, nil)
		passthroughTx(m)
		m.earningRepo.EXPECT().MarkAvailable(gomock.Any(), 106).
			DoAndReturn(func(context.Context, int) (bool, error) {
				time.Sleep(50 * time.Millisecond)
				return true, nil
			})
		m.ledgerRepo.EXPECT().PromoteToAvailable(gomock.Any(), 9, decimal.NewFromInt(120)).
			DoAndReturn(func(context.Context, int, decimal.Decimal) (*domain.Balance, error) {
				finished.Store(true)
				return &domain.Balance{InstructorID: 9}, nil
			})

		promoted, err := service.RunOnce(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, 1, promoted)
		assert.True(t, finished.Load())
	})

	t.Run("In-flight earning is skipped", func(t *testing.T) {
		service, m := NewMock(t)
		promotingEarnings.Store(105, struct{}{})
		defer promotingEarnings.Delete(105)

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).
			Return([]domain.Earning{matured(105, 7, 700)}, nil)

		promoted, err := service.RunOnce(context.Background(), now)
		assert.NoError(t, err)
		assert.Equal(t, 0, promoted)
	})

	t.Run("Fetch error", func(t *testing.T) {
		service, m := NewMock(t)

		m.earningRepo.EXPECT().FindMature(gomock.Any(), now, uint32(100)).
			Return(nil, assert.AnError)

		promoted, err := service.RunOnce(context.Background(), now)
		assert.Error(t, err)
		assert.Equal(t, 0, promoted)
	})
}
