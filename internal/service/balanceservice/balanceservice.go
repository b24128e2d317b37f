package balanceservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"go.uber.org/zap"
)

// LedgerRepo is the only surface through which instructor balances are
// mutated. Each operation is atomic at the repo level; a nil balance with a
// nil error means the operation's guard did not hold and nothing changed.
type LedgerRepo interface {
	Get(ctx context.Context, instructorID int) (*domain.Balance, error)
	GetForUpdate(ctx context.Context, instructorID int) (*domain.Balance, error)
	Create(ctx context.Context, instructorID int) (*domain.Balance, error)
	CreditPending(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error)
	PromoteToAvailable(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error)
	Reserve(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error)
	Settle(ctx context.Context, instructorID int, netAmount decimal.Decimal) (*domain.Balance, error)
	Release(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error)
	DebitReversal(ctx context.Context, instructorID int, fromPending, fromAvailable decimal.Decimal) (*domain.Balance, error)
}

type Service struct {
	ledgerRepo LedgerRepo
}

func New(ledgerRepo LedgerRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLedgerConflict surfaces when concurrent ledger updates kept
	// conflicting past the bounded retries. It is pg.ErrTxConflict, so a
	// guard miss raised inside a pg.WithRetry transaction is retried before
	// it reaches a caller.
	ErrLedgerConflict = pg.ErrTxConflict
)

// GetBalance returns the instructor's running totals, materializing the
// ledger row for an instructor it has not seen yet.
func (s *Service) GetBalance(ctx context.Context, instructorID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.Get(ctx, instructorID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return s.CreateBalance(ctx, instructorID)
	}
	return balance, nil
}

// CreateBalance provisions a zero ledger row. The upsert keeps it safe
// against a concurrent first sale or first read.
func (s *Service) CreateBalance(ctx context.Context, instructorID int) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.Create(ctx, instructorID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
