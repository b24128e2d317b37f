package earningservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"go.uber.org/zap"
)

type Repo interface {
	FindBySaleReference(ctx context.Context, saleReferenceID string) (*domain.Earning, error)
	Save(ctx context.Context, earning *domain.Earning) error
	FindMature(ctx context.Context, now time.Time, limit uint32) ([]domain.Earning, error)
	FindByInstructor(ctx context.Context, instructorID int) ([]domain.Earning, error)
	MarkAvailable(ctx context.Context, id int) (bool, error)
	MarkReversed(ctx context.Context, id int, fromStatus string) (bool, error)
	SaveShortfall(ctx context.Context, shortfall *domain.ReversalShortfall) error
	FindOpenShortfalls(ctx context.Context) ([]domain.ReversalShortfall, error)
}

type Resolver interface {
	Resolve(ctx context.Context, courseID, instructorID, categoryID int, at time.Time) (domain.CommissionRule, error)
}

// Notifier pushes a reversal shortfall to the operator queue webhook.
type Notifier interface {
	NotifyShortfall(ctx context.Context, shortfall domain.ReversalShortfall) error
}

type Service struct {
	repo       Repo
	resolver   Resolver
	ledgerRepo balanceservice.LedgerRepo
	txManager  pg.TXManager
	notifier   Notifier
}

func New(repo Repo, resolver Resolver, ledgerRepo balanceservice.LedgerRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		resolver:   resolver,
		ledgerRepo: ledgerRepo,
		txManager:  txManager,
		notifier:   notifier,
	}
}

var (
	// ErrDuplicateSale marks the idempotent no-op on a redelivered sale
	// event. The caller still receives the stored earning.
	ErrDuplicateSale   = errors.New("sale already recorded")
	ErrEarningNotFound = errors.New("earning not found")
)

var hundred = decimal.NewFromInt(100)

// Split divides a gross sale amount by a rule. The instructor share is
// derived by subtraction so the two parts always sum to the gross amount
// exactly, whatever the rounding of the commission did.
func Split(grossAmount decimal.Decimal, rule domain.CommissionRule) (platformCommission, netAmount decimal.Decimal) {
	platformCommission = grossAmount.Mul(rule.PlatformRate).Div(hundred).Round(2)
	netAmount = grossAmount.Sub(platformCommission)
	return platformCommission, netAmount
}

// RecordSale turns a completed sale into exactly one earning and one pending
// credit. The earning row and the ledger credit commit in one transaction;
// the unique sale reference makes redelivery a no-op reported as
// ErrDuplicateSale alongside the stored earning.
func (s *Service) RecordSale(ctx context.Context, saleReferenceID string, courseID, instructorID, categoryID int, grossAmount decimal.Decimal, completedAt time.Time) (*domain.Earning, error) {
	existing, err := s.repo.FindBySaleReference(ctx, saleReferenceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("sale already recorded", zap.String("saleReferenceID", saleReferenceID))
		return existing, ErrDuplicateSale
	}

	rule, err := s.resolver.Resolve(ctx, courseID, instructorID, categoryID, completedAt)
	if err != nil {
		return nil, err
	}

	platformCommission, netAmount := Split(grossAmount, rule)

	var appliedRuleID *int
	if rule.ID != 0 {
		appliedRuleID = &rule.ID
	}

	earning := &domain.Earning{
		InstructorID:       instructorID,
		CourseID:           courseID,
		SaleReferenceID:    saleReferenceID,
		GrossAmount:        grossAmount,
		PlatformCommission: platformCommission,
		NetAmount:          netAmount,
		AppliedRuleID:      appliedRuleID,
		Status:             domain.PendingEarningStatus,
		EarnedAt:           completedAt,
		AvailableAt:        completedAt.AddDate(0, 0, rule.HoldPeriodDays),
	}

	err = pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		if err := s.repo.Save(ctx, earning); err != nil {
			return err
		}
		if _, err := s.ledgerRepo.CreditPending(ctx, instructorID, netAmount); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			// Lost the race against a concurrent delivery of the same sale.
			stored, findErr := s.repo.FindBySaleReference(ctx, saleReferenceID)
			if findErr != nil {
				return nil, findErr
			}
			if stored != nil {
				return stored, ErrDuplicateSale
			}
		}
		zap.L().Error("can't record sale", zap.String("saleReferenceID", saleReferenceID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("sale recorded",
		zap.String("saleReferenceID", saleReferenceID),
		zap.Int("instructorID", instructorID),
		zap.String("net", netAmount.String()))
	return earning, nil
}

// RecordRefund reverses the earning of a refunded sale. A pending earning is
// debited from the pending bucket; an available one from the available bucket,
// but only down to zero - whatever the instructor already withdrew is recorded
// as a reversal shortfall and pushed to the operator queue instead of driving
// the ledger negative.
func (s *Service) RecordRefund(ctx context.Context, saleReferenceID string) (*domain.Earning, error) {
	earning, err := s.repo.FindBySaleReference(ctx, saleReferenceID)
	if err != nil {
		return nil, err
	}
	if earning == nil {
		return nil, ErrEarningNotFound
	}
	if earning.Status == domain.ReversedEarningStatus {
		zap.L().Info("earning already reversed", zap.String("saleReferenceID", saleReferenceID))
		return earning, nil
	}

	var shortfall *domain.ReversalShortfall

	err = pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		shortfall = nil

		// Re-read inside the transaction: the sweep may have promoted the
		// earning since the check above.
		fresh, err := s.repo.FindBySaleReference(ctx, saleReferenceID)
		if err != nil {
			return err
		}
		earning = fresh

		switch fresh.Status {
		case domain.ReversedEarningStatus:
			return nil

		case domain.PendingEarningStatus:
			ok, err := s.repo.MarkReversed(ctx, fresh.ID, domain.PendingEarningStatus)
			if err != nil {
				return err
			}
			if !ok {
				return balanceservice.ErrLedgerConflict
			}
			balance, err := s.ledgerRepo.DebitReversal(ctx, fresh.InstructorID, fresh.NetAmount, decimal.Zero)
			if err != nil {
				return err
			}
			if balance == nil {
				return balanceservice.ErrLedgerConflict
			}
			return nil

		case domain.AvailableEarningStatus:
			ok, err := s.repo.MarkReversed(ctx, fresh.ID, domain.AvailableEarningStatus)
			if err != nil {
				return err
			}
			if !ok {
				return balanceservice.ErrLedgerConflict
			}
			balance, err := s.ledgerRepo.GetForUpdate(ctx, fresh.InstructorID)
			if err != nil {
				return err
			}
			if balance == nil {
				return balanceservice.ErrLedgerConflict
			}

			covered := decimal.Min(balance.AvailableBalance, fresh.NetAmount)
			if _, err := s.ledgerRepo.DebitReversal(ctx, fresh.InstructorID, decimal.Zero, covered); err != nil {
				return err
			}

			if uncovered := fresh.NetAmount.Sub(covered); uncovered.IsPositive() {
				shortfall = &domain.ReversalShortfall{
					EarningID:    fresh.ID,
					InstructorID: fresh.InstructorID,
					Amount:       uncovered,
				}
				return s.repo.SaveShortfall(ctx, shortfall)
			}
			return nil

		default:
			return balanceservice.ErrLedgerConflict
		}
	})
	if err != nil {
		zap.L().Error("can't reverse earning", zap.String("saleReferenceID", saleReferenceID), zap.Error(err))
		return nil, err
	}

	earning.Status = domain.ReversedEarningStatus

	if shortfall != nil {
		zap.L().Error("refund arrived after funds were withdrawn",
			zap.String("saleReferenceID", saleReferenceID),
			zap.Int("instructorID", shortfall.InstructorID),
			zap.String("shortfall", shortfall.Amount.String()))
		if err := s.notifier.NotifyShortfall(ctx, *shortfall); err != nil {
			zap.L().Error("failed to notify operator queue", zap.Error(err))
		}
	}

	return earning, nil
}

func (s *Service) GetEarnings(ctx context.Context, instructorID int) ([]domain.Earning, error) {
	earnings, err := s.repo.FindByInstructor(ctx, instructorID)
	if err != nil {
		zap.L().Error("failed to get earnings", zap.Error(err))
		return nil, err
	}
	return earnings, nil
}

func (s *Service) GetOpenShortfalls(ctx context.Context) ([]domain.ReversalShortfall, error) {
	shortfalls, err := s.repo.FindOpenShortfalls(ctx)
	if err != nil {
		zap.L().Error("failed to get open shortfalls", zap.Error(err))
		return nil, err
	}
	return shortfalls, nil
}
