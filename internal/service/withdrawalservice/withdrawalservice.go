package withdrawalservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, id int) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id int, status, notes string, processedBy *int, processedAt *time.Time) error
	FindByInstructor(ctx context.Context, instructorID int) ([]domain.WithdrawalRequest, error)
	CreateMethod(ctx context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error)
	GetMethod(ctx context.Context, id int) (*domain.WithdrawalMethod, error)
}

type Service struct {
	repo          Repo
	ledgerRepo    balanceservice.LedgerRepo
	txManager     pg.TXManager
	minWithdrawal decimal.Decimal
}

func New(repo Repo, ledgerRepo balanceservice.LedgerRepo, txManager pg.TXManager, minWithdrawal decimal.Decimal) *Service {
	return &Service{
		repo:          repo,
		ledgerRepo:    ledgerRepo,
		txManager:     txManager,
		minWithdrawal: minWithdrawal,
	}
}

var (
	ErrBelowMinimum     = errors.New("amount below minimum withdrawal")
	ErrMethodNotFound   = errors.New("withdrawal method not found")
	ErrInvalidAccount   = errors.New("invalid account number")
	ErrRequestNotFound  = errors.New("withdrawal request not found")
	ErrAlreadyProcessed = errors.New("withdrawal request already processed")
	ErrInvalidDecision  = errors.New("invalid decision")
)

// Fee computes the method's fee for a withdrawal amount.
func Fee(method *domain.WithdrawalMethod, amount decimal.Decimal) decimal.Decimal {
	return method.FeeFixed.Add(amount.Mul(method.FeePercent).Div(decimal.NewFromInt(100)).Round(2))
}

// Submit creates a withdrawal request. The reservation and the request row
// commit together: a concurrent second request can only reserve what is
// still left after this one, so two requests can never both draw on the same
// funds. On a failed reservation no request row is persisted.
func (s *Service) Submit(ctx context.Context, instructorID int, amount decimal.Decimal, methodID int) (*domain.WithdrawalRequest, error) {
	if amount.LessThan(s.minWithdrawal) {
		return nil, ErrBelowMinimum
	}

	method, err := s.repo.GetMethod(ctx, methodID)
	if err != nil {
		return nil, err
	}
	if method == nil || !method.IsActive || method.InstructorID != instructorID {
		return nil, ErrMethodNotFound
	}

	fee := Fee(method, amount)

	request := &domain.WithdrawalRequest{
		InstructorID: instructorID,
		MethodID:     methodID,
		Amount:       amount,
		Fee:          fee,
		NetAmount:    amount.Sub(fee),
		Status:       domain.PendingWithdrawalStatus,
	}

	err = pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		balance, err := s.ledgerRepo.Reserve(ctx, instructorID, amount)
		if err != nil {
			return err
		}
		if balance == nil {
			return balanceservice.ErrInsufficientBalance
		}
		_, err = s.repo.Create(ctx, request)
		return err
	})
	if err != nil {
		if !errors.Is(err, balanceservice.ErrInsufficientBalance) {
			zap.L().Error("failed to create withdrawal request", zap.Error(err))
		}
		if pg.IsRetryableError(err) {
			return nil, balanceservice.ErrLedgerConflict
		}
		return nil, err
	}

	zap.L().Info("withdrawal request created",
		zap.Int("instructorID", instructorID),
		zap.Int("requestID", request.ID),
		zap.String("amount", amount.String()))
	return request, nil
}

func processable(status string) bool {
	return status == domain.PendingWithdrawalStatus || status == domain.ProcessingWithdrawalStatus
}

// Process applies an administrator decision. Approval settles the net amount
// (the fee stays with the platform); rejection and cancellation return the
// full reserved amount. The status write and the ledger mutation are one
// transaction, and the locked status check rejects double processing.
func (s *Service) Process(ctx context.Context, requestID, reviewerID int, decision, notes string) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest

	err := pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		var err error
		request, err = s.repo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil {
			return ErrRequestNotFound
		}
		if !processable(request.Status) {
			return ErrAlreadyProcessed
		}

		switch decision {
		case domain.ProcessingWithdrawalStatus:
			// Taken under review; no ledger movement yet.

		case domain.ApprovedWithdrawalStatus:
			if _, err := s.ledgerRepo.Settle(ctx, request.InstructorID, request.NetAmount); err != nil {
				return err
			}

		case domain.RejectedWithdrawalStatus, domain.CancelledWithdrawalStatus:
			if _, err := s.ledgerRepo.Release(ctx, request.InstructorID, request.Amount); err != nil {
				return err
			}

		default:
			return ErrInvalidDecision
		}

		now := time.Now()
		if err := s.repo.UpdateStatus(ctx, requestID, decision, notes, &reviewerID, &now); err != nil {
			return err
		}
		request.Status = decision
		request.Notes = notes
		request.ProcessedBy = &reviewerID
		request.ProcessedAt = &now
		return nil
	})
	if err != nil {
		if pg.IsRetryableError(err) {
			return nil, balanceservice.ErrLedgerConflict
		}
		return nil, err
	}

	zap.L().Info("withdrawal request processed",
		zap.Int("requestID", requestID),
		zap.String("decision", decision))
	return request, nil
}

// Confirm is the instructor acknowledging receipt of an approved payout.
func (s *Service) Confirm(ctx context.Context, instructorID, requestID int) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest

	err := pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		var err error
		request, err = s.repo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil || request.InstructorID != instructorID {
			return ErrRequestNotFound
		}
		if request.Status != domain.ApprovedWithdrawalStatus {
			return ErrAlreadyProcessed
		}

		if err := s.repo.UpdateStatus(ctx, requestID, domain.CompletedWithdrawalStatus,
			request.Notes, request.ProcessedBy, request.ProcessedAt); err != nil {
			return err
		}
		request.Status = domain.CompletedWithdrawalStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// Cancel lets the instructor withdraw their own request while it is still
// pending. The reservation comes back in full.
func (s *Service) Cancel(ctx context.Context, instructorID, requestID int) (*domain.WithdrawalRequest, error) {
	var request *domain.WithdrawalRequest

	err := pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		var err error
		request, err = s.repo.GetForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request == nil || request.InstructorID != instructorID {
			return ErrRequestNotFound
		}
		if request.Status != domain.PendingWithdrawalStatus {
			return ErrAlreadyProcessed
		}

		if _, err := s.ledgerRepo.Release(ctx, instructorID, request.Amount); err != nil {
			return err
		}
		if err := s.repo.UpdateStatus(ctx, requestID, domain.CancelledWithdrawalStatus,
			request.Notes, nil, nil); err != nil {
			return err
		}
		request.Status = domain.CancelledWithdrawalStatus
		return nil
	})
	if err != nil {
		if pg.IsRetryableError(err) {
			return nil, balanceservice.ErrLedgerConflict
		}
		return nil, err
	}
	return request, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, instructorID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.repo.FindByInstructor(ctx, instructorID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// AddMethod registers a payout destination. Card account numbers must pass
// the Luhn check before the method is accepted.
func (s *Service) AddMethod(ctx context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error) {
	if method.Kind == "card" && !validate.IsLuna(method.AccountNumber) {
		return nil, ErrInvalidAccount
	}
	method.IsActive = true

	created, err := s.repo.CreateMethod(ctx, method)
	if err != nil {
		zap.L().Error("failed to create withdrawal method", zap.Error(err))
		return nil, err
	}
	return created, nil
}
