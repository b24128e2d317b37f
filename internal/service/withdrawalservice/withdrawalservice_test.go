package withdrawalservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/service/balanceservice"
)

type mocks struct {
	repo       *MockRepo
	ledgerRepo *balanceservice.MockLedgerRepo
	txManager  *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		ledgerRepo: balanceservice.NewMockLedgerRepo(ctrl),
		txManager:  pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.ledgerRepo, m.txManager, decimal.NewFromInt(50))
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFee(t *testing.T) {
	tests := []struct {
		name       string
		feePercent string
		feeFixed   string
		amount     string
		expected   string
	}{
		{"Percent plus fixed", "1.5", "2.50", "500.00", "10.00"},
		{"Fixed only", "0", "5.00", "100.00", "5.00"},
		{"Percent rounds to cents", "2.5", "0", "99.99", "2.50"},
		{"Free method", "0", "0", "500.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := &domain.WithdrawalMethod{
				FeePercent: amount(tt.feePercent),
				FeeFixed:   amount(tt.feeFixed),
			}
			fee := Fee(method, amount(tt.amount))
			assert.True(t, fee.Equal(amount(tt.expected)), "fee %s", fee)
		})
	}
}

func TestSubmit(t *testing.T) {
	cardMethod := &domain.WithdrawalMethod{
		ID: 1, InstructorID: 7, Kind: "card",
		FeePercent: amount("1.5"), FeeFixed: amount("2.50"), IsActive: true,
	}

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Reservation and request commit together",
			amount: amount("500.00"),
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetMethod(gomock.Any(), 1).Return(cardMethod, nil)
				passthroughTx(m)
				m.ledgerRepo.EXPECT().Reserve(gomock.Any(), 7, amount("500.00")).
					Return(&domain.Balance{InstructorID: 7}, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
						assert.True(t, request.Fee.Equal(amount("10.00")))
						assert.True(t, request.NetAmount.Equal(amount("490.00")))
						assert.Equal(t, domain.PendingWithdrawalStatus, request.Status)
						request.ID = 11
						return request, nil
					})
			},
		},
		{
			name:          "Amount below the configured minimum",
			amount:        amount("49.99"),
			prepareMock:   func(m *mocks) {},
			expectedError: ErrBelowMinimum,
		},
		{
			name:   "Unknown method",
			amount: amount("500.00"),
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetMethod(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrMethodNotFound,
		},
		{
			name:   "Method belongs to another instructor",
			amount: amount("500.00"),
			prepareMock: func(m *mocks) {
				other := *cardMethod
				other.InstructorID = 8
				m.repo.EXPECT().GetMethod(gomock.Any(), 1).Return(&other, nil)
			},
			expectedError: ErrMethodNotFound,
		},
		{
			name:   "Deactivated method",
			amount: amount("500.00"),
			prepareMock: func(m *mocks) {
				inactive := *cardMethod
				inactive.IsActive = false
				m.repo.EXPECT().GetMethod(gomock.Any(), 1).Return(&inactive, nil)
			},
			expectedError: ErrMethodNotFound,
		},
		{
			name:   "Insufficient available balance keeps no request row",
			amount: amount("500.00"),
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().GetMethod(gomock.Any(), 1).Return(cardMethod, nil)
				passthroughTx(m)
				m.ledgerRepo.EXPECT().Reserve(gomock.Any(), 7, amount("500.00")).Return(nil, nil)
			},
			expectedError: balanceservice.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			request, err := service.Submit(context.Background(), 7, tt.amount, 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, request.ID)
			}
		})
	}
}

func TestProcess(t *testing.T) {
	pendingRequest := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{
			ID: 11, InstructorID: 7, MethodID: 1,
			Amount: amount("500.00"), Fee: amount("10.00"), NetAmount: amount("490.00"),
			Status: domain.PendingWithdrawalStatus,
		}
	}

	tests := []struct {
		name           string
		decision       string
		prepareMock    func(m *mocks)
		expectedStatus string
		expectedError  error
	}{
		{
			name:     "Approval settles the net amount",
			decision: domain.ApprovedWithdrawalStatus,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(pendingRequest(), nil)
				m.ledgerRepo.EXPECT().Settle(gomock.Any(), 7, amount("490.00")).
					Return(&domain.Balance{InstructorID: 7}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 11, domain.ApprovedWithdrawalStatus,
					"batch 1", gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.ApprovedWithdrawalStatus,
		},
		{
			name:     "Rejection releases the full reserved amount",
			decision: domain.RejectedWithdrawalStatus,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(pendingRequest(), nil)
				m.ledgerRepo.EXPECT().Release(gomock.Any(), 7, amount("500.00")).
					Return(&domain.Balance{InstructorID: 7}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 11, domain.RejectedWithdrawalStatus,
					"batch 1", gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.RejectedWithdrawalStatus,
		},
		{
			name:     "Taking under review moves no funds",
			decision: domain.ProcessingWithdrawalStatus,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(pendingRequest(), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 11, domain.ProcessingWithdrawalStatus,
					"batch 1", gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: domain.ProcessingWithdrawalStatus,
		},
		{
			name:     "Unknown request",
			decision: domain.ApprovedWithdrawalStatus,
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(nil, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name:     "Request already processed",
			decision: domain.ApprovedWithdrawalStatus,
			prepareMock: func(m *mocks) {
				processed := pendingRequest()
				processed.Status = domain.ApprovedWithdrawalStatus
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(processed, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
		{
			name:     "Invalid decision",
			decision: "SHIPPED",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(pendingRequest(), nil)
			},
			expectedError: ErrInvalidDecision,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			request, err := service.Process(context.Background(), 11, 99, tt.decision, "batch 1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, request)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, request.Status)
			assert.NotNil(t, request.ProcessedBy)
			assert.Equal(t, 99, *request.ProcessedBy)
			assert.NotNil(t, request.ProcessedAt)
		})
	}
}

func TestConfirm(t *testing.T) {
	approved := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{
			ID: 11, InstructorID: 7, Status: domain.ApprovedWithdrawalStatus,
			Amount: amount("500.00"), NetAmount: amount("490.00"),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Approved request completes",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(approved(), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 11, domain.CompletedWithdrawalStatus,
					gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Someone else's request reads as not found",
			prepareMock: func(m *mocks) {
				other := approved()
				other.InstructorID = 8
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(other, nil)
			},
			expectedError: ErrRequestNotFound,
		},
		{
			name: "Only approved requests can be confirmed",
			prepareMock: func(m *mocks) {
				stillPending := approved()
				stillPending.Status = domain.PendingWithdrawalStatus
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(stillPending, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			request, err := service.Confirm(context.Background(), 7, 11)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.CompletedWithdrawalStatus, request.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	pendingRequest := func() *domain.WithdrawalRequest {
		return &domain.WithdrawalRequest{
			ID: 11, InstructorID: 7, Status: domain.PendingWithdrawalStatus,
			Amount: amount("500.00"),
		}
	}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Pending request cancels and releases the reservation",
			prepareMock: func(m *mocks) {
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(pendingRequest(), nil)
				m.ledgerRepo.EXPECT().Release(gomock.Any(), 7, amount("500.00")).
					Return(&domain.Balance{InstructorID: 7}, nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 11, domain.CancelledWithdrawalStatus,
					gomock.Any(), nil, nil).Return(nil)
			},
		},
		{
			name: "Request already under review",
			prepareMock: func(m *mocks) {
				reviewing := pendingRequest()
				reviewing.Status = domain.ProcessingWithdrawalStatus
				passthroughTx(m)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), 11).Return(reviewing, nil)
			},
			expectedError: ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			request, err := service.Cancel(context.Background(), 7, 11)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.CancelledWithdrawalStatus, request.Status)
			}
		})
	}
}

func TestGetWithdrawals(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedLen   int
		expectedError error
	}{
		{
			name: "Returns instructor requests",
			prepareMock: func() {
				m.repo.EXPECT().FindByInstructor(gomock.Any(), 7).
					Return([]domain.WithdrawalRequest{{ID: 1}, {ID: 2}}, nil)
			},
			expectedLen: 2,
		},
		{
			name: "Repo error",
			prepareMock: func() {
				m.repo.EXPECT().FindByInstructor(gomock.Any(), 7).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			requests, err := service.GetWithdrawals(context.Background(), 7)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, requests)
			} else {
				assert.NoError(t, err)
				assert.Len(t, requests, tt.expectedLen)
			}
		})
	}
}

func TestAddMethod(t *testing.T) {
	tests := []struct {
		name          string
		method        *domain.WithdrawalMethod
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Card with valid number",
			method: &domain.WithdrawalMethod{InstructorID: 7, Kind: "card", AccountNumber: "4561261212345467"},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CreateMethod(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error) {
						assert.True(t, method.IsActive)
						method.ID = 1
						return method, nil
					})
			},
		},
		{
			name:          "Card number failing the Luhn check",
			method:        &domain.WithdrawalMethod{InstructorID: 7, Kind: "card", AccountNumber: "4561261212345464"},
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidAccount,
		},
		{
			name:   "Bank accounts skip the Luhn check",
			method: &domain.WithdrawalMethod{InstructorID: 7, Kind: "bank", AccountNumber: "DE89370400440532013000"},
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CreateMethod(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error) {
						method.ID = 2
						return method, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			created, err := service.AddMethod(context.Background(), tt.method)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, created.ID)
			}
		})
	}
}
