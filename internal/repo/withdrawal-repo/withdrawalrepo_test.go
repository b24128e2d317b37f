package withdrawalrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/coursemart/settlement/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var requestCols = []string{"id", "instructor_id", "method_id", "amount", "fee", "net_amount",
	"status", "notes", "created_at", "processed_at", "processed_by"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	request := &domain.WithdrawalRequest{
		InstructorID: 7, MethodID: 1,
		Amount: decimal.NewFromInt(500), Fee: decimal.NewFromInt(10), NetAmount: decimal.NewFromInt(490),
		Status: domain.PendingWithdrawalStatus,
	}

	query := regexp.QuoteMeta(`
        INSERT INTO withdrawal_requests (instructor_id, method_id, amount, fee, net_amount, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates request",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, 1, request.Amount, request.Fee, request.NetAmount,
						domain.PendingWithdrawalStatus, "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, 1, request.Amount, request.Fee, request.NetAmount,
						domain.PendingWithdrawalStatus, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), request)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 11, created.ID)
				assert.Equal(t, createdAt, created.CreatedAt)
			}
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        SELECT id, instructor_id, method_id, amount, fee, net_amount,
               status, notes, created_at, processed_at, processed_by
        FROM withdrawal_requests
        WHERE id = $1
        FOR UPDATE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "Locks and returns the request",
			mockSetup: func() {
				rows := pgxmock.NewRows(requestCols).
					AddRow(11, 7, 1, decimal.NewFromInt(500), decimal.NewFromInt(10), decimal.NewFromInt(490),
						domain.PendingWithdrawalStatus, "", createdAt, (*time.Time)(nil), (*int)(nil))
				mock.ExpectQuery(query).WithArgs(11).WillReturnRows(rows)
			},
		},
		{
			name: "Unknown request returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(11).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(11).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			request, err := repo.GetForUpdate(context.Background(), 11)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, request)
			} else {
				assert.Equal(t, 11, request.ID)
				assert.Equal(t, domain.PendingWithdrawalStatus, request.Status)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	processedBy := 99
	processedAt := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        UPDATE withdrawal_requests
        SET status = $1, notes = $2, processed_by = $3, processed_at = $4
        WHERE id = $5`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully updates status",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.ApprovedWithdrawalStatus, "batch 1", &processedBy, &processedAt, 11).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.ApprovedWithdrawalStatus, "batch 1", &processedBy, &processedAt, 11).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 11, domain.ApprovedWithdrawalStatus, "batch 1", &processedBy, &processedAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByInstructor(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`
        SELECT id, instructor_id, method_id, amount, fee, net_amount,
               status, notes, created_at, processed_at, processed_by
        FROM withdrawal_requests
        WHERE instructor_id = $1
        ORDER BY created_at DESC`)

	rows := pgxmock.NewRows(requestCols).
		AddRow(11, 7, 1, decimal.NewFromInt(500), decimal.NewFromInt(10), decimal.NewFromInt(490),
			domain.CompletedWithdrawalStatus, "", createdAt, (*time.Time)(nil), (*int)(nil))
	mock.ExpectQuery(query).WithArgs(7).WillReturnRows(rows)

	requests, err := repo.FindByInstructor(context.Background(), 7)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, domain.CompletedWithdrawalStatus, requests[0].Status)
}

func TestRepository_CreateMethod(t *testing.T) {
	repo, mock := NewMock(t)

	method := &domain.WithdrawalMethod{
		InstructorID: 7, Kind: "card", AccountNumber: "4561261212345467",
		FeePercent: decimal.NewFromFloat(1.5), FeeFixed: decimal.NewFromFloat(2.5), IsActive: true,
	}

	query := regexp.QuoteMeta(`
        INSERT INTO withdrawal_methods (instructor_id, kind, account_number, fee_percent, fee_fixed, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`)

	mock.ExpectQuery(query).
		WithArgs(7, "card", "4561261212345467", method.FeePercent, method.FeeFixed, true).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

	created, err := repo.CreateMethod(context.Background(), method)
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestRepository_GetMethod(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, instructor_id, kind, account_number, fee_percent, fee_fixed, is_active
        FROM withdrawal_methods
        WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Existing method",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "instructor_id", "kind", "account_number", "fee_percent", "fee_fixed", "is_active"}).
					AddRow(1, 7, "card", "4561261212345467", decimal.NewFromFloat(1.5), decimal.NewFromFloat(2.5), true)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
		},
		{
			name: "Unknown method returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			method, err := repo.GetMethod(context.Background(), 1)

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, method)
			} else {
				assert.Equal(t, "card", method.Kind)
			}
		})
	}
}
