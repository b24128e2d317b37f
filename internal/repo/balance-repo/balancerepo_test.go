package balancerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func balanceRows(id, instructorID int, total, pending, available, withdrawn int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "instructor_id", "total_earnings", "pending_balance", "available_balance", "total_withdrawn"}).
		AddRow(id, instructorID, decimal.NewFromInt(total), decimal.NewFromInt(pending), decimal.NewFromInt(available), decimal.NewFromInt(withdrawn))
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
        FROM balances
        WHERE instructor_id = $1`)

	tests := []struct {
		name         string
		instructorID int
		mockSetup    func()
		expectErr    bool
		result       *domain.Balance
	}{
		{
			name:         "Existing instructor returns balance",
			instructorID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnRows(balanceRows(1, 7, 1500, 700, 310, 490))
			},
			result: &domain.Balance{
				ID:               1,
				InstructorID:     7,
				TotalEarnings:    decimal.NewFromInt(1500),
				PendingBalance:   decimal.NewFromInt(700),
				AvailableBalance: decimal.NewFromInt(310),
				TotalWithdrawn:   decimal.NewFromInt(490),
			},
		},
		{
			name:         "Unknown instructor returns nil",
			instructorID: 99,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:         "Database error",
			instructorID: 7,
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background(), tt.instructorID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO balances (instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn)
        VALUES ($1, 0, 0, 0, 0)
        ON CONFLICT (instructor_id) DO UPDATE SET instructor_id = EXCLUDED.instructor_id
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successfully creates balance",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnRows(balanceRows(1, 7, 0, 0, 0, 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), 7)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.InstructorID)
			}
		})
	}
}

func TestRepository_CreditPending(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO balances (instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn)
        VALUES ($1, $2, $2, 0, 0)
        ON CONFLICT (instructor_id) DO UPDATE
        SET total_earnings = balances.total_earnings + EXCLUDED.total_earnings,
            pending_balance = balances.pending_balance + EXCLUDED.pending_balance
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Credits the pending bucket",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700)).
					WillReturnRows(balanceRows(1, 7, 2200, 1400, 310, 490))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreditPending(context.Background(), 7, decimal.NewFromInt(700))

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.PendingBalance.Equal(decimal.NewFromInt(1400)))
			}
		})
	}
}

func TestRepository_PromoteToAvailable(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE balances
        SET pending_balance = pending_balance - $2,
            available_balance = available_balance + $2
        WHERE instructor_id = $1 AND pending_balance >= $2
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Moves funds between buckets",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700)).
					WillReturnRows(balanceRows(1, 7, 1500, 0, 1010, 490))
			},
		},
		{
			name: "Guard fails when pending is short",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.PromoteToAvailable(context.Background(), 7, decimal.NewFromInt(700))

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.True(t, result.PendingBalance.IsZero())
			}
		})
	}
}

func TestRepository_Reserve(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE balances
        SET available_balance = available_balance - $2
        WHERE instructor_id = $1 AND available_balance >= $2
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Reserves available funds",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(300)).
					WillReturnRows(balanceRows(1, 7, 1500, 700, 10, 490))
			},
		},
		{
			name: "Insufficient available balance returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(300)).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Reserve(context.Background(), 7, decimal.NewFromInt(300))

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.True(t, result.AvailableBalance.Equal(decimal.NewFromInt(10)))
			}
		})
	}
}

func TestRepository_Settle(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE balances
        SET total_withdrawn = total_withdrawn + $2
        WHERE instructor_id = $1
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	mock.ExpectQuery(query).
		WithArgs(7, decimal.NewFromInt(490)).
		WillReturnRows(balanceRows(1, 7, 1500, 700, 10, 980))

	result, err := repo.Settle(context.Background(), 7, decimal.NewFromInt(490))
	assert.NoError(t, err)
	assert.True(t, result.TotalWithdrawn.Equal(decimal.NewFromInt(980)))
}

func TestRepository_Release(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE balances
        SET available_balance = available_balance + $2
        WHERE instructor_id = $1
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	mock.ExpectQuery(query).
		WithArgs(7, decimal.NewFromInt(300)).
		WillReturnRows(balanceRows(1, 7, 1500, 700, 310, 490))

	result, err := repo.Release(context.Background(), 7, decimal.NewFromInt(300))
	assert.NoError(t, err)
	assert.True(t, result.AvailableBalance.Equal(decimal.NewFromInt(310)))
}

func TestRepository_DebitReversal(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        UPDATE balances
        SET pending_balance = pending_balance - $2,
            available_balance = available_balance - $3,
            total_earnings = total_earnings - $2 - $3
        WHERE instructor_id = $1 AND pending_balance >= $2 AND available_balance >= $3
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Debits both buckets in one statement",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700), decimal.Zero).
					WillReturnRows(balanceRows(1, 7, 800, 0, 310, 490))
			},
		},
		{
			name: "Guard fails when a bucket is short",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(7, decimal.NewFromInt(700), decimal.Zero).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.DebitReversal(context.Background(), 7, decimal.NewFromInt(700), decimal.Zero)

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, result)
			} else {
				assert.True(t, result.PendingBalance.IsZero())
			}
		})
	}
}
