package balancerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"go.uber.org/zap"
)

// Repository is the instructor balance ledger. Every mutation is a single
// guarded UPDATE: the guard and the write execute atomically, so a concurrent
// caller can never observe a balance between the read and the write. A nil
// balance with a nil error means the guard did not hold (e.g. insufficient
// funds) and nothing was mutated.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const balanceColumns = "id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn"

func scanBalance(row pgx.Row) (*domain.Balance, error) {
	var b domain.Balance
	err := row.Scan(&b.ID, &b.InstructorID, &b.TotalEarnings, &b.PendingBalance, &b.AvailableBalance, &b.TotalWithdrawn)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) Get(ctx context.Context, instructorID int) (*domain.Balance, error) {
	query := `
        SELECT id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
        FROM balances
        WHERE instructor_id = $1
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get instructor balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// GetForUpdate locks the balance row for the rest of the ambient transaction.
// Used by the refund path, which has to split a reversal between pending and
// available funds based on what is left.
func (r *Repository) GetForUpdate(ctx context.Context, instructorID int) (*domain.Balance, error) {
	query := `
        SELECT id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
        FROM balances
        WHERE instructor_id = $1
        FOR UPDATE
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to lock instructor balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Create provisions a zero balance row. The no-op conflict arm makes a lost
// race against a concurrent insert return the existing row instead of 23505.
func (r *Repository) Create(ctx context.Context, instructorID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn)
        VALUES ($1, 0, 0, 0, 0)
        ON CONFLICT (instructor_id) DO UPDATE SET instructor_id = EXCLUDED.instructor_id
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID))
	if err != nil {
		zap.L().Error("failed to create instructor balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreditPending adds a fresh earning to the pending bucket, creating the
// balance row on the instructor's first sale.
func (r *Repository) CreditPending(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn)
        VALUES ($1, $2, $2, 0, 0)
        ON CONFLICT (instructor_id) DO UPDATE
        SET total_earnings = balances.total_earnings + EXCLUDED.total_earnings,
            pending_balance = balances.pending_balance + EXCLUDED.pending_balance
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, amount))
	if err != nil {
		zap.L().Error("failed to credit pending balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// PromoteToAvailable moves a matured earning from pending to available.
// Total earnings never change here.
func (r *Repository) PromoteToAvailable(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET pending_balance = pending_balance - $2,
            available_balance = available_balance + $2
        WHERE instructor_id = $1 AND pending_balance >= $2
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, amount))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to promote pending balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Reserve removes funds from the available bucket at withdrawal-request
// creation. A nil result means the available balance was below the requested
// amount; the statement did not mutate anything in that case.
func (r *Repository) Reserve(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET available_balance = available_balance - $2
        WHERE instructor_id = $1 AND available_balance >= $2
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, amount))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to reserve balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Settle finalizes an approved withdrawal. The reserved amount stays deducted;
// only the net amount the instructor receives is counted as withdrawn.
func (r *Repository) Settle(ctx context.Context, instructorID int, netAmount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET total_withdrawn = total_withdrawn + $2
        WHERE instructor_id = $1
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, netAmount))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to settle withdrawal", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Release returns a reservation to the available bucket after a rejection or
// cancellation. The full reserved amount comes back, not the net.
func (r *Repository) Release(ctx context.Context, instructorID int, amount decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET available_balance = available_balance + $2
        WHERE instructor_id = $1
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, amount))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to release reservation", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// DebitReversal takes a refunded earning back out of the ledger. The two
// debits and the total-earnings decrement happen in one statement; a nil
// result means one of the buckets had less than the requested debit.
func (r *Repository) DebitReversal(ctx context.Context, instructorID int, fromPending, fromAvailable decimal.Decimal) (*domain.Balance, error) {
	query := `
        UPDATE balances
        SET pending_balance = pending_balance - $2,
            available_balance = available_balance - $3,
            total_earnings = total_earnings - $2 - $3
        WHERE instructor_id = $1 AND pending_balance >= $2 AND available_balance >= $3
        RETURNING id, instructor_id, total_earnings, pending_balance, available_balance, total_withdrawn
    `
	balance, err := scanBalance(r.db.QueryRow(ctx, query, instructorID, fromPending, fromAvailable))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to debit reversal", zap.Error(err))
		return nil, err
	}
	return balance, nil
}
