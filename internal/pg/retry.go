package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	maxRetries    = 3
	retryInterval = time.Millisecond * 50
)

// retryable SQLSTATEs: serialization failure, deadlock, lock_timeout.
var retryableCodes = map[string]struct{}{
	"40001": {},
	"40P01": {},
	"55P03": {},
}

// ErrTxConflict marks a transaction whose in-tx guard lost a race with a
// concurrent writer. WithRetry re-runs the transaction like it does for a
// serialization failure; the rolled-back guard check starts clean on the
// next attempt.
var ErrTxConflict = errors.New("transaction conflict")

// IsUniqueViolation reports a unique-constraint violation, e.g. a second
// earning insert for the same sale reference.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func IsRetryableError(err error) bool {
	if errors.Is(err, ErrTxConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := retryableCodes[pgErr.Code]
	return ok
}

// WithRetry runs fn in a transaction, retrying it a bounded number of times
// on lock contention. Callers see the last error when all attempts fail.
func WithRetry(ctx context.Context, m TXManager, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = m.Begin(ctx, fn)
		if err == nil || !IsRetryableError(err) {
			return err
		}
		zap.L().Warn("ledger transaction conflict, retrying",
			zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval * time.Duration(attempt)):
		}
	}
	return err
}
