package earningrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const earningColumns = `id, instructor_id, course_id, sale_reference_id, gross_amount,
               platform_commission, net_amount, applied_rule_id, status, earned_at, available_at`

func scanEarning(row pgx.Row) (*domain.Earning, error) {
	var e domain.Earning
	err := row.Scan(&e.ID, &e.InstructorID, &e.CourseID, &e.SaleReferenceID, &e.GrossAmount,
		&e.PlatformCommission, &e.NetAmount, &e.AppliedRuleID, &e.Status, &e.EarnedAt, &e.AvailableAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// FindBySaleReference is the idempotency lookup: one earning per sale.
func (r *Repository) FindBySaleReference(ctx context.Context, saleReferenceID string) (*domain.Earning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM earnings
        WHERE sale_reference_id = $1
    `
	earning, err := scanEarning(r.db.QueryRow(ctx, query, saleReferenceID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find earning", zap.Error(err))
		return nil, err
	}
	return earning, nil
}

// Save inserts the earning. The unique constraint on sale_reference_id turns
// a concurrent duplicate delivery into a constraint violation the service
// resolves by returning the already stored earning.
func (r *Repository) Save(ctx context.Context, earning *domain.Earning) error {
	query := `
        INSERT INTO earnings (instructor_id, course_id, sale_reference_id, gross_amount,
                              platform_commission, net_amount, applied_rule_id, status, earned_at, available_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, earning.InstructorID, earning.CourseID, earning.SaleReferenceID,
		earning.GrossAmount, earning.PlatformCommission, earning.NetAmount, earning.AppliedRuleID,
		earning.Status, earning.EarnedAt, earning.AvailableAt).Scan(&earning.ID)
	if err != nil {
		zap.L().Error("can't save earning", zap.Error(err))
		return err
	}
	return nil
}

// FindMature returns pending earnings whose hold period has elapsed, oldest
// first, capped by limit. Served by the partial (status, available_at) index.
func (r *Repository) FindMature(ctx context.Context, now time.Time, limit uint32) ([]domain.Earning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM earnings
        WHERE status = 'PENDING' AND available_at <= $1
        ORDER BY available_at ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, now, int(limit))
	if err != nil {
		zap.L().Error("can't get earnings for promotion", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.Earning
	for rows.Next() {
		earning, err := scanEarning(rows)
		if err != nil {
			zap.L().Error("can't scan earning row for promotion", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, *earning)
	}
	return earnings, nil
}

func (r *Repository) FindByInstructor(ctx context.Context, instructorID int) ([]domain.Earning, error) {
	query := `
        SELECT ` + earningColumns + `
        FROM earnings
        WHERE instructor_id = $1
        ORDER BY earned_at DESC
    `
	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		zap.L().Error("can't get instructor earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var earnings []domain.Earning
	for rows.Next() {
		earning, err := scanEarning(rows)
		if err != nil {
			zap.L().Error("can't scan earning row", zap.Error(err))
			return nil, err
		}
		earnings = append(earnings, *earning)
	}
	return earnings, nil
}

// MarkAvailable flips a pending earning to available. The status guard makes
// the promotion idempotent: a rerun or a second sweeper finds zero rows and
// reports false.
func (r *Repository) MarkAvailable(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE earnings
        SET status = 'AVAILABLE'
        WHERE id = $1 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark earning available", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkReversed flips an earning in the given status to reversed, guarding
// against double reversal the same way MarkAvailable guards promotion.
func (r *Repository) MarkReversed(ctx context.Context, id int, fromStatus string) (bool, error) {
	query := `
        UPDATE earnings
        SET status = 'REVERSED'
        WHERE id = $1 AND status = $2
    `
	tag, err := r.db.Exec(ctx, query, id, fromStatus)
	if err != nil {
		zap.L().Error("failed to mark earning reversed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SaveShortfall(ctx context.Context, shortfall *domain.ReversalShortfall) error {
	query := `
        INSERT INTO reversal_shortfalls (earning_id, instructor_id, amount)
        VALUES ($1, $2, $3)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, shortfall.EarningID, shortfall.InstructorID, shortfall.Amount).
		Scan(&shortfall.ID, &shortfall.CreatedAt)
	if err != nil {
		zap.L().Error("can't save reversal shortfall", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindOpenShortfalls(ctx context.Context) ([]domain.ReversalShortfall, error) {
	query := `
        SELECT id, earning_id, instructor_id, amount, resolved, created_at
        FROM reversal_shortfalls
        WHERE resolved = FALSE
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get open shortfalls", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shortfalls []domain.ReversalShortfall
	for rows.Next() {
		var sf domain.ReversalShortfall
		err := rows.Scan(&sf.ID, &sf.EarningID, &sf.InstructorID, &sf.Amount, &sf.Resolved, &sf.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan shortfall row", zap.Error(err))
			return nil, err
		}
		shortfalls = append(shortfalls, sf)
	}
	return shortfalls, nil
}
