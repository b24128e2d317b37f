package withdrawalrepo

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

const requestColumns = `id, instructor_id, method_id, amount, fee, net_amount,
               status, notes, created_at, processed_at, processed_by`

func scanRequest(row pgx.Row) (*domain.WithdrawalRequest, error) {
	var req domain.WithdrawalRequest
	err := row.Scan(&req.ID, &req.InstructorID, &req.MethodID, &req.Amount, &req.Fee, &req.NetAmount,
		&req.Status, &req.Notes, &req.CreatedAt, &req.ProcessedAt, &req.ProcessedBy)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Create(ctx context.Context, request *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
        INSERT INTO withdrawal_requests (instructor_id, method_id, amount, fee, net_amount, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, request.InstructorID, request.MethodID, request.Amount,
		request.Fee, request.NetAmount, request.Status, request.Notes).
		Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

// GetForUpdate locks the request row so that concurrent Process calls on the
// same request serialize. Must run inside a transaction.
func (r *Repository) GetForUpdate(ctx context.Context, id int) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM withdrawal_requests
        WHERE id = $1
        FOR UPDATE
    `
	request, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock withdrawal request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status, notes string, processedBy *int, processedAt *time.Time) error {
	query := `
        UPDATE withdrawal_requests
        SET status = $1, notes = $2, processed_by = $3, processed_at = $4
        WHERE id = $5
    `
	_, err := r.db.Exec(ctx, query, status, notes, processedBy, processedAt, id)
	if err != nil {
		zap.L().Error("failed to update withdrawal request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByInstructor(ctx context.Context, instructorID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM withdrawal_requests
        WHERE instructor_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, instructorID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.WithdrawalRequest
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("failed to scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *request)
	}

	return requests, nil
}

func (r *Repository) CreateMethod(ctx context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error) {
	query := `
        INSERT INTO withdrawal_methods (instructor_id, kind, account_number, fee_percent, fee_fixed, is_active)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, method.InstructorID, method.Kind, method.AccountNumber,
		method.FeePercent, method.FeeFixed, method.IsActive).Scan(&method.ID)
	if err != nil {
		zap.L().Error("can't save withdrawal method", zap.Error(err))
		return nil, err
	}
	return method, nil
}

func (r *Repository) GetMethod(ctx context.Context, id int) (*domain.WithdrawalMethod, error) {
	query := `
        SELECT id, instructor_id, kind, account_number, fee_percent, fee_fixed, is_active
        FROM withdrawal_methods
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var method domain.WithdrawalMethod
	err := row.Scan(&method.ID, &method.InstructorID, &method.Kind, &method.AccountNumber,
		&method.FeePercent, &method.FeeFixed, &method.IsActive)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find withdrawal method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}
