package rulerepo

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

func scanRules(rows pgx.Rows) ([]domain.CommissionRule, error) {
	defer rows.Close()

	var rules []domain.CommissionRule
	for rows.Next() {
		var rule domain.CommissionRule
		err := rows.Scan(&rule.ID, &rule.Scope, &rule.ScopeTargetID, &rule.PlatformRate, &rule.InstructorRate,
			&rule.HoldPeriodDays, &rule.IsActive, &rule.Priority, &rule.ValidFrom, &rule.ValidTo, &rule.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan commission rule row", zap.Error(err))
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// FindApplicable returns every active, in-window rule that could govern the
// sale: the global rule plus any rule targeting the course, the instructor or
// the category. The resolver picks the winner.
func (r *Repository) FindApplicable(ctx context.Context, courseID, instructorID, categoryID int, at time.Time) ([]domain.CommissionRule, error) {
	query := `
        SELECT id, scope, scope_target_id, platform_rate, instructor_rate,
               hold_period_days, is_active, priority, valid_from, valid_to, created_at
        FROM commission_rules
        WHERE is_active = TRUE
          AND (valid_from IS NULL OR valid_from <= $4)
          AND (valid_to IS NULL OR valid_to >= $4)
          AND (
              (scope = 'course' AND scope_target_id = $1)
              OR (scope = 'instructor' AND scope_target_id = $2)
              OR (scope = 'category' AND scope_target_id = $3)
              OR scope = 'global'
          )
    `
	rows, err := r.db.Query(ctx, query, courseID, instructorID, categoryID, at)
	if err != nil {
		zap.L().Error("can't get applicable commission rules", zap.Error(err))
		return nil, err
	}
	return scanRules(rows)
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.CommissionRule, error) {
	query := `
        SELECT id, scope, scope_target_id, platform_rate, instructor_rate,
               hold_period_days, is_active, priority, valid_from, valid_to, created_at
        FROM commission_rules
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var rule domain.CommissionRule
	err := row.Scan(&rule.ID, &rule.Scope, &rule.ScopeTargetID, &rule.PlatformRate, &rule.InstructorRate,
		&rule.HoldPeriodDays, &rule.IsActive, &rule.Priority, &rule.ValidFrom, &rule.ValidTo, &rule.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find commission rule", zap.Error(err))
		return nil, err
	}
	return &rule, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.CommissionRule, error) {
	query := `
        SELECT id, scope, scope_target_id, platform_rate, instructor_rate,
               hold_period_days, is_active, priority, valid_from, valid_to, created_at
        FROM commission_rules
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list commission rules", zap.Error(err))
		return nil, err
	}
	return scanRules(rows)
}

func (r *Repository) Create(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error) {
	query := `
        INSERT INTO commission_rules (scope, scope_target_id, platform_rate, instructor_rate,
                                      hold_period_days, is_active, priority, valid_from, valid_to)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, rule.Scope, rule.ScopeTargetID, rule.PlatformRate, rule.InstructorRate,
		rule.HoldPeriodDays, rule.IsActive, rule.Priority, rule.ValidFrom, rule.ValidTo).
		Scan(&rule.ID, &rule.CreatedAt)
	if err != nil {
		zap.L().Error("can't save commission rule", zap.Error(err))
		return nil, err
	}
	return rule, nil
}

func (r *Repository) Update(ctx context.Context, rule *domain.CommissionRule) error {
	query := `
        UPDATE commission_rules
        SET scope = $1, scope_target_id = $2, platform_rate = $3, instructor_rate = $4,
            hold_period_days = $5, is_active = $6, priority = $7, valid_from = $8, valid_to = $9
        WHERE id = $10
    `
	_, err := r.db.Exec(ctx, query, rule.Scope, rule.ScopeTargetID, rule.PlatformRate, rule.InstructorRate,
		rule.HoldPeriodDays, rule.IsActive, rule.Priority, rule.ValidFrom, rule.ValidTo, rule.ID)
	if err != nil {
		zap.L().Error("can't update commission rule", zap.Error(err))
		return err
	}
	return nil
}

// CountEarnings reports how many earnings reference the rule. A referenced
// rule may not change its split, scope or hold period anymore.
func (r *Repository) CountEarnings(ctx context.Context, ruleID int) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM earnings
        WHERE applied_rule_id = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, ruleID).Scan(&count); err != nil {
		zap.L().Error("can't count rule earnings", zap.Error(err))
		return 0, err
	}
	return count, nil
}
