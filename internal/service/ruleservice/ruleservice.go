package ruleservice

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	FindApplicable(ctx context.Context, courseID, instructorID, categoryID int, at time.Time) ([]domain.CommissionRule, error)
	GetByID(ctx context.Context, id int) (*domain.CommissionRule, error)
	List(ctx context.Context) ([]domain.CommissionRule, error)
	Create(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error)
	Update(ctx context.Context, rule *domain.CommissionRule) error
	CountEarnings(ctx context.Context, ruleID int) (int, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidRule    = errors.New("invalid commission rule")
	ErrRuleReferenced = errors.New("rule is referenced by earnings")
	ErrRuleNotFound   = errors.New("rule not found")
)

// Fallback split used when no active rule matches a sale. A sale must never
// fail because nobody configured a rule.
const (
	DefaultPlatformRate   = 30
	DefaultInstructorRate = 70
	DefaultHoldPeriodDays = 14
)

// DefaultRule returns the hard-coded fallback rule. Its zero ID marks an
// earning as resolved by default rather than by a stored rule.
func DefaultRule() domain.CommissionRule {
	return domain.CommissionRule{
		Scope:          domain.ScopeGlobal,
		PlatformRate:   decimal.NewFromInt(DefaultPlatformRate),
		InstructorRate: decimal.NewFromInt(DefaultInstructorRate),
		HoldPeriodDays: DefaultHoldPeriodDays,
		IsActive:       true,
	}
}

// scopeCascade is the resolution order, most specific first.
var scopeCascade = []domain.RuleScope{
	domain.ScopeCourse,
	domain.ScopeInstructor,
	domain.ScopeCategory,
	domain.ScopeGlobal,
}

// Resolve picks the single rule governing a sale. Candidates are already
// filtered to active, in-window rules matching the sale; within a scope level
// the highest priority wins, then the most recently created. Resolve never
// fails a sale: with no match it falls back to DefaultRule.
func (s *Service) Resolve(ctx context.Context, courseID, instructorID, categoryID int, at time.Time) (domain.CommissionRule, error) {
	candidates, err := s.repo.FindApplicable(ctx, courseID, instructorID, categoryID, at)
	if err != nil {
		zap.L().Error("failed to load applicable rules", zap.Error(err))
		return domain.CommissionRule{}, err
	}

	for _, scope := range scopeCascade {
		if rule := pickBest(candidates, scope); rule != nil {
			return *rule, nil
		}
	}

	zap.L().Warn("no commission rule matched, using default split",
		zap.Int("courseID", courseID), zap.Int("instructorID", instructorID), zap.Int("categoryID", categoryID))
	return DefaultRule(), nil
}

func pickBest(candidates []domain.CommissionRule, scope domain.RuleScope) *domain.CommissionRule {
	var best *domain.CommissionRule
	for i := range candidates {
		rule := &candidates[i]
		if rule.Scope != scope {
			continue
		}
		if best == nil ||
			rule.Priority > best.Priority ||
			(rule.Priority == best.Priority && rule.CreatedAt.After(best.CreatedAt)) {
			best = rule
		}
	}
	return best
}

func validateRule(rule *domain.CommissionRule) error {
	if !rule.PlatformRate.Add(rule.InstructorRate).Equal(decimal.NewFromInt(100)) {
		return ErrInvalidRule
	}
	if rule.PlatformRate.IsNegative() || rule.InstructorRate.IsNegative() {
		return ErrInvalidRule
	}
	if rule.HoldPeriodDays < 0 {
		return ErrInvalidRule
	}
	if (rule.Scope == domain.ScopeGlobal) != (rule.ScopeTargetID == nil) {
		return ErrInvalidRule
	}
	if rule.ValidFrom != nil && rule.ValidTo != nil && rule.ValidTo.Before(*rule.ValidFrom) {
		return ErrInvalidRule
	}
	return nil
}

func (s *Service) CreateRule(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error) {
	if err := validateRule(rule); err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, rule)
	if err != nil {
		zap.L().Error("failed to create commission rule", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// UpdateRule applies an admin edit. Once a rule backs at least one earning it
// is frozen except for is_active, priority and valid_to, so earnings already
// computed against it keep their terms.
func (s *Service) UpdateRule(ctx context.Context, rule *domain.CommissionRule) error {
	if err := validateRule(rule); err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, rule.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrRuleNotFound
	}

	referenced, err := s.repo.CountEarnings(ctx, rule.ID)
	if err != nil {
		return err
	}
	if referenced > 0 && frozenFieldsChanged(existing, rule) {
		return ErrRuleReferenced
	}

	return s.repo.Update(ctx, rule)
}

func frozenFieldsChanged(existing, updated *domain.CommissionRule) bool {
	if existing.Scope != updated.Scope {
		return true
	}
	if (existing.ScopeTargetID == nil) != (updated.ScopeTargetID == nil) {
		return true
	}
	if existing.ScopeTargetID != nil && *existing.ScopeTargetID != *updated.ScopeTargetID {
		return true
	}
	if !existing.PlatformRate.Equal(updated.PlatformRate) || !existing.InstructorRate.Equal(updated.InstructorRate) {
		return true
	}
	if existing.HoldPeriodDays != updated.HoldPeriodDays {
		return true
	}
	if !equalTime(existing.ValidFrom, updated.ValidFrom) {
		return true
	}
	return false
}

func equalTime(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || a.Equal(*b)
}

func (s *Service) ListRules(ctx context.Context) ([]domain.CommissionRule, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list commission rules", zap.Error(err))
		return nil, err
	}
	return rules, nil
}
