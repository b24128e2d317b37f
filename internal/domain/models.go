package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleScope narrows a commission rule to a slice of the catalog. Scopes are
// resolved from the most specific to the least specific one.
type RuleScope string

const (
	ScopeCourse     RuleScope = "course"
	ScopeInstructor RuleScope = "instructor"
	ScopeCategory   RuleScope = "category"
	ScopeGlobal     RuleScope = "global"
)

type CommissionRule struct {
	ID             int             `db:"id"`
	Scope          RuleScope       `db:"scope"`
	ScopeTargetID  *int            `db:"scope_target_id"`
	PlatformRate   decimal.Decimal `db:"platform_rate"`
	InstructorRate decimal.Decimal `db:"instructor_rate"`
	HoldPeriodDays int             `db:"hold_period_days"`
	IsActive       bool            `db:"is_active"`
	Priority       int             `db:"priority"`
	ValidFrom      *time.Time      `db:"valid_from"`
	ValidTo        *time.Time      `db:"valid_to"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	// PendingEarningStatus - the earning is inside its hold period.
	PendingEarningStatus string = "PENDING"
	// AvailableEarningStatus - the hold period elapsed, funds are withdrawable.
	AvailableEarningStatus string = "AVAILABLE"
	// ReversedEarningStatus - the underlying sale was refunded.
	ReversedEarningStatus string = "REVERSED"
)

type Earning struct {
	ID                 int             `db:"id"`
	InstructorID       int             `db:"instructor_id"`
	CourseID           int             `db:"course_id"`
	SaleReferenceID    string          `db:"sale_reference_id"`
	GrossAmount        decimal.Decimal `db:"gross_amount"`
	PlatformCommission decimal.Decimal `db:"platform_commission"`
	NetAmount          decimal.Decimal `db:"net_amount"`
	AppliedRuleID      *int            `db:"applied_rule_id"`
	Status             string          `db:"status"`
	EarnedAt           time.Time       `db:"earned_at"`
	AvailableAt        time.Time       `db:"available_at"`
}

// Balance is the per-instructor running ledger. At all times
// totalEarnings = pending + available + withdrawn + reserved-but-unsettled.
type Balance struct {
	ID               int             `db:"id"`
	InstructorID     int             `db:"instructor_id"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	PendingBalance   decimal.Decimal `db:"pending_balance"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	TotalWithdrawn   decimal.Decimal `db:"total_withdrawn"`
}

const (
	PendingWithdrawalStatus    string = "PENDING"
	ProcessingWithdrawalStatus string = "PROCESSING"
	ApprovedWithdrawalStatus   string = "APPROVED"
	CompletedWithdrawalStatus  string = "COMPLETED"
	RejectedWithdrawalStatus   string = "REJECTED"
	CancelledWithdrawalStatus  string = "CANCELLED"
)

type WithdrawalMethod struct {
	ID            int             `db:"id"`
	InstructorID  int             `db:"instructor_id"`
	Kind          string          `db:"kind"`
	AccountNumber string          `db:"account_number"`
	FeePercent    decimal.Decimal `db:"fee_percent"`
	FeeFixed      decimal.Decimal `db:"fee_fixed"`
	IsActive      bool            `db:"is_active"`
}

type WithdrawalRequest struct {
	ID           int             `db:"id"`
	InstructorID int             `db:"instructor_id"`
	MethodID     int             `db:"method_id"`
	Amount       decimal.Decimal `db:"amount"`
	Fee          decimal.Decimal `db:"fee"`
	NetAmount    decimal.Decimal `db:"net_amount"`
	Status       string          `db:"status"`
	Notes        string          `db:"notes"`
	CreatedAt    time.Time       `db:"created_at"`
	ProcessedAt  *time.Time      `db:"processed_at"`
	ProcessedBy  *int            `db:"processed_by"`
}

// ReversalShortfall records a refund that arrived after the earning was
// already withdrawn. The ledger never goes negative; the uncovered remainder
// is queued here for an operator.
type ReversalShortfall struct {
	ID           int             `db:"id"`
	EarningID    int             `db:"earning_id"`
	InstructorID int             `db:"instructor_id"`
	Amount       decimal.Decimal `db:"amount"`
	Resolved     bool            `db:"resolved"`
	CreatedAt    time.Time       `db:"created_at"`
}
