package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RuleRequestDTO struct {
	Scope          string          `json:"scope"            validate:"required,oneof=global category instructor course" example:"category"`
	ScopeTargetID  *int            `json:"scope_target_id,omitempty" example:"3"`
	PlatformRate   decimal.Decimal `json:"platform_rate"    validate:"required" example:"30"`
	InstructorRate decimal.Decimal `json:"instructor_rate"  validate:"required" example:"70"`
	HoldPeriodDays int             `json:"hold_period_days" validate:"gte=0" example:"14"`
	IsActive       bool            `json:"is_active" example:"true"`
	Priority       int             `json:"priority" example:"10"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidTo        *time.Time      `json:"valid_to,omitempty"`
}

type RuleResponseDTO struct {
	ID             int             `json:"id" example:"1"`
	Scope          string          `json:"scope" example:"category"`
	ScopeTargetID  *int            `json:"scope_target_id,omitempty" example:"3"`
	PlatformRate   decimal.Decimal `json:"platform_rate" example:"30"`
	InstructorRate decimal.Decimal `json:"instructor_rate" example:"70"`
	HoldPeriodDays int             `json:"hold_period_days" example:"14"`
	IsActive       bool            `json:"is_active" example:"true"`
	Priority       int             `json:"priority" example:"10"`
	ValidFrom      *time.Time      `json:"valid_from,omitempty"`
	ValidTo        *time.Time      `json:"valid_to,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
