package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleCompletedRequestDTO struct {
	SaleReferenceID string          `json:"sale_reference_id" validate:"required" example:"sale-2024-000123"`
	CourseID        int             `json:"course_id"         validate:"required,gt=0" example:"42"`
	InstructorID    int             `json:"instructor_id"     validate:"required,gt=0" example:"7"`
	CategoryID      int             `json:"category_id"       validate:"required,gt=0" example:"3"`
	GrossAmount     decimal.Decimal `json:"gross_amount"      validate:"required" example:"1000.00"`
	CompletedAt     time.Time       `json:"completed_at"      validate:"required" example:"2024-01-01T00:00:00Z"`
}

type SaleRefundedRequestDTO struct {
	SaleReferenceID string `json:"sale_reference_id" validate:"required" example:"sale-2024-000123"`
}

type EarningResponseDTO struct {
	ID                 int             `json:"id" example:"1"`
	SaleReferenceID    string          `json:"sale_reference_id" example:"sale-2024-000123"`
	CourseID           int             `json:"course_id" example:"42"`
	GrossAmount        decimal.Decimal `json:"gross_amount" example:"1000.00"`
	PlatformCommission decimal.Decimal `json:"platform_commission" example:"300.00"`
	NetAmount          decimal.Decimal `json:"net_amount" example:"700.00"`
	Status             string          `json:"status" example:"PENDING"`
	EarnedAt           time.Time       `json:"earned_at" example:"2024-01-01T00:00:00Z"`
	AvailableAt        time.Time       `json:"available_at" example:"2024-01-15T00:00:00Z"`
}

type ShortfallResponseDTO struct {
	ID           int             `json:"id" example:"1"`
	EarningID    int             `json:"earning_id" example:"17"`
	InstructorID int             `json:"instructor_id" example:"7"`
	Amount       decimal.Decimal `json:"amount" example:"250.00"`
	CreatedAt    time.Time       `json:"created_at" example:"2024-02-01T10:00:00Z"`
}
