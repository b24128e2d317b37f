package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithdrawalSubmitRequestDTO struct {
	Amount   decimal.Decimal `json:"amount"    validate:"required" example:"500.00"`
	MethodID int             `json:"method_id" validate:"required,gt=0" example:"1"`
}

type WithdrawalResponseDTO struct {
	ID          int             `json:"id" example:"1"`
	Amount      decimal.Decimal `json:"amount" example:"500.00"`
	Fee         decimal.Decimal `json:"fee" example:"10.00"`
	NetAmount   decimal.Decimal `json:"net_amount" example:"490.00"`
	Status      string          `json:"status" example:"PENDING"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-01-20T12:00:00Z"`
	ProcessedAt *time.Time      `json:"processed_at,omitempty"`
}

type WithdrawalProcessRequestDTO struct {
	Decision string `json:"decision" validate:"required,oneof=PROCESSING APPROVED REJECTED CANCELLED" example:"APPROVED"`
	Notes    string `json:"notes" example:"payout batch 2024-03"`
}

type WithdrawalMethodRequestDTO struct {
	Kind          string          `json:"kind"           validate:"required,oneof=card bank" example:"card"`
	AccountNumber string          `json:"account_number" validate:"required" example:"4561261212345467"`
	FeePercent    decimal.Decimal `json:"fee_percent" example:"1.5"`
	FeeFixed      decimal.Decimal `json:"fee_fixed" example:"2.50"`
}

type WithdrawalMethodResponseDTO struct {
	ID   int    `json:"id" example:"1"`
	Kind string `json:"kind" example:"card"`
}
