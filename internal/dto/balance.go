package dto

import "github.com/shopspring/decimal"

type BalanceResponseDTO struct {
	TotalEarnings    decimal.Decimal `json:"total_earnings" example:"1500.00"`
	PendingBalance   decimal.Decimal `json:"pending_balance" example:"700.00"`
	AvailableBalance decimal.Decimal `json:"available_balance" example:"310.00"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn" example:"490.00"`
}
