package sales

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/dto"
	"github.com/coursemart/settlement/internal/service/earningservice"
	"github.com/coursemart/settlement/pkg/utils"
)

// Service is the sale intake consumed by the payment-processing layer.
type Service interface {
	RecordSale(ctx context.Context, saleReferenceID string, courseID, instructorID, categoryID int, grossAmount decimal.Decimal, completedAt time.Time) (*domain.Earning, error)
	RecordRefund(ctx context.Context, saleReferenceID string) (*domain.Earning, error)
}

type SalesHandler struct {
	earningService Service
	validate       *validator.Validate
}

func New(earningService Service) *SalesHandler {
	return &SalesHandler{
		earningService: earningService,
		validate:       validator.New(),
	}
}

// SaleCompleted godoc
//
//	@Summary		Report a completed sale
//	@Description	Split a completed sale by the governing commission rule and credit the instructor's pending balance. Redelivery of the same sale reference is a no-op returning the stored earning.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaleCompletedRequestDTO	true	"Completed sale payload"
//	@Success		200		{object}	dto.EarningResponseDTO		"Sale was already recorded"
//	@Success		201		{object}	dto.EarningResponseDTO		"Earning created"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Caller not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/sales/completed [post]
func (h *SalesHandler) SaleCompleted(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleCompletedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil || !req.GrossAmount.IsPositive() {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid sale payload")
		return
	}

	earning, err := h.earningService.RecordSale(r.Context(), req.SaleReferenceID,
		req.CourseID, req.InstructorID, req.CategoryID, req.GrossAmount, req.CompletedAt)
	if err != nil {
		if errors.Is(err, earningservice.ErrDuplicateSale) {
			utils.RespondWithJSON(w, http.StatusOK, toEarningResponse(earning))
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEarningResponse(earning))
}

// SaleRefunded godoc
//
//	@Summary		Report a refunded sale
//	@Description	Reverse the matching earning. If its funds were already withdrawn the uncovered part is queued as a reversal shortfall for an operator.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SaleRefundedRequestDTO	true	"Refunded sale payload"
//	@Success		200		{object}	dto.EarningResponseDTO		"Earning reversed"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		401		{object}	utils.Response				"Caller not authorized"
//	@Failure		404		{object}	utils.Response				"No earning for sale reference"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/sales/refunded [post]
func (h *SalesHandler) SaleRefunded(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleRefundedRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid refund payload")
		return
	}

	earning, err := h.earningService.RecordRefund(r.Context(), req.SaleReferenceID)
	if err != nil {
		if errors.Is(err, earningservice.ErrEarningNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEarningResponse(earning))
}

func toEarningResponse(earning *domain.Earning) dto.EarningResponseDTO {
	return dto.EarningResponseDTO{
		ID:                 earning.ID,
		SaleReferenceID:    earning.SaleReferenceID,
		CourseID:           earning.CourseID,
		GrossAmount:        earning.GrossAmount,
		PlatformCommission: earning.PlatformCommission,
		NetAmount:          earning.NetAmount,
		Status:             earning.Status,
		EarnedAt:           earning.EarnedAt,
		AvailableAt:        earning.AvailableAt,
	}
}
