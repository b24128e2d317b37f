package balance

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/dto"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/withdrawalservice"
	"github.com/coursemart/settlement/pkg/auth"
	"github.com/coursemart/settlement/pkg/utils"
)

type BalanceService interface {
	GetBalance(ctx context.Context, instructorID int) (*domain.Balance, error)
}

type EarningService interface {
	GetEarnings(ctx context.Context, instructorID int) ([]domain.Earning, error)
}

type WithdrawalService interface {
	Submit(ctx context.Context, instructorID int, amount decimal.Decimal, methodID int) (*domain.WithdrawalRequest, error)
	Confirm(ctx context.Context, instructorID, requestID int) (*domain.WithdrawalRequest, error)
	Cancel(ctx context.Context, instructorID, requestID int) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, instructorID int) ([]domain.WithdrawalRequest, error)
	AddMethod(ctx context.Context, method *domain.WithdrawalMethod) (*domain.WithdrawalMethod, error)
}

type BalanceHandler struct {
	balanceService    BalanceService
	earningService    EarningService
	withdrawalService WithdrawalService
	validate          *validator.Validate
}

func New(balanceService BalanceService, earningService EarningService, withdrawalService WithdrawalService) *BalanceHandler {
	return &BalanceHandler{
		balanceService:    balanceService,
		earningService:    earningService,
		withdrawalService: withdrawalService,
		validate:          validator.New(),
	}
}

// GetBalance godoc
//
//	@Summary		Get instructor balance
//	@Description	Running totals for the authenticated instructor: lifetime earnings, pending, available and withdrawn amounts.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"Instructor not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/instructor/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.balanceService.GetBalance(r.Context(), instructorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		TotalEarnings:    balance.TotalEarnings,
		PendingBalance:   balance.PendingBalance,
		AvailableBalance: balance.AvailableBalance,
		TotalWithdrawn:   balance.TotalWithdrawn,
	})
}

// GetEarnings godoc
//
//	@Summary		Get earnings history
//	@Description	Earnings of the authenticated instructor, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.EarningResponseDTO	"Earnings"
//	@Success		204	{object}	utils.Response			"No earnings yet"
//	@Failure		401	{object}	utils.Response			"Instructor not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/instructor/earnings [get]
func (h *BalanceHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	earnings, err := h.earningService.GetEarnings(r.Context(), instructorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch earnings")
		return
	}
	if len(earnings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No earnings")
		return
	}

	response := make([]dto.EarningResponseDTO, len(earnings))
	for i, e := range earnings {
		response[i] = dto.EarningResponseDTO{
			ID:                 e.ID,
			SaleReferenceID:    e.SaleReferenceID,
			CourseID:           e.CourseID,
			GrossAmount:        e.GrossAmount,
			PlatformCommission: e.PlatformCommission,
			NetAmount:          e.NetAmount,
			Status:             e.Status,
			EarnedAt:           e.EarnedAt,
			AvailableAt:        e.AvailableAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Reserve part of the available balance and create a withdrawal request in Pending state.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalSubmitRequestDTO	true	"Withdrawal request payload"
//	@Success		201		{object}	dto.WithdrawalResponseDTO		"Request created"
//	@Failure		401		{object}	utils.Response					"Instructor not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		409		{object}	utils.Response					"Ledger busy, retry"
//	@Failure		422		{object}	utils.Response					"Amount below minimum or unknown method"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/instructor/withdrawals [post]
func (h *BalanceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalSubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil || !req.Amount.IsPositive() {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid withdrawal request")
		return
	}

	request, err := h.withdrawalService.Submit(r.Context(), instructorID, req.Amount, req.MethodID)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrMethodNotFound):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, balanceservice.ErrLedgerConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toWithdrawalResponse(request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Withdrawal requests of the authenticated instructor, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawal requests"
//	@Success		204	{object}	utils.Response				"No withdrawal requests"
//	@Failure		401	{object}	utils.Response				"Instructor not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/instructor/withdrawals [get]
func (h *BalanceHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.withdrawalService.GetWithdrawals(r.Context(), instructorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, request := range requests {
		response[i] = toWithdrawalResponse(&request)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ConfirmWithdrawal godoc
//
//	@Summary		Confirm payout receipt
//	@Description	Move an approved withdrawal request to Completed once the instructor received the funds.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Withdrawal request ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Request completed"
//	@Failure		401	{object}	utils.Response				"Instructor not authorized"
//	@Failure		404	{object}	utils.Response				"Request not found"
//	@Failure		409	{object}	utils.Response				"Request is not approved"
//	@Router			/api/instructor/withdrawals/{id}/confirm [post]
func (h *BalanceHandler) ConfirmWithdrawal(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.withdrawalService.Confirm(r.Context(), instructorID, requestID)
	if err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalResponse(request))
}

// CancelWithdrawal godoc
//
//	@Summary		Cancel own withdrawal request
//	@Description	Cancel a still-pending request; the reserved amount returns to the available balance.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Withdrawal request ID"
//	@Success		200	{object}	dto.WithdrawalResponseDTO	"Request cancelled"
//	@Failure		401	{object}	utils.Response				"Instructor not authorized"
//	@Failure		404	{object}	utils.Response				"Request not found"
//	@Failure		409	{object}	utils.Response				"Request already processed"
//	@Router			/api/instructor/withdrawals/{id}/cancel [post]
func (h *BalanceHandler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.withdrawalService.Cancel(r.Context(), instructorID, requestID)
	if err != nil {
		respondWithdrawalError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalResponse(request))
}

// AddMethod godoc
//
//	@Summary		Register a payout method
//	@Description	Add a payout destination; card numbers must pass the Luhn check.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalMethodRequestDTO	true	"Payout method payload"
//	@Success		201		{object}	dto.WithdrawalMethodResponseDTO	"Method created"
//	@Failure		401		{object}	utils.Response					"Instructor not authorized"
//	@Failure		422		{object}	utils.Response					"Invalid account number"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/instructor/methods [post]
func (h *BalanceHandler) AddMethod(w http.ResponseWriter, r *http.Request) {
	instructorID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid payout method")
		return
	}

	method, err := h.withdrawalService.AddMethod(r.Context(), &domain.WithdrawalMethod{
		InstructorID:  instructorID,
		Kind:          req.Kind,
		AccountNumber: req.AccountNumber,
		FeePercent:    req.FeePercent,
		FeeFixed:      req.FeeFixed,
	})
	if err != nil {
		if errors.Is(err, withdrawalservice.ErrInvalidAccount) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.WithdrawalMethodResponseDTO{
		ID:   method.ID,
		Kind: method.Kind,
	})
}

func respondWithdrawalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, withdrawalservice.ErrRequestNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, withdrawalservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, balanceservice.ErrLedgerConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWithdrawalResponse(request *domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:          request.ID,
		Amount:      request.Amount,
		Fee:         request.Fee,
		NetAmount:   request.NetAmount,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
		ProcessedAt: request.ProcessedAt,
	}
}
