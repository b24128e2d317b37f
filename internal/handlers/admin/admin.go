package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/dto"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/ruleservice"
	"github.com/coursemart/settlement/internal/service/withdrawalservice"
	"github.com/coursemart/settlement/pkg/auth"
	"github.com/coursemart/settlement/pkg/utils"
)

type RuleService interface {
	CreateRule(ctx context.Context, rule *domain.CommissionRule) (*domain.CommissionRule, error)
	UpdateRule(ctx context.Context, rule *domain.CommissionRule) error
	ListRules(ctx context.Context) ([]domain.CommissionRule, error)
}

type WithdrawalService interface {
	Process(ctx context.Context, requestID, reviewerID int, decision, notes string) (*domain.WithdrawalRequest, error)
}

type ShortfallService interface {
	GetOpenShortfalls(ctx context.Context) ([]domain.ReversalShortfall, error)
}

type AdminHandler struct {
	ruleService       RuleService
	withdrawalService WithdrawalService
	shortfallService  ShortfallService
	validate          *validator.Validate
}

func New(ruleService RuleService, withdrawalService WithdrawalService, shortfallService ShortfallService) *AdminHandler {
	return &AdminHandler{
		ruleService:       ruleService,
		withdrawalService: withdrawalService,
		shortfallService:  shortfallService,
		validate:          validator.New(),
	}
}

// ProcessWithdrawal godoc
//
//	@Summary		Process a withdrawal request
//	@Description	Apply a review decision. Approval settles the net amount; rejection or cancellation returns the full reserved amount to the instructor.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Withdrawal request ID"
//	@Param			request	body		dto.WithdrawalProcessRequestDTO	true	"Review decision"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Request processed"
//	@Failure		401		{object}	utils.Response					"Caller not authorized"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		409		{object}	utils.Response					"Request already processed"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/process [post]
func (h *AdminHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	reviewerID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.WithdrawalProcessRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid decision")
		return
	}

	request, err := h.withdrawalService.Process(r.Context(), requestID, reviewerID, req.Decision, req.Notes)
	if err != nil {
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
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		ID:          request.ID,
		Amount:      request.Amount,
		Fee:         request.Fee,
		NetAmount:   request.NetAmount,
		Status:      request.Status,
		CreatedAt:   request.CreatedAt,
		ProcessedAt: request.ProcessedAt,
	})
}

// ListRules godoc
//
//	@Summary		List commission rules
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RuleResponseDTO	"Commission rules"
//	@Failure		401	{object}	utils.Response		"Caller not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/rules [get]
func (h *AdminHandler) ListRules(w http.ResponseWriter, r *http.Request) {
	rules, err := h.ruleService.ListRules(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch rules")
		return
	}

	response := make([]dto.RuleResponseDTO, len(rules))
	for i, rule := range rules {
		response[i] = toRuleResponse(&rule)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateRule godoc
//
//	@Summary		Create a commission rule
//	@Description	Rates must sum to 100; non-global scopes require a scope target.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RuleRequestDTO	true	"Rule payload"
//	@Success		201		{object}	dto.RuleResponseDTO	"Rule created"
//	@Failure		401		{object}	utils.Response		"Caller not authorized"
//	@Failure		422		{object}	utils.Response		"Invalid rule"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/rules [post]
func (h *AdminHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req dto.RuleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid rule")
		return
	}

	rule, err := h.ruleService.CreateRule(r.Context(), toRuleDomain(&req, 0))
	if err != nil {
		if errors.Is(err, ruleservice.ErrInvalidRule) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toRuleResponse(rule))
}

// UpdateRule godoc
//
//	@Summary		Update a commission rule
//	@Description	A rule already referenced by earnings may only change its active flag, priority and validity end.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Rule ID"
//	@Param			request	body		dto.RuleRequestDTO	true	"Rule payload"
//	@Success		200		{object}	utils.Response		"Rule updated"
//	@Failure		401		{object}	utils.Response		"Caller not authorized"
//	@Failure		404		{object}	utils.Response		"Rule not found"
//	@Failure		409		{object}	utils.Response		"Rule referenced by earnings"
//	@Failure		422		{object}	utils.Response		"Invalid rule"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/rules/{id} [put]
func (h *AdminHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	ruleID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid rule id")
		return
	}

	var req dto.RuleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid rule")
		return
	}

	err = h.ruleService.UpdateRule(r.Context(), toRuleDomain(&req, ruleID))
	if err != nil {
		switch {
		case errors.Is(err, ruleservice.ErrRuleNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ruleservice.ErrRuleReferenced):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ruleservice.ErrInvalidRule):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "rule updated"})
}

// ListShortfalls godoc
//
//	@Summary		List open reversal shortfalls
//	@Description	Refunds that arrived after the earning was withdrawn, awaiting operator resolution.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ShortfallResponseDTO	"Open shortfalls"
//	@Failure		401	{object}	utils.Response				"Caller not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/shortfalls [get]
func (h *AdminHandler) ListShortfalls(w http.ResponseWriter, r *http.Request) {
	shortfalls, err := h.shortfallService.GetOpenShortfalls(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch shortfalls")
		return
	}

	response := make([]dto.ShortfallResponseDTO, len(shortfalls))
	for i, sf := range shortfalls {
		response[i] = dto.ShortfallResponseDTO{
			ID:           sf.ID,
			EarningID:    sf.EarningID,
			InstructorID: sf.InstructorID,
			Amount:       sf.Amount,
			CreatedAt:    sf.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toRuleDomain(req *dto.RuleRequestDTO, id int) *domain.CommissionRule {
	return &domain.CommissionRule{
		ID:             id,
		Scope:          domain.RuleScope(req.Scope),
		ScopeTargetID:  req.ScopeTargetID,
		PlatformRate:   req.PlatformRate,
		InstructorRate: req.InstructorRate,
		HoldPeriodDays: req.HoldPeriodDays,
		IsActive:       req.IsActive,
		Priority:       req.Priority,
		ValidFrom:      req.ValidFrom,
		ValidTo:        req.ValidTo,
	}
}

func toRuleResponse(rule *domain.CommissionRule) dto.RuleResponseDTO {
	return dto.RuleResponseDTO{
		ID:             rule.ID,
		Scope:          string(rule.Scope),
		ScopeTargetID:  rule.ScopeTargetID,
		PlatformRate:   rule.PlatformRate,
		InstructorRate: rule.InstructorRate,
		HoldPeriodDays: rule.HoldPeriodDays,
		IsActive:       rule.IsActive,
		Priority:       rule.Priority,
		ValidFrom:      rule.ValidFrom,
		ValidTo:        rule.ValidTo,
		CreatedAt:      rule.CreatedAt,
	}
}
