package handlers

import (
	"net/http"

	_ "github.com/coursemart/settlement/docs"
	adminhandlers "github.com/coursemart/settlement/internal/handlers/admin"
	balancehandlers "github.com/coursemart/settlement/internal/handlers/balance"
	saleshandlers "github.com/coursemart/settlement/internal/handlers/sales"
	"github.com/coursemart/settlement/internal/service"
	"github.com/coursemart/settlement/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type SalesHandler interface {
	SaleCompleted(w http.ResponseWriter, r *http.Request)
	SaleRefunded(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	ConfirmWithdrawal(w http.ResponseWriter, r *http.Request)
	CancelWithdrawal(w http.ResponseWriter, r *http.Request)
	AddMethod(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
	ListRules(w http.ResponseWriter, r *http.Request)
	CreateRule(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	ListShortfalls(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SalesHandler   SalesHandler
	BalanceHandler BalanceHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		SalesHandler:   saleshandlers.New(s.EarningService),
		BalanceHandler: balancehandlers.New(s.BalanceService, s.EarningService, s.WithdrawalService),
		AdminHandler:   adminhandlers.New(s.RuleService, s.WithdrawalService, s.EarningService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(auth.RolePlatform))
			r.Route("/sales", func(r chi.Router) {
				r.Post("/completed", h.SalesHandler.SaleCompleted)
				r.Post("/refunded", h.SalesHandler.SaleRefunded)
			})
			r.Route("/admin", func(r chi.Router) {
				r.Post("/withdrawals/{id}/process", h.AdminHandler.ProcessWithdrawal)
				r.Route("/rules", func(r chi.Router) {
					r.Get("/", h.AdminHandler.ListRules)
					r.Post("/", h.AdminHandler.CreateRule)
					r.Put("/{id}", h.AdminHandler.UpdateRule)
				})
				r.Get("/shortfalls", h.AdminHandler.ListShortfalls)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/instructor", func(r chi.Router) {
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/earnings", h.BalanceHandler.GetEarnings)
				r.Route("/withdrawals", func(r chi.Router) {
					r.Post("/", h.BalanceHandler.Withdraw)
					r.Get("/", h.BalanceHandler.GetWithdrawals)
					r.Post("/{id}/confirm", h.BalanceHandler.ConfirmWithdrawal)
					r.Post("/{id}/cancel", h.BalanceHandler.CancelWithdrawal)
				})
				r.Post("/methods", h.BalanceHandler.AddMethod)
			})
		})
	})

	return r
}
