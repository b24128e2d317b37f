package service

import (
	"github.com/coursemart/settlement/internal/config"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/repo"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/earningservice"
	"github.com/coursemart/settlement/internal/service/ruleservice"
	"github.com/coursemart/settlement/internal/service/withdrawalservice"
	"github.com/coursemart/settlement/pkg/clients"
)

type Services struct {
	RuleService       *ruleservice.Service
	EarningService    *earningservice.Service
	BalanceService    *balanceservice.Service
	WithdrawalService *withdrawalservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager) (*Services, error) {
	minWithdrawal, err := cfg.MinWithdrawalAmount()
	if err != nil {
		return nil, err
	}

	ruleService := ruleservice.New(repo.RuleRepo)
	balanceService := balanceservice.New(repo.LedgerRepo)
	notifier := earningservice.NewWebhookNotifier(cfg.ShortfallWebhook, clients.NewHTTPClient())
	earningService := earningservice.New(repo.EarningRepo, ruleService, repo.LedgerRepo, txManager, notifier)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.LedgerRepo, txManager, minWithdrawal)

	return &Services{
		RuleService:       ruleService,
		EarningService:    earningService,
		BalanceService:    balanceService,
		WithdrawalService: withdrawalService,
	}, nil
}
