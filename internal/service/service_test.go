package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/coursemart/settlement/internal/config"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/repo"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/earningservice"
	"github.com/coursemart/settlement/internal/service/ruleservice"
	"github.com/coursemart/settlement/internal/service/withdrawalservice"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := ruleservice.NewMockRepo(ctrl)
	mockEarningRepo := earningservice.NewMockRepo(ctrl)
	mockLedgerRepo := balanceservice.NewMockLedgerRepo(ctrl)
	mockWithdrawalRepo := withdrawalservice.NewMockRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		RuleRepo:       mockRuleRepo,
		EarningRepo:    mockEarningRepo,
		LedgerRepo:     mockLedgerRepo,
		WithdrawalRepo: mockWithdrawalRepo,
	}

	services, err := New(&config.Config{MinWithdrawal: "50"}, repos, mockTxManager)

	assert.NoError(t, err)
	assert.NotNil(t, services.RuleService)
	assert.NotNil(t, services.EarningService)
	assert.NotNil(t, services.BalanceService)
	assert.NotNil(t, services.WithdrawalService)

	services, err = New(&config.Config{MinWithdrawal: "not-a-number"}, repos, mockTxManager)
	assert.Error(t, err)
	assert.Nil(t, services)
}
