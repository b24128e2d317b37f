package repo

import (
	"github.com/coursemart/settlement/internal/pg"
	balancerepo "github.com/coursemart/settlement/internal/repo/balance-repo"
	earningrepo "github.com/coursemart/settlement/internal/repo/earning-repo"
	rulerepo "github.com/coursemart/settlement/internal/repo/rule-repo"
	withdrawalrepo "github.com/coursemart/settlement/internal/repo/withdrawal-repo"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/earningservice"
	"github.com/coursemart/settlement/internal/service/ruleservice"
	"github.com/coursemart/settlement/internal/service/withdrawalservice"
)

type Repositories struct {
	RuleRepo       ruleservice.Repo
	EarningRepo    earningservice.Repo
	LedgerRepo     balanceservice.LedgerRepo
	WithdrawalRepo withdrawalservice.Repo
}

func New(conn pg.Database) *Repositories {
	ruleRepo := rulerepo.New(conn)
	earningRepo := earningrepo.New(conn)
	ledgerRepo := balancerepo.New(conn)
	withdrawalRepo := withdrawalrepo.New(conn)

	return &Repositories{
		RuleRepo:       ruleRepo,
		EarningRepo:    earningRepo,
		LedgerRepo:     ledgerRepo,
		WithdrawalRepo: withdrawalRepo,
	}
}
