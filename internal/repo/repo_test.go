package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	balancerepo "github.com/coursemart/settlement/internal/repo/balance-repo"
	earningrepo "github.com/coursemart/settlement/internal/repo/earning-repo"
	rulerepo "github.com/coursemart/settlement/internal/repo/rule-repo"
	withdrawalrepo "github.com/coursemart/settlement/internal/repo/withdrawal-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.RuleRepo)
	assert.NotNil(t, repo.EarningRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.WithdrawalRepo)

	assert.IsType(t, &rulerepo.Repository{}, repo.RuleRepo)
	assert.IsType(t, &earningrepo.Repository{}, repo.EarningRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &withdrawalrepo.Repository{}, repo.WithdrawalRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
