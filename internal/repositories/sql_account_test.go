package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

func TestAccountRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(accountTestSuite))
}

type accountTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    AccountRepository
}

func (suite *accountTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetAccountRepository()
}

func (suite *accountTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *accountTestSuite) TestRepository_Create() {
	testCases := []struct {
		name    string
		doMock  func()
		wantErr error
	}{
		{
			name: "happy path",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryInsertAccount)).
					WithArgs("tn-01", "1000", "Cash", models.AccountTypeAsset, models.NormalBalanceDebit).
					WillReturnRows(sqlmock.NewRows([]string{"id", "createdAt", "updatedAt"}).
						AddRow(1, time.Now(), time.Now()))
			},
		},
		{
			name: "code taken",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryInsertAccount)).
					WillReturnError(&pq.Error{Code: pqUniqueViolation})
			},
			wantErr: common.ErrAccountCodeTaken,
		},
		{
			name: "error db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryInsertAccount)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			en := &models.Account{
				TenantID:      "tn-01",
				Code:          "1000",
				Name:          "Cash",
				Type:          models.AccountTypeAsset,
				NormalBalance: models.NormalBalanceDebit,
			}
			err := suite.repo.Create(context.Background(), en)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, en.IsActive)
				assert.Equal(t, uint64(1), en.ID)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *accountTestSuite) TestRepository_GetByCode() {
	accountRows := []string{"id", "tenantId", "code", "name", "type", "normalBalance", "isActive", "createdAt", "updatedAt"}

	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetAccountByCode)).
			WithArgs("tn-01", "1000").
			WillReturnRows(sqlmock.NewRows(accountRows).
				AddRow(1, "tn-01", "1000", "Cash", models.AccountTypeAsset, models.NormalBalanceDebit, true, time.Now(), time.Now()))

		got, err := suite.repo.GetByCode(context.Background(), "tn-01", "1000")
		assert.NoError(t, err)
		assert.Equal(t, "Cash", got.Name)
	})

	suite.t.Run("not found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetAccountByCode)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByCode(context.Background(), "tn-01", "9999")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}

func (suite *accountTestSuite) TestRepository_AdjustBalance() {
	suite.t.Run("applies increment", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryAdjustAccountBalance)).
			WithArgs("tn-01", uint64(1), int64(-250000)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := suite.repo.AdjustBalance(context.Background(), "tn-01", 1, -250000)
		assert.NoError(t, err)
	})

	suite.t.Run("inactive account affects no rows", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryAdjustAccountBalance)).
			WithArgs("tn-01", uint64(1), int64(1000)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.AdjustBalance(context.Background(), "tn-01", 1, 1000)
		assert.ErrorIs(t, err, common.ErrAccountInactive)
	})
}

func (suite *accountTestSuite) TestRepository_List() {
	accountRows := []string{"id", "tenantId", "code", "name", "type", "normalBalance", "isActive", "createdAt", "updatedAt"}

	suite.t.Run("filters by type", func(t *testing.T) {
		active := true
		query, args, err := buildListAccountsQuery("tn-01", models.AccountFilterOptions{IsActive: &active})
		require.NoError(t, err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(accountRows).
				AddRow(1, "tn-01", "1000", "Cash", models.AccountTypeAsset, models.NormalBalanceDebit, true, time.Now(), time.Now()))

		got, listErr := suite.repo.List(context.Background(), "tn-01", models.AccountFilterOptions{IsActive: &active})
		assert.NoError(t, listErr)
		assert.Len(t, got, 1)
		assert.Len(t, args, 2)
	})
}

func (suite *accountTestSuite) TestRepository_ListBalances() {
	balanceRows := []string{"tenantId", "id", "code", "name", "type", "normalBalance", "balanceMinor", "updatedAt"}

	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryListAccountBalances)).
			WithArgs("tn-01").
			WillReturnRows(sqlmock.NewRows(balanceRows).
				AddRow("tn-01", 1, "1000", "Cash", models.AccountTypeAsset, models.NormalBalanceDebit, 450000, time.Now()).
				AddRow("tn-01", 2, "4000", "Sales Revenue", models.AccountTypeRevenue, models.NormalBalanceCredit, 450000, time.Now()))

		got, err := suite.repo.ListBalances(context.Background(), "tn-01")
		assert.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(450000), got[0].BalanceMinor)
	})
}
