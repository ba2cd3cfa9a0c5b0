package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/config"
)

func TestTenantRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(tenantTestSuite))
}

type tenantTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    TenantRepository
}

func (suite *tenantTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetTenantRepository()
}

func (suite *tenantTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *tenantTestSuite) TestRepository_Get() {
	tenantColumns := []string{"id", "name", "isActive", "booksClosedUntil", "postingHalted", "lastEntryNo", "reconOverrides", "createdAt", "updatedAt"}

	suite.t.Run("happy path with overrides", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetTenant)).
			WithArgs("tn-01").
			WillReturnRows(sqlmock.NewRows(tenantColumns).
				AddRow("tn-01", "Acme Sacco", true, nil, false, 42, []byte(`{"autoAcceptThreshold":0.95}`), time.Now(), time.Now()))

		got, err := suite.repo.Get(context.Background(), "tn-01")
		assert.NoError(t, err)
		require.NotNil(t, got.ReconOverrides)
		require.NotNil(t, got.ReconOverrides.AutoAcceptThreshold)
		assert.Equal(t, 0.95, *got.ReconOverrides.AutoAcceptThreshold)
		assert.Equal(t, uint64(42), got.LastEntryNo)
	})

	suite.t.Run("not found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetTenant)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.Get(context.Background(), "tn-99")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}

func (suite *tenantTestSuite) TestRepository_NextEntryNo() {
	suite.t.Run("bumps and returns counter", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryNextEntryNo)).
			WithArgs("tn-01").
			WillReturnRows(sqlmock.NewRows([]string{"lastEntryNo"}).AddRow(43))

		got, err := suite.repo.NextEntryNo(context.Background(), "tn-01")
		assert.NoError(t, err)
		assert.Equal(t, uint64(43), got)
	})

	suite.t.Run("inactive tenant yields no row", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryNextEntryNo)).
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.NextEntryNo(context.Background(), "tn-01")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}

func (suite *tenantTestSuite) TestRepository_HaltPosting() {
	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryHaltPosting)).
			WithArgs("tn-01").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, suite.repo.HaltPosting(context.Background(), "tn-01"))
	})
}
