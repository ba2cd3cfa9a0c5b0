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

func TestMatchRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(matchTestSuite))
}

type matchTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    MatchRepository
}

func (suite *matchTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetMatchRepository()
}

func (suite *matchTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *matchTestSuite) TestRepository_Store() {
	txID := uint64(7)
	match := func() *models.ReconciliationMatch {
		return &models.ReconciliationMatch{
			MatchID:       "MCH-1",
			TenantID:      "tn-01",
			StagingID:     11,
			TransactionID: &txID,
			Confidence:    0.93,
			Decision:      models.MatchDecisionAuto,
			Status:        models.StagingStatusMatched,
		}
	}

	suite.t.Run("stores and fills generated columns", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertMatch)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "createdAt"}).AddRow(42, time.Now()))

		en := match()
		err := suite.repo.Store(context.Background(), en)
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), en.ID)
	})

	// A second active match for the same staging record trips the partial
	// unique index and surfaces as a conflict.
	suite.t.Run("active duplicate rejected as conflict", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertMatch)).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "reconciliation_match_staging_active_key"})

		err := suite.repo.Store(context.Background(), match())
		assert.ErrorIs(t, err, common.ErrConflict)
	})
}
