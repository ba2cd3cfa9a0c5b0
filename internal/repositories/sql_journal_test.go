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

	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

func TestJournalRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(journalTestSuite))
}

type journalTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	sqlRepo SQLRepository
	repo    JournalRepository
}

func (suite *journalTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.sqlRepo = NewSQLRepository(suite.writeDB, suite.readDB, cfg)
	suite.repo = suite.sqlRepo.GetJournalRepository()
}

func (suite *journalTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *journalTestSuite) entryFixture() *models.JournalEntry {
	return &models.JournalEntry{
		EntryID:  "JRN-1",
		TenantID: "tn-01",
		EntryNo:  12,
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Memo:     "Fuel purchase",
		Currency: "KES",
		Lines: []models.JournalLine{
			{AccountID: 5, DebitMinor: 450000, Position: 0},
			{AccountID: 1, CreditMinor: 450000, Position: 1},
		},
	}
}

func (suite *journalTestSuite) TestRepository_StoreEntry() {
	suite.t.Run("stores header then lines", func(t *testing.T) {
		en := suite.entryFixture()

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertJournalEntry)).
			WithArgs(en.EntryID, en.TenantID, en.EntryNo, en.Date, en.Memo, en.Currency, en.SourceRef).
			WillReturnRows(sqlmock.NewRows([]string{"id", "createdAt"}).AddRow(100, time.Now()))

		lineQuery, _, err := buildInsertJournalLines(en.TenantID, 100, en.Lines)
		require.NoError(t, err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(lineQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(201).AddRow(202))

		err = suite.repo.StoreEntry(context.Background(), en)
		assert.NoError(t, err)
		assert.Equal(t, uint64(100), en.ID)
		assert.Equal(t, uint64(201), en.Lines[0].ID)
		assert.Equal(t, uint64(100), en.Lines[1].EntryID)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})

	suite.t.Run("error on header insert", func(t *testing.T) {
		en := suite.entryFixture()

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertJournalEntry)).
			WillReturnError(assert.AnError)

		err := suite.repo.StoreEntry(context.Background(), en)
		assert.Error(t, err)
	})
}

func (suite *journalTestSuite) TestRepository_StoreEntry_Atomic() {
	suite.t.Run("commit on success", func(t *testing.T) {
		en := suite.entryFixture()

		suite.mock.ExpectBegin()
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertJournalEntry)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "createdAt"}).AddRow(100, time.Now()))

		lineQuery, _, err := buildInsertJournalLines(en.TenantID, 100, en.Lines)
		require.NoError(t, err)
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(lineQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(201).AddRow(202))
		suite.mock.ExpectCommit()

		err = suite.sqlRepo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return r.GetJournalRepository().StoreEntry(ctx, en)
		})
		assert.NoError(t, err)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})

	suite.t.Run("rollback on step error", func(t *testing.T) {
		en := suite.entryFixture()

		suite.mock.ExpectBegin()
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryInsertJournalEntry)).
			WillReturnError(assert.AnError)
		suite.mock.ExpectRollback()

		err := suite.sqlRepo.Atomic(context.Background(), func(ctx context.Context, r SQLRepository) error {
			return r.GetJournalRepository().StoreEntry(ctx, en)
		})
		assert.Error(t, err)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})
}

func (suite *journalTestSuite) TestRepository_GetByEntryID() {
	entryColumns := []string{"id", "entryId", "tenantId", "entryNo", "date", "memo", "currency", "sourceRef", "createdAt"}
	lineColumns := []string{"id", "entryId", "accountId", "debitMinor", "creditMinor", "position"}

	suite.t.Run("happy path", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetJournalEntryByEntryID)).
			WithArgs("tn-01", "JRN-1").
			WillReturnRows(sqlmock.NewRows(entryColumns).
				AddRow(100, "JRN-1", "tn-01", 12, time.Now(), "Fuel purchase", "KES", "", time.Now()))
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryGetJournalLinesByEntryID)).
			WithArgs("tn-01", uint64(100)).
			WillReturnRows(sqlmock.NewRows(lineColumns).
				AddRow(201, 100, 5, 450000, 0, 0).
				AddRow(202, 100, 1, 0, 450000, 1))

		got, err := suite.repo.GetByEntryID(context.Background(), "tn-01", "JRN-1")
		assert.NoError(t, err)
		require.Len(t, got.Lines, 2)
		assert.Equal(t, int64(450000), got.Lines[0].DebitMinor)
	})
}

func (suite *journalTestSuite) TestRepository_ExistsReversal() {
	suite.t.Run("reports existing reversal", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(queryExistsReversalForEntry)).
			WithArgs("tn-01", "JRN-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		got, err := suite.repo.ExistsReversal(context.Background(), "tn-01", "JRN-1")
		assert.NoError(t, err)
		assert.True(t, got)
	})
}
