package recon

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services/mock"
)

type testReconHelper struct {
	router             *fiber.App
	mockCtrl           *gomock.Controller
	mockReconService   *mock.MockReconService
	mockPostingService *mock.MockPostingService
}

func reconTestHelper(t *testing.T) testReconHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockReconSvc := mock.NewMockReconService(mockCtrl)
	mockPostingSvc := mock.NewMockPostingService(mockCtrl)

	app := fiber.New()
	m := middleware.NewMiddleware(config.Config{}, nil)
	v1Group := app.Group("/api/v1", m.Identity())

	New(v1Group, mockReconSvc, mockPostingSvc)

	return testReconHelper{
		router:             app,
		mockCtrl:           mockCtrl,
		mockReconService:   mockReconSvc,
		mockPostingService: mockPostingSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func Test_Handler_runBatch(t *testing.T) {
	h := reconTestHelper(t)

	h.mockReconService.EXPECT().
		ReconcileBatch(gomock.Any(), models.Actor{TenantID: "tn-01", ActorID: "batch-runner"}).
		Return(models.BatchOutcome{Processed: 4, Matched: 3, Ambiguous: 1}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recon/run", nil)
	req.Header.Set("X-Tenant-ID", "tn-01")
	req.Header.Set("X-Actor-ID", "batch-runner")

	resp, err := h.router.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out models.BatchOutcome
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 4, out.Processed)
	assert.Equal(t, 3, out.Matched)
}

func Test_Handler_resolveManual(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		h := reconTestHelper(t)

		h.mockReconService.EXPECT().
			ResolveManual(gomock.Any(), gomock.Any(), models.ManualResolveRequest{StagingID: 11, TransactionID: 7}).
			Return(&models.ReconciliationMatch{MatchID: "MCH-1", Decision: models.MatchDecisionManual}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/recon/resolve",
			bytes.NewBufferString(`{"stagingId":11,"transactionId":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-ID", "tn-01")

		resp, err := h.router.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("claimed transaction conflicts", func(t *testing.T) {
		h := reconTestHelper(t)

		h.mockReconService.EXPECT().
			ResolveManual(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, common.ErrTransactionClaimed)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/recon/resolve",
			bytes.NewBufferString(`{"stagingId":11,"transactionId":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-ID", "tn-01")

		resp, err := h.router.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func Test_Handler_revokeMatch(t *testing.T) {
	h := reconTestHelper(t)

	h.mockReconService.EXPECT().
		RevokeMatch(gomock.Any(), gomock.Any(), "MCH-1").
		Return(common.ErrMatchSuperseded)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recon/matches/MCH-1/revoke", nil)
	req.Header.Set("X-Tenant-ID", "tn-01")

	resp, err := h.router.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func Test_Handler_postFromMatch(t *testing.T) {
	h := reconTestHelper(t)

	h.mockPostingService.EXPECT().
		PostFromMatch(gomock.Any(), gomock.Any(), "MCH-1").
		Return(&models.JournalEntry{EntryID: "JRN-1", SourceRef: "MCH-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recon/matches/MCH-1/post", nil)
	req.Header.Set("X-Tenant-ID", "tn-01")

	resp, err := h.router.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
