package journal

import (
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/mock/gomock"

	"github.com/pesaledger/go-ledger-core/internal/common/http/middleware"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/config"
	"github.com/pesaledger/go-ledger-core/internal/services/mock"
)

type testJournalHelper struct {
	router             *fiber.App
	mockCtrl           *gomock.Controller
	mockPostingService *mock.MockPostingService
}

func journalTestHelper(t *testing.T) testJournalHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	mockPostingSvc := mock.NewMockPostingService(mockCtrl)

	app := fiber.New()
	m := middleware.NewMiddleware(config.Config{}, nil)
	v1Group := app.Group("/api/v1", m.Identity())

	New(v1Group, mockPostingSvc)

	return testJournalHelper{
		router:             app,
		mockCtrl:           mockCtrl,
		mockPostingService: mockPostingSvc,
	}
}

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
