package recon

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pesaledger/go-ledger-core/internal/common/flag"
	"github.com/pesaledger/go-ledger-core/internal/common/log"
	"github.com/pesaledger/go-ledger-core/internal/models"
	"github.com/pesaledger/go-ledger-core/internal/services/mock"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}

func TestReconcileBatchJob(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	mockReconSvc := mock.NewMockReconService(mockCtrl)

	routes := Routes(mockReconSvc)
	fn, ok := routes["ReconcileBatch"]
	require.True(t, ok)

	t.Run("defaults actor to worker", func(t *testing.T) {
		mockReconSvc.EXPECT().
			ReconcileBatch(gomock.Any(), models.Actor{TenantID: "tn-01", ActorID: "worker"}).
			Return(models.BatchOutcome{Processed: 2, Matched: 2}, nil)

		err := fn(context.Background(), time.Time{}, flag.Job{TenantID: "tn-01"})
		assert.NoError(t, err)
	})

	t.Run("propagates service error", func(t *testing.T) {
		mockReconSvc.EXPECT().
			ReconcileBatch(gomock.Any(), gomock.Any()).
			Return(models.BatchOutcome{}, errors.New("db down"))

		err := fn(context.Background(), time.Time{}, flag.Job{TenantID: "tn-01", ActorID: "ops"})
		assert.Error(t, err)
	})
}
