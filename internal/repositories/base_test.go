package repositories

import (
	"os"
	"testing"

	"github.com/pesaledger/go-ledger-core/internal/common/log"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	os.Exit(m.Run())
}
