package account

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pesaledger/go-ledger-core/internal/common"
	"github.com/pesaledger/go-ledger-core/internal/models"
)

func Test_Handler_createAccount(t *testing.T) {
	type args struct {
		body    string
		headers map[string]string
	}
	type expectation struct {
		wantCode int
	}
	tests := []struct {
		name        string
		args        args
		expectation expectation
		doMock      func(h testAccountHelper)
	}{
		{
			name: "success",
			args: args{
				body:    `{"code":"4100","name":"Interest Income","type":"REVENUE"}`,
				headers: map[string]string{"X-Tenant-ID": "tn-01", "X-Actor-ID": "jane"},
			},
			expectation: expectation{wantCode: http.StatusCreated},
			doMock: func(h testAccountHelper) {
				h.mockAccountService.EXPECT().
					Create(gomock.Any(), models.Actor{TenantID: "tn-01", ActorID: "jane"}, models.CreateAccountRequest{
						Code: "4100",
						Name: "Interest Income",
						Type: models.AccountTypeRevenue,
					}).
					Return(&models.Account{ID: 9, Code: "4100", IsActive: true}, nil)
			},
		},
		{
			name: "missing tenant header",
			args: args{
				body:    `{"code":"4100","name":"Interest Income","type":"REVENUE"}`,
				headers: map[string]string{},
			},
			expectation: expectation{wantCode: http.StatusBadRequest},
		},
		{
			name: "duplicate code",
			args: args{
				body:    `{"code":"1000","name":"Cash","type":"ASSET"}`,
				headers: map[string]string{"X-Tenant-ID": "tn-01"},
			},
			expectation: expectation{wantCode: http.StatusConflict},
			doMock: func(h testAccountHelper) {
				h.mockAccountService.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, common.ErrAccountCodeTaken)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := accountTestHelper(t)
			if tt.doMock != nil {
				tt.doMock(h)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", bytes.NewBufferString(tt.args.body))
			req.Header.Set("Content-Type", "application/json")
			for k, v := range tt.args.headers {
				req.Header.Set(k, v)
			}

			resp, err := h.router.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectation.wantCode, resp.StatusCode)
		})
	}
}

func Test_Handler_getAllAccounts(t *testing.T) {
	h := accountTestHelper(t)

	h.mockAccountService.EXPECT().
		List(gomock.Any(), "tn-01", gomock.Any()).
		DoAndReturn(func(_ any, _ string, opts models.AccountFilterOptions) ([]models.Account, error) {
			require.NotNil(t, opts.Type)
			assert.Equal(t, models.AccountTypeAsset, *opts.Type)
			return []models.Account{{Code: "1000", Name: "Cash and Bank"}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/?type=ASSET", nil)
	req.Header.Set("X-Tenant-ID", "tn-01")

	resp, err := h.router.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Kind      string           `json:"kind"`
		Contents  []models.Account `json:"contents"`
		TotalRows int              `json:"totalRows"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "collection", out.Kind)
	assert.Equal(t, 1, out.TotalRows)
	assert.Equal(t, "1000", out.Contents[0].Code)
}

func Test_Handler_getOneAccount(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h := accountTestHelper(t)
		h.mockAccountService.EXPECT().
			Get(gomock.Any(), "tn-01", "1000").
			Return(&models.Account{Code: "1000", Name: "Cash and Bank"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1000", nil)
		req.Header.Set("X-Tenant-ID", "tn-01")

		resp, err := h.router.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		h := accountTestHelper(t)
		h.mockAccountService.EXPECT().
			Get(gomock.Any(), "tn-01", "9999").
			Return(nil, common.ErrDataNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/9999", nil)
		req.Header.Set("X-Tenant-ID", "tn-01")

		resp, err := h.router.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func Test_Handler_upsertMapping(t *testing.T) {
	h := accountTestHelper(t)

	h.mockAccountService.EXPECT().
		UpsertMapping(gomock.Any(), gomock.Any(), models.UpsertAccountMappingRequest{
			Source:            "mpesa",
			DebitAccountCode:  "1000",
			CreditAccountCode: "4000",
		}).
		Return(&models.AccountMapping{Source: "mpesa"}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/accounts/mappings",
		bytes.NewBufferString(`{"source":"mpesa","debitAccountCode":"1000","creditAccountCode":"4000"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", "tn-01")

	resp, err := h.router.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
