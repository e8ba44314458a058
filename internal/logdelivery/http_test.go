package logdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/mini-bank/internal/domain"
	"github.com/go-petr/mini-bank/pkg/web"
)

func newServer(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewHandler(service)
	server := gin.New()
	server.GET("/log", h.List)
	server.DELETE("/log", h.Clear)

	return server
}

func TestList(t *testing.T) {
	entries := []domain.LogEntry{
		{
			ID:        2,
			Timestamp: "19/10/2026, 10:00:01",
			Type:      domain.EntryTypeDeposit,
			Details:   "₹100 deposited to ACC-1001 (Alice Johnson). New balance: ₹600.",
			Status:    domain.EntryStatusSuccess,
		},
		{
			ID:        1,
			Timestamp: "19/10/2026, 10:00:00",
			Type:      domain.EntryTypeCreateAccount,
			Details:   `Account ACC-1001 created for "Alice Johnson". Balance: ₹500. KYC: Verified.`,
			Status:    domain.EntryStatusSuccess,
		},
	}

	testCases := []struct {
		name    string
		entries []domain.LogEntry
		want    []domain.LogEntry
	}{
		{name: "NewestFirst", entries: entries, want: entries},
		{name: "Empty", entries: nil, want: []domain.LogEntry{}},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := NewMockService(ctrl)
			service.EXPECT().Log(gomock.Any()).Times(1).Return(tc.entries)

			recorder := httptest.NewRecorder()
			request, err := http.NewRequest(http.MethodGet, "/log", nil)
			require.NoError(t, err)

			newServer(service).ServeHTTP(recorder, request)
			require.Equal(t, http.StatusOK, recorder.Code)

			got := &dataEntries{}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &web.Response{Data: got}))

			if diff := cmp.Diff(tc.want, got.Entries); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	service.EXPECT().ClearLog(gomock.Any()).Times(1)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodDelete, "/log", nil)
	require.NoError(t, err)

	newServer(service).ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"data":{"cleared":true}}`, recorder.Body.String())
}
