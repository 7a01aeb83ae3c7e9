package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestHandlerService(t *testing.T) (reporting.Reporter, *mocks.MockSaleRecordRepository, *config.Config) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	recordRepo := mocks.NewMockSaleRecordRepository(ctrl)

	cfg := &config.Config{}
	cfg.Report.TopSellingLimit = 10
	cfg.Report.DefaultPeriod = "daily"

	return reporting.NewService(cfg, recordRepo), recordRepo, cfg
}

func serveRoute(method, path string, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	router := httprouter.New()
	router.Handler(method, path, handler)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestGetSalesReportHandler(t *testing.T) {
	service, recordRepo, cfg := newTestHandlerService(t)

	recordRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/report?period=monthly", nil)
	recorder := serveRoute(http.MethodGet, "/v1/sales/report", GetSalesReport(service, cfg), req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	// As oito coleções aparecem mesmo sem registros
	body := recorder.Body.String()
	for _, key := range []string{
		"salesConversionRate", "salesByRegion", "salesByCategory", "topSellingProducts",
		"salesVsTarget", "revenueAndProfit", "customerDemographics", "salesTrendOverTime",
	} {
		assert.Contains(t, body, key)
	}
}

func TestGetSalesReportHandlerInvalidLimit(t *testing.T) {
	service, _, cfg := newTestHandlerService(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/report?top_selling_limit=abc", nil)
	recorder := serveRoute(http.MethodGet, "/v1/sales/report", GetSalesReport(service, cfg), req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}

func TestGetSalesReportHandlerStoreFailure(t *testing.T) {
	service, recordRepo, cfg := newTestHandlerService(t)

	recordRepo.EXPECT().ListAll(gomock.Any()).Return(nil, context.DeadlineExceeded)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/report", nil)
	recorder := serveRoute(http.MethodGet, "/v1/sales/report", GetSalesReport(service, cfg), req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "REP_001")
}

func TestCreateSaleRecordHandler(t *testing.T) {
	service, recordRepo, _ := newTestHandlerService(t)

	recordRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.SaleRecord) (*domain.SaleRecord, error) {
			saved := *record
			saved.ID = "6f1b0a51-9f1f-4b4c-8a62-1f6a7e8d9c01"
			return &saved, nil
		})

	payload := `{
		"product": "Product1",
		"salesRevenue": 100,
		"region": "Region1",
		"category": "Category1",
		"date": "2023-07-15",
		"cost": 50,
		"profit": 50,
		"ageGroup": "25-34",
		"gender": "Male",
		"occupation": "Engineer"
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/records", strings.NewReader(payload))
	recorder := serveRoute(http.MethodPost, "/v1/sales/records", CreateSaleRecord(service), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	result := &domain.MutationResult{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))

	assert.True(t, result.Success)
	assert.Equal(t, "Sales record created successfully.", result.Message)
	require.NotNil(t, result.Data)
	assert.Equal(t, "6f1b0a51-9f1f-4b4c-8a62-1f6a7e8d9c01", result.Data.ID)
}

func TestCreateSaleRecordHandlerValidationFailure(t *testing.T) {
	// Envelope com HTTP 200: o sucesso vai no corpo, não no status
	service, _, _ := newTestHandlerService(t)

	payload := `{"product": "Product1", "gender": "Unknown"}`

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/records", strings.NewReader(payload))
	recorder := serveRoute(http.MethodPost, "/v1/sales/records", CreateSaleRecord(service), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	result := &domain.MutationResult{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Message, "Validation error: "))
	assert.Nil(t, result.Data)
}

func TestCreateSaleRecordHandlerMalformedPayload(t *testing.T) {
	service, _, _ := newTestHandlerService(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/sales/records", strings.NewReader("{not json"))
	recorder := serveRoute(http.MethodPost, "/v1/sales/records", CreateSaleRecord(service), req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}

func TestDeleteSaleRecordHandler(t *testing.T) {
	service, recordRepo, _ := newTestHandlerService(t)

	id := "6f1b0a51-9f1f-4b4c-8a62-1f6a7e8d9c01"
	recordRepo.EXPECT().
		Delete(gomock.Any(), id).
		Return(&domain.SaleRecord{ID: id, Product: "Product1"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sales/records/"+id, nil)
	recorder := serveRoute(http.MethodDelete, "/v1/sales/records/:id", DeleteSaleRecord(service), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	result := &domain.MutationResult{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))

	assert.True(t, result.Success)
	assert.Equal(t, "Sales record deleted successfully.", result.Message)
}

func TestDeleteSaleRecordHandlerInvalidID(t *testing.T) {
	service, _, _ := newTestHandlerService(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sales/records/not-a-uuid", nil)
	recorder := serveRoute(http.MethodDelete, "/v1/sales/records/:id", DeleteSaleRecord(service), req)

	require.Equal(t, http.StatusOK, recorder.Code)

	result := &domain.MutationResult{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), result))

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid ID format.", result.Message)
}
