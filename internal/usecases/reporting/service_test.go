package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (Reporter, *mocks.MockSaleRecordRepository) {
	ctrl := gomock.NewController(t)
	recordRepo := mocks.NewMockSaleRecordRepository(ctrl)

	cfg := &config.Config{}
	cfg.Report.TopSellingLimit = 10
	cfg.Report.DefaultPeriod = "daily"

	return NewService(cfg, recordRepo), recordRepo
}

func TestGetSalesReport(t *testing.T) {
	service, recordRepo := newTestService(t)

	records := []*domain.SaleRecord{
		saleRecord(nil),
		saleRecord(func(r *domain.SaleRecord) {
			r.Product = "Product2"
			r.SalesRevenue = 200
		}),
	}

	recordRepo.EXPECT().ListAll(gomock.Any()).Return(records, nil)

	report, err := service.GetSalesReport(context.Background(), 10, "daily")
	require.NoError(t, err)
	require.NotNil(t, report)

	require.Len(t, report.SalesByRegion, 1)
	assert.Equal(t, "Region1", report.SalesByRegion[0].Region)
	assert.Equal(t, 300.0, report.SalesByRegion[0].TotalSales)

	require.Len(t, report.SalesConversionRate, 1)
	assert.Equal(t, "2023-07-15", report.SalesConversionRate[0].Period)
	assert.Equal(t, 150.0, report.SalesConversionRate[0].ConversionRate)

	require.Len(t, report.TopSellingProducts, 2)
	assert.Equal(t, "Product2", report.TopSellingProducts[0].Product)
}

func TestGetSalesReportEmptyStore(t *testing.T) {
	service, recordRepo := newTestService(t)

	recordRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	report, err := service.GetSalesReport(context.Background(), 10, "daily")
	require.NoError(t, err)
	require.NotNil(t, report)

	// Coleções presentes e vazias, nunca nulas
	assert.Empty(t, report.SalesConversionRate)
	assert.Empty(t, report.SalesByRegion)
	assert.Empty(t, report.SalesByCategory)
	assert.Empty(t, report.TopSellingProducts)
	assert.Empty(t, report.SalesVsTarget)
	assert.Empty(t, report.RevenueAndProfit)
	assert.Empty(t, report.CustomerDemographics)
	assert.Empty(t, report.SalesTrendOverTime)
	assert.NotNil(t, report.SalesByRegion)
}

func TestGetSalesReportListError(t *testing.T) {
	service, recordRepo := newTestService(t)

	recordRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	report, err := service.GetSalesReport(context.Background(), 10, "daily")
	require.Error(t, err)
	assert.Nil(t, report)

	// O caller recebe apenas o erro genérico de agregação
	assert.ErrorIs(t, err, ErrAggregationFailed)
	assert.Equal(t, ErrAggregationFailed.Error(), err.Error())
}

func TestCreateRecord(t *testing.T) {
	service, recordRepo := newTestService(t)

	saved := saleRecord(nil)
	recordRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *domain.SaleRecord) (*domain.SaleRecord, error) {
			assert.Equal(t, "Product1", record.Product)
			assert.Equal(t, 100.0, record.SalesRevenue)
			assert.Equal(t, 50.0, record.Profit)
			assert.Equal(t, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), record.Date)
			return saved, nil
		})

	result := service.CreateRecord(context.Background(), validInput(nil))

	assert.True(t, result.Success)
	assert.Equal(t, "Sales record created successfully.", result.Message)
	assert.Equal(t, saved, result.Data)
}

func TestCreateRecordValidationFailure(t *testing.T) {
	// Nenhuma expectativa no repositório: validação falha antes do banco
	service, _ := newTestService(t)

	result := service.CreateRecord(context.Background(), validInput(func(i *domain.SaleRecordInput) {
		i.Gender = "Unknown"
	}))

	assert.False(t, result.Success)
	assert.Equal(t, `Validation error: "gender" must be one of [Male, Female, Other]`, result.Message)
	assert.Nil(t, result.Data)
}

func TestCreateRecordInsertFailure(t *testing.T) {
	service, recordRepo := newTestService(t)

	recordRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("duplicate key"))

	result := service.CreateRecord(context.Background(), validInput(nil))

	assert.False(t, result.Success)
	assert.Equal(t, "Error creating sales record.", result.Message)
	assert.Nil(t, result.Data)
}

func TestDeleteRecord(t *testing.T) {
	service, recordRepo := newTestService(t)

	deleted := saleRecord(nil)
	recordRepo.EXPECT().
		Delete(gomock.Any(), deleted.ID).
		Return(deleted, nil)

	result := service.DeleteRecord(context.Background(), deleted.ID)

	assert.True(t, result.Success)
	assert.Equal(t, "Sales record deleted successfully.", result.Message)
	assert.Equal(t, deleted, result.Data)
}

func TestDeleteRecordInvalidIDFormat(t *testing.T) {
	// ID malformado falha antes de qualquer chamada ao banco
	service, _ := newTestService(t)

	result := service.DeleteRecord(context.Background(), "not-a-uuid")

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid ID format.", result.Message)
	assert.Nil(t, result.Data)
}

func TestDeleteRecordNotFound(t *testing.T) {
	service, recordRepo := newTestService(t)

	recordRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	result := service.DeleteRecord(context.Background(), "6f1b0a51-9f1f-4b4c-8a62-1f6a7e8d9c01")

	assert.False(t, result.Success)
	assert.Equal(t, "Sales record not found.", result.Message)
}

func TestDeleteRecordStoreFailure(t *testing.T) {
	service, recordRepo := newTestService(t)

	recordRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	result := service.DeleteRecord(context.Background(), "6f1b0a51-9f1f-4b4c-8a62-1f6a7e8d9c01")

	assert.False(t, result.Success)
	assert.Equal(t, "Error deleting sales record.", result.Message)
}
