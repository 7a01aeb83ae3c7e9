package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func SalesReport(service reporting.Reporter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/report",
			Method:  http.MethodGet,
			Handler: GetSalesReport(service, cfg),
		},
	}
}

func SaleRecords(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/records",
			Method:  http.MethodPost,
			Handler: CreateSaleRecord(service),
		},
		{
			Path:    "/v1/sales/records/:id",
			Method:  http.MethodDelete,
			Handler: DeleteSaleRecord(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
