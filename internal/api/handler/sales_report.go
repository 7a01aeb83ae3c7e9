package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetSalesReport devolve o relatório completo de vendas. Os parâmetros
// top_selling_limit e period são opcionais; os defaults vêm da configuração.
func GetSalesReport(service reporting.Reporter, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		topSellingLimit := cfg.Report.TopSellingLimit
		if rawLimit := r.URL.Query().Get("top_selling_limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed < 0 {
				logger.WithField("top_selling_limit", rawLimit).
					Warn("report: invalid top_selling_limit parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
					"top_selling_limit deve ser um inteiro não negativo", nil)
				return
			}
			topSellingLimit = parsed
		}

		// Períodos desconhecidos não são erro: caem no comportamento diário
		period := cfg.Report.DefaultPeriod
		if rawPeriod := r.URL.Query().Get("period"); rawPeriod != "" {
			period = rawPeriod
		}

		logger.WithFields(log.Fields{
			"top_selling_limit": topSellingLimit,
			"period":            period,
		}).Info("report: computing sales report")

		report, err := service.GetSalesReport(r.Context(), topSellingLimit, period)
		if err != nil {
			// O detalhe já foi logado pela fachada; o cliente recebe só o genérico
			apiErrors.WriteError(w, apiErrors.ErrReportAggregation,
				"Falha ao calcular o relatório de vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("report: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
