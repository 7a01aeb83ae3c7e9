package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

// Tipos de cron job disponíveis para execução manual
const (
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron que podem ser disparados manualmente
type CronJobServices struct {
	RetentionSyncService *scheduler.RetentionSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRetention, CronJobTypeAll:
			if services.RetentionSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de expurgo não disponível", nil)
				return
			}
			services.RetentionSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "triggered",
			"type":   cronType,
		})
	}
}

// GetCronStatus devolve o estado atual das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.RetentionSyncService != nil {
			status[CronJobTypeRetention] = services.RetentionSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
