package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

// CreateSaleRecord insere um registro de venda. Falhas de validação voltam no
// envelope {success,message,data} com HTTP 200: o envelope é o contrato, não o
// status.
func CreateSaleRecord(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		input := &domain.SaleRecordInput{}
		if err := json.NewDecoder(r.Body).Decode(input); err != nil {
			err = errors.Wrap(err, "invalid sale record payload")
			logger.WithError(err).Warn("records: failed to decode create payload")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		result := service.CreateRecord(r.Context(), input)

		if result.Success {
			logger.WithFields(log.Fields{
				"record_id": result.Data.ID,
				"product":   result.Data.Product,
			}).Info("records: sale record created")
		} else {
			logger.WithField("message", result.Message).
				Info("records: sale record rejected")
		}

		writeMutationResult(w, logger, result)
	})
}

// DeleteSaleRecord remove um registro de venda pelo ID da rota
func DeleteSaleRecord(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("record_id", id).Info("records: deleting sale record")

		result := service.DeleteRecord(r.Context(), id)

		if !result.Success {
			logger.WithFields(log.Fields{
				"record_id": id,
				"message":   result.Message,
			}).Info("records: delete rejected")
		}

		writeMutationResult(w, logger, result)
	})
}

func writeMutationResult(w http.ResponseWriter, logger log.Logger, result *domain.MutationResult) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.WithError(err).Error("records: failed to encode response")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
