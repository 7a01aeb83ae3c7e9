package reporting

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// Mensagens do envelope de mutações. Fazem parte do contrato da API: os
// clientes exibem estes textos direto na interface.
const (
	msgCreated         = "Sales record created successfully."
	msgCreateFailed    = "Error creating sales record."
	msgDeleted         = "Sales record deleted successfully."
	msgDeleteFailed    = "Error deleting sales record."
	msgNotFound        = "Sales record not found."
	msgInvalidIDFormat = "Invalid ID format."
	msgValidationError = "Validation error: "
)

// Service implementa a fachada Reporter sobre o repositório de registros.
// Não guarda estado mutável entre chamadas: cada relatório é uma leitura
// completa seguida de uma redução, sem cache.
type Service struct {
	cfg        *config.Config
	recordRepo repository.SaleRecordRepository
}

// NewService cria uma nova instância da fachada de relatórios
func NewService(cfg *config.Config, recordRepo repository.SaleRecordRepository) Reporter {
	return &Service{
		cfg:        cfg,
		recordRepo: recordRepo,
	}
}

// GetSalesReport recalcula o relatório completo a cada chamada. Conjunto vazio
// de registros produz um relatório com as oito coleções vazias, nunca erro.
func (s *Service) GetSalesReport(ctx context.Context, topSellingLimit int, period string) (*domain.SalesReport, error) {
	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		// O caller recebe apenas o erro genérico; o detalhe fica nos logs
		reportErr := NewReportError(ErrAggregationFailed, apiErrors.ErrReportAggregation, err.Error())
		logrus.WithFields(logrus.Fields{
			"top_selling_limit": topSellingLimit,
			"period":            period,
			"error":             reportErr.DetailedError(),
		}).Error("Erro ao listar registros para o relatório de vendas")

		return nil, reportErr
	}

	raw := Aggregate(records, Options{
		TopSellingLimit: topSellingLimit,
		Period:          domain.ParsePeriod(period),
	})

	return AssembleReport(raw), nil
}

// CreateRecord valida e insere um registro de venda. Nenhum caminho de falha
// chega ao banco antes da validação passar.
func (s *Service) CreateRecord(ctx context.Context, input *domain.SaleRecordInput) *domain.MutationResult {
	if err := ValidateSaleRecordInput(input); err != nil {
		return &domain.MutationResult{
			Success: false,
			Message: msgValidationError + err.Error(),
		}
	}

	// A validação já garantiu o formato da data
	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return &domain.MutationResult{
			Success: false,
			Message: msgValidationError + err.Error(),
		}
	}

	record := &domain.SaleRecord{
		Product:      input.Product,
		SalesRevenue: input.SalesRevenue,
		Region:       input.Region,
		Category:     input.Category,
		Date:         *date,
		Cost:         input.Cost,
		Profit:       *input.Profit,
		AgeGroup:     input.AgeGroup,
		Gender:       input.Gender,
		Occupation:   input.Occupation,
	}

	saved, err := s.recordRepo.Insert(ctx, record)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"product": input.Product,
			"region":  input.Region,
			"error":   err.Error(),
		}).Error("Erro ao inserir registro de venda")

		return &domain.MutationResult{
			Success: false,
			Message: msgCreateFailed,
		}
	}

	return &domain.MutationResult{
		Success: true,
		Message: msgCreated,
		Data:    saved,
	}
}

// DeleteRecord remove um registro pelo ID. IDs malformados falham antes de
// qualquer chamada ao banco.
func (s *Service) DeleteRecord(ctx context.Context, id string) *domain.MutationResult {
	if _, err := uuid.Parse(id); err != nil {
		return &domain.MutationResult{
			Success: false,
			Message: msgInvalidIDFormat,
		}
	}

	deleted, err := s.recordRepo.Delete(ctx, id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"record_id": id,
			"error":     err.Error(),
		}).Error("Erro ao remover registro de venda")

		return &domain.MutationResult{
			Success: false,
			Message: msgDeleteFailed,
		}
	}

	if deleted == nil {
		return &domain.MutationResult{
			Success: false,
			Message: msgNotFound,
		}
	}

	return &domain.MutationResult{
		Success: true,
		Message: msgDeleted,
		Data:    deleted,
	}
}
