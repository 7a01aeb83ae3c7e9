package reporting

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Reporter é a fachada de consultas e mutações sobre registros de venda.
// É o único ponto de entrada usado pelas camadas externas.
type Reporter interface {
	// GetSalesReport recalcula as oito visões do relatório sobre o conjunto
	// completo de registros. Períodos desconhecidos caem no diário.
	GetSalesReport(ctx context.Context, topSellingLimit int, period string) (*domain.SalesReport, error)

	// CreateRecord valida e insere um registro de venda. Falhas de validação
	// e de banco viram envelope com success=false, nunca erro.
	CreateRecord(ctx context.Context, input *domain.SaleRecordInput) *domain.MutationResult

	// DeleteRecord remove um registro pelo ID. IDs malformados são rejeitados
	// antes de qualquer acesso ao banco.
	DeleteRecord(ctx context.Context, id string) *domain.MutationResult
}
