package reporting

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de relatórios
var (
	// Erros de consulta
	ErrAggregationFailed = errors.New("failed to compute sales report")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ReportError é um erro com contexto adicional para o relatório de vendas.
// Details carrega a causa original apenas para logs; nunca vai para o caller.
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReportError) Error() string {
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReportError) Unwrap() error {
	return e.Err
}

// DetailedError retorna a mensagem completa, para uso em logs
func (e *ReportError) DetailedError() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// NewReportError cria um novo ReportError
func NewReportError(err error, code string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
