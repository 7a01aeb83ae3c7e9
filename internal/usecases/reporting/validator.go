package reporting

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// validate é compartilhado: instâncias de validator fazem cache de metadados
// por struct e são seguras para uso concorrente.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nomes de campo em mensagens seguem a tag json, que é o contrato público
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Datas aceitas como "2006-01-02" ou RFC3339
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return utils.IsISODate(fl.Field().String())
	})

	return v
}

// ValidateSaleRecordInput aplica o contrato de campos obrigatórios e tipos a um
// registro de venda. Retorna a mensagem da primeira regra violada; não toca o
// banco em nenhum caminho.
func ValidateSaleRecordInput(input *domain.SaleRecordInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	return errors.New(ruleMessage(fieldErrors[0]))
}

// ruleMessage converte o erro de campo em uma mensagem legível por humanos
func ruleMessage(fieldError validator.FieldError) string {
	field := fieldError.Field()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "gt":
		return fmt.Sprintf("%q must be a positive number", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s, %s, %s]", field,
			domain.GenderMale, domain.GenderFemale, domain.GenderOther)
	case "isodate":
		return fmt.Sprintf("%q must be a valid ISO 8601 date", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
