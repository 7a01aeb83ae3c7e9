package utils

import (
	"fmt"
	"time"
)

// Layouts aceitos para datas de entrada: data ISO simples ou timestamp RFC3339
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
}

// ParseDate converte uma data ISO ("2006-01-02" ou RFC3339) em time.Time.
// String vazia retorna a data zero sem erro, para parâmetros opcionais.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := parseISODate(dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

func parseISODate(dateStr string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", dateStr)
}

// IsISODate informa se a string é uma data ISO aceita pela API
func IsISODate(dateStr string) bool {
	_, err := parseISODate(dateStr)
	return err == nil
}
