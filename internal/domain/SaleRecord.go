package domain

import "time"

// Valores aceitos para o campo gender de um registro de venda
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// SaleRecord representa um registro de venda armazenado no banco.
// Registros são imutáveis: alterações são feitas por delete + recreate.
type SaleRecord struct {
	ID           string    `json:"id"`
	Product      string    `json:"product"`
	SalesRevenue float64   `json:"salesRevenue"`
	Region       string    `json:"region"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	Cost         float64   `json:"cost"`
	Profit       float64   `json:"profit"`
	AgeGroup     string    `json:"ageGroup"`
	Gender       string    `json:"gender"`
	Occupation   string    `json:"occupation"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SaleRecordInput representa o payload de criação de um registro de venda.
// A data chega como string e é convertida após a validação.
// Profit é ponteiro para diferenciar "ausente" de zero (lucro zero é válido,
// lucro negativo também).
type SaleRecordInput struct {
	Product      string   `json:"product" validate:"required"`
	SalesRevenue float64  `json:"salesRevenue" validate:"gt=0"`
	Region       string   `json:"region" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Date         string   `json:"date" validate:"required,isodate"`
	Cost         float64  `json:"cost" validate:"gt=0"`
	Profit       *float64 `json:"profit" validate:"required"`
	AgeGroup     string   `json:"ageGroup" validate:"required"`
	Gender       string   `json:"gender" validate:"required,oneof=Male Female Other"`
	Occupation   string   `json:"occupation" validate:"required"`
}

// MutationResult é o envelope de resposta das mutações de registros de venda.
// Falhas de validação e de banco retornam success=false, nunca erro para o caller.
type MutationResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *SaleRecord `json:"data"`
}
