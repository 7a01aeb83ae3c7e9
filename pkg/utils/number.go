package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais usando
// half-away-from-zero (0.125 vira 0.13, -0.125 vira -0.13). A conversão por
// decimal evita o desvio de ponto flutuante de math.Round(f*100)/100 em somas
// longas.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
