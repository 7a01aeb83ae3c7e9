package reporting

import (
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// AssembleReport normaliza a saída crua da agregação nas oito formas públicas
// do relatório: arredondamento a duas casas (half-away-from-zero), datas em
// RFC 3339 UTC e nomes de campo públicos. As oito coleções estão sempre
// presentes, mesmo vazias.
//
// TotalRecords é contagem inteira, mas passa pelo mesmo arredondamento dos
// campos monetários. O comportamento é observável no contrato e mantido de
// propósito.
func AssembleReport(raw *RawAggregates) *domain.SalesReport {
	report := &domain.SalesReport{
		SalesConversionRate:  make([]*domain.SalesConversionRate, 0, len(raw.ConversionRate)),
		SalesByRegion:        make([]*domain.SalesByRegion, 0, len(raw.ByRegion)),
		SalesByCategory:      make([]*domain.SalesByCategory, 0, len(raw.ByCategory)),
		TopSellingProducts:   make([]*domain.TopSellingProduct, 0, len(raw.TopProducts)),
		SalesVsTarget:        make([]*domain.SalesVsTarget, 0, len(raw.VsTarget)),
		RevenueAndProfit:     make([]*domain.RevenueAndProfit, 0, len(raw.RevenueProfit)),
		CustomerDemographics: make([]*domain.CustomerDemographics, 0, len(raw.Demographics)),
		SalesTrendOverTime:   make([]*domain.SalesTrend, 0, len(raw.Trend)),
	}

	for _, group := range raw.ConversionRate {
		// Taxa calculada sobre os valores crus, antes do arredondamento
		conversionRate := 0.0
		if group.TotalRecords > 0 {
			conversionRate = group.TotalSales / float64(group.TotalRecords)
		}

		report.SalesConversionRate = append(report.SalesConversionRate, &domain.SalesConversionRate{
			Period:         group.Period,
			TotalSales:     utils.RoundWithTwoDecimalPlace(group.TotalSales),
			TotalRecords:   utils.RoundWithTwoDecimalPlace(float64(group.TotalRecords)),
			ConversionRate: utils.RoundWithTwoDecimalPlace(conversionRate),
		})
	}

	for _, group := range raw.ByRegion {
		report.SalesByRegion = append(report.SalesByRegion, &domain.SalesByRegion{
			Region:     group.Key,
			TotalSales: utils.RoundWithTwoDecimalPlace(group.TotalSales),
		})
	}

	for _, group := range raw.ByCategory {
		report.SalesByCategory = append(report.SalesByCategory, &domain.SalesByCategory{
			Category:   group.Key,
			TotalSales: utils.RoundWithTwoDecimalPlace(group.TotalSales),
		})
	}

	for _, group := range raw.TopProducts {
		report.TopSellingProducts = append(report.TopSellingProducts, &domain.TopSellingProduct{
			Product:    group.Key,
			TotalSales: utils.RoundWithTwoDecimalPlace(group.TotalSales),
		})
	}

	for _, group := range raw.VsTarget {
		report.SalesVsTarget = append(report.SalesVsTarget, &domain.SalesVsTarget{
			Product:     group.Product,
			ActualSales: utils.RoundWithTwoDecimalPlace(group.ActualSales),
			TargetSales: utils.RoundWithTwoDecimalPlace(group.TargetSales),
		})
	}

	for _, group := range raw.RevenueProfit {
		report.RevenueAndProfit = append(report.RevenueAndProfit, &domain.RevenueAndProfit{
			Date:         group.Date.UTC().Format(time.RFC3339),
			TotalRevenue: utils.RoundWithTwoDecimalPlace(group.TotalRevenue),
			TotalProfit:  utils.RoundWithTwoDecimalPlace(group.TotalProfit),
		})
	}

	for _, group := range raw.Demographics {
		report.CustomerDemographics = append(report.CustomerDemographics, &domain.CustomerDemographics{
			AgeGroup:   group.AgeGroup,
			Gender:     group.Gender,
			Occupation: group.Occupation,
			TotalSales: utils.RoundWithTwoDecimalPlace(group.TotalSales),
		})
	}

	for _, group := range raw.Trend {
		report.SalesTrendOverTime = append(report.SalesTrendOverTime, &domain.SalesTrend{
			Period:     group.Period,
			TotalSales: utils.RoundWithTwoDecimalPlace(group.TotalSales),
		})
	}

	return report
}
