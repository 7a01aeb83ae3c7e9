package domain

// SalesReport agrega as oito visões calculadas sobre o conjunto completo de
// registros de venda. É recalculado a cada consulta e nunca persistido.
// Todas as coleções estão sempre presentes, mesmo vazias.
type SalesReport struct {
	SalesConversionRate  []*SalesConversionRate  `json:"salesConversionRate"`
	SalesByRegion        []*SalesByRegion        `json:"salesByRegion"`
	SalesByCategory      []*SalesByCategory      `json:"salesByCategory"`
	TopSellingProducts   []*TopSellingProduct    `json:"topSellingProducts"`
	SalesVsTarget        []*SalesVsTarget        `json:"salesVsTarget"`
	RevenueAndProfit     []*RevenueAndProfit     `json:"revenueAndProfit"`
	CustomerDemographics []*CustomerDemographics `json:"customerDemographics"`
	SalesTrendOverTime   []*SalesTrend           `json:"salesTrendOverTime"`
}

// SalesConversionRate representa vendas, contagem de registros e taxa de
// conversão por período. TotalRecords é uma contagem inteira, mas trafega
// como float e passa pelo mesmo arredondamento dos campos monetários.
type SalesConversionRate struct {
	Period         string  `json:"period"`
	TotalSales     float64 `json:"totalSales"`
	TotalRecords   float64 `json:"totalRecords"`
	ConversionRate float64 `json:"conversionRate"`
}

// SalesByRegion representa o total de vendas por região
type SalesByRegion struct {
	Region     string  `json:"region"`
	TotalSales float64 `json:"totalSales"`
}

// SalesByCategory representa o total de vendas por categoria de produto
type SalesByCategory struct {
	Category   string  `json:"category"`
	TotalSales float64 `json:"totalSales"`
}

// TopSellingProduct representa um produto no ranking de mais vendidos
type TopSellingProduct struct {
	Product    string  `json:"product"`
	TotalSales float64 `json:"totalSales"`
}

// SalesVsTarget compara as vendas realizadas com a meta (custo) por produto
type SalesVsTarget struct {
	Product     string  `json:"product"`
	ActualSales float64 `json:"actualSales"`
	TargetSales float64 `json:"targetSales"`
}

// RevenueAndProfit representa receita e lucro totais por data exata de venda
type RevenueAndProfit struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalProfit  float64 `json:"totalProfit"`
}

// CustomerDemographics representa o total de vendas por faixa etária,
// gênero e ocupação
type CustomerDemographics struct {
	AgeGroup   string  `json:"ageGroup"`
	Gender     string  `json:"gender"`
	Occupation string  `json:"occupation"`
	TotalSales float64 `json:"totalSales"`
}

// SalesTrend representa o total de vendas em um período (bucket) do relatório
type SalesTrend struct {
	Period     string  `json:"period"`
	TotalSales float64 `json:"totalSales"`
}
