package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Options parametriza uma execução da agregação
type Options struct {
	TopSellingLimit int
	Period          domain.Period
}

// Grupos crus produzidos pela agregação, antes de qualquer arredondamento ou
// formatação. O assembler converte estes tipos nas formas públicas do
// relatório.
type (
	// PeriodGroup acumula vendas e contagem de registros por bucket de período
	PeriodGroup struct {
		Period       string
		TotalSales   float64
		TotalRecords int
	}

	// KeyGroup acumula o total de vendas por uma chave simples
	// (região, categoria ou produto)
	KeyGroup struct {
		Key        string
		TotalSales float64
	}

	// TargetGroup acumula vendas realizadas e meta (custo) por produto
	TargetGroup struct {
		Product     string
		ActualSales float64
		TargetSales float64
	}

	// DateGroup acumula receita e lucro por valor exato de data (sem bucket)
	DateGroup struct {
		Date         time.Time
		TotalRevenue float64
		TotalProfit  float64
	}

	// DemographicGroup acumula vendas pela chave composta
	// (faixa etária, gênero, ocupação)
	DemographicGroup struct {
		AgeGroup   string
		Gender     string
		Occupation string
		TotalSales float64
	}
)

// RawAggregates é a saída crua da passada única de agregação
type RawAggregates struct {
	ConversionRate []*PeriodGroup
	ByRegion       []*KeyGroup
	ByCategory     []*KeyGroup
	TopProducts    []*KeyGroup
	VsTarget       []*TargetGroup
	RevenueProfit  []*DateGroup
	Demographics   []*DemographicGroup
	Trend          []*PeriodGroup
}

// engine mantém os acumuladores das oito visões durante a varredura.
// Cada visão indexa seus grupos por chave e preserva a ordem de primeira
// aparição, o que torna empates determinísticos entre execuções sobre a
// mesma sequência de registros.
type engine struct {
	opts Options

	conversionRate *periodAccumulator
	trend          *periodAccumulator
	byRegion       *keyAccumulator
	byCategory     *keyAccumulator
	byProduct      *keyAccumulator
	vsTarget       map[string]*TargetGroup
	vsTargetOrder  []*TargetGroup
	revenueProfit  map[int64]*DateGroup
	revenueOrder   []*DateGroup
	demographics   map[string]*DemographicGroup
	demoOrder      []*DemographicGroup
}

// Aggregate computa as oito visões do relatório em uma única varredura sobre o
// conjunto completo de registros. Cada registro é distribuído (fan-out) para os
// reducers independentes de cada visão; nenhuma visão filtra ou restringe o
// intervalo de datas.
func Aggregate(records []*domain.SaleRecord, opts Options) *RawAggregates {
	e := &engine{
		opts:           opts,
		conversionRate: newPeriodAccumulator(),
		trend:          newPeriodAccumulator(),
		byRegion:       newKeyAccumulator(),
		byCategory:     newKeyAccumulator(),
		byProduct:      newKeyAccumulator(),
		vsTarget:       make(map[string]*TargetGroup),
		revenueProfit:  make(map[int64]*DateGroup),
		demographics:   make(map[string]*DemographicGroup),
	}

	// O descritor do fan-out: uma passada, oito ramos independentes
	folds := []func(*domain.SaleRecord){
		e.foldConversionRate,
		e.foldByRegion,
		e.foldByCategory,
		e.foldByProduct,
		e.foldVsTarget,
		e.foldRevenueProfit,
		e.foldDemographics,
		e.foldTrend,
	}

	for _, record := range records {
		for _, fold := range folds {
			fold(record)
		}
	}

	return e.finalize()
}

func (e *engine) foldConversionRate(record *domain.SaleRecord) {
	group := e.conversionRate.group(BucketDate(record.Date, e.opts.Period))
	group.TotalSales += record.SalesRevenue
	group.TotalRecords++
}

func (e *engine) foldTrend(record *domain.SaleRecord) {
	group := e.trend.group(BucketDate(record.Date, e.opts.Period))
	group.TotalSales += record.SalesRevenue
}

func (e *engine) foldByRegion(record *domain.SaleRecord) {
	e.byRegion.add(record.Region, record.SalesRevenue)
}

func (e *engine) foldByCategory(record *domain.SaleRecord) {
	e.byCategory.add(record.Category, record.SalesRevenue)
}

func (e *engine) foldByProduct(record *domain.SaleRecord) {
	e.byProduct.add(record.Product, record.SalesRevenue)
}

func (e *engine) foldVsTarget(record *domain.SaleRecord) {
	group, exists := e.vsTarget[record.Product]
	if !exists {
		group = &TargetGroup{Product: record.Product}
		e.vsTarget[record.Product] = group
		e.vsTargetOrder = append(e.vsTargetOrder, group)
	}
	group.ActualSales += record.SalesRevenue
	group.TargetSales += record.Cost
}

func (e *engine) foldRevenueProfit(record *domain.SaleRecord) {
	// Chave pelo instante exato: mesmas datas agregam, sem bucket de período
	key := record.Date.UTC().UnixNano()

	group, exists := e.revenueProfit[key]
	if !exists {
		group = &DateGroup{Date: record.Date.UTC()}
		e.revenueProfit[key] = group
		e.revenueOrder = append(e.revenueOrder, group)
	}
	group.TotalRevenue += record.SalesRevenue
	group.TotalProfit += record.Profit
}

func (e *engine) foldDemographics(record *domain.SaleRecord) {
	key := record.AgeGroup + "\x00" + record.Gender + "\x00" + record.Occupation

	group, exists := e.demographics[key]
	if !exists {
		group = &DemographicGroup{
			AgeGroup:   record.AgeGroup,
			Gender:     record.Gender,
			Occupation: record.Occupation,
		}
		e.demographics[key] = group
		e.demoOrder = append(e.demoOrder, group)
	}
	group.TotalSales += record.SalesRevenue
}

// finalize aplica as regras de ordenação e truncamento das visões que as têm
func (e *engine) finalize() *RawAggregates {
	// Ranking de produtos: ordenação estável descendente por total, depois
	// truncamento ao limite. Empates preservam a ordem de primeira aparição.
	topProducts := make([]*KeyGroup, len(e.byProduct.order))
	copy(topProducts, e.byProduct.order)
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].TotalSales > topProducts[j].TotalSales
	})

	limit := e.opts.TopSellingLimit
	if limit < 0 {
		limit = 0
	}
	if limit < len(topProducts) {
		topProducts = topProducts[:limit]
	}

	// Receita e lucro: ordem ascendente por data
	sort.Slice(e.revenueOrder, func(i, j int) bool {
		return e.revenueOrder[i].Date.Before(e.revenueOrder[j].Date)
	})

	return &RawAggregates{
		ConversionRate: e.conversionRate.order,
		ByRegion:       e.byRegion.order,
		ByCategory:     e.byCategory.order,
		TopProducts:    topProducts,
		VsTarget:       e.vsTargetOrder,
		RevenueProfit:  e.revenueOrder,
		Demographics:   e.demoOrder,
		Trend:          e.trend.order,
	}
}

// periodAccumulator agrupa por bucket de período preservando a ordem de
// primeira aparição
type periodAccumulator struct {
	index map[string]*PeriodGroup
	order []*PeriodGroup
}

func newPeriodAccumulator() *periodAccumulator {
	return &periodAccumulator{index: make(map[string]*PeriodGroup)}
}

func (a *periodAccumulator) group(period string) *PeriodGroup {
	group, exists := a.index[period]
	if !exists {
		group = &PeriodGroup{Period: period}
		a.index[period] = group
		a.order = append(a.order, group)
	}
	return group
}

// keyAccumulator agrupa somas de vendas por chave simples preservando a ordem
// de primeira aparição
type keyAccumulator struct {
	index map[string]*KeyGroup
	order []*KeyGroup
}

func newKeyAccumulator() *keyAccumulator {
	return &keyAccumulator{index: make(map[string]*KeyGroup)}
}

func (a *keyAccumulator) add(key string, revenue float64) {
	group, exists := a.index[key]
	if !exists {
		group = &KeyGroup{Key: key}
		a.index[key] = group
		a.order = append(a.order, group)
	}
	group.TotalSales += revenue
}
