package domain

// Period é a granularidade de agrupamento temporal usada pelos relatórios
type Period string

const (
	PeriodDaily     Period = "daily"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnually  Period = "annually"
)

// ParsePeriod converte a string recebida pela API em um Period conhecido.
// Valores desconhecidos caem no comportamento diário, o mesmo fallback do
// agrupamento de datas.
func ParsePeriod(value string) Period {
	switch Period(value) {
	case PeriodMonthly, PeriodQuarterly, PeriodAnnually:
		return Period(value)
	default:
		return PeriodDaily
	}
}
