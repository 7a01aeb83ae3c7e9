package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// BucketDate mapeia um timestamp para o rótulo canônico do período. O bucket
// usa sempre o calendário em UTC, a mesma convenção do armazenamento, para que
// o mesmo instante caia sempre no mesmo bucket.
//
// Rótulos por granularidade:
//
//	daily      2006-01-02
//	monthly    2006-01
//	quarterly  2006-Q1 (trimestres civis: meses 1-3 Q1, 4-6 Q2, 7-9 Q3, 10-12 Q4)
//	annually   2006
//
// Períodos desconhecidos caem no diário.
func BucketDate(date time.Time, period domain.Period) string {
	d := date.UTC()

	switch period {
	case domain.PeriodMonthly:
		return d.Format("2006-01")
	case domain.PeriodQuarterly:
		quarter := (int(d.Month()) + 2) / 3
		return fmt.Sprintf("%04d-Q%d", d.Year(), quarter)
	case domain.PeriodAnnually:
		return d.Format("2006")
	default:
		return d.Format(time.DateOnly)
	}
}
