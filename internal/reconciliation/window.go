package reconciliation

import (
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// DateRange é o período selecionado, em datas "YYYY-MM-DD". A data final é inclusiva.
type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// DisplayRange é o período formatado para exibição
type DisplayRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

const notAvailable = "N/A"

// NewDateRange normaliza datas ricas para o formato usado pelo motor; nil deixa o lado vazio
func NewDateRange(start, end *time.Time) DateRange {
	var r DateRange
	if start != nil {
		r.StartDate = start.Format(time.DateOnly)
	}
	if end != nil {
		r.EndDate = end.Format(time.DateOnly)
	}
	return r
}

// IsOpen indica que falta uma das pontas (ou ela é inválida); nesse caso tudo que depende do período fica vazio
func (r DateRange) IsOpen() bool {
	_, _, ok := r.bounds()
	return !ok
}

// Contains compara como texto; funciona porque "YYYY-MM-DD" tem largura fixa
func (r DateRange) Contains(date string) bool {
	if r.IsOpen() {
		return false
	}
	return date >= r.StartDate && date <= r.EndDate
}

// Display formata o período como "Jan 2, 2006", ou N/A quando aberto
func (r DateRange) Display() DisplayRange {
	start, end, ok := r.bounds()
	if !ok {
		return DisplayRange{Start: notAvailable, End: notAvailable}
	}

	return DisplayRange{
		Start: utils.FormatDisplayDate(start),
		End:   utils.FormatDisplayDate(end),
	}
}

func (r DateRange) bounds() (time.Time, time.Time, bool) {
	start, ok := parseDate(r.StartDate)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	end, ok := parseDate(r.EndDate)
	if !ok {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// PriorWindow calcula a janela equivalente do período anterior: as duas pontas recuam um mês
// e o fim é estendido pela diferença de dias quando o mês anterior é mais longo (abril -> março ganha 1 dia).
func PriorWindow(r DateRange) DateRange {
	start, end, ok := r.bounds()
	if !ok {
		return DateRange{}
	}

	previousMonth := time.Date(end.Year(), end.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	extraDays := max(0,
		LastDayOfMonth(previousMonth.Year(), previousMonth.Month())-LastDayOfMonth(end.Year(), end.Month()),
	)

	return DateRange{
		StartDate: formatDate(addMonthsClamped(start, -1)),
		EndDate:   formatDate(addDays(addMonthsClamped(end, -1), extraDays)),
	}
}

// filterByRange devolve os registros com receita cuja data cai no período.
// Registros sem data válida são descartados aqui e não aparecem em nenhuma agregação.
func filterByRange(records []domain.PaymentRecord, r DateRange) []domain.PaymentRecord {
	if r.IsOpen() {
		return []domain.PaymentRecord{}
	}

	filtered := make([]domain.PaymentRecord, 0)
	for _, record := range records {
		if !record.HasRevenue() {
			continue
		}

		date := ExtractDateOnly(record.CreatedAt)
		if _, ok := parseDate(date); !ok {
			continue
		}

		if r.Contains(date) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
