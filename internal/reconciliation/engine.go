package reconciliation

import (
	"maps"
	"slices"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// Totals são os valores escalares exibidos nos cartões de KPI
type Totals struct {
	ExpectedRevenue float64 `json:"expected_revenue"`
	ActualRevenue   float64 `json:"actual_revenue"`
	RetainedRevenue float64 `json:"retained_revenue"`
	NewSales        float64 `json:"new_sales"`
	LostRevenue     float64 `json:"lost_revenue"`
}

// DailyMetrics é a divisão da receita de um dia entre retida, nova e perdida
type DailyMetrics struct {
	Date            string  `json:"date"`
	RetainedRevenue float64 `json:"retained_revenue"`
	NewSales        float64 `json:"new_sales"`
	LostRevenue     float64 `json:"lost_revenue"`
}

// CombinedDay junta esperado e realizado na mesma data, com zero onde um dos lados não existe
type CombinedDay struct {
	Date            string  `json:"date"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	ActualRevenue   float64 `json:"actual_revenue"`
	RetainedRevenue float64 `json:"retained_revenue"`
	NewSales        float64 `json:"new_sales"`
	LostRevenue     float64 `json:"lost_revenue"`
	Customers       int     `json:"customers"`
}

// Report é o pacote completo de agregados derivados de (registros, período).
// É compartilhado pelo cache, então quem recebe não deve alterá-lo.
type Report struct {
	Range                   DateRange              `json:"range"`
	DisplayRange            DisplayRange           `json:"display_range"`
	ExpectedRevenuePerDay   map[string]float64     `json:"expected_revenue_per_day"`
	ActualRevenuePerDay     map[string]float64     `json:"actual_revenue_per_day"`
	CustomersPerDay         map[string]int         `json:"customers_per_day"`
	CombinedRevenueByDay    []CombinedDay          `json:"combined_revenue_by_day"`
	RevenueMetricsByDay     []DailyMetrics         `json:"revenue_metrics_by_day"`
	Totals                  Totals                 `json:"totals"`
	ExpectedCustomers       ExpectedCustomers      `json:"expected_customers"`
	ExpectedCustomersByDate []ExpectedCustomerDate `json:"expected_customers_by_date"`
	NewSalesCustomers       []CustomerEntry        `json:"new_sales_customers"`
	LostCustomers           []CustomerEntry        `json:"lost_customers"`
}

// Compute monta o Report. É total: nunca falha e não altera os registros recebidos.
func Compute(records []domain.PaymentRecord, r DateRange) *Report {
	report := emptyReport(r)
	if r.IsOpen() {
		return report
	}

	prior := filterByRange(records, PriorWindow(r))
	current := filterByRange(records, r)

	report.ExpectedRevenuePerDay = expectedRevenuePerDay(prior, r)
	report.ActualRevenuePerDay, report.CustomersPerDay = actualRevenuePerDay(current)

	split := splitRevenue(prior, current)
	report.RevenueMetricsByDay = split.byDay

	report.Totals = Totals{
		ExpectedRevenue: sumValues(report.ExpectedRevenuePerDay),
		ActualRevenue:   sumValues(report.ActualRevenuePerDay),
		RetainedRevenue: split.retained,
		NewSales:        split.newSales,
		LostRevenue:     split.lost,
	}

	report.CombinedRevenueByDay = combineByDay(report)

	priorCustomers := aggregateCustomers(prior)
	currentCustomers := aggregateCustomers(current)

	report.ExpectedCustomers = expectedCustomers(priorCustomers, currentCustomers)
	report.ExpectedCustomersByDate = groupExpectedCustomers(report.ExpectedCustomers)
	report.NewSalesCustomers = newSalesCustomers(priorCustomers, currentCustomers)
	report.LostCustomers = lostCustomers(priorCustomers, currentCustomers)

	return report
}

func emptyReport(r DateRange) *Report {
	return &Report{
		Range:                   r,
		DisplayRange:            r.Display(),
		ExpectedRevenuePerDay:   map[string]float64{},
		ActualRevenuePerDay:     map[string]float64{},
		CustomersPerDay:         map[string]int{},
		CombinedRevenueByDay:    []CombinedDay{},
		RevenueMetricsByDay:     []DailyMetrics{},
		ExpectedCustomers:       ExpectedCustomers{Unpaid: []CustomerEntry{}, Paid: []CustomerEntry{}},
		ExpectedCustomersByDate: []ExpectedCustomerDate{},
		NewSalesCustomers:       []CustomerEntry{},
		LostCustomers:           []CustomerEntry{},
	}
}

// expectedRevenuePerDay soma o período anterior por data original e projeta cada data no mês
// de StartDate. Datas que passam do fim do mês caem no último dia e são somadas, nunca sobrescritas.
func expectedRevenuePerDay(prior []domain.PaymentRecord, r DateRange) map[string]float64 {
	byOriginalDate := make(map[string]float64)
	for _, record := range prior {
		byOriginalDate[ExtractDateOnly(record.CreatedAt)] += record.MajorAmount()
	}

	shifted := make(map[string]float64)
	target, ok := parseDate(r.StartDate)
	if !ok {
		return shifted
	}
	lastDay := LastDayOfMonth(target.Year(), target.Month())

	for _, date := range sortedKeys(byOriginalDate) {
		original, ok := parseDate(date)
		if !ok {
			continue
		}

		day := min(original.Day(), lastDay)
		key := formatDate(time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC))
		shifted[key] += byOriginalDate[date]
	}

	return shifted
}

// actualRevenuePerDay agrega o período literal (sem deslocamento) e conta clientes distintos por dia
func actualRevenuePerDay(current []domain.PaymentRecord) (map[string]float64, map[string]int) {
	revenue := make(map[string]float64)
	customers := make(map[string]map[string]struct{})

	for _, record := range current {
		date := ExtractDateOnly(record.CreatedAt)
		revenue[date] += record.MajorAmount()

		if customers[date] == nil {
			customers[date] = make(map[string]struct{})
		}
		if record.CustomerID != "" {
			customers[date][record.CustomerID] = struct{}{}
		}
	}

	counts := make(map[string]int, len(customers))
	for date, set := range customers {
		counts[date] = len(set)
	}

	return revenue, counts
}

type revenueSplit struct {
	byDay    []DailyMetrics
	retained float64
	newSales float64
	lost     float64
}

// splitRevenue separa a receita de cada dia em retida (cliente presente no período anterior) e nova.
// A perda é calculada uma vez e distribuída igualmente entre os dias com atividade.
// Pagamentos sem cliente contam como venda nova: não há como casá-los com o período anterior.
func splitRevenue(prior, current []domain.PaymentRecord) revenueSplit {
	priorTotals := customerTotals(prior)
	currentTotals := customerTotals(current)

	days := make(map[string]map[string]float64)
	for _, record := range current {
		date := ExtractDateOnly(record.CreatedAt)
		if days[date] == nil {
			days[date] = make(map[string]float64)
		}
		days[date][record.CustomerID] += record.MajorAmount()
	}

	split := revenueSplit{byDay: make([]DailyMetrics, 0, len(days))}
	for _, date := range sortedKeys(days) {
		metrics := DailyMetrics{Date: date}

		perCustomer := days[date]
		for _, customerID := range sortedKeys(perCustomer) {
			if _, retained := priorTotals[customerID]; retained {
				metrics.RetainedRevenue += perCustomer[customerID]
			} else {
				metrics.NewSales += perCustomer[customerID]
			}
		}

		split.byDay = append(split.byDay, metrics)
	}

	for _, customerID := range sortedKeys(priorTotals) {
		if _, ok := currentTotals[customerID]; !ok {
			split.lost += priorTotals[customerID]
		}
	}

	if len(split.byDay) > 0 && split.lost > 0 {
		perDay := split.lost / float64(len(split.byDay))
		for i := range split.byDay {
			split.byDay[i].LostRevenue = perDay
		}
	}

	// o total de perda é o valor agregado, não a soma das parcelas diárias
	for _, day := range split.byDay {
		split.retained += day.RetainedRevenue
		split.newSales += day.NewSales
	}

	return split
}

func customerTotals(records []domain.PaymentRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range records {
		if !record.HasCustomer() {
			continue
		}
		totals[record.CustomerID] += record.MajorAmount()
	}
	return totals
}

func combineByDay(report *Report) []CombinedDay {
	byDate := make(map[string]*CombinedDay)
	entry := func(date string) *CombinedDay {
		if day, ok := byDate[date]; ok {
			return day
		}
		day := &CombinedDay{Date: date}
		byDate[date] = day
		return day
	}

	for date, amount := range report.ExpectedRevenuePerDay {
		entry(date).ExpectedRevenue = amount
	}

	for date, amount := range report.ActualRevenuePerDay {
		day := entry(date)
		day.ActualRevenue = amount
		day.Customers = report.CustomersPerDay[date]
	}

	for _, metrics := range report.RevenueMetricsByDay {
		day := entry(metrics.Date)
		day.RetainedRevenue = metrics.RetainedRevenue
		day.NewSales = metrics.NewSales
		day.LostRevenue = metrics.LostRevenue
	}

	combined := make([]CombinedDay, 0, len(byDate))
	for _, date := range sortedKeys(byDate) {
		combined = append(combined, *byDate[date])
	}

	return combined
}

func sumValues(values map[string]float64) float64 {
	total := 0.0
	for _, key := range sortedKeys(values) {
		total += values[key]
	}
	return total
}

// sortedKeys garante ordem estável nas somas em ponto flutuante
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
