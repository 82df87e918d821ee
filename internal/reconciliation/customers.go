package reconciliation

import (
	"slices"
	"strings"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// PaymentStatus marca o cliente esperado como ainda não pago ou já pago no período atual
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "unpaid"
	StatusPaid   PaymentStatus = "paid"
)

// CustomerEntry é uma linha das listas de clientes do dashboard
type CustomerEntry struct {
	CustomerID   string        `json:"customer_id"`
	Email        string        `json:"email"`
	Amount       float64       `json:"amount"`
	Paid         bool          `json:"paid"`
	PaidAmount   float64       `json:"paid_amount,omitempty"`
	ExpectedDate string        `json:"expected_date,omitempty"`
	PaymentDate  string        `json:"payment_date,omitempty"`
	Status       PaymentStatus `json:"status,omitempty"`
}

// ExpectedCustomers separa os clientes do período anterior entre quem pagou e quem ainda não pagou
type ExpectedCustomers struct {
	Unpaid []CustomerEntry `json:"unpaid"`
	Paid   []CustomerEntry `json:"paid"`
}

// ExpectedCustomerDate agrupa os clientes esperados (pagos ou não) pela data esperada
type ExpectedCustomerDate struct {
	ExpectedDate string          `json:"expected_date"`
	Customers    []CustomerEntry `json:"customers"`
}

type customerAggregate struct {
	id       string
	email    string
	amount   float64
	lastDate string
}

// aggregateCustomers soma os pagamentos por cliente e guarda a data mais recente
func aggregateCustomers(records []domain.PaymentRecord) map[string]*customerAggregate {
	customers := make(map[string]*customerAggregate)
	for _, record := range records {
		if !record.HasCustomer() {
			continue
		}

		customer, ok := customers[record.CustomerID]
		if !ok {
			customer = &customerAggregate{id: record.CustomerID}
			customers[record.CustomerID] = customer
		}

		if customer.email == "" {
			customer.email = record.CustomerEmail
		}

		customer.amount += record.MajorAmount()

		if date := ExtractDateOnly(record.CreatedAt); date > customer.lastDate {
			customer.lastDate = date
		}
	}
	return customers
}

func expectedCustomers(prior, current map[string]*customerAggregate) ExpectedCustomers {
	result := ExpectedCustomers{
		Unpaid: []CustomerEntry{},
		Paid:   []CustomerEntry{},
	}

	for _, id := range sortedKeys(prior) {
		customer := prior[id]
		entry := CustomerEntry{
			CustomerID:   customer.id,
			Email:        customer.email,
			Amount:       customer.amount,
			ExpectedDate: ShiftDateForwardOneMonth(customer.lastDate),
		}

		paid, ok := current[id]
		if !ok {
			result.Unpaid = append(result.Unpaid, entry)
			continue
		}

		entry.Paid = true
		entry.PaidAmount = paid.amount
		entry.PaymentDate = paid.lastDate
		result.Paid = append(result.Paid, entry)
	}

	sortByDateDescending(result.Unpaid, func(e CustomerEntry) string { return e.ExpectedDate })
	sortByDateDescending(result.Paid, func(e CustomerEntry) string { return e.ExpectedDate })

	return result
}

// groupExpectedCustomers monta a visão agrupada por data esperada, da mais recente para a mais antiga
func groupExpectedCustomers(expected ExpectedCustomers) []ExpectedCustomerDate {
	groups := make(map[string][]CustomerEntry)
	order := make([]string, 0)

	add := func(entries []CustomerEntry, status PaymentStatus) {
		for _, entry := range entries {
			if _, ok := groups[entry.ExpectedDate]; !ok {
				order = append(order, entry.ExpectedDate)
			}
			entry.Status = status
			groups[entry.ExpectedDate] = append(groups[entry.ExpectedDate], entry)
		}
	}

	add(expected.Unpaid, StatusUnpaid)
	add(expected.Paid, StatusPaid)

	slices.SortStableFunc(order, func(a, b string) int {
		if cmp := CompareDatesDescending(a, b); cmp != 0 {
			return cmp
		}
		return strings.Compare(a, b)
	})

	result := make([]ExpectedCustomerDate, 0, len(order))
	for _, date := range order {
		result = append(result, ExpectedCustomerDate{
			ExpectedDate: date,
			Customers:    groups[date],
		})
	}

	return result
}

// newSalesCustomers lista quem pagou no período atual sem ter pago no anterior
func newSalesCustomers(prior, current map[string]*customerAggregate) []CustomerEntry {
	result := make([]CustomerEntry, 0)
	for _, id := range sortedKeys(current) {
		if _, ok := prior[id]; ok {
			continue
		}

		customer := current[id]
		result = append(result, CustomerEntry{
			CustomerID:  customer.id,
			Email:       customer.email,
			Amount:      customer.amount,
			PaymentDate: customer.lastDate,
		})
	}

	sortByDateDescending(result, func(e CustomerEntry) string { return e.PaymentDate })
	return result
}

// lostCustomers lista quem pagou no período anterior e não voltou, do maior valor para o menor
func lostCustomers(prior, current map[string]*customerAggregate) []CustomerEntry {
	result := make([]CustomerEntry, 0)
	for _, id := range sortedKeys(prior) {
		if _, ok := current[id]; ok {
			continue
		}

		customer := prior[id]
		result = append(result, CustomerEntry{
			CustomerID:   customer.id,
			Email:        customer.email,
			Amount:       customer.amount,
			ExpectedDate: ShiftDateForwardOneMonth(customer.lastDate),
		})
	}

	slices.SortStableFunc(result, func(a, b CustomerEntry) int {
		switch {
		case a.Amount > b.Amount:
			return -1
		case a.Amount < b.Amount:
			return 1
		}
		return strings.Compare(a.CustomerID, b.CustomerID)
	})

	return result
}

func sortByDateDescending(entries []CustomerEntry, date func(CustomerEntry) string) {
	slices.SortStableFunc(entries, func(a, b CustomerEntry) int {
		if cmp := CompareDatesDescending(date(a), date(b)); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.CustomerID, b.CustomerID)
	})
}
