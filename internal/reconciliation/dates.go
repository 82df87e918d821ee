// Package reconciliation contém o motor de conciliação de receita: compara o que era esperado
// para o período atual (o período anterior deslocado um mês à frente) com o que de fato ocorreu.
package reconciliation

import (
	"strings"
	"time"
)

// ExtractDateOnly remove o horário de um timestamp, aceitando "2006-01-02 15:04:05.000" e ISO-8601.
// Não valida a data, apenas corta no separador.
func ExtractDateOnly(timestamp string) string {
	if timestamp == "" {
		return ""
	}

	if i := strings.IndexByte(timestamp, ' '); i >= 0 {
		return timestamp[:i]
	}

	if i := strings.IndexByte(timestamp, 'T'); i >= 0 {
		return timestamp[:i]
	}

	return timestamp
}

// LastDayOfMonth retorna o último dia do mês (dia 0 do mês seguinte)
func LastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftDateForwardOneMonth leva o dia D do mês M para o dia D do mês M+1,
// limitando ao último dia do mês de destino (31/01 -> 28/02 ou 29/02).
func ShiftDateForwardOneMonth(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}

	return formatDate(addMonthsClamped(t, 1))
}

// ShiftDateBackwardOneMonth subtrai um mês com a mesma regra de limite do fim do mês
func ShiftDateBackwardOneMonth(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return ""
	}

	return formatDate(addMonthsClamped(t, -1))
}

// CompareDatesDescending ordena datas da mais recente para a mais antiga.
// Datas vazias ou inválidas vão para o fim.
func CompareDatesDescending(a, b string) int {
	if a == "" && b == "" {
		return 0
	}
	if a == "" {
		return 1
	}
	if b == "" {
		return -1
	}

	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}

	return tb.Compare(ta)
}

// addMonthsClamped soma meses sem o transbordo do time.AddDate (31/03 - 1 mês = 03/03)
func addMonthsClamped(t time.Time, months int) time.Time {
	target := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	day := min(t.Day(), LastDayOfMonth(target.Year(), target.Month()))
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func parseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func addDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
