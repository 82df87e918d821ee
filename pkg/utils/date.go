package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatShortDate formata para os eixos dos gráficos: "Mar 5"
func FormatShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// FormatDisplayDate formata para as listas de clientes: "Mar 5, 2024"
func FormatDisplayDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
