package reconciliation

import (
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
)

// NormalizedTimestampLayout é o formato gravado em CreatedAt depois da normalização
const NormalizedTimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
}

// layouts sem fuso são interpretados no fuso de destino
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// NormalizeTimestamps devolve uma cópia dos registros com CreatedAt convertido para loc.
// Timestamps que não puderem ser interpretados ficam como vieram.
func NormalizeTimestamps(records []domain.PaymentRecord, loc *time.Location) []domain.PaymentRecord {
	if loc == nil {
		loc = time.UTC
	}

	normalized := make([]domain.PaymentRecord, len(records))
	for i, record := range records {
		normalized[i] = record
		if record.CreatedAt == "" {
			continue
		}

		if t, ok := parseTimestamp(record.CreatedAt, loc); ok {
			normalized[i].CreatedAt = t.In(loc).Format(NormalizedTimestampLayout)
		}
	}

	return normalized
}

func parseTimestamp(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
