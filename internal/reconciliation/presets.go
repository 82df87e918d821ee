package reconciliation

import (
	"time"

	"github.com/pkg/errors"
)

// Preset são os atalhos de período do dashboard
type Preset string

const (
	PresetToday Preset = "today"
	PresetWeek  Preset = "week"
	PresetMonth Preset = "month"
)

var ErrUnknownPreset = errors.New("preset de período desconhecido")

// PresetRange resolve o atalho em relação a now: hoje, últimos 7 dias ou últimos 30 dias (inclusive hoje)
func PresetRange(preset Preset, now time.Time) (DateRange, error) {
	var start time.Time

	switch preset {
	case PresetToday:
		start = now
	case PresetWeek:
		start = now.AddDate(0, 0, -6)
	case PresetMonth:
		start = now.AddDate(0, 0, -29)
	default:
		return DateRange{}, errors.Wrapf(ErrUnknownPreset, "preset %q", preset)
	}

	return NewDateRange(&start, &now), nil
}
