package dashboarding

import (
	"context"
	"time"

	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/reconciliation"
)

// PaymentSource é a origem dos registros de pagamento (API de tabelas ou Postgres)
type PaymentSource interface {
	FetchPayments(ctx context.Context) ([]domain.PaymentRecord, error)
}

// Dashboarder expõe os relatórios de conciliação para a API e para o agendador
type Dashboarder interface {
	// RefreshRecords recarrega os registros da fonte e troca o snapshot atual
	RefreshRecords(ctx context.Context) error

	// GetReport calcula (ou devolve do cache) o relatório do período
	GetReport(ctx context.Context, r reconciliation.DateRange) (*reconciliation.Report, error)

	// GetPresetReport resolve o atalho de período em relação a now e calcula o relatório
	GetPresetReport(ctx context.Context, preset reconciliation.Preset, now time.Time) (*reconciliation.Report, error)

	GetStatus() map[string]any
}
