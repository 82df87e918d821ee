package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/revenue-dashboard-api/internal/reconciliation"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// now é substituído nos testes dos presets
var now = time.Now

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("response: failed to encode body")
	}
}

// writeServiceError traduz erros do dashboarding para o formato padronizado da API
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		if apiErrors.StatusCode(dashErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("revenue: failed to build report")
		} else {
			logger.WithError(err).Warn("revenue: invalid report request")
		}

		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	logger.WithError(err).Error("revenue: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

// reportQuery é o período pedido: preset ou start_date/end_date
type reportQuery struct {
	Preset reconciliation.Preset
	Range  reconciliation.DateRange
}

func parseReportQuery(r *http.Request) reportQuery {
	query := r.URL.Query()

	if preset := query.Get("preset"); preset != "" {
		return reportQuery{Preset: reconciliation.Preset(preset)}
	}

	return reportQuery{
		Range: reconciliation.DateRange{
			StartDate: query.Get("start_date"),
			EndDate:   query.Get("end_date"),
		},
	}
}

func (q reportQuery) fields() log.Fields {
	if q.Preset != "" {
		return log.Fields{"preset": q.Preset}
	}
	return log.Fields{"start_date": q.Range.StartDate, "end_date": q.Range.EndDate}
}

// loadReport resolve o período pedido e busca o relatório no serviço
func loadReport(r *http.Request, service dashboarding.Dashboarder) (*reconciliation.Report, error) {
	q := parseReportQuery(r)
	log.ForContext(r.Context()).WithFields(q.fields()).Debug("revenue: loading report")

	if q.Preset != "" {
		return service.GetPresetReport(r.Context(), q.Preset, now())
	}
	return service.GetReport(r.Context(), q.Range)
}
