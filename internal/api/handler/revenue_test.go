package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/reconciliation"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var february = reconciliation.DateRange{StartDate: "2024-02-01", EndDate: "2024-02-29"}

func sampleReport() *reconciliation.Report {
	return &reconciliation.Report{
		Range:        february,
		DisplayRange: february.Display(),
		CombinedRevenueByDay: []reconciliation.CombinedDay{
			{Date: "2024-02-10", ExpectedRevenue: 10, ActualRevenue: 12, RetainedRevenue: 12, Customers: 1},
		},
		Totals: reconciliation.Totals{
			ExpectedRevenue: 10,
			ActualRevenue:   1234.5,
			RetainedRevenue: 12,
			NewSales:        0,
			LostRevenue:     0,
		},
		ExpectedCustomers: reconciliation.ExpectedCustomers{Unpaid: []reconciliation.CustomerEntry{}, Paid: []reconciliation.CustomerEntry{}},
		LostCustomers:     []reconciliation.CustomerEntry{},
		NewSalesCustomers: []reconciliation.CustomerEntry{},
	}
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetRevenueReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetReport(gomock.Any(), february).Return(sampleReport(), nil)

	rec := serve(GetRevenueReport(service), http.MethodGet, "/v1/revenue/report?start_date=2024-02-01&end_date=2024-02-29")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, map[string]any{"start_date": "2024-02-01", "end_date": "2024-02-29"}, body["range"])
	assert.Equal(t, map[string]any{"start": "Feb 1, 2024", "end": "Feb 29, 2024"}, body["display_range"])
}

func TestGetRevenueReport_Preset(t *testing.T) {
	fixed := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetPresetReport(gomock.Any(), reconciliation.PresetWeek, fixed).Return(sampleReport(), nil)

	rec := serve(GetRevenueReport(service), http.MethodGet, "/v1/revenue/report?preset=week&start_date=2024-02-01")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRevenueReport_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Período invertido",
			err:            dashboarding.NewDashboardError(dashboarding.ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, ""),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidDateRange,
		},
		{
			name:           "Fonte de registros indisponível",
			err:            dashboarding.NewDashboardError(dashboarding.ErrRecordsNotLoaded, apiErrors.ErrExternalService, "timeout"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrExternalService,
		},
		{
			name:           "Erro inesperado",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockDashboarder(ctrl)
			service.EXPECT().GetReport(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := serve(GetRevenueReport(service), http.MethodGet, "/v1/revenue/report?start_date=2024-03-01&end_date=2024-02-01")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decode(t, rec)["code"])
		})
	}
}

func TestGetRevenueTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetReport(gomock.Any(), february).Return(sampleReport(), nil)

	rec := serve(GetRevenueTotals(service), http.MethodGet, "/v1/revenue/totals?start_date=2024-02-01&end_date=2024-02-29")
	require.Equal(t, http.StatusOK, rec.Code)

	var body TotalsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.InDelta(t, 1234.5, body.Totals.ActualRevenue, 1e-9)
	assert.Equal(t, "$1,234.50", body.Formatted.ActualRevenue)
	assert.Equal(t, "$10.00", body.Formatted.ExpectedRevenue)
	assert.Equal(t, "$0.00", body.Formatted.LostRevenue)
}

func TestGetRevenueCustomers(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetReport(gomock.Any(), february).Return(sampleReport(), nil)

	rec := serve(GetRevenueCustomers(service), http.MethodGet, "/v1/revenue/customers?start_date=2024-02-01&end_date=2024-02-29")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Contains(t, body, "expected_customers")
	assert.Contains(t, body, "expected_customers_by_date")
	assert.Equal(t, []any{}, body["lost_customers"])
	assert.Equal(t, []any{}, body["new_sales_customers"])
	assert.NotContains(t, body, "totals")
}

func TestGetRevenueDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetReport(gomock.Any(), february).Return(sampleReport(), nil)

	rec := serve(GetRevenueDaily(service), http.MethodGet, "/v1/revenue/daily?start_date=2024-02-01&end_date=2024-02-29")
	require.Equal(t, http.StatusOK, rec.Code)

	var body DailyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Days, 1)
	assert.Equal(t, "2024-02-10", body.Days[0].Date)
	assert.Equal(t, "Feb 10", body.Days[0].Label)
	assert.InDelta(t, 12.0, body.Days[0].ActualRevenue, 1e-9)
}

func TestParseReportQuery_OpenRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/revenue/report?start_date=2024-02-01", nil)
	q := parseReportQuery(req.WithContext(context.Background()))

	assert.Empty(t, q.Preset)
	assert.True(t, q.Range.IsOpen())
}
