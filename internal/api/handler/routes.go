package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Revenue(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue/report",
			Method:  http.MethodGet,
			Handler: GetRevenueReport(service),
		},
		{
			Path:    "/v1/revenue/totals",
			Method:  http.MethodGet,
			Handler: GetRevenueTotals(service),
		},
		{
			Path:    "/v1/revenue/customers",
			Method:  http.MethodGet,
			Handler: GetRevenueCustomers(service),
		},
		{
			Path:    "/v1/revenue/daily",
			Method:  http.MethodGet,
			Handler: GetRevenueDaily(service),
		},
	}
}

func Records(service dashboarding.Dashboarder, syncer RecordsSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/records/sync",
			Method:  http.MethodPost,
			Handler: SyncRecords(syncer),
		},
		{
			Path:    "/v1/records/status",
			Method:  http.MethodGet,
			Handler: GetRecordsStatus(service, syncer),
		},
	}
}
