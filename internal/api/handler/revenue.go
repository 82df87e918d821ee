package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/reconciliation"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

type TotalsResponse struct {
	Range        reconciliation.DateRange    `json:"range"`
	DisplayRange reconciliation.DisplayRange `json:"display_range"`
	Totals       reconciliation.Totals       `json:"totals"`
	Formatted    FormattedTotals             `json:"formatted"`
}

// FormattedTotals são os cartões de KPI já formatados como moeda
type FormattedTotals struct {
	ExpectedRevenue string `json:"expected_revenue"`
	ActualRevenue   string `json:"actual_revenue"`
	RetainedRevenue string `json:"retained_revenue"`
	NewSales        string `json:"new_sales"`
	LostRevenue     string `json:"lost_revenue"`
}

type CustomersResponse struct {
	Range                   reconciliation.DateRange              `json:"range"`
	DisplayRange            reconciliation.DisplayRange           `json:"display_range"`
	ExpectedCustomers       reconciliation.ExpectedCustomers      `json:"expected_customers"`
	ExpectedCustomersByDate []reconciliation.ExpectedCustomerDate `json:"expected_customers_by_date"`
	NewSalesCustomers       []reconciliation.CustomerEntry        `json:"new_sales_customers"`
	LostCustomers           []reconciliation.CustomerEntry        `json:"lost_customers"`
}

type DailyResponse struct {
	Range        reconciliation.DateRange    `json:"range"`
	DisplayRange reconciliation.DisplayRange `json:"display_range"`
	Days         []DailyPoint                `json:"days"`
}

// DailyPoint é um ponto do gráfico diário, com o rótulo curto do eixo
type DailyPoint struct {
	reconciliation.CombinedDay
	Label string `json:"label"`
}

func GetRevenueReport(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := loadReport(r, service)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": report.Range.StartDate,
			"end_date":   report.Range.EndDate,
		}).Info("revenue: report built")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

func GetRevenueTotals(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := loadReport(r, service)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		totals := roundTotals(report.Totals)
		writeJSON(w, logger, http.StatusOK, TotalsResponse{
			Range:        report.Range,
			DisplayRange: report.DisplayRange,
			Totals:       totals,
			Formatted: FormattedTotals{
				ExpectedRevenue: utils.FormatCurrency(totals.ExpectedRevenue),
				ActualRevenue:   utils.FormatCurrency(totals.ActualRevenue),
				RetainedRevenue: utils.FormatCurrency(totals.RetainedRevenue),
				NewSales:        utils.FormatCurrency(totals.NewSales),
				LostRevenue:     utils.FormatCurrency(totals.LostRevenue),
			},
		})
	})
}

func GetRevenueCustomers(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := loadReport(r, service)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, CustomersResponse{
			Range:                   report.Range,
			DisplayRange:            report.DisplayRange,
			ExpectedCustomers:       report.ExpectedCustomers,
			ExpectedCustomersByDate: report.ExpectedCustomersByDate,
			NewSalesCustomers:       report.NewSalesCustomers,
			LostCustomers:           report.LostCustomers,
		})
	})
}

func GetRevenueDaily(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := loadReport(r, service)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		days := make([]DailyPoint, 0, len(report.CombinedRevenueByDay))
		for _, day := range report.CombinedRevenueByDay {
			point := DailyPoint{CombinedDay: day}
			if date, err := utils.ParseDate(day.Date); err == nil {
				point.Label = utils.FormatShortDate(*date)
			}
			days = append(days, point)
		}

		writeJSON(w, logger, http.StatusOK, DailyResponse{
			Range:        report.Range,
			DisplayRange: report.DisplayRange,
			Days:         days,
		})
	})
}

func roundTotals(t reconciliation.Totals) reconciliation.Totals {
	return reconciliation.Totals{
		ExpectedRevenue: utils.RoundWithTwoDecimalPlace(t.ExpectedRevenue),
		ActualRevenue:   utils.RoundWithTwoDecimalPlace(t.ActualRevenue),
		RetainedRevenue: utils.RoundWithTwoDecimalPlace(t.RetainedRevenue),
		NewSales:        utils.RoundWithTwoDecimalPlace(t.NewSales),
		LostRevenue:     utils.RoundWithTwoDecimalPlace(t.LostRevenue),
	}
}
