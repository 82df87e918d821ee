package dashboarding

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidDateRange = errors.New("invalid date range")

	// Erros de carga
	ErrNoRecordSource   = errors.New("no record source configured")
	ErrRecordsNotLoaded = errors.New("payment records could not be loaded")
)

// DashboardError carrega o código de erro da API junto do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
