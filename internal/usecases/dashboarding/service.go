package dashboarding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/internal/reconciliation"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/utils"
)

// snapshot é imutável depois de publicado; relatórios em cache apontam para ele pela versão
type snapshot struct {
	version  string
	records  []domain.PaymentRecord
	loadedAt time.Time
}

type Service struct {
	source   PaymentSource
	cache    *reconciliation.Cache
	location *time.Location

	refreshMu sync.Mutex

	mu            sync.RWMutex
	current       *snapshot
	lastRefreshAt time.Time
	lastErr       error
}

func NewService(cfg *config.Config, source PaymentSource) *Service {
	s := &Service{
		source:   source,
		location: cfg.Records.Location,
	}

	if s.location == nil {
		s.location = time.UTC
	}

	if cfg.Cache.Enabled {
		s.cache = reconciliation.NewCache(cfg.Cache.MaxEntries)
	}

	return s
}

func (s *Service) RefreshRecords(ctx context.Context) error {
	if s.source == nil {
		return NewDashboardError(ErrNoRecordSource, apiErrors.ErrInternalServer, "")
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	return s.refreshLocked(ctx)
}

// refreshLocked exige refreshMu: uma recarga por vez
func (s *Service) refreshLocked(ctx context.Context) error {
	startTime := time.Now()

	records, err := s.source.FetchPayments(ctx)
	if err != nil {
		s.setRefreshResult(nil, err)
		return NewDashboardError(fmt.Errorf("%w: %w", ErrRecordsNotLoaded, err), apiErrors.ErrExternalService, "")
	}

	version, err := utils.GenerateVersion()
	if err != nil {
		s.setRefreshResult(nil, err)
		return NewDashboardError(err, apiErrors.ErrInternalServer, "erro ao gerar versão do snapshot")
	}

	next := &snapshot{
		version:  version,
		records:  reconciliation.NormalizeTimestamps(records, s.location),
		loadedAt: time.Now(),
	}
	s.setRefreshResult(next, nil)

	if s.cache != nil {
		s.cache.Invalidate()
	}

	logrus.WithFields(logrus.Fields{
		"version":  version,
		"records":  len(next.records),
		"duration": time.Since(startTime).String(),
	}).Info("Registros de pagamento recarregados")

	return nil
}

func (s *Service) setRefreshResult(next *snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastRefreshAt = time.Now()
	s.lastErr = err
	if next != nil {
		s.current = next
	}
}

func (s *Service) GetReport(ctx context.Context, r reconciliation.DateRange) (*reconciliation.Report, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	snap, err := s.loadedSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return reconciliation.Compute(snap.records, r), nil
	}

	return s.cache.GetOrCompute(snap.version, r, func() *reconciliation.Report {
		logrus.WithFields(logrus.Fields{
			"version":    snap.version,
			"start_date": r.StartDate,
			"end_date":   r.EndDate,
		}).Debug("Calculando relatório de conciliação")

		return reconciliation.Compute(snap.records, r)
	}), nil
}

func (s *Service) GetPresetReport(ctx context.Context, preset reconciliation.Preset, now time.Time) (*reconciliation.Report, error) {
	r, err := reconciliation.PresetRange(preset, now.In(s.location))
	if err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrInvalidRequest, "")
	}

	return s.GetReport(ctx, r)
}

func (s *Service) GetStatus() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := map[string]any{
		"loaded":   s.current != nil,
		"timezone": s.location.String(),
	}

	if s.current != nil {
		status["version"] = s.current.version
		status["records"] = len(s.current.records)
		status["loaded_at"] = s.current.loadedAt
	}

	if !s.lastRefreshAt.IsZero() {
		status["last_refresh_at"] = s.lastRefreshAt
	}

	if s.lastErr != nil {
		status["last_error"] = s.lastErr.Error()
	}

	if s.cache != nil {
		status["cache"] = s.cache.Stats()
	}

	return status
}

// loadedSnapshot devolve o snapshot atual, carregando na primeira chamada.
// Requisições simultâneas sem snapshot esperam a mesma carga.
func (s *Service) loadedSnapshot(ctx context.Context) (*snapshot, error) {
	if snap := s.currentSnapshot(); snap != nil {
		return snap, nil
	}

	if s.source == nil {
		return nil, NewDashboardError(ErrNoRecordSource, apiErrors.ErrInternalServer, "")
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if snap := s.currentSnapshot(); snap != nil {
		return snap, nil
	}

	if err := s.refreshLocked(ctx); err != nil {
		return nil, err
	}

	return s.currentSnapshot(), nil
}

func (s *Service) currentSnapshot() *snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// validateRange aceita período aberto (relatório vazio), mas rejeita datas malformadas ou invertidas
func validateRange(r reconciliation.DateRange) error {
	start, err := utils.ParseDate(r.StartDate)
	if err != nil {
		return NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "start_date deve estar no formato YYYY-MM-DD")
	}

	end, err := utils.ParseDate(r.EndDate)
	if err != nil {
		return NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "end_date deve estar no formato YYYY-MM-DD")
	}

	if r.StartDate != "" && r.EndDate != "" && start.After(*end) {
		return NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidDateRange, "start_date depois de end_date")
	}

	return nil
}

var _ Dashboarder = (*Service)(nil)
