// Package scheduler contém os serviços de agendamento para recarga dos registros de pagamento
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
)

const syncTimeout = 2 * time.Minute

type RecordsSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

type RecordsSyncService struct {
	scheduler           *gocron.Scheduler
	dashboarder         dashboarding.Dashboarder
	config              RecordsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	baseCtx             context.Context
}

func NewRecordsSyncService(dashboarder dashboarding.Dashboarder, cfg *config.Config) *RecordsSyncService {
	syncConfig := RecordsSyncConfig{
		CronSchedule: cfg.RecordsSync.CronSchedule,
		Enabled:      cfg.RecordsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("Configuração do agendador de recarga de registros carregada")

	return &RecordsSyncService{
		scheduler:   gocron.NewScheduler(time.UTC),
		dashboarder: dashboarder,
		config:      syncConfig,
		baseCtx:     context.Background(),
	}
}

func (s *RecordsSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.Enabled {
		logrus.Info("Cron de recarga de registros desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga de registros")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRecords()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga de registros: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga de registros")
		s.scheduler.Stop()
	}()

	return nil
}

// syncRecords executa uma recarga; se outra já estiver rodando, retorna sem fazer nada
func (s *RecordsSyncService) syncRecords() {
	if !s.begin() {
		logrus.Warn("Recarga de registros já está em execução")
		return
	}

	ctx, cancel := context.WithTimeout(s.baseCtx, syncTimeout)
	defer cancel()

	logrus.Info("Iniciando recarga de registros de pagamento")

	err := s.dashboarder.RefreshRecords(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na recarga de registros de pagamento")
	} else {
		logrus.Info("Recarga de registros de pagamento concluída")
	}

	s.finish(err)
}

func (s *RecordsSyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *RecordsSyncService) finish(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
}

// TriggerManualSync dispara uma recarga em background; false quando já existe uma em andamento
func (s *RecordsSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Recarga de registros já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando recarga manual de registros")
	go s.syncRecords()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *RecordsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
