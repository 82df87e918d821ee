package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, enabled bool) (*mocks.MockDashboarder, *RecordsSyncService) {
	ctrl := gomock.NewController(t)
	dashboarder := mocks.NewMockDashboarder(ctrl)

	cfg := &config.Config{RecordsSync: config.RecordsSync{CronSchedule: "*/15 * * * *", Enabled: enabled}}
	return dashboarder, NewRecordsSyncService(dashboarder, cfg)
}

func TestRecordsSyncService_syncRecords(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantError string
	}{
		{name: "Recarga com sucesso"},
		{name: "Erro na fonte fica registrado no status", err: errors.New("timeout"), wantError: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboarder, service := newTestSyncService(t, true)
			dashboarder.EXPECT().RefreshRecords(gomock.Any()).Return(tt.err)

			service.syncRecords()

			status := service.GetStatus()
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestRecordsSyncService_syncRecords_SkipsWhenRunning(t *testing.T) {
	_, service := newTestSyncService(t, true)

	require.True(t, service.begin())

	// nenhuma chamada ao dashboarder é esperada
	service.syncRecords()
	assert.False(t, service.TriggerManualSync())

	service.finish(nil)
}

func TestRecordsSyncService_TriggerManualSync(t *testing.T) {
	dashboarder, service := newTestSyncService(t, false)

	done := make(chan struct{})
	dashboarder.EXPECT().RefreshRecords(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		close(done)
		return nil
	})

	assert.True(t, service.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("recarga manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestRecordsSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda", func(t *testing.T) {
		_, service := newTestSyncService(t, false)
		require.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("Cron inválida", func(t *testing.T) {
		_, service := newTestSyncService(t, true)
		service.config.CronSchedule = "nunca"
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Agenda e para com o contexto", func(t *testing.T) {
		_, service := newTestSyncService(t, true)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)

		cancel()
		assert.Eventually(t, func() bool { return !service.scheduler.IsRunning() }, time.Second, 10*time.Millisecond)
	})
}
