package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fakeSyncer struct {
	started  bool
	triggers int
}

func (f *fakeSyncer) TriggerManualSync() bool {
	f.triggers++
	return f.started
}

func (f *fakeSyncer) GetStatus() map[string]any {
	return map[string]any{"enabled": true, "running": !f.started}
}

func TestSyncRecords(t *testing.T) {
	tests := []struct {
		name    string
		started bool
	}{
		{name: "Recarga iniciada", started: true},
		{name: "Recarga já em andamento", started: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncer := &fakeSyncer{started: tt.started}

			rec := serve(SyncRecords(syncer), http.MethodPost, "/v1/records/sync")

			assert.Equal(t, http.StatusAccepted, rec.Code)
			assert.Equal(t, 1, syncer.triggers)
			assert.Equal(t, tt.started, decode(t, rec)["started"])
		})
	}
}

func TestSyncRecords_WithoutScheduler(t *testing.T) {
	rec := serve(SyncRecords(nil), http.MethodPost, "/v1/records/sync")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrSyncUnavailable, decode(t, rec)["code"])
}

func TestGetRecordsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	service.EXPECT().GetStatus().Return(map[string]any{"loaded": true}).Times(2)

	rec := serve(GetRecordsStatus(service, &fakeSyncer{started: true}), http.MethodGet, "/v1/records/status")
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, map[string]any{"loaded": true}, body["records"])
	assert.Equal(t, map[string]any{"enabled": true, "running": false}, body["scheduler"])

	rec = serve(GetRecordsStatus(service, nil), http.MethodGet, "/v1/records/status")
	assert.NotContains(t, decode(t, rec), "scheduler")
}
