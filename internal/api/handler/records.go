package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
)

// RecordsSyncer é o agendador de recarga visto pelos handlers
type RecordsSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// SyncRecords dispara a recarga manual dos registros em background
func SyncRecords(syncer RecordsSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if syncer == nil {
			apiErrors.WriteError(w, apiErrors.ErrSyncUnavailable, "Serviço de recarga de registros não disponível", nil)
			return
		}

		started := syncer.TriggerManualSync()
		logger.WithField("started", started).Info("records: manual sync requested")

		message := "Recarga de registros iniciada com sucesso"
		if !started {
			message = "Recarga de registros já está em andamento"
		}

		writeJSON(w, logger, http.StatusAccepted, map[string]any{
			"message": message,
			"started": started,
		})
	})
}

// GetRecordsStatus junta o status do agendador com o do snapshot de registros
func GetRecordsStatus(service dashboarding.Dashboarder, syncer RecordsSyncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := map[string]any{
			"records": service.GetStatus(),
		}
		if syncer != nil {
			status["scheduler"] = syncer.GetStatus()
		}

		writeJSON(w, logger, http.StatusOK, status)
	})
}
