package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wendyapp/admin-console-api/internal/scheduler"
	"github.com/wendyapp/admin-console-api/pkg/apiErrors"
)

type TrackingPollingRequest struct {
	Enabled bool `json:"enabled"`
}

// GetTracking devolve o último retrato de rastreamento mais o status do
// agendador. Antes da primeira rodada bem-sucedida, o retrato vem vazio e
// ready fica falso.
func GetTracking(trackingService *scheduler.TrackingSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ready := trackingService.Snapshot()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"ready":    ready,
			"snapshot": snapshot,
			"status":   trackingService.GetStatus(),
		})
	}
}

// RefreshTracking dispara uma rodada manual. A rodada corre em segundo plano
// e não altera a cadência do polling.
func RefreshTracking(trackingService *scheduler.TrackingSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackingService.TriggerManualSync()
		w.WriteHeader(http.StatusAccepted)
	}
}

// SetTrackingPolling liga ou desliga o polling periódico.
func SetTrackingPolling(trackingService *scheduler.TrackingSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TrackingPollingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := trackingService.SetPolling(req.Enabled); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao alterar o polling de rastreamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(trackingService.GetStatus())
	}
}
