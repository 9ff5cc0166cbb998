package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
)

// GetOverview devolve o retrato corrente do dashboard, sem tocar a plataforma.
func GetOverview(overviewer overview.Overviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overviewer.Snapshot())
	}
}

// RefreshOverview dispara uma sincronização completa e devolve o retrato
// atualizado. As buscas que falharem mantêm o último valor conhecido.
func RefreshOverview(overviewer overview.Overviewer, sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		overviewer.Sync(r.Context(), sess)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(overviewer.Snapshot())
	}
}
