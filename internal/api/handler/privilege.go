package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wendyapp/admin-console-api/internal/usecases/privileging"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
	"github.com/wendyapp/admin-console-api/pkg/apiErrors"
)

type TogglePrivilegeRequest struct {
	CurrentStatus bool    `json:"current_status"`
	Reason        *string `json:"reason"`
}

type SelectionRequest struct {
	Action  string `json:"action"` // toggle, select_all, clear
	StoreID string `json:"store_id,omitempty"`
	Search  string `json:"search,omitempty"`
	Filter  string `json:"filter,omitempty"`
}

type BatchPrivilegeRequest struct {
	Action string  `json:"action"` // grant ou revoke
	Reason *string `json:"reason"`
}

// GetPrivileges devolve a listagem de candidatas. Busca e filtro vêm na query
// string; os contadores sempre refletem o conjunto completo, não o recorte.
func GetPrivileges(privileger privileging.Privileger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		filter := privileging.Filter(r.URL.Query().Get("filter"))
		if filter == "" {
			filter = privileging.FilterAll
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(privileger.Overview(search, filter))
	}
}

// RefreshPrivileges recarrega as duas listas da plataforma.
func RefreshPrivileges(privileger privileging.Privileger, sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		privileger.LoadStores(r.Context(), sess)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(privileger.Overview("", privileging.FilterAll))
	}
}

// TogglePrivilege inverte o privilégio de uma loja e repassa a mensagem de
// confirmação da plataforma.
func TogglePrivilege(privileger privileging.Privileger, sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		var req TogglePrivilegeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		message, err := privileger.TogglePrivilege(r.Context(), sess, storeID, req.CurrentStatus, req.Reason)
		if err != nil {
			writeWorkflowError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": message,
		})
	}
}

// UpdateSelection manipula o conjunto de seleção usado pelas operações em
// lote. Operação puramente local, sem chamadas à plataforma.
func UpdateSelection(privileger privileging.Privileger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		filter := privileging.Filter(req.Filter)
		if filter == "" {
			filter = privileging.FilterAll
		}

		switch req.Action {
		case "toggle":
			if req.StoreID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "store_id é obrigatório para toggle", nil)
				return
			}
			privileger.ToggleSelection(req.StoreID)

		case "select_all":
			privileger.SelectAllFiltered(req.Search, filter)

		case "clear":
			privileger.ClearSelection()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ação de seleção inválida", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(privileger.Overview(req.Search, filter))
	}
}

// BatchPrivilege aplica grant ou revoke sobre a seleção corrente.
func BatchPrivilege(privileger privileging.Privileger, sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		var req BatchPrivilegeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := privileger.ApplyBatch(r.Context(), sess, req.Action, req.Reason)
		if err != nil {
			writeWorkflowError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
