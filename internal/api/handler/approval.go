package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wendyapp/admin-console-api/internal/usecases/approving"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
	"github.com/wendyapp/admin-console-api/pkg/apiErrors"
)

// ReasonPayload transporta o motivo de rejeições e exclusões. O ponteiro
// distingue prompt cancelado (nulo) de motivo vazio.
type ReasonPayload struct {
	Reason *string `json:"reason"`
}

type DeleteUserPayload struct {
	Kind      string  `json:"kind"`
	Reason    *string `json:"reason"`
	Confirmed bool    `json:"confirmed"`
}

func ApproveStore(approver approving.Approver, sessions session.Sessions) http.HandlerFunc {
	return approveHandler(approver, sessions, approving.KindStore)
}

func ApproveDeliverer(approver approving.Approver, sessions session.Sessions) http.HandlerFunc {
	return approveHandler(approver, sessions, approving.KindDeliverer)
}

func RejectStore(approver approving.Approver, sessions session.Sessions) http.HandlerFunc {
	return rejectHandler(approver, sessions, approving.KindStore)
}

func RejectDeliverer(approver approving.Approver, sessions session.Sessions) http.HandlerFunc {
	return rejectHandler(approver, sessions, approving.KindDeliverer)
}

func approveHandler(approver approving.Approver, sessions session.Sessions, kind approving.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		entityID := params.ByName("id")

		if err := approver.Approve(r.Context(), sess, kind, entityID); err != nil {
			writeWorkflowError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func rejectHandler(approver approving.Approver, sessions session.Sessions, kind approving.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		var payload ReasonPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		entityID := params.ByName("id")

		if err := approver.Reject(r.Context(), sess, kind, entityID, payload.Reason); err != nil {
			writeWorkflowError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteUser remove permanentemente um usuário da plataforma. Exige motivo e
// confirmação explícita no corpo da requisição.
func DeleteUser(approver approving.Approver, sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := activeSession(w, sessions)
		if !ok {
			return
		}

		var payload DeleteUserPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		userID := params.ByName("id")

		input := approving.DeleteUserInput{
			UserID:    userID,
			Kind:      approving.Kind(payload.Kind),
			Reason:    payload.Reason,
			Confirmed: payload.Confirmed,
		}

		if err := approver.DeleteUser(r.Context(), sess, input); err != nil {
			writeWorkflowError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
