package handler

import (
	"net/http"

	"github.com/pkg/errors"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"github.com/wendyapp/admin-console-api/internal/usecases/approving"
	"github.com/wendyapp/admin-console-api/internal/usecases/privileging"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
	"github.com/wendyapp/admin-console-api/pkg/apiErrors"
)

// activeSession resolve a sessão com a plataforma ou responde 401. Handlers
// que falam com a plataforma começam por aqui.
func activeSession(w http.ResponseWriter, sessions session.Sessions) (domain.Session, bool) {
	sess, err := sessions.Current()
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			apiErrors.WriteError(w, apiErrors.ErrSessionInactive, "Sessão com a plataforma não está ativa", nil)
		} else {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar sessão administrativa", nil)
		}
		return domain.Session{}, false
	}

	return sess, true
}

// writeWorkflowError converte os erros dos fluxos administrativos para o
// envelope padronizado. A mensagem de recusa da plataforma é repassada ao
// operador como veio.
func writeWorkflowError(w http.ResponseWriter, err error) {
	var platformErr *platformdomain.PlatformError
	if errors.As(err, &platformErr) {
		apiErrors.WriteError(w, apiErrors.ErrPlatformOperation, platformErr.Message, map[string]any{
			"platform_status": platformErr.StatusCode,
		})
		return
	}

	switch {
	case errors.Is(err, approving.ErrActionCancelled),
		errors.Is(err, privileging.ErrActionCancelled):
		apiErrors.WriteError(w, apiErrors.ErrActionCancelled, err.Error(), nil)

	case errors.Is(err, approving.ErrReasonRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, approving.ErrConfirmationRequired):
		apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, err.Error(), nil)

	case errors.Is(err, approving.ErrUnknownKind),
		errors.Is(err, privileging.ErrInvalidAction),
		errors.Is(err, privileging.ErrEmptySelection):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, session.ErrNotAuthenticated):
		apiErrors.WriteError(w, apiErrors.ErrSessionInactive, err.Error(), nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Falha de comunicação com a plataforma", nil)
	}
}
