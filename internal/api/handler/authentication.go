package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/internal/domain"
	"github.com/wendyapp/admin-console-api/internal/usecases/authenticating"
	"github.com/wendyapp/admin-console-api/internal/usecases/overview"
	"github.com/wendyapp/admin-console-api/internal/usecases/session"
	"github.com/wendyapp/admin-console-api/pkg/apiErrors"
	"github.com/wendyapp/admin-console-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateOperatorRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id"`
}

// Login autentica o operador e, em sucesso, ativa a sessão com a plataforma e
// dispara a sincronização inicial do dashboard em segundo plano.
func Login(authenticator authenticating.Authenticator, sessions session.Sessions, overviewer overview.Overviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := authenticator.LoginOperator(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		sess, err := sessions.Login()
		if err != nil {
			logrus.WithError(err).Error("Erro ao ativar sessão com a plataforma")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ativar sessão administrativa", nil)
			return
		}

		// A primeira carga do dashboard não bloqueia a resposta de login
		go overviewer.Sync(context.Background(), sess)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

// Logout encerra a sessão administrativa com a plataforma.
func Logout(sessions session.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Logout(); err != nil {
			logrus.WithError(err).Error("Erro ao encerrar sessão administrativa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao encerrar sessão", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetMe retorna as informações do operador logado
func GetMe(authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		operatorClaims, ok := r.Context().Value(middleware.ContextKeyOperator).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Operador não autenticado", nil)
			return
		}

		operator, err := authenticator.GetOperatorProfile(operatorClaims.OperatorID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao obter dados do operador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(operator); err != nil {
			logrus.Error(err)
		}
	}
}

func CreateOperator(authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateOperatorRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		operator, err := authenticator.CreateOperator(&domain.Operator{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
		})
		if err != nil {
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar operador", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(operator)
	}
}

func ListOperators(authenticator authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		operators, err := authenticator.ListOperators()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar operadores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"operators": operators,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"operator_id": authErr.OperatorID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrOperatorDisabled):
		apiErrors.WriteError(w, apiErrors.ErrOperatorDisabled, "Operador desativado", nil)

	case errors.Is(err, authenticating.ErrOperatorNotFound):
		apiErrors.WriteError(w, apiErrors.ErrOperatorNotFound, "Operador não encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
	}
}
