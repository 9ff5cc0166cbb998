package session

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/repository"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

// ErrNotAuthenticated indica que não há sessão ativa com a plataforma. Nenhuma
// chamada administrativa deve ser feita nesse estado.
var ErrNotAuthenticated = errors.New("sessão com a plataforma não está ativa")

// Sessions controla a sessão administrativa junto à plataforma. O token é
// persistido para sobreviver a reinícios do console.
type Sessions interface {
	Login() (domain.Session, error)
	Logout() error
	Current() (domain.Session, error)
}

type SessionService struct {
	repo repository.SessionRepository
	cfg  *config.Config
}

func NewSessionService(repo repository.SessionRepository, cfg *config.Config) *SessionService {
	return &SessionService{
		repo: repo,
		cfg:  cfg,
	}
}

// Login ativa a sessão administrativa. O token vem da configuração enquanto a
// plataforma não expõe um fluxo de autenticação real para o console.
func (s *SessionService) Login() (domain.Session, error) {
	token := s.cfg.Platform.AdminToken

	if err := s.repo.SaveToken(token); err != nil {
		return domain.Session{}, err
	}

	logrus.Info("Sessão administrativa ativada")

	return domain.Session{
		Token:       token,
		ActivatedAt: time.Now(),
	}, nil
}

func (s *SessionService) Logout() error {
	if err := s.repo.DeleteToken(); err != nil {
		return err
	}

	logrus.Info("Sessão administrativa encerrada")

	return nil
}

// Current devolve a sessão ativa ou ErrNotAuthenticated quando não há token
// persistido.
func (s *SessionService) Current() (domain.Session, error) {
	token, err := s.repo.GetToken()
	if err != nil {
		return domain.Session{}, err
	}

	if token == "" {
		return domain.Session{}, ErrNotAuthenticated
	}

	return domain.Session{Token: token}, nil
}
