package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/wendyapp/admin-console-api/infrastructure/repository"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/domain"
	errorcodes "github.com/wendyapp/admin-console-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator autentica os operadores do console e valida seus tokens. A
// autenticação do operador é independente da sessão com a plataforma.
type Authenticator interface {
	CreateOperator(operator *domain.Operator) (*domain.Operator, error)
	ListOperators() ([]*domain.Operator, error)
	LoginOperator(email, password string) (string, error)
	GetOperatorProfile(operatorID int) (*domain.Operator, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	operatorRepo repository.OperatorRepository
	cfg          *config.Config
}

func NewService(operatorRepo repository.OperatorRepository, cfg *config.Config) Authenticator {
	return &Service{
		operatorRepo: operatorRepo,
		cfg:          cfg,
	}
}

func (s *Service) CreateOperator(operator *domain.Operator) (*domain.Operator, error) {
	if operator.Email == "" || operator.Name == "" || operator.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	operator.Email = handleEmail(operator.Email)

	existing, err := s.operatorRepo.GetOperatorByEmail(operator.Email)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar operador")
	}
	if existing != nil {
		return nil, NewAuthError(ErrOperatorAlreadyExists, errorcodes.ErrOperatorAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(operator.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if operator.RoleID == 0 {
		operator.RoleID = domain.RoleSupervisor
	}

	operator.PasswordHash = string(hashedPassword)
	operator.Active = false

	operator, err = s.operatorRepo.CreateOperator(operator)
	if err != nil {
		return nil, NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao criar operador")
	}

	return operator, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListOperators() ([]*domain.Operator, error) {
	operators, err := s.operatorRepo.ListOperators()
	if err != nil {
		return nil, err
	}

	return operators, nil
}

func (s *Service) LoginOperator(email, password string) (string, error) {
	// Validação de entrada
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	operator, err := s.operatorRepo.GetOperatorByEmail(email)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrDatabaseOperation, "Erro ao consultar operador no banco de dados")
	}

	// Verificar se o operador existe
	if operator == nil {
		return "", NewAuthError(ErrOperatorNotFound, errorcodes.ErrOperatorNotFound, "Operador não encontrado")
	}

	// Verificar se o operador está ativo
	if !operator.Active {
		return "", NewOperatorAuthError(ErrOperatorDisabled, errorcodes.ErrOperatorDisabled, operator.ID, "Conta desativada")
	}

	// Verificar senha
	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return "", NewOperatorAuthError(ErrInvalidCredentials, errorcodes.ErrInvalidCredentials, operator.ID, "Senha incorreta")
	}

	// Gerar token JWT
	token, err := generateJWT(operator, s.cfg.SecretKey)
	if err != nil {
		return "", NewAuthError(err, errorcodes.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetOperatorProfile(operatorID int) (*domain.Operator, error) {
	operator, err := s.operatorRepo.GetOperatorByID(operatorID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}

	operator.PasswordHash = ""
	return operator, nil
}

func generateJWT(operator *domain.Operator, secretKey string) (string, error) {
	claims := domain.Claims{
		OperatorID:     operator.ID,
		OperatorName:   operator.Name,
		OperatorEmail:  operator.Email,
		OperatorActive: operator.Active,
		OperatorRoleID: operator.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "claims inválidas")
	}

	return claims, nil
}
