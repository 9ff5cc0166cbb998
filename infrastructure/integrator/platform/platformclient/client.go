package platformclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

// Client é o contrato de acesso ao backend da plataforma de delivery. Toda
// chamada recebe a sessão explicitamente; o token nunca é estado global.
type Client interface {
	GetDashboardSummary(ctx context.Context, sess domain.Session) (*platformdomain.DashboardSummary, error)
	GetPendingStores(ctx context.Context, sess domain.Session) ([]domain.StoreRecord, error)
	GetPendingDeliverers(ctx context.Context, sess domain.Session) ([]domain.DelivererRecord, error)
	GetStores(ctx context.Context, sess domain.Session) ([]domain.StoreRecord, error)
	GetDeliverers(ctx context.Context, sess domain.Session) ([]domain.DelivererRecord, error)
	GetCities(ctx context.Context, sess domain.Session) ([]domain.City, error)
	GetCategories(ctx context.Context, sess domain.Session) ([]domain.Category, error)

	ApproveStore(ctx context.Context, sess domain.Session, storeID string) error
	RejectStore(ctx context.Context, sess domain.Session, storeID, reason string) error
	ApproveDeliverer(ctx context.Context, sess domain.Session, delivererID string) error
	RejectDeliverer(ctx context.Context, sess domain.Session, delivererID, reason string) error
	DeleteUser(ctx context.Context, sess domain.Session, userID, reason string) error

	GetDelivererLocations(ctx context.Context, sess domain.Session) (*domain.TrackingSnapshot, error)

	GetPrivilegeCandidates(ctx context.Context, sess domain.Session) ([]domain.CandidateStore, error)
	GetPrivilegedStores(ctx context.Context, sess domain.Session) ([]domain.CandidateStore, error)
	SetStorePrivilege(ctx context.Context, sess domain.Session, storeID string, privileged bool, reason string) (string, error)
	BatchStorePrivilege(ctx context.Context, sess domain.Session, storeIDs []string, action, reason string) (*platformdomain.BatchPrivilegeResult, error)
}

type PlatformClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Platform.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &PlatformClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cfg: cfg,
	}
}

// apiURL monta uma URL sob o prefixo administrativo da plataforma.
func (c *PlatformClient) apiURL(pathSuffix string) string {
	return c.cfg.Platform.APIURL + pathSuffix
}

// geoURL monta uma URL sob o prefixo do serviço de geolocalização.
func (c *PlatformClient) geoURL(pathSuffix string) string {
	return c.cfg.Platform.GeoURL + pathSuffix
}

// do executa uma requisição autenticada e decodifica a resposta em out (se
// out != nil). Respostas não-2xx viram *platformdomain.PlatformError com a
// mensagem do servidor, para ser exibida ao operador.
func (c *PlatformClient) do(ctx context.Context, sess domain.Session, method, url string, body, out any) error {
	if !sess.Authenticated() {
		return fmt.Errorf("sessão sem token para %s %s", method, url)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao serializar o corpo da requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+sess.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return handleResponse(resp, out)
}

// handleResponse decodifica o corpo em caso de sucesso e extrai o envelope
// {"error"} em caso de falha.
func handleResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		platformErr := &platformdomain.PlatformError{StatusCode: resp.StatusCode}

		var errResp platformdomain.ErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Error != "" {
			platformErr.Message = errResp.Error
		} else if len(raw) > 0 {
			platformErr.Message = string(raw)
		}

		return platformErr
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}
