package platformclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/config"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

func testClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Platform.APIURL = serverURL + "/api"
	cfg.Platform.GeoURL = serverURL + "/geolocation"
	cfg.Platform.TimeoutSeconds = 5
	return NewClient(cfg)
}

func testSession() domain.Session {
	return domain.Session{Token: "admin-token-simulado"}
}

func TestPlatformClient_GetPendingStores(t *testing.T) {
	var gotAuth, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		json.NewEncoder(w).Encode(map[string]any{
			"stores": []map[string]any{
				{"id": "s1", "name": "Pizzaria do Zé", "approval_status": "pending"},
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	stores, err := client.GetPendingStores(context.Background(), testSession())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer admin-token-simulado", gotAuth)
	assert.Equal(t, "/api/admin/stores/pending", gotPath)
	assert.Len(t, stores, 1)
	assert.Equal(t, "Pizzaria do Zé", stores[0].Name)
}

func TestPlatformClient_GetDelivererLocationsUsesGeoPrefix(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geolocation/admin/all-deliverers", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"deliverers": []map[string]any{
				{"deliverer_id": "d1", "name": "Carlos", "status": "available"},
			},
			"statistics": map[string]any{
				"total_approved": 5,
				"online":         2,
				"available":      1,
				"busy":           1,
			},
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	snapshot, err := client.GetDelivererLocations(context.Background(), testSession())

	assert.NoError(t, err)
	assert.Len(t, snapshot.Deliverers, 1)
	assert.Equal(t, 2, snapshot.Statistics.Online)
}

func TestPlatformClient_RejectStoreSendsReason(t *testing.T) {
	var gotBody platformdomain.ReasonRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin/stores/s1/reject", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(server.URL)

	err := client.RejectStore(context.Background(), testSession(), "s1", "documentação incompleta")

	assert.NoError(t, err)
	assert.Equal(t, "documentação incompleta", gotBody.Reason)
}

// Recusas da plataforma viram *PlatformError com a mensagem do envelope
// {"error"} preservada para exibição ao operador.
func TestPlatformClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "Loja já aprovada"})
	}))
	defer server.Close()

	client := testClient(server.URL)

	err := client.ApproveStore(context.Background(), testSession(), "s1")

	var platformErr *platformdomain.PlatformError
	assert.ErrorAs(t, err, &platformErr)
	assert.Equal(t, http.StatusConflict, platformErr.StatusCode)
	assert.Equal(t, "Loja já aprovada", platformErr.Message)
}

func TestPlatformClient_RejectsCallWithoutSession(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.GetCities(context.Background(), domain.Session{})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestPlatformClient_SetStorePrivilege(t *testing.T) {
	var gotBody platformdomain.PrivilegeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/stores/s3/privilege", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"message": "Privilégio removido"})
	}))
	defer server.Close()

	client := testClient(server.URL)

	message, err := client.SetStorePrivilege(context.Background(), testSession(), "s3", false, "fim da campanha")

	assert.NoError(t, err)
	assert.Equal(t, "Privilégio removido", message)
	assert.False(t, gotBody.IsPrivileged)
	assert.Equal(t, "fim da campanha", gotBody.Reason)
}

func TestPlatformClient_BatchStorePrivilege(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req platformdomain.BatchPrivilegeRequest
		json.NewDecoder(r.Body).Decode(&req)

		assert.Equal(t, "/api/admin/stores/privilege/batch", r.URL.Path)
		assert.Equal(t, "grant", req.Action)

		json.NewEncoder(w).Encode(platformdomain.BatchPrivilegeResult{
			TotalProcessed: len(req.StoreIDs),
			TotalErrors:    0,
		})
	}))
	defer server.Close()

	client := testClient(server.URL)

	result, err := client.BatchStorePrivilege(context.Background(), testSession(), []string{"s1", "s2"}, "grant", "promo")

	assert.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
}
