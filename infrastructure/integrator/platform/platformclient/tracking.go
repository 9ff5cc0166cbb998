package platformclient

import (
	"context"
	"net/http"

	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

// GetDelivererLocations consulta o serviço de geolocalização. A rota vive sob
// um prefixo próprio, fora do prefixo administrativo.
func (c *PlatformClient) GetDelivererLocations(ctx context.Context, sess domain.Session) (*domain.TrackingSnapshot, error) {
	var response platformdomain.TrackingResponse
	if err := c.do(ctx, sess, http.MethodGet, c.geoURL("/admin/all-deliverers"), nil, &response); err != nil {
		return nil, err
	}

	return &domain.TrackingSnapshot{
		Deliverers: response.Deliverers,
		Statistics: response.Statistics,
		LastUpdate: response.LastUpdate,
	}, nil
}
