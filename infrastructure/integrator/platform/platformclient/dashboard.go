package platformclient

import (
	"context"
	"net/http"

	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

func (c *PlatformClient) GetDashboardSummary(ctx context.Context, sess domain.Session) (*platformdomain.DashboardSummary, error) {
	var response platformdomain.DashboardSummary
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/dashboard"), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *PlatformClient) GetPendingStores(ctx context.Context, sess domain.Session) ([]domain.StoreRecord, error) {
	var response platformdomain.StoresResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/stores/pending"), nil, &response); err != nil {
		return nil, err
	}
	return response.Stores, nil
}

func (c *PlatformClient) GetPendingDeliverers(ctx context.Context, sess domain.Session) ([]domain.DelivererRecord, error) {
	var response platformdomain.DeliverersResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/deliverers/pending"), nil, &response); err != nil {
		return nil, err
	}
	return response.Deliverers, nil
}

func (c *PlatformClient) GetStores(ctx context.Context, sess domain.Session) ([]domain.StoreRecord, error) {
	var response platformdomain.StoresResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/stores"), nil, &response); err != nil {
		return nil, err
	}
	return response.Stores, nil
}

func (c *PlatformClient) GetDeliverers(ctx context.Context, sess domain.Session) ([]domain.DelivererRecord, error) {
	var response platformdomain.DeliverersResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/deliverers"), nil, &response); err != nil {
		return nil, err
	}
	return response.Deliverers, nil
}

func (c *PlatformClient) GetCities(ctx context.Context, sess domain.Session) ([]domain.City, error) {
	var response platformdomain.CitiesResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/cities"), nil, &response); err != nil {
		return nil, err
	}
	return response.Cities, nil
}

func (c *PlatformClient) GetCategories(ctx context.Context, sess domain.Session) ([]domain.Category, error) {
	var response platformdomain.CategoriesResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/categories/admin"), nil, &response); err != nil {
		return nil, err
	}
	return response.Categories, nil
}
