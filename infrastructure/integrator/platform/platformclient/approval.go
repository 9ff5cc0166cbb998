package platformclient

import (
	"context"
	"fmt"
	"net/http"

	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

func (c *PlatformClient) ApproveStore(ctx context.Context, sess domain.Session, storeID string) error {
	url := c.apiURL(fmt.Sprintf("/admin/stores/%s/approve", storeID))
	return c.do(ctx, sess, http.MethodPost, url, nil, nil)
}

func (c *PlatformClient) RejectStore(ctx context.Context, sess domain.Session, storeID, reason string) error {
	url := c.apiURL(fmt.Sprintf("/admin/stores/%s/reject", storeID))
	return c.do(ctx, sess, http.MethodPost, url, platformdomain.ReasonRequest{Reason: reason}, nil)
}

func (c *PlatformClient) ApproveDeliverer(ctx context.Context, sess domain.Session, delivererID string) error {
	url := c.apiURL(fmt.Sprintf("/admin/deliverers/%s/approve", delivererID))
	return c.do(ctx, sess, http.MethodPost, url, nil, nil)
}

func (c *PlatformClient) RejectDeliverer(ctx context.Context, sess domain.Session, delivererID, reason string) error {
	url := c.apiURL(fmt.Sprintf("/admin/deliverers/%s/reject", delivererID))
	return c.do(ctx, sess, http.MethodPost, url, platformdomain.ReasonRequest{Reason: reason}, nil)
}

func (c *PlatformClient) DeleteUser(ctx context.Context, sess domain.Session, userID, reason string) error {
	url := c.apiURL(fmt.Sprintf("/admin/users/%s/delete", userID))
	return c.do(ctx, sess, http.MethodDelete, url, platformdomain.ReasonRequest{Reason: reason}, nil)
}
