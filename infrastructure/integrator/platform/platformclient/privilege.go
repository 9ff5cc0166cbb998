package platformclient

import (
	"context"
	"fmt"
	"net/http"

	platformdomain "github.com/wendyapp/admin-console-api/infrastructure/integrator/platform/domain"
	"github.com/wendyapp/admin-console-api/internal/domain"
)

func (c *PlatformClient) GetPrivilegeCandidates(ctx context.Context, sess domain.Session) ([]domain.CandidateStore, error) {
	var response platformdomain.CandidatesResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/stores/privilege-candidates"), nil, &response); err != nil {
		return nil, err
	}
	return response.CandidateStores, nil
}

func (c *PlatformClient) GetPrivilegedStores(ctx context.Context, sess domain.Session) ([]domain.CandidateStore, error) {
	var response platformdomain.PrivilegedResponse
	if err := c.do(ctx, sess, http.MethodGet, c.apiURL("/admin/stores/privileged"), nil, &response); err != nil {
		return nil, err
	}
	return response.PrivilegedStores, nil
}

// SetStorePrivilege altera o privilégio de uma loja e devolve a mensagem de
// confirmação do servidor.
func (c *PlatformClient) SetStorePrivilege(ctx context.Context, sess domain.Session, storeID string, privileged bool, reason string) (string, error) {
	url := c.apiURL(fmt.Sprintf("/admin/stores/%s/privilege", storeID))

	body := platformdomain.PrivilegeRequest{
		IsPrivileged: privileged,
		Reason:       reason,
	}

	var response platformdomain.MessageResponse
	if err := c.do(ctx, sess, http.MethodPost, url, body, &response); err != nil {
		return "", err
	}

	return response.Message, nil
}

func (c *PlatformClient) BatchStorePrivilege(ctx context.Context, sess domain.Session, storeIDs []string, action, reason string) (*platformdomain.BatchPrivilegeResult, error) {
	body := platformdomain.BatchPrivilegeRequest{
		StoreIDs: storeIDs,
		Action:   action,
		Reason:   reason,
	}

	var response platformdomain.BatchPrivilegeResult
	if err := c.do(ctx, sess, http.MethodPost, c.apiURL("/admin/stores/privilege/batch"), body, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
